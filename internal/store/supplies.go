package store

import (
	"context"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

func (s *gormStore) CreateSupply(ctx context.Context, supply *model.ReliefSupply) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(supply).Error
	})
	if err != nil {
		return wrap("supply-creation-failed", "구호품 공급 등록 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) GetSupply(ctx context.Context, id string) (*model.ReliefSupply, error) {
	var supply model.ReliefSupply
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).First(&supply, "id = ?", id).Error
	})
	if err != nil {
		return nil, notFoundOr(err,
			apperr.NotFound("supply-not-found", "존재하지 않는 구호품 공급 기록입니다."),
			"supplies-fetch-failed", "구호품 공급 이력을 불러오는 중 오류가 발생했습니다.")
	}
	return &supply, nil
}

func (s *gormStore) SaveSupply(ctx context.Context, supply *model.ReliefSupply) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Save(supply).Error
	})
	if err != nil {
		return wrap("supply-update-failed", "구호품 공급 상태 업데이트 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) ListSuppliesByUser(ctx context.Context, userID string) ([]model.ReliefSupply, error) {
	return s.listSupplies(ctx, "supplier_id = ?", userID)
}

func (s *gormStore) ListSuppliesByShelter(ctx context.Context, shelterID string) ([]model.ReliefSupply, error) {
	return s.listSupplies(ctx, "shelter_id = ?", shelterID)
}

func (s *gormStore) listSupplies(ctx context.Context, cond string, arg any) ([]model.ReliefSupply, error) {
	var supplies []model.ReliefSupply
	err := s.runRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).
			Where(cond, arg).
			Order("created_at DESC").
			Find(&supplies).Error
	})
	if err != nil {
		return nil, wrap("supplies-fetch-failed", "구호품 공급 이력을 불러오는 중 오류가 발생했습니다.", err)
	}
	return supplies, nil
}
