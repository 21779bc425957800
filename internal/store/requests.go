package store

import (
	"context"

	"gorm.io/gorm"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

func (s *gormStore) CreateRequest(ctx context.Context, request *model.ReliefRequest) error {
	err := s.run(ctx, func(ctx context.Context) error {
		// Items are created in the same transaction through the association.
		return s.db.WithContext(ctx).Create(request).Error
	})
	if err != nil {
		return wrap("relief-request-failed", "구호품 요청 등록 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) GetRequest(ctx context.Context, id string) (*model.ReliefRequest, error) {
	var request model.ReliefRequest
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).
			Preload("Items", itemOrder).
			First(&request, "id = ?", id).Error
	})
	if err != nil {
		return nil, notFoundOr(err,
			apperr.NotFound("relief-request-not-found", "존재하지 않는 구호품 요청입니다."),
			"relief-requests-fetch-failed", "구호품 요청 조회 중 오류가 발생했습니다.")
	}
	return &request, nil
}

func (s *gormStore) SaveRequest(ctx context.Context, request *model.ReliefRequest) error {
	err := s.run(ctx, func(ctx context.Context) error {
		// Omit the association: line items are immutable after creation.
		return s.db.WithContext(ctx).Omit("Items").Save(request).Error
	})
	if err != nil {
		return wrap("relief-request-update-failed", "구호품 요청 상태 업데이트 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) ListRequestsByShelter(ctx context.Context, shelterID string) ([]model.ReliefRequest, error) {
	return s.listRequests(ctx, "shelter_id = ?", shelterID)
}

func (s *gormStore) ListRequestsByStatus(ctx context.Context, status string) ([]model.ReliefRequest, error) {
	return s.listRequests(ctx, "status = ?", status)
}

func (s *gormStore) listRequests(ctx context.Context, cond string, arg any) ([]model.ReliefRequest, error) {
	var requests []model.ReliefRequest
	err := s.runRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).
			Preload("Items", itemOrder).
			Where(cond, arg).
			Order("created_at DESC").
			Find(&requests).Error
	})
	if err != nil {
		return nil, wrap("relief-requests-fetch-failed", "구호품 요청 조회 중 오류가 발생했습니다.", err)
	}
	return requests, nil
}

// itemOrder keeps preloaded line items in submission order.
func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("relief_items.position ASC")
}
