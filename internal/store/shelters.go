package store

import (
	"context"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

func (s *gormStore) CreateShelter(ctx context.Context, shelter *model.Shelter) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(shelter).Error
	})
	if err != nil {
		return wrap("shelter-creation-failed", "대피소 정보 저장 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) GetShelter(ctx context.Context, id string) (*model.Shelter, error) {
	var shelter model.Shelter
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).First(&shelter, "id = ?", id).Error
	})
	if err != nil {
		return nil, notFoundOr(err,
			apperr.NotFound("shelter-not-found", "해당 대피소 정보를 찾을 수 없습니다."),
			"shelter-fetch-failed", "대피소 조회 중 오류가 발생했습니다.")
	}
	return &shelter, nil
}

func (s *gormStore) SaveShelter(ctx context.Context, shelter *model.Shelter) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Save(shelter).Error
	})
	if err != nil {
		return wrap("shelter-update-failed", "대피소 정보 업데이트 중 오류가 발생했습니다.", err)
	}
	return nil
}

// DeleteShelter is idempotent; deleting an absent id is treated as success.
func (s *gormStore) DeleteShelter(ctx context.Context, id string) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Delete(&model.Shelter{}, "id = ?", id).Error
	})
	if err != nil {
		return wrap("shelter-delete-failed", "대피소 삭제 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) ListShelters(ctx context.Context, filter ShelterFilter) ([]model.Shelter, error) {
	var shelters []model.Shelter
	err := s.runRetry(ctx, func(ctx context.Context) error {
		q := s.db.WithContext(ctx).Order("created_at DESC")
		if filter.ManagerID != "" {
			q = q.Where("manager_id = ?", filter.ManagerID)
		}
		if filter.DisasterType != "" {
			q = q.Where("disaster_type = ?", filter.DisasterType)
		}
		if filter.OperatingOnly {
			q = q.Where("status = ?", model.ShelterOperating)
		}
		return q.Find(&shelters).Error
	})
	if err != nil {
		return nil, wrap("shelters-fetch-failed", "대피소 목록 조회 중 오류가 발생했습니다.", err)
	}
	return shelters, nil
}

// SheltersByIDs fetches several shelters in one query, for annotating supply
// listings without a read per row.
func (s *gormStore) SheltersByIDs(ctx context.Context, ids []string) (map[string]model.Shelter, error) {
	result := make(map[string]model.Shelter, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var shelters []model.Shelter
	err := s.runRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Where("id IN ?", ids).Find(&shelters).Error
	})
	if err != nil {
		return nil, wrap("shelters-fetch-failed", "대피소 목록 조회 중 오류가 발생했습니다.", err)
	}
	for _, sh := range shelters {
		result[sh.ID] = sh
	}
	return result, nil
}
