package store

import (
	"context"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

func (s *gormStore) CreateDonation(ctx context.Context, donation *model.DonationPreference) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(donation).Error
	})
	if err != nil {
		return wrap("donation-creation-failed", "희망 기부 물품 등록 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) GetDonation(ctx context.Context, id string) (*model.DonationPreference, error) {
	var donation model.DonationPreference
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).First(&donation, "id = ?", id).Error
	})
	if err != nil {
		return nil, notFoundOr(err,
			apperr.NotFound("donation-not-found", "기부 물품을 찾을 수 없습니다."),
			"donations-fetch-failed", "희망 기부 물품 목록을 불러오는 중 오류가 발생했습니다.")
	}
	return &donation, nil
}

func (s *gormStore) SaveDonation(ctx context.Context, donation *model.DonationPreference) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Save(donation).Error
	})
	if err != nil {
		return wrap("donation-delete-failed", "희망 기부 물품 삭제 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) ListActiveDonationsByUser(ctx context.Context, userID string) ([]model.DonationPreference, error) {
	var donations []model.DonationPreference
	err := s.runRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).
			Where("user_id = ? AND active = ?", userID, true).
			Order("created_at DESC").
			Find(&donations).Error
	})
	if err != nil {
		return nil, wrap("donations-fetch-failed", "희망 기부 물품 목록을 불러오는 중 오류가 발생했습니다.", err)
	}
	return donations, nil
}

// ListActiveDonations returns every user's active preferences, for matching
// a newly created request against the donor pool.
func (s *gormStore) ListActiveDonations(ctx context.Context) ([]model.DonationPreference, error) {
	var donations []model.DonationPreference
	err := s.runRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).
			Where("active = ?", true).
			Order("created_at DESC").
			Find(&donations).Error
	})
	if err != nil {
		return nil, wrap("donations-fetch-failed", "희망 기부 물품 목록을 불러오는 중 오류가 발생했습니다.", err)
	}
	return donations, nil
}
