package store

import (
	"context"

	"gorm.io/gorm/clause"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

func (s *gormStore) UpsertSubscription(ctx context.Context, sub *model.PushSubscription) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "user_id"}),
		}).Create(sub).Error
	})
	if err != nil {
		return wrap("subscription-save-failed", "알림 구독 저장 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) GetSubscriptionByEndpoint(ctx context.Context, endpoint string) (*model.PushSubscription, error) {
	var sub model.PushSubscription
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).First(&sub, "endpoint = ?", endpoint).Error
	})
	if err != nil {
		return nil, notFoundOr(err,
			apperr.NotFound("subscription-not-found", "알림 구독을 찾을 수 없습니다."),
			"subscription-fetch-failed", "알림 구독 조회 중 오류가 발생했습니다.")
	}
	return &sub, nil
}

func (s *gormStore) DeleteSubscription(ctx context.Context, endpoint string) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Delete(&model.PushSubscription{}, "endpoint = ?", endpoint).Error
	})
	if err != nil {
		return wrap("subscription-delete-failed", "알림 구독 삭제 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) ListSubscriptionsByUsers(ctx context.Context, userIDs []string) ([]model.PushSubscription, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var subs []model.PushSubscription
	err := s.runRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&subs).Error
	})
	if err != nil {
		return nil, wrap("subscription-fetch-failed", "알림 구독 조회 중 오류가 발생했습니다.", err)
	}
	return subs, nil
}
