package store

import (
	"context"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

func (s *gormStore) CreateUser(ctx context.Context, user *model.User) error {
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(user).Error
	})
	if err != nil {
		return wrap("user-creation-failed", "사용자 생성 중 오류가 발생했습니다.", err)
	}
	return nil
}

func (s *gormStore) GetUser(ctx context.Context, uid string) (*model.User, error) {
	var user model.User
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).First(&user, "uid = ?", uid).Error
	})
	if err != nil {
		return nil, notFoundOr(err,
			apperr.NotFound("user-not-found", "사용자를 찾을 수 없습니다."),
			"user-fetch-failed", "사용자 조회 중 오류가 발생했습니다.")
	}
	return &user, nil
}

func (s *gormStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.run(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	})
	if err != nil {
		return nil, notFoundOr(err,
			apperr.NotFound("user-not-found", "사용자를 찾을 수 없습니다."),
			"user-fetch-failed", "사용자 조회 중 오류가 발생했습니다.")
	}
	return &user, nil
}
