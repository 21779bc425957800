package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	// Shelters
	CreateShelter(ctx context.Context, shelter *model.Shelter) error
	GetShelter(ctx context.Context, id string) (*model.Shelter, error)
	SaveShelter(ctx context.Context, shelter *model.Shelter) error
	DeleteShelter(ctx context.Context, id string) error
	ListShelters(ctx context.Context, filter ShelterFilter) ([]model.Shelter, error)
	SheltersByIDs(ctx context.Context, ids []string) (map[string]model.Shelter, error)

	// Relief requests
	CreateRequest(ctx context.Context, request *model.ReliefRequest) error
	GetRequest(ctx context.Context, id string) (*model.ReliefRequest, error)
	SaveRequest(ctx context.Context, request *model.ReliefRequest) error
	ListRequestsByShelter(ctx context.Context, shelterID string) ([]model.ReliefRequest, error)
	ListRequestsByStatus(ctx context.Context, status string) ([]model.ReliefRequest, error)

	// Relief supplies
	CreateSupply(ctx context.Context, supply *model.ReliefSupply) error
	GetSupply(ctx context.Context, id string) (*model.ReliefSupply, error)
	SaveSupply(ctx context.Context, supply *model.ReliefSupply) error
	ListSuppliesByUser(ctx context.Context, userID string) ([]model.ReliefSupply, error)
	ListSuppliesByShelter(ctx context.Context, shelterID string) ([]model.ReliefSupply, error)

	// Donation preferences
	CreateDonation(ctx context.Context, donation *model.DonationPreference) error
	GetDonation(ctx context.Context, id string) (*model.DonationPreference, error)
	SaveDonation(ctx context.Context, donation *model.DonationPreference) error
	ListActiveDonationsByUser(ctx context.Context, userID string) ([]model.DonationPreference, error)
	ListActiveDonations(ctx context.Context) ([]model.DonationPreference, error)

	// Users
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, uid string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// Push subscriptions
	UpsertSubscription(ctx context.Context, sub *model.PushSubscription) error
	GetSubscriptionByEndpoint(ctx context.Context, endpoint string) (*model.PushSubscription, error)
	DeleteSubscription(ctx context.Context, endpoint string) error
	ListSubscriptionsByUsers(ctx context.Context, userIDs []string) ([]model.PushSubscription, error)
}

// ShelterFilter narrows a shelter listing. Zero value lists everything.
type ShelterFilter struct {
	ManagerID     string
	DisasterType  string
	OperatingOnly bool
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewGormStore creates a new GORM-backed store. Every operation runs under
// the given per-query timeout.
func NewGormStore(db *gorm.DB, timeout time.Duration) Store {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &gormStore{db: db, timeout: timeout}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// run executes op under the per-query timeout.
func (s *gormStore) run(ctx context.Context, op func(ctx context.Context) error) error {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return op(opCtx)
}

// runRetry executes op under the per-query timeout and retries once if the
// attempt itself timed out while the caller's context is still live.
func (s *gormStore) runRetry(ctx context.Context, op func(ctx context.Context) error) error {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err := op(opCtx)
	cancel()
	if err == nil || !errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return err
	}
	opCtx, cancel = context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return op(opCtx)
}

// wrap translates a boundary error into a structured dependency error.
// Timeouts get a distinguishable code so operators can tell slow storage from
// broken storage.
func wrap(code, message string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Dependency("store-timeout", "저장소 응답이 지연되고 있습니다. 잠시 후 다시 시도해주세요.", err)
	}
	return apperr.Dependency(code, message, err)
}

// notFoundOr maps gorm.ErrRecordNotFound to a structured not-found error and
// wraps anything else as a dependency failure.
func notFoundOr(err error, nf *apperr.Error, depCode, depMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nf
	}
	return wrap(depCode, depMessage, err)
}
