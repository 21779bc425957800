package api

import (
	"relief-coordination-backend/internal/auth"
	"relief-coordination-backend/internal/notification"
	"relief-coordination-backend/internal/relief"
	"relief-coordination-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	relief *relief.Service
	auth   *auth.Service
	store  store.Store
	pool   *notification.WorkerPool
	vapid  string
}

// NewHandler creates a new API handler. pool may be nil when push
// notifications are disabled.
func NewHandler(reliefSvc *relief.Service, authSvc *auth.Service, st store.Store, pool *notification.WorkerPool, vapidPublicKey string) *Handler {
	return &Handler{
		relief: reliefSvc,
		auth:   authSvc,
		store:  st,
		pool:   pool,
		vapid:  vapidPublicKey,
	}
}
