package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"relief-coordination-backend/config"
	"relief-coordination-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, parser mw.TokenParser, cfg config.ServerConfig) *gin.Engine {
	r := gin.Default()

	// Rate limit: configurable requests per second with a burst of 5
	limit := rate.Limit(cfg.RateLimitPerSec)
	if cfg.RateLimitPerSec <= 0 {
		limit = rate.Limit(10)
	}
	rateLimiter := mw.RateLimiter(limit, 5, cfg.RequestIPHeader)

	// Cache for public list endpoints, cleaned up every 10 minutes
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	cacheStore := cache.New(cacheTTL, 10*time.Minute)
	caching := mw.Cache(cacheStore, cacheTTL)

	authed := mw.Auth(parser)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/auth/signup", h.PostSignUp)
		api.POST("/auth/signin", h.PostSignIn)

		api.GET("/shelters", caching, h.GetShelters)
		api.GET("/shelters/:shelter_id", h.GetShelter)
		api.POST("/shelters", authed, h.PostShelter)
		api.PATCH("/shelters/:shelter_id", authed, h.PatchShelter)
		api.DELETE("/shelters/:shelter_id", authed, h.DeleteShelter)

		api.GET("/shelters/:shelter_id/requests", h.GetShelterRequests)
		api.POST("/shelters/:shelter_id/requests", authed, h.PostReliefRequest)
		api.GET("/requests", caching, h.GetPendingRequests)
		api.PATCH("/requests/:request_id/status", authed, h.PatchRequestStatus)

		api.POST("/requests/:request_id/supplies", authed, h.PostSupply)
		api.POST("/requests/:request_id/supplies/simple", authed, h.PostSupplySimple)
		api.GET("/users/me/supplies", authed, h.GetMySupplies)
		api.GET("/shelters/:shelter_id/supplies", h.GetShelterSupplies)
		api.PATCH("/supplies/:supply_id/status", authed, h.PatchSupplyStatus)
		api.POST("/supplies/:supply_id/tracking", authed, h.PostTracking)

		api.GET("/users/me/donations", authed, h.GetMyDonations)
		api.POST("/users/me/donations", authed, h.PostDonation)
		api.DELETE("/users/me/donations/:donation_id", authed, h.DeleteDonation)
		api.GET("/users/me/matches", authed, h.GetMyMatches)

		api.GET("/shelters/:shelter_id/statistics", h.GetShelterStatistics)
		api.GET("/shelters/:shelter_id/supply-breakdown", h.GetShelterSupplyBreakdown)

		api.GET("/subscriptions", authed, h.GetSubscription)
		api.PUT("/subscriptions", authed, h.PutSubscription)
		api.DELETE("/subscriptions", authed, h.DeleteSubscription)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	return r
}
