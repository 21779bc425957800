package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/model"
	"relief-coordination-backend/internal/mw"
)

type subscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Keys     struct {
		P256DH string `json:"p256dh" binding:"required"`
		Auth   string `json:"auth" binding:"required"`
	} `json:"keys" binding:"required"`
}

// PutSubscription handles PUT /api/subscriptions. The browser sends the
// PushSubscription JSON it got from the push manager; we key on endpoint so
// re-subscribing the same browser just refreshes the keys.
func (h *Handler) PutSubscription(c *gin.Context) {
	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	sub := &model.PushSubscription{
		Endpoint: req.Endpoint,
		P256DH:   req.Keys.P256DH,
		Auth:     req.Keys.Auth,
		UserID:   mw.UID(c),
	}
	if err := h.store.UpsertSubscription(c.Request.Context(), sub); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"subscribed": true})
}

type unsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}

// DeleteSubscription handles DELETE /api/subscriptions.
func (h *Handler) DeleteSubscription(c *gin.Context) {
	var req unsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	if err := h.store.DeleteSubscription(c.Request.Context(), req.Endpoint); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"subscribed": false})
}

// Push endpoints contain percent-encoded segments that must round-trip
// byte for byte, so the endpoint query parameter is read without URL
// decoding.
func rawQueryParam(rawQuery, key string) (string, bool) {
	for _, kv := range strings.Split(rawQuery, "&") {
		if strings.HasPrefix(kv, key+"=") {
			return kv[len(key)+1:], true
		}
	}
	return "", false
}

// GetSubscription handles GET /api/subscriptions?endpoint=...
func (h *Handler) GetSubscription(c *gin.Context) {
	endpoint, ok := rawQueryParam(c.Request.URL.RawQuery, "endpoint")
	if !ok || endpoint == "" {
		respondErr(c, apperr.Validation("missing-endpoint", "구독 endpoint가 지정되지 않았습니다."))
		return
	}

	sub, err := h.store.GetSubscriptionByEndpoint(c.Request.Context(), endpoint)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"subscribed": sub.UserID == mw.UID(c)})
}

// GetVAPIDPublicKey handles GET /api/vapid_public_key. Clients need the
// server's public key to create a push subscription.
func (h *Handler) GetVAPIDPublicKey(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"public_key": h.vapid})
}
