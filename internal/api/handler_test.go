package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"relief-coordination-backend/config"
	"relief-coordination-backend/internal/auth"
	"relief-coordination-backend/internal/db"
	"relief-coordination-backend/internal/model"
	"relief-coordination-backend/internal/relief"
	"relief-coordination-backend/internal/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(testDB))

	st := store.NewGormStore(testDB, 5*time.Second)
	reliefSvc := relief.NewService(st)
	authSvc := auth.NewService(st, "test-secret", time.Hour)
	handler := NewHandler(reliefSvc, authSvc, st, nil, "test-vapid-key")
	return NewRouter(handler, authSvc, config.ServerConfig{RateLimitPerSec: 1000})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func signUpOfficer(t *testing.T, router *gin.Engine, email string) string {
	w, env := doJSON(t, router, "POST", "/api/auth/signup", "", gin.H{
		"email":        email,
		"password":     "secret1",
		"display_name": "김철수",
		"user_type":    model.UserTypeOfficer,
		"terms_agreed": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func shelterBody() gin.H {
	return gin.H{
		"shelter_name":      "대구 시민 체육관",
		"location":          "대구광역시 중구 공평로 88",
		"disaster_type":     "지진",
		"capacity":          200,
		"current_occupancy": 50,
		"status":            "운영중",
		"contact_person":    "김철수",
		"contact_phone":     "053-123-4567",
	}
}

func TestAuthEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("signup then signin", func(t *testing.T) {
		signUpOfficer(t, router, "officer@city.go.kr")

		w, env := doJSON(t, router, "POST", "/api/auth/signin", "", gin.H{
			"email":    "officer@city.go.kr",
			"password": "secret1",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
	})

	t.Run("duplicate signup is rejected", func(t *testing.T) {
		w, env := doJSON(t, router, "POST", "/api/auth/signup", "", gin.H{
			"email":        "officer@city.go.kr",
			"password":     "secret1",
			"user_type":    model.UserTypeOfficer,
			"terms_agreed": true,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "auth/email-already-in-use", env.Error.Code)
	})

	t.Run("wrong password carries its code", func(t *testing.T) {
		w, env := doJSON(t, router, "POST", "/api/auth/signin", "", gin.H{
			"email":    "officer@city.go.kr",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "auth/wrong-password", env.Error.Code)
		assert.Equal(t, "잘못된 비밀번호입니다.", env.Error.Message)
	})
}

func TestShelterEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	token := signUpOfficer(t, router, "officer@city.go.kr")

	t.Run("mutations require a token", func(t *testing.T) {
		w, env := doJSON(t, router, "POST", "/api/shelters", "", shelterBody())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "auth/missing-token", env.Error.Code)
	})

	var shelterID string
	t.Run("create shelter derives occupancy rate", func(t *testing.T) {
		w, env := doJSON(t, router, "POST", "/api/shelters", token, shelterBody())
		require.Equal(t, http.StatusCreated, w.Code)

		var shelter model.Shelter
		require.NoError(t, json.Unmarshal(env.Data, &shelter))
		assert.Equal(t, 25, shelter.OccupancyRate)
		shelterID = shelter.ID
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		body := shelterBody()
		body["contact_phone"] = "nope"
		w, env := doJSON(t, router, "POST", "/api/shelters", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "shelter-invalid-phone", env.Error.Code)
	})

	t.Run("patch recomputes occupancy rate", func(t *testing.T) {
		w, env := doJSON(t, router, "PATCH", "/api/shelters/"+shelterID, token, gin.H{
			"current_occupancy": 120,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var shelter model.Shelter
		require.NoError(t, json.Unmarshal(env.Data, &shelter))
		assert.Equal(t, 60, shelter.OccupancyRate)
	})

	t.Run("another account gets 403", func(t *testing.T) {
		other := signUpOfficer(t, router, "other@city.go.kr")
		w, env := doJSON(t, router, "PATCH", "/api/shelters/"+shelterID, other, gin.H{
			"status": "폐쇄",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "forbidden", env.Error.Code)
	})

	t.Run("missing shelter is 404 with its code", func(t *testing.T) {
		w, env := doJSON(t, router, "GET", "/api/shelters/SH-missing", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "shelter-not-found", env.Error.Code)
	})

	t.Run("operating filter", func(t *testing.T) {
		w, env := doJSON(t, router, "GET", "/api/shelters?operating=true", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var shelters []model.Shelter
		require.NoError(t, json.Unmarshal(env.Data, &shelters))
		require.Len(t, shelters, 1)
		assert.Equal(t, shelterID, shelters[0].ID)
	})
}

func TestRequestAndSupplyEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	officer := signUpOfficer(t, router, "officer@city.go.kr")
	donor := signUpOfficer(t, router, "donor@example.com")

	_, env := doJSON(t, router, "POST", "/api/shelters", officer, shelterBody())
	var shelter model.Shelter
	require.NoError(t, json.Unmarshal(env.Data, &shelter))

	var requestID string
	t.Run("register request", func(t *testing.T) {
		w, env := doJSON(t, router, "POST", fmt.Sprintf("/api/shelters/%s/requests", shelter.ID), officer, gin.H{
			"priority": "urgent",
			"relief_items": []gin.H{
				{"category": "식량", "subcategory": "음료", "item_name": "생수", "quantity": 100, "unit": "병"},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var request model.ReliefRequest
		require.NoError(t, json.Unmarshal(env.Data, &request))
		assert.Equal(t, 1, request.TotalItems)
		assert.Equal(t, model.RequestPending, request.Status)
		requestID = request.ID
	})

	var supplyID string
	t.Run("donor pledges a supply", func(t *testing.T) {
		w, env := doJSON(t, router, "POST", fmt.Sprintf("/api/requests/%s/supplies", requestID), donor, gin.H{
			"supplier_name":     "박영희",
			"supplier_phone":    "010-1234-5678",
			"supplied_quantity": 50,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var supply model.ReliefSupply
		require.NoError(t, json.Unmarshal(env.Data, &supply))
		assert.Equal(t, "생수", supply.ItemName)
		assert.Equal(t, model.SupplyPending, supply.Status)
		supplyID = supply.ID
	})

	t.Run("tracking registration ships the supply", func(t *testing.T) {
		w, env := doJSON(t, router, "POST", fmt.Sprintf("/api/supplies/%s/tracking", supplyID), donor, gin.H{
			"courier_company": "CJ대한통운",
			"tracking_number": "1234567890",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var supply model.ReliefSupply
		require.NoError(t, json.Unmarshal(env.Data, &supply))
		assert.Equal(t, model.SupplyShipped, supply.Status)
	})

	t.Run("illegal status move maps to 400", func(t *testing.T) {
		w, env := doJSON(t, router, "PATCH", fmt.Sprintf("/api/supplies/%s/status", supplyID), officer, gin.H{
			"status": model.SupplyConfirmed,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "supply-invalid-status", env.Error.Code)
	})

	t.Run("donor sees supplies annotated with shelters", func(t *testing.T) {
		w, env := doJSON(t, router, "GET", "/api/users/me/supplies", donor, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var supplies []struct {
			model.ReliefSupply
			Shelter *model.Shelter `json:"shelter"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &supplies))
		require.Len(t, supplies, 1)
		require.NotNil(t, supplies[0].Shelter)
		assert.Equal(t, shelter.ID, supplies[0].Shelter.ID)
	})

	t.Run("statistics rejects a bad days value", func(t *testing.T) {
		w, env := doJSON(t, router, "GET", fmt.Sprintf("/api/shelters/%s/statistics?days=zero", shelter.ID), "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid-days", env.Error.Code)
	})

	t.Run("statistics includes the derived supply rate", func(t *testing.T) {
		w, env := doJSON(t, router, "GET", fmt.Sprintf("/api/shelters/%s/statistics?days=7", shelter.ID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var payload struct {
			SupplyRate int `json:"supply_rate"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &payload))
		assert.Equal(t, 100, payload.SupplyRate)
	})
}

func TestVAPIDPublicKey(t *testing.T) {
	router := setupTestRouter(t)

	w, env := doJSON(t, router, "GET", "/api/vapid_public_key", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		PublicKey string `json:"public_key"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, "test-vapid-key", payload.PublicKey)
}
