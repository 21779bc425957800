package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"relief-coordination-backend/internal/mw"
)

type createDonationRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Unit     string `json:"unit" binding:"required"`
}

// PostDonation handles POST /api/users/me/donations.
func (h *Handler) PostDonation(c *gin.Context) {
	var req createDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	donation, err := h.relief.AddDonationPreference(c.Request.Context(), mw.UID(c), req.ItemName, req.Quantity, req.Unit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, donation)
}

// GetMyDonations handles GET /api/users/me/donations.
func (h *Handler) GetMyDonations(c *gin.Context) {
	donations, err := h.relief.ListDonationPreferences(c.Request.Context(), mw.UID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, donations)
}

// DeleteDonation handles DELETE /api/users/me/donations/:donation_id.
func (h *Handler) DeleteDonation(c *gin.Context) {
	if err := h.relief.RemoveDonationPreference(c.Request.Context(), mw.UID(c), c.Param("donation_id")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "희망 기부 물품이 삭제되었습니다."})
}

// GetMyMatches handles GET /api/users/me/matches.
func (h *Handler) GetMyMatches(c *gin.Context) {
	result, err := h.relief.GetMatchingReliefRequests(c.Request.Context(), mw.UID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}

// GetShelterStatistics handles GET /api/shelters/:shelter_id/statistics.
func (h *Handler) GetShelterStatistics(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "invalid-days",
					"message": "조회 기간이 올바르지 않습니다.",
				},
			})
			return
		}
		days = parsed
	}

	stats, err := h.relief.GetReliefStatistics(c.Request.Context(), c.Param("shelter_id"), days)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{
		"statistics":  stats,
		"supply_rate": stats.SupplyRate(),
	})
}

// GetShelterSupplyBreakdown handles GET /api/shelters/:shelter_id/supply-breakdown.
func (h *Handler) GetShelterSupplyBreakdown(c *gin.Context) {
	breakdown, err := h.relief.GetSupplyBreakdown(c.Request.Context(), c.Param("shelter_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, breakdown)
}
