package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relief-coordination-backend/internal/mw"
	"relief-coordination-backend/internal/relief"
)

type createSupplyRequest struct {
	SupplierName     string `json:"supplier_name" binding:"required"`
	SupplierPhone    string `json:"supplier_phone" binding:"required"`
	SupplierEmail    string `json:"supplier_email"`
	SuppliedQuantity int    `json:"supplied_quantity" binding:"required"`
	Message          string `json:"message"`
}

// PostSupply handles POST /api/requests/:request_id/supplies.
func (h *Handler) PostSupply(c *gin.Context) {
	var req createSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	supply, err := h.relief.AddSupply(c.Request.Context(), relief.SupplyInput{
		RequestID:        c.Param("request_id"),
		SupplierID:       mw.UID(c),
		SupplierName:     req.SupplierName,
		SupplierPhone:    req.SupplierPhone,
		SupplierEmail:    req.SupplierEmail,
		SuppliedQuantity: req.SuppliedQuantity,
		Message:          req.Message,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, supply)
}

type createSimpleSupplyRequest struct {
	ShelterID   string `json:"shelter_id"`
	ItemName    string `json:"item_name" binding:"required"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Quantity    int    `json:"quantity" binding:"required"`
	Unit        string `json:"unit"`
	Priority    string `json:"priority"`
	Notes       string `json:"notes"`
}

// PostSupplySimple handles POST /api/requests/:request_id/supplies/simple,
// the flow where supplier contact details arrive later with the tracking
// registration.
func (h *Handler) PostSupplySimple(c *gin.Context) {
	var req createSimpleSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	supply, err := h.relief.AddSupplySimple(c.Request.Context(), c.Param("request_id"), mw.UID(c), relief.SimpleSupplyInput{
		ShelterID:   req.ShelterID,
		ItemName:    req.ItemName,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Priority:    req.Priority,
		Notes:       req.Notes,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, supply)
}

type registerTrackingRequest struct {
	CourierCompany string `json:"courier_company" binding:"required"`
	TrackingNumber string `json:"tracking_number" binding:"required"`
}

// PostTracking handles POST /api/supplies/:supply_id/tracking.
func (h *Handler) PostTracking(c *gin.Context) {
	var req registerTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	supply, err := h.relief.RegisterTracking(c.Request.Context(), mw.UID(c), c.Param("supply_id"), req.CourierCompany, req.TrackingNumber)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, supply)
}

type updateSupplyStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PatchSupplyStatus handles PATCH /api/supplies/:supply_id/status.
func (h *Handler) PatchSupplyStatus(c *gin.Context) {
	var req updateSupplyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	supply, err := h.relief.UpdateSupplyStatus(c.Request.Context(), mw.UID(c), c.Param("supply_id"), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, supply)
}

// GetMySupplies handles GET /api/users/me/supplies.
func (h *Handler) GetMySupplies(c *gin.Context) {
	supplies, err := h.relief.ListSuppliesByUser(c.Request.Context(), mw.UID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, supplies)
}

// GetShelterSupplies handles GET /api/shelters/:shelter_id/supplies.
func (h *Handler) GetShelterSupplies(c *gin.Context) {
	supplies, err := h.relief.ListSuppliesByShelter(c.Request.Context(), c.Param("shelter_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, supplies)
}
