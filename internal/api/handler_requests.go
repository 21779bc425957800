package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relief-coordination-backend/internal/mw"
	"relief-coordination-backend/internal/relief"
)

type reliefItemRequest struct {
	Category    string `json:"category" binding:"required"`
	Subcategory string `json:"subcategory" binding:"required"`
	ItemName    string `json:"item_name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	Unit        string `json:"unit" binding:"required"`
	Priority    string `json:"priority"`
	Notes       string `json:"notes"`
}

type createRequestRequest struct {
	Priority string              `json:"priority"`
	Notes    string              `json:"notes"`
	Items    []reliefItemRequest `json:"relief_items" binding:"required"`
}

// PostReliefRequest handles POST /api/shelters/:shelter_id/requests.
func (h *Handler) PostReliefRequest(c *gin.Context) {
	var req createRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	items := make([]relief.ItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = relief.ItemInput{
			Category:    item.Category,
			Subcategory: item.Subcategory,
			ItemName:    item.ItemName,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			Priority:    item.Priority,
			Notes:       item.Notes,
		}
	}

	request, err := h.relief.CreateReliefRequest(c.Request.Context(), relief.RequestInput{
		ShelterID:   c.Param("shelter_id"),
		RequesterID: mw.UID(c),
		Priority:    req.Priority,
		Notes:       req.Notes,
		Items:       items,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	// Alert donors whose standing preferences match the new request.
	if h.pool != nil {
		h.pool.Dispatch(request.ID)
	}
	respond(c, http.StatusCreated, request)
}

// GetShelterRequests handles GET /api/shelters/:shelter_id/requests.
func (h *Handler) GetShelterRequests(c *gin.Context) {
	requests, err := h.relief.ListRequestsByShelter(c.Request.Context(), c.Param("shelter_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, requests)
}

// GetPendingRequests handles GET /api/requests.
func (h *Handler) GetPendingRequests(c *gin.Context) {
	requests, err := h.relief.ListAllPendingRequests(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, requests)
}

type updateRequestStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// PatchRequestStatus handles PATCH /api/requests/:request_id/status.
func (h *Handler) PatchRequestStatus(c *gin.Context) {
	var req updateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	request, err := h.relief.UpdateRequestStatus(c.Request.Context(), mw.UID(c), c.Param("request_id"), req.Status, req.Notes)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, request)
}
