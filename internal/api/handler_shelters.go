package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relief-coordination-backend/internal/mw"
	"relief-coordination-backend/internal/relief"
)

type createShelterRequest struct {
	ShelterName         string   `json:"shelter_name" binding:"required"`
	Location            string   `json:"location" binding:"required"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	DisasterType        string   `json:"disaster_type" binding:"required"`
	Capacity            int      `json:"capacity" binding:"required"`
	CurrentOccupancy    *int     `json:"current_occupancy" binding:"required"`
	HasDisabledFacility bool     `json:"has_disabled_facility"`
	HasPetZone          bool     `json:"has_pet_zone"`
	Status              string   `json:"status" binding:"required"`
	ContactPerson       string   `json:"contact_person" binding:"required"`
	ContactPhone        string   `json:"contact_phone" binding:"required"`
}

// PostShelter handles POST /api/shelters.
func (h *Handler) PostShelter(c *gin.Context) {
	var req createShelterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	shelter, err := h.relief.CreateShelter(c.Request.Context(), relief.ShelterInput{
		Name:                req.ShelterName,
		Location:            req.Location,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		DisasterType:        req.DisasterType,
		Capacity:            req.Capacity,
		CurrentOccupancy:    req.CurrentOccupancy,
		HasDisabledFacility: req.HasDisabledFacility,
		HasPetZone:          req.HasPetZone,
		Status:              req.Status,
		ContactPerson:       req.ContactPerson,
		ContactPhone:        req.ContactPhone,
		ManagerID:           mw.UID(c),
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, shelter)
}

// GetShelter handles GET /api/shelters/:shelter_id.
func (h *Handler) GetShelter(c *gin.Context) {
	shelter, err := h.relief.GetShelter(c.Request.Context(), c.Param("shelter_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, shelter)
}

// GetShelters handles GET /api/shelters with optional manager_id,
// disaster_type and operating filters.
func (h *Handler) GetShelters(c *gin.Context) {
	ctx := c.Request.Context()

	switch {
	case c.Query("manager_id") != "":
		shelters, err := h.relief.ListSheltersByManager(ctx, c.Query("manager_id"))
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, shelters)
	case c.Query("disaster_type") != "":
		shelters, err := h.relief.ListSheltersByDisasterType(ctx, c.Query("disaster_type"))
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, shelters)
	case c.Query("operating") == "true":
		shelters, err := h.relief.ListOperatingShelters(ctx)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, shelters)
	default:
		shelters, err := h.relief.ListAllShelters(ctx)
		if err != nil {
			respondErr(c, err)
			return
		}
		respond(c, http.StatusOK, shelters)
	}
}

type updateShelterRequest struct {
	ShelterName         *string  `json:"shelter_name"`
	Location            *string  `json:"location"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	DisasterType        *string  `json:"disaster_type"`
	Capacity            *int     `json:"capacity"`
	CurrentOccupancy    *int     `json:"current_occupancy"`
	HasDisabledFacility *bool    `json:"has_disabled_facility"`
	HasPetZone          *bool    `json:"has_pet_zone"`
	Status              *string  `json:"status"`
	ContactPerson       *string  `json:"contact_person"`
	ContactPhone        *string  `json:"contact_phone"`
}

// PatchShelter handles PATCH /api/shelters/:shelter_id.
func (h *Handler) PatchShelter(c *gin.Context) {
	var req updateShelterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c)
		return
	}

	shelter, err := h.relief.UpdateShelter(c.Request.Context(), mw.UID(c), c.Param("shelter_id"), relief.ShelterPatch{
		Name:                req.ShelterName,
		Location:            req.Location,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		DisasterType:        req.DisasterType,
		Capacity:            req.Capacity,
		CurrentOccupancy:    req.CurrentOccupancy,
		HasDisabledFacility: req.HasDisabledFacility,
		HasPetZone:          req.HasPetZone,
		Status:              req.Status,
		ContactPerson:       req.ContactPerson,
		ContactPhone:        req.ContactPhone,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, shelter)
}

// DeleteShelter handles DELETE /api/shelters/:shelter_id.
func (h *Handler) DeleteShelter(c *gin.Context) {
	if err := h.relief.DeleteShelter(c.Request.Context(), mw.UID(c), c.Param("shelter_id")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "대피소 정보가 삭제되었습니다."})
}
