package model

import "time"

// Disaster types a shelter is designated for.
const (
	DisasterEarthquake = "지진"
	DisasterFire       = "화재"
	DisasterFlood      = "홍수"
	DisasterTyphoon    = "태풍"
	DisasterLandslide  = "산사태"
	DisasterOther      = "기타"
)

// Shelter operating statuses.
const (
	ShelterOperating = "운영중"
	ShelterFull      = "포화"
	ShelterClosed    = "폐쇄"
)

// DisasterTypes lists the recognized disaster type values.
var DisasterTypes = []string{
	DisasterEarthquake, DisasterFire, DisasterFlood,
	DisasterTyphoon, DisasterLandslide, DisasterOther,
}

// ShelterStatuses lists the recognized operating status values.
var ShelterStatuses = []string{ShelterOperating, ShelterFull, ShelterClosed}

// Shelter represents a physical disaster-relief site.
type Shelter struct {
	ID                  string    `gorm:"primaryKey;size:64" json:"shelter_id"`
	Name                string    `gorm:"size:256;not null" json:"shelter_name"`
	Location            string    `gorm:"size:512;not null" json:"location"`
	Latitude            *float64  `json:"latitude"`
	Longitude           *float64  `json:"longitude"`
	DisasterType        string    `gorm:"size:32;index;not null" json:"disaster_type"`
	Capacity            int       `gorm:"not null" json:"capacity"`
	CurrentOccupancy    int       `gorm:"not null" json:"current_occupancy"`
	OccupancyRate       int       `gorm:"not null" json:"occupancy_rate"` // Derived, never set directly.
	HasDisabledFacility bool      `gorm:"not null" json:"has_disabled_facility"`
	HasPetZone          bool      `gorm:"not null" json:"has_pet_zone"`
	Status              string    `gorm:"size:32;index;not null" json:"status"`
	ContactPerson       string    `gorm:"size:128;not null" json:"contact_person"`
	ContactPhone        string    `gorm:"size:32;not null" json:"contact_phone"`
	ManagerID           string    `gorm:"size:64;index" json:"manager_id"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}

// ComputeOccupancyRate derives occupancy as a percentage of capacity,
// rounded half away from zero.
func ComputeOccupancyRate(occupancy, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(float64(occupancy)/float64(capacity)*100 + 0.5)
}
