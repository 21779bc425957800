package model

import "time"

// Relief request lifecycle statuses.
const (
	RequestPending    = "pending"
	RequestInProgress = "in_progress"
	RequestCompleted  = "completed"
	RequestCancelled  = "cancelled"
)

// Line item priorities.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityNormal = "normal"
	PriorityLow    = "low"
)

// ReliefCategories maps each supply category to its subcategories.
var ReliefCategories = map[string][]string{
	"식량":      {"즉석식품", "통조림", "생수", "우유", "빵", "과자", "라면", "쌀", "기타 식품"},
	"생활용품":    {"위생용품", "세면용품", "화장지", "수건", "담요", "베개", "생리용품", "기타 생활용품"},
	"의약품":     {"해열제", "감기약", "소화제", "진통제", "연고", "반창고", "소독약", "기타 의약품"},
	"의류":      {"상의", "하의", "속옷", "양말", "신발", "외투", "잠옷", "기타 의류"},
	"유아·아동용품": {"기저귀", "분유", "이유식", "젖병", "유아용품", "아동의류", "장난감", "기타 유아용품"},
	"기타":      {"기타"},
}

// ReliefItem is a single line item of a relief request. Position preserves
// the order items were submitted in; the first item doubles as the request's
// representative item for single-row display.
type ReliefItem struct {
	ID          int64     `gorm:"autoIncrement;primaryKey" json:"-"`
	RequestID   string    `gorm:"size:64;index;not null" json:"-"`
	Position    int       `gorm:"not null" json:"-"`
	Category    string    `gorm:"size:64;not null" json:"category"`
	Subcategory string    `gorm:"size:64;not null" json:"subcategory"`
	ItemName    string    `gorm:"size:256;not null" json:"item_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Unit        string    `gorm:"size:32;not null" json:"unit"`
	Priority    string    `gorm:"size:16;not null" json:"priority"`
	Notes       string    `gorm:"size:1024" json:"notes"`
	CreatedAt   time.Time `gorm:"not null" json:"-"`
}

// ReliefRequest is a shelter's declared need for supply items.
type ReliefRequest struct {
	ID          string    `gorm:"primaryKey;size:64" json:"request_id"`
	ShelterID   string    `gorm:"size:64;index;not null" json:"shelter_id"`
	RequesterID string    `gorm:"size:64;index" json:"requester_id"`
	Priority    string    `gorm:"size:16;not null" json:"priority"`
	Status      string    `gorm:"size:16;index;not null" json:"status"`
	TotalItems  int       `gorm:"not null" json:"total_items"`
	Notes       string    `gorm:"size:1024" json:"notes"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	Items []ReliefItem `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"relief_items"`
}

// RepresentativeItem returns the first line item, used where a multi-item
// request is displayed as a single row.
func (r *ReliefRequest) RepresentativeItem() *ReliefItem {
	if len(r.Items) == 0 {
		return nil
	}
	return &r.Items[0]
}
