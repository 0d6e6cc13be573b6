// internal/domain/entity/callback_request.go
package entity

import (
	"time"
)

// Service types offered on the public site
const (
	ServiceCarTracking     = "Car Tracking"
	ServiceBikeTracking    = "Bike Tracking"
	ServiceFleetManagement = "Fleet Management"
)

// Callback request lifecycle statuses
const (
	StatusPending   = "pending"
	StatusCalled    = "called"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Priority tiers
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// PriorityRank maps a priority tier to its sort ordinal (high > medium > low).
// The rank is persisted next to the string value so list queries can sort on a
// numeric field instead of relying on lexicographic order.
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type CallbackRequest struct {
	ID                string     `bson:"_id,omitempty" json:"id"`
	Name              string     `bson:"name" json:"name"`
	PhoneNumber       string     `bson:"phoneNumber" json:"phoneNumber"`
	SelectedService   string     `bson:"selectedService" json:"selectedService"`
	Message           string     `bson:"message,omitempty" json:"message,omitempty"`
	Status            string     `bson:"status" json:"status"`
	Priority          string     `bson:"priority" json:"priority"`
	PriorityRank      int        `bson:"priorityRank" json:"-"`
	PreferredCallTime string     `bson:"preferredCallTime,omitempty" json:"preferredCallTime,omitempty"`
	CallAttempts      int        `bson:"callAttempts" json:"callAttempts"`
	LastCallAttempt   *time.Time `bson:"lastCallAttempt,omitempty" json:"lastCallAttempt,omitempty"`
	AssignedTo        string     `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Notes             string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// CallbackUpdate carries the admin-updatable fields. Nil pointers mean the
// field is untouched; anything outside this set never reaches the repository.
type CallbackUpdate struct {
	Status            *string
	Priority          *string
	AssignedTo        *string
	Notes             *string
	PreferredCallTime *string
}

// IsEmpty reports whether the patch would change nothing.
func (u CallbackUpdate) IsEmpty() bool {
	return u.Status == nil && u.Priority == nil && u.AssignedTo == nil &&
		u.Notes == nil && u.PreferredCallTime == nil
}

// CallbackFilter holds the optional list criteria. Zero values are not applied.
type CallbackFilter struct {
	Status     string
	Priority   string
	Service    string
	AssignedTo string
	FromDate   *time.Time
	ToDate     *time.Time
}

// Pagination describes one page of a filtered result set.
type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalRequests int64 `json:"totalRequests"`
	HasNext       bool  `json:"hasNext"`
	HasPrev       bool  `json:"hasPrev"`
}

// CallbackStats is the dashboard breakdown. Categories with no matches are
// absent from the maps rather than reported as zero.
type CallbackStats struct {
	Today      map[string]int64 `json:"today"`
	ThisWeek   map[string]int64 `json:"thisWeek"`
	ThisMonth  map[string]int64 `json:"thisMonth"`
	ByService  map[string]int64 `json:"byService"`
	ByPriority map[string]int64 `json:"byPriority"`
}
