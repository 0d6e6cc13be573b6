// internal/domain/entity/contact.go
package entity

import (
	"time"
)

// Contact is a plain inquiry from the public contact form. It has no
// lifecycle beyond creation and deletion.
type Contact struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	FullName     string    `bson:"fullName" json:"fullName"`
	PhoneNumber  string    `bson:"phoneNumber" json:"phoneNumber"`
	SelectedPlan string    `bson:"selectedPlan" json:"selectedPlan"`
	Message      string    `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
