// internal/usecase/classifier.go
package usecase

import (
	"strings"

	"trackdesk-service/internal/domain/entity"
)

// ClassifyPriority derives the priority tier for a new callback request.
// Rules are evaluated in order, first match wins. "low" is never produced
// here; it can only be set by an admin update.
func ClassifyPriority(service, message string) string {
	if service == entity.ServiceFleetManagement {
		return entity.PriorityHigh
	}
	if message != "" {
		lowered := strings.ToLower(message)
		if strings.Contains(lowered, "urgent") || strings.Contains(lowered, "asap") {
			return entity.PriorityHigh
		}
	}
	return entity.PriorityMedium
}

// EstimatedCallTime maps a priority tier to the human-readable response
// estimate shown to the customer.
func EstimatedCallTime(priority string) string {
	switch priority {
	case entity.PriorityHigh:
		return "Within 2 hours"
	case entity.PriorityMedium:
		return "Within 24 hours"
	case entity.PriorityLow:
		return "Within 48 hours"
	default:
		return "Within 24 hours"
	}
}
