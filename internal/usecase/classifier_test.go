// internal/usecase/classifier_test.go
package usecase

import (
	"testing"

	"trackdesk-service/internal/domain/entity"
)

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name    string
		service string
		message string
		want    string
	}{
		{"fleet management is always high", entity.ServiceFleetManagement, "", entity.PriorityHigh},
		{"fleet management ignores message", entity.ServiceFleetManagement, "no rush at all", entity.PriorityHigh},
		{"urgent keyword", entity.ServiceCarTracking, "this is urgent please", entity.PriorityHigh},
		{"asap keyword", entity.ServiceBikeTracking, "call me ASAP", entity.PriorityHigh},
		{"keyword match is case insensitive", entity.ServiceCarTracking, "URGENT!!!", entity.PriorityHigh},
		{"keyword inside a word still matches", entity.ServiceCarTracking, "asapish timing works", entity.PriorityHigh},
		{"plain message", entity.ServiceCarTracking, "interested in a tracker", entity.PriorityMedium},
		{"empty message", entity.ServiceBikeTracking, "", entity.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPriority(tt.service, tt.message)
			if got != tt.want {
				t.Errorf("ClassifyPriority(%q, %q) = %q, want %q", tt.service, tt.message, got, tt.want)
			}
		})
	}
}

func TestEstimatedCallTime(t *testing.T) {
	tests := []struct {
		priority string
		want     string
	}{
		{entity.PriorityHigh, "Within 2 hours"},
		{entity.PriorityMedium, "Within 24 hours"},
		{entity.PriorityLow, "Within 48 hours"},
		{"unknown", "Within 24 hours"},
		{"", "Within 24 hours"},
	}

	for _, tt := range tests {
		if got := EstimatedCallTime(tt.priority); got != tt.want {
			t.Errorf("EstimatedCallTime(%q) = %q, want %q", tt.priority, got, tt.want)
		}
	}
}
