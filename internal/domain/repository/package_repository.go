// internal/domain/repository/package_repository.go
package repository

import (
	"context"

	"trackdesk-service/internal/domain/entity"
)

// PackageRepository resolves package tiers against the pricing catalog.
type PackageRepository interface {
	GetByTier(ctx context.Context, tier string) (*entity.PackageDetails, error)
}
