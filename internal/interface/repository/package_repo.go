// internal/interface/repository/package_repo.go
package repository

import (
	"context"
	"time"

	"trackdesk-service/internal/domain/entity"
	"trackdesk-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormPackageRepository implements the PackageRepository interface
type GormPackageRepository struct {
	db *gorm.DB
}

// Packages GORM model for database mapping
type Packages struct {
	ID        uint     `gorm:"primaryKey"`
	Tier      string   `gorm:"column:tier;unique"`
	Name      string   `gorm:"column:name"`
	Price     int      `gorm:"column:price"`
	Features  []string `gorm:"column:features;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Packages) TableName() string {
	return "m_packages"
}

// NewGormPackageRepository creates a new GORM package catalog repository and
// seeds the default catalog when the table is empty.
func NewGormPackageRepository(db *gorm.DB) (repository.PackageRepository, error) {
	if err := db.AutoMigrate(&Packages{}); err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&Packages{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		if err := db.Create(defaultCatalog()).Error; err != nil {
			return nil, err
		}
	}

	return &GormPackageRepository{db: db}, nil
}

// GetByTier finds a package by tier
func (r *GormPackageRepository) GetByTier(ctx context.Context, tier string) (*entity.PackageDetails, error) {
	var pkg Packages
	result := r.db.WithContext(ctx).Where("tier = ?", tier).First(&pkg)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, entity.ErrNotFound
		}
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return &entity.PackageDetails{
		Name:     pkg.Name,
		Price:    pkg.Price,
		Features: pkg.Features,
	}, nil
}

func defaultCatalog() []Packages {
	base := []string{
		"24/7 Control Room Monitoring",
		"Real-time tracking",
		"Geofencing Tracking",
		"Web Access Portal",
		"Mobile App (iOS/Android)",
		"Share Track Via Web & Mobile App",
		"Command Geo Fencing Call",
		"Customized Geo Fencing Call",
		"Battery Tempering Call",
		"Battery Voltage Alert via App",
	}
	standard := append(append([]string{}, base...),
		"SOS Class Distance Alerts via App",
		"Ignition ON/OFF Alerts via App",
	)
	premium := append(append([]string{}, standard...),
		"Multi-Layer Maps",
		"Periodic Maintenance",
		"Custom on Demand",
		"Assistance in Their Case",
	)

	return []Packages{
		{Tier: entity.PackageBasic, Name: "Basic", Price: 14000, Features: base},
		{Tier: entity.PackageStandard, Name: "Standard", Price: 21000, Features: standard},
		{Tier: entity.PackagePremium, Name: "Premium", Price: 28000, Features: premium},
	}
}
