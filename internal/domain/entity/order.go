// internal/domain/entity/order.go
package entity

import (
	"time"
)

// Package tiers sold on the pricing page
const (
	PackageBasic    = "basic"
	PackageStandard = "standard"
	PackagePremium  = "premium"
)

// Order statuses
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderCancelled = "cancelled"
)

// PackageDetails is the catalog snapshot embedded in an order at creation
// time, so later price changes never rewrite history.
type PackageDetails struct {
	Name     string   `bson:"name" json:"name"`
	Price    int      `bson:"price" json:"price"`
	Features []string `bson:"features" json:"features"`
}

type Order struct {
	ID              string         `bson:"_id,omitempty" json:"id"`
	PhoneNumber     string         `bson:"phoneNumber" json:"phoneNumber"`
	Message         string         `bson:"message" json:"message"`
	SelectedPackage string         `bson:"selectedPackage" json:"selectedPackage"`
	PackageDetails  PackageDetails `bson:"packageDetails" json:"packageDetails"`
	OrderDate       time.Time      `bson:"orderDate" json:"orderDate"`
	Status          string         `bson:"status" json:"status"`
	ContractNumber  string         `bson:"contractNumber" json:"contractNumber"`
}
