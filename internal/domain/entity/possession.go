package entity

import (
	"time"

	"github.com/google/uuid"
)

// Closed category set shared with the mobile app's item form.
const (
	CategoryElectronics = "Electronics"
	CategoryAppliances  = "Appliances"
	CategoryVehicles    = "Vehicles"
	CategoryFurniture   = "Furniture"
	CategoryToys        = "Toys"
	CategoryFood        = "Food & Beverage"
	CategoryMedical     = "Medical Devices"
	CategoryClothing    = "Clothing & Accessories"
	CategoryTools       = "Tools & Equipment"
	CategoryOther       = "Other"
)

// Possession is a user-registered owned item, consumed read-only from the
// registry. The pipeline never writes possessions.
type Possession struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	Name         string     `json:"name"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Category     string     `json:"category"`
	PurchaseDate *time.Time `json:"purchase_date"`
}

// ExpiringWarranty pairs a possession with its warranty end date, as returned
// by the registry for the expiry-reminder job.
type ExpiringWarranty struct {
	Possession Possession `json:"possession"`
	EndDate    time.Time  `json:"end_date"`
}
