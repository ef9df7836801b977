// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecallSource identifies the government feed a recall was ingested from.
type RecallSource string

const (
	SourceCPSC  RecallSource = "CPSC"  // Consumer Product Safety Commission
	SourceFDA   RecallSource = "FDA"   // Food and Drug Administration
	SourceUSDA  RecallSource = "USDA"  // USDA Food Safety and Inspection Service
	SourceNHTSA RecallSource = "NHTSA" // National Highway Traffic Safety Administration
)

// AffectedProduct is one normalized product descriptor extracted from a
// recall's raw payload. Any field may be empty when the source omits it.
type AffectedProduct struct {
	Brand    string `json:"brand"`
	Name     string `json:"name"`
	Model    string `json:"model"`
	UPC      string `json:"upc"`
	Category string `json:"category"`
}

// Recall represents one normalized advisory from one government source.
// (Source, ExternalID) is the stable identity across re-fetches; all other
// non-key fields are overwritten on re-ingestion.
type Recall struct {
	ID               uuid.UUID         `json:"id"`
	Source           RecallSource      `json:"source"`
	ExternalID       string            `json:"external_id"`
	Title            string            `json:"title"`
	Description      *string           `json:"description"`
	Hazard           *string           `json:"hazard"`
	Remedy           *string           `json:"remedy"`
	AffectedProducts []AffectedProduct `json:"affected_products"`
	RecallDate       *time.Time        `json:"recall_date"`
	URL              *string           `json:"url"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
