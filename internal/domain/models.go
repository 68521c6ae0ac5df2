package domain

import (
	"time"

	"github.com/google/uuid"
)

// GeoPoint is an optional geolocation attached to a farm profile.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FarmerDetails holds the farmer-specific profile fields.
type FarmerDetails struct {
	Crops     []string `json:"crops"`
	SurfaceHa float64  `json:"surface_ha"`
}

// TechnicianDetails holds the technician-specific profile fields.
type TechnicianDetails struct {
	Specialties []string `json:"specialties"`
	Region      string   `json:"region"`
}

// SupplierDetails holds the supplier-specific profile fields.
type SupplierDetails struct {
	Company    string   `json:"company"`
	Categories []string `json:"categories"`
}

// FarmProfile is the singleton local profile. Exactly one of the role
// detail variants is set, matching Role.
type FarmProfile struct {
	Name       string             `json:"name"`
	Role       Role               `json:"role"`
	Language   string             `json:"language"`
	Location   *GeoPoint          `json:"location,omitempty"`
	Farmer     *FarmerDetails     `json:"farmer,omitempty"`
	Technician *TechnicianDetails `json:"technician,omitempty"`
	Supplier   *SupplierDetails   `json:"supplier,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// Validate checks that the role is known and that exactly the matching
// detail variant is populated.
func (p *FarmProfile) Validate() error {
	if !p.Role.Valid() {
		return ErrInvalidRole
	}
	switch p.Role {
	case RoleFarmer:
		if p.Farmer == nil || p.Technician != nil || p.Supplier != nil {
			return ErrInvalidProfile
		}
	case RoleTechnician:
		if p.Technician == nil || p.Farmer != nil || p.Supplier != nil {
			return ErrInvalidProfile
		}
	case RoleSupplier:
		if p.Supplier == nil || p.Farmer != nil || p.Technician != nil {
			return ErrInvalidProfile
		}
	}
	return nil
}

// LineItem is a single extracted line of a sale or invoice document.
type LineItem struct {
	Name     string   `json:"name"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Price    *float64 `json:"price,omitempty"`
	Total    float64  `json:"total"`
}

// RecordData is the structured payload extracted from one document.
// Currency and Vendor are populated for sale records only.
type RecordData struct {
	Date     string     `json:"date"`
	Items    []LineItem `json:"items"`
	Total    float64    `json:"total"`
	Currency string     `json:"currency,omitempty"`
	Vendor   string     `json:"vendor,omitempty"`
}

// Record is a durable sale or invoice entry in the profile's record
// collection. Its line-item list is never empty.
type Record struct {
	ID        uuid.UUID  `json:"id"`
	Kind      RecordKind `json:"kind"`
	Data      RecordData `json:"data"`
	CreatedAt time.Time  `json:"created_at"`
}

// DraftRecord is an editable, session-scoped extraction result awaiting
// user confirmation. Preview carries the originating document's data URI
// for side-by-side review.
type DraftRecord struct {
	ID       uuid.UUID  `json:"id"`
	Kind     RecordKind `json:"kind"`
	Data     RecordData `json:"data"`
	Preview  string     `json:"preview"`
	FileName string     `json:"file_name"`
}
