package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Status values for installation requests. No transition graph is enforced:
// admins may set any listed value at any time.
var InstallationStatuses = []string{"pending", "contacted", "scheduled", "completed", "cancelled"}

// Status values for quote requests.
var QuoteStatuses = []string{"pending", "contacted", "quoted", "completed", "cancelled"}

// InstallationRequest is a public lead-capture form for on-site camera installs.
type InstallationRequest struct {
	ID        gocql.UUID `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email,omitempty"`
	Pincode   string     `json:"pincode"`
	Cameras   int        `json:"cameras,omitempty"`
	Message   string     `json:"message,omitempty"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// QuoteRequest is a public lead-capture form for system quotations.
type QuoteRequest struct {
	ID           gocql.UUID `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	City         string     `json:"city"`
	PropertyType string     `json:"propertyType"`
	NumCameras   string     `json:"numCameras"`
	Requirements string     `json:"requirements,omitempty"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

var PropertyTypes = []string{"home", "office", "retail", "warehouse", "factory", "school", "other"}

func ValidStatus(allowed []string, s string) bool {
	for _, v := range allowed {
		if v == s {
			return true
		}
	}
	return false
}
