package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile holds the issuer defaults of a domain. There is at most one per domain.
type Profile struct {
	Domain    string                      `gorm:"primaryKey" json:"domain"`
	Name      string                      `json:"name"`
	Location  datatypes.JSONSlice[string] `json:"location"`
	Email     string                      `json:"email"`
	Phone     string                      `json:"phone"`
	Logo      string                      `json:"logo"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}
