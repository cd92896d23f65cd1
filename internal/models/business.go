package models

import "time"

type Business struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	// Número provisionado da recepcionista (E.164)
	PhoneNumber string `gorm:"size:20;uniqueIndex" json:"phone_number"`

	Timezone          string `gorm:"size:50" json:"timezone"`
	Address           string `gorm:"size:255" json:"address"`
	LogoURL           string `gorm:"size:255" json:"logo_url"`
	MinAdvanceMinutes int    `gorm:"default:60" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
