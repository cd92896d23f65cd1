package models

import "time"

type Appointment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	BusinessID uint     `json:"business_id"`
	Business   Business `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"business"`

	ContactID uint    `json:"contact_id"`
	Contact   Contact `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"contact"`

	ScheduledAt time.Time `gorm:"index" json:"scheduled_at"`

	// Nulo = duração padrão assumida pelo detector de conflitos
	DurationMinutes *int `json:"duration_minutes"`

	Status      string `gorm:"size:20;default:'pending'" json:"status"`
	ServiceType string `gorm:"size:100" json:"service_type"`
	Notes       string `gorm:"size:255" json:"notes"`

	CalendarEventID   string `gorm:"size:100" json:"calendar_event_id"`
	CalendarEventLink string `gorm:"size:255" json:"calendar_event_link"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
