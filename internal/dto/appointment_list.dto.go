package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	Reference       string    `json:"reference"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes *int      `json:"duration_minutes"`
	Status          string    `json:"status"`
	ServiceType     string    `json:"service_type"`
	ContactName     string    `json:"contact_name"`
	ContactPhone    string    `json:"contact_phone"`
}
