package models

import "time"

const (
	CallStatusRinging    = "ringing"
	CallStatusInProgress = "in_progress"
	CallStatusCompleted  = "completed"
	CallStatusFailed     = "failed"
	CallStatusNoAnswer   = "no_answer"
	CallStatusBusy       = "busy"
)

type Call struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint    `json:"business_id"`
	ContactID  uint    `json:"contact_id"`
	Contact    Contact `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"contact"`

	// CallSid do provedor; uuid gerado quando ausente
	Sid string `gorm:"size:64;uniqueIndex" json:"sid"`

	FromNumber string `gorm:"size:20" json:"from_number"`
	ToNumber   string `gorm:"size:20" json:"to_number"`

	Status          string `gorm:"size:20;default:'ringing'" json:"status"`
	DurationSeconds int    `json:"duration_seconds"`
	RecordingURL    string `gorm:"size:255" json:"recording_url"`

	// Resumo gerado pela IA após o fim da ligação
	Summary string `gorm:"type:text" json:"summary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
