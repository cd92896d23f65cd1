package models

import "time"

// Configuração da recepcionista virtual, 1:1 com a empresa
type ReceptionistConfig struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"uniqueIndex" json:"business_id"`

	Enabled          bool   `gorm:"default:true" json:"enabled"`
	Greeting         string `gorm:"size:500" json:"greeting"`
	VoiceName        string `gorm:"size:50;default:'alice'" json:"voice_name"`
	ForwardingNumber string `gorm:"size:20" json:"forwarding_number"`
	NotifyEmail      string `gorm:"size:100" json:"notify_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
