package models

import "time"

// Contato identificado pelo telefone, sem login, vinculado à empresa
type Contact struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	BusinessID uint `gorm:"index:idx_contact_phone,unique" json:"business_id"`

	Name        string `gorm:"size:100" json:"name"`
	PhoneNumber string `gorm:"size:20;not null;index:idx_contact_phone,unique" json:"phone_number"`
	Email       string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName cai para o telefone quando o contato não tem nome
func (c *Contact) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.Name != "" {
		return c.Name
	}
	return c.PhoneNumber
}
