package dto

import "time"

// ConflictDTO é o item do diálogo de conflito: horário, nome do contato
// (com fallback para telefone) e tipo de serviço, ordenados por horário.
type ConflictDTO struct {
	ID          uint      `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	EndsAt      time.Time `json:"ends_at"`
	ContactName string    `json:"contact_name"`
	ServiceType string    `json:"service_type"`
}
