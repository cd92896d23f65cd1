package calendar

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

// Dispatcher empurra a sincronização de agenda para fora do caminho do
// commit: fire-and-forget, falha vira log e nunca desfaz a escrita primária.
type Dispatcher struct {
	db     *gorm.DB
	client Client
	queue  chan uint
}

func NewDispatcher(db *gorm.DB, client Client) *Dispatcher {
	d := &Dispatcher{
		db:     db,
		client: client,
		queue:  make(chan uint, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for id := range d.queue {
		d.sync(id)
	}
}

func (d *Dispatcher) sync(appointmentID uint) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var ap models.Appointment
	if err := d.db.WithContext(ctx).
		Preload("Contact").
		First(&ap, appointmentID).Error; err != nil {
		log.Println("calendar sync: appointment not found:", err)
		return
	}

	result, err := d.client.SyncAppointment(ctx, &ap)
	if err != nil {
		log.Println("calendar sync failed:", err)
		return
	}

	if result.Skipped || !result.Success {
		return
	}

	// Guarda o vínculo com o evento externo; erro aqui também é só log
	err = d.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"calendar_event_id":   result.EventID,
			"calendar_event_link": result.EventLink,
		}).Error
	if err != nil {
		log.Println("calendar sync: failed to store event link:", err)
	}
}

// Enqueue nunca bloqueia o fluxo de commit
func (d *Dispatcher) Enqueue(appointmentID uint) {
	if d == nil {
		return
	}

	select {
	case d.queue <- appointmentID:
		// enviado
	default:
		log.Println("calendar sync queue full, dropping appointment", appointmentID)
	}
}
