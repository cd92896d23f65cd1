package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

// ===============================
// Day Grouping (preview surfaces)
// ===============================

type DaySlot struct {
	ID              uint      `json:"id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	ContactName     string    `json:"contact_name"`
	ServiceType     string    `json:"service_type"`
}

type DayOverview struct {
	Date  string    `json:"date"`
	Count int       `json:"count"`
	Slots []DaySlot `json:"slots"`
}

// GroupForDay filtra cancelados e ordena por horário (ordenação estável:
// empates mantêm a ordem de entrada). Não muta a lista recebida.
func GroupForDay(day time.Time, aps []models.Appointment) DayOverview {
	slots := make([]DaySlot, 0, len(aps))

	for _, ap := range aps {
		if ap.Status == string(StatusCancelled) {
			continue
		}

		start, end := Window(&ap)
		slots = append(slots, DaySlot{
			ID:              ap.ID,
			ScheduledAt:     start,
			DurationMinutes: int(end.Sub(start) / time.Minute),
			Status:          ap.Status,
			ContactName:     ap.Contact.DisplayName(),
			ServiceType:     ap.ServiceType,
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].ScheduledAt.Before(slots[j].ScheduledAt)
	})

	return DayOverview{
		Date:  day.Format("2006-01-02"),
		Count: len(slots),
		Slots: slots,
	}
}
