package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/receptionist-api/internal/audit"
	"github.com/BruksfildServices01/receptionist-api/internal/calendar"
	domain "github.com/BruksfildServices01/receptionist-api/internal/domain/appointment"
	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
	"github.com/BruksfildServices01/receptionist-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleAppointmentInput struct {
	BusinessID    uint
	AppointmentID uint
	ActorID       *uint

	Date string // YYYY-MM-DD (dia do drop target)
	Time string // HH:mm — vazio preserva o horário original do card

	AcknowledgeConflicts bool
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	sync  *calendar.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	sync *calendar.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		sync:  sync,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute move o agendamento para a nova janela. O detector roda de novo
// contra os dados vivos do dia-alvo, dentro da transação e com lock — o
// snapshot do cliente pode estar velho, o do banco não.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, []models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Empresa + agendamento
	// --------------------------------------------------
	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, nil, err
	}

	ap, err := uc.repo.GetAppointmentForBusiness(ctx, in.AppointmentID, in.BusinessID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Nova janela: dia do drop + hora nova ou original
	// --------------------------------------------------
	loc := timezone.Location(biz.Timezone)

	timeOfDay := in.Time
	if timeOfDay == "" {
		timeOfDay = ap.ScheduledAt.In(loc).Format("15:04")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+timeOfDay,
		loc,
	)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	durationMinutes := domain.DefaultDurationMinutes
	if ap.DurationMinutes != nil && *ap.DurationMinutes > 0 {
		durationMinutes = *ap.DurationMinutes
	}

	// --------------------------------------------------
	// 3️⃣ Revalidação contra o dia-alvo vivo (com lock)
	// --------------------------------------------------
	var conflicts []models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		dayStart, dayEnd := timezone.DayBounds(start, biz.Timezone)
		existing, err := tx.ListDayLocked(ctx, in.BusinessID, dayStart, dayEnd)
		if err != nil {
			return err
		}

		conflicts = domain.FindConflicts(domain.Candidate{
			Start:           start,
			DurationMinutes: durationMinutes,
			ExcludeID:       ap.ID,
		}, existing)

		if len(conflicts) > 0 && !in.AcknowledgeConflicts {
			return httperr.ErrBusiness("time_conflict")
		}

		ap.ScheduledAt = start
		return tx.UpdateAppointment(ctx, ap)
	})

	if err != nil {
		// Bloqueado ou falha de persistência: nada foi gravado
		return nil, conflicts, err
	}

	// --------------------------------------------------
	// 4️⃣ Efeitos best-effort
	// --------------------------------------------------
	uc.sync.Enqueue(ap.ID)

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     in.ActorID,
		Action:     "appointment_rescheduled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata: map[string]any{
			"scheduled_at": start,
			"acknowledged": in.AcknowledgeConflicts,
		},
	})

	return ap, conflicts, nil
}
