package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

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

type CreateAppointmentInput struct {
	BusinessID uint

	// nil quando o agendamento veio da recepcionista (tool call)
	ActorID *uint

	ContactName  string
	ContactPhone string
	ContactEmail string

	ServiceType     string
	Date            string // YYYY-MM-DD
	Time            string // HH:mm
	DurationMinutes *int
	Notes           string

	// "proceed anyway" explícito do diálogo de conflito
	AcknowledgeConflicts bool

	// Antecedência mínima vale para o console; a recepcionista agenda livre
	EnforceMinAdvance bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	sync  *calendar.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	sync *calendar.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		sync:  sync,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida e cria o agendamento. Quando a janela conflita e não houve
// acknowledgement, devolve os conflitos (ordenados por horário) junto com o
// erro de negócio — é o payload do diálogo de bloqueio.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, []models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Empresa
	// --------------------------------------------------
	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone da empresa
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(biz.Timezone),
	)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 3️⃣ Duração (contrato: positiva quando informada)
	// --------------------------------------------------
	durationMinutes := domain.DefaultDurationMinutes
	if in.DurationMinutes != nil {
		if *in.DurationMinutes <= 0 {
			return nil, nil, httperr.ErrBusiness("invalid_duration")
		}
		durationMinutes = *in.DurationMinutes
	}

	// --------------------------------------------------
	// 4️⃣ Antecedência mínima
	// --------------------------------------------------
	if in.EnforceMinAdvance {
		minAdvance := biz.MinAdvanceMinutes
		if minAdvance < 0 {
			minAdvance = 0
		}

		now := timezone.NowIn(biz.Timezone)
		if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, nil, httperr.ErrBusiness("too_soon")
		}
	}

	// --------------------------------------------------
	// 5️⃣ Contato (get or create por telefone)
	// --------------------------------------------------
	contact, err := uc.repo.GetOrCreateContact(
		ctx,
		in.BusinessID,
		in.ContactName,
		in.ContactPhone,
		in.ContactEmail,
	)
	if err != nil {
		return nil, nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Conflito contra o snapshot vivo do dia (com lock)
	// --------------------------------------------------
	var created *models.Appointment
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
		}, existing)

		if len(conflicts) > 0 && !in.AcknowledgeConflicts {
			return httperr.ErrBusiness("time_conflict")
		}

		ap := &models.Appointment{
			Reference:       uuid.NewString(),
			BusinessID:      in.BusinessID,
			ContactID:       contact.ID,
			ScheduledAt:     start,
			DurationMinutes: in.DurationMinutes,
			Status:          string(domain.InitialStatus()),
			ServiceType:     in.ServiceType,
			Notes:           in.Notes,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		ap.Contact = *contact
		created = ap
		return nil
	})

	if err != nil {
		return nil, conflicts, err
	}

	// --------------------------------------------------
	// 7️⃣ Efeitos best-effort (nunca desfazem o commit)
	// --------------------------------------------------
	uc.sync.Enqueue(created.ID)

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		UserID:     in.ActorID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &created.ID,
	})

	return created, conflicts, nil
}
