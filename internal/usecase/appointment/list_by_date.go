package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/receptionist-api/internal/domain/appointment"
	"github.com/BruksfildServices01/receptionist-api/internal/dto"
	"github.com/BruksfildServices01/receptionist-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	businessID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	start, end := timezone.DayBounds(date, biz.Timezone)

	appointments, err := uc.repo.ListForPeriod(
		ctx,
		businessID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			Reference:       ap.Reference,
			ScheduledAt:     ap.ScheduledAt,
			DurationMinutes: ap.DurationMinutes,
			Status:          ap.Status,
			ServiceType:     ap.ServiceType,
			ContactName:     ap.Contact.DisplayName(),
			ContactPhone:    ap.Contact.PhoneNumber,
		})
	}

	return out, nil
}
