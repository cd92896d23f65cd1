package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/receptionist-api/internal/domain/appointment"
	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

// fakeRepo implementa domain.Repository em memória para os testes de use case.
// Transaction só repassa o próprio fake: o lock é responsabilidade do Postgres,
// aqui interessa o fluxo validar-dentro-da-transação.
type fakeRepo struct {
	business    *models.Business
	contact     *models.Contact
	appointment *models.Appointment
	day         []models.Appointment

	created *models.Appointment
	updated *models.Appointment

	txCalls int
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetBusinessByID(_ context.Context, id uint) (*models.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, httperr.ErrBusiness("business_not_found")
	}
	return f.business, nil
}

func (f *fakeRepo) GetOrCreateContact(_ context.Context, businessID uint, name, phone, email string) (*models.Contact, error) {
	if f.contact != nil {
		return f.contact, nil
	}
	f.contact = &models.Contact{
		ID:          99,
		BusinessID:  businessID,
		Name:        name,
		PhoneNumber: phone,
		Email:       email,
	}
	return f.contact, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = 1000
	f.created = ap
	return nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updated = ap
	return nil
}

func (f *fakeRepo) GetAppointmentForBusiness(_ context.Context, appointmentID, businessID uint) (*models.Appointment, error) {
	if f.appointment == nil || f.appointment.ID != appointmentID || f.appointment.BusinessID != businessID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return f.appointment, nil
}

func (f *fakeRepo) ListDayLocked(_ context.Context, _ uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.day {
		if !ap.ScheduledAt.Before(dayStart) && ap.ScheduledAt.Before(dayEnd) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListForPeriod(_ context.Context, _ uint, start, end time.Time) ([]models.Appointment, error) {
	return f.ListDayLocked(context.Background(), 0, start, end)
}

func (f *fakeRepo) Transaction(_ context.Context, fn func(tx domain.Repository) error) error {
	f.txCalls++
	return fn(f)
}

func testBusiness() *models.Business {
	return &models.Business{
		ID:                1,
		Name:              "Riverside Dental",
		Slug:              "riverside-dental",
		PhoneNumber:       "+15550001111",
		Timezone:          "UTC",
		MinAdvanceMinutes: 60,
	}
}

func minutesPtr(n int) *int {
	return &n
}
