package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	// -------- Contact --------
	GetOrCreateContact(
		ctx context.Context,
		businessID uint,
		name string,
		phone string,
		email string,
	) (*models.Contact, error)

	// -------- Appointment (create / update) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForBusiness(
		ctx context.Context,
		appointmentID uint,
		businessID uint,
	) (*models.Appointment, error)

	// -------- Conflict window --------
	// Lista os agendamentos do dia com lock de linha (FOR UPDATE) quando
	// chamada dentro de Transaction — snapshot vivo para o detector.
	ListDayLocked(
		ctx context.Context,
		businessID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Listing --------
	ListForPeriod(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Transaction --------
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
