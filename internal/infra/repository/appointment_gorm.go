package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/receptionist-api/internal/domain/appointment"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).First(&biz, id).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

// --------------------------------------------------
// Contact
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateContact(
	ctx context.Context,
	businessID uint,
	name string,
	phone string,
	email string,
) (*models.Contact, error) {

	var contact models.Contact
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND phone_number = ?", businessID, phone).
		First(&contact).Error

	if err == nil {
		// Preenche o nome quando o contato chegou só com telefone
		if contact.Name == "" && name != "" {
			contact.Name = name
			r.db.WithContext(ctx).Save(&contact)
		}
		return &contact, nil
	}

	contact = models.Contact{
		BusinessID:  businessID,
		Name:        name,
		PhoneNumber: phone,
		Email:       email,
	}

	if err := r.db.WithContext(ctx).Create(&contact).Error; err != nil {
		return nil, err
	}

	return &contact, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) GetAppointmentForBusiness(
	ctx context.Context,
	appointmentID uint,
	businessID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Contact").
		Where("id = ? AND business_id = ?", appointmentID, businessID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Conflict window
// --------------------------------------------------

// ListDayLocked busca o snapshot vivo do dia para o detector de conflitos.
// Dentro de Transaction as linhas saem com FOR UPDATE: dois reagendamentos
// concorrentes na mesma janela serializam no banco.
func (r *AppointmentGormRepository) ListDayLocked(
	ctx context.Context,
	businessID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"business_id = ? AND status <> 'cancelled' AND scheduled_at >= ? AND scheduled_at < ?",
			businessID, dayStart, dayEnd,
		).
		Order("scheduled_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	// Contatos carregados fora do lock (só para exibição dos conflitos)
	ids := make([]uint, 0, len(aps))
	for _, ap := range aps {
		if ap.ContactID != 0 {
			ids = append(ids, ap.ContactID)
		}
	}
	if len(ids) > 0 {
		var contacts []models.Contact
		if err := r.db.WithContext(ctx).Find(&contacts, ids).Error; err == nil {
			byID := make(map[uint]models.Contact, len(contacts))
			for _, ct := range contacts {
				byID[ct.ID] = ct
			}
			for i := range aps {
				aps[i].Contact = byID[aps[i].ContactID]
			}
		}
	}

	return aps, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Contact").
		Where(
			"business_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
			businessID,
			start,
			end,
		).
		Order("scheduled_at ASC").
		Find(&aps).Error

	if err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
