package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/receptionist-api/internal/domain/appointment"
	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

func TestCreateAppointment_Success(t *testing.T) {
	repo := &fakeRepo{business: testBusiness()}
	uc := NewCreateAppointment(repo, nil, nil)

	ap, conflicts, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:   1,
		ContactName:  "Maria Souza",
		ContactPhone: "+15550002222",
		ServiceType:  "cleaning",
		Date:         "2099-03-10",
		Time:         "14:00",
	})

	require.NoError(t, err)
	assert.Empty(t, conflicts)
	require.NotNil(t, ap)

	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Nil(t, ap.DurationMinutes)
	assert.Equal(t, repo.contact.ID, ap.ContactID)

	want := time.Date(2099, 3, 10, 14, 0, 0, 0, time.UTC)
	assert.True(t, ap.ScheduledAt.Equal(want))
	assert.Equal(t, 1, repo.txCalls)
}

func TestCreateAppointment_ConflictBlocks(t *testing.T) {
	repo := &fakeRepo{
		business: testBusiness(),
		day: []models.Appointment{
			{ID: 5, ScheduledAt: time.Date(2099, 3, 10, 14, 0, 0, 0, time.UTC), DurationMinutes: minutesPtr(60), Status: "confirmed"},
		},
	}
	uc := NewCreateAppointment(repo, nil, nil)

	ap, conflicts, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:   1,
		ContactPhone: "+15550002222",
		Date:         "2099-03-10",
		Time:         "14:30",
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.Nil(t, ap)
	require.Len(t, conflicts, 1)
	assert.Equal(t, uint(5), conflicts[0].ID)
	assert.Nil(t, repo.created, "nothing may be written when blocked")
}

func TestCreateAppointment_AcknowledgedConflictProceeds(t *testing.T) {
	repo := &fakeRepo{
		business: testBusiness(),
		day: []models.Appointment{
			{ID: 5, ScheduledAt: time.Date(2099, 3, 10, 14, 0, 0, 0, time.UTC), DurationMinutes: minutesPtr(60), Status: "confirmed"},
		},
	}
	uc := NewCreateAppointment(repo, nil, nil)

	ap, conflicts, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:           1,
		ContactPhone:         "+15550002222",
		Date:                 "2099-03-10",
		Time:                 "14:30",
		AcknowledgeConflicts: true,
	})

	require.NoError(t, err)
	require.NotNil(t, ap)
	assert.Len(t, conflicts, 1)
	assert.NotNil(t, repo.created)
}

func TestCreateAppointment_TouchingWindowsDoNotConflict(t *testing.T) {
	repo := &fakeRepo{
		business: testBusiness(),
		day: []models.Appointment{
			{ID: 5, ScheduledAt: time.Date(2099, 3, 10, 14, 0, 0, 0, time.UTC), DurationMinutes: minutesPtr(60), Status: "confirmed"},
		},
	}
	uc := NewCreateAppointment(repo, nil, nil)

	_, conflicts, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:   1,
		ContactPhone: "+15550002222",
		Date:         "2099-03-10",
		Time:         "15:00",
	})

	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCreateAppointment_InvalidInput(t *testing.T) {
	repo := &fakeRepo{business: testBusiness()}
	uc := NewCreateAppointment(repo, nil, nil)

	_, _, err := uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:   1,
		ContactPhone: "+15550002222",
		Date:         "10/03/2099",
		Time:         "14:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, _, err = uc.Execute(context.Background(), CreateAppointmentInput{
		BusinessID:      1,
		ContactPhone:    "+15550002222",
		Date:            "2099-03-10",
		Time:            "14:00",
		DurationMinutes: minutesPtr(0),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_duration"))
}

func TestCreateAppointment_MinAdvance(t *testing.T) {
	repo := &fakeRepo{business: testBusiness()}
	uc := NewCreateAppointment(repo, nil, nil)

	past := CreateAppointmentInput{
		BusinessID:        1,
		ContactPhone:      "+15550002222",
		Date:              "2020-01-01",
		Time:              "09:00",
		EnforceMinAdvance: true,
	}

	_, _, err := uc.Execute(context.Background(), past)
	assert.True(t, httperr.IsBusiness(err, "too_soon"))

	// a recepcionista agenda sem antecedência mínima
	past.EnforceMinAdvance = false
	_, _, err = uc.Execute(context.Background(), past)
	require.NoError(t, err)
}
