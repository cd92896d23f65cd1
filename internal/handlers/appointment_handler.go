package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/receptionist-api/internal/domain/appointment"
	"github.com/BruksfildServices01/receptionist-api/internal/dto"
	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/middleware"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
	ucAppointment "github.com/BruksfildServices01/receptionist-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	confirmUC    *ucAppointment.ConfirmAppointment
	completeUC   *ucAppointment.CompleteAppointment
	cancelUC     *ucAppointment.CancelAppointment
	listByDateUC *ucAppointment.ListAppointmentsByDate
	listMonthUC  *ucAppointment.ListAppointmentsByMonth
	overviewUC   *ucAppointment.GetDayOverview
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listMonthUC *ucAppointment.ListAppointmentsByMonth,
	overviewUC *ucAppointment.GetDayOverview,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		confirmUC:    confirmUC,
		completeUC:   completeUC,
		cancelUC:     cancelUC,
		listByDateUC: listByDateUC,
		listMonthUC:  listMonthUC,
		overviewUC:   overviewUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	ContactEmail string `json:"contact_email"`

	ServiceType     string `json:"service_type"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"` // HH:mm
	DurationMinutes *int   `json:"duration_minutes"`
	Notes           string `json:"notes"`

	AcknowledgeConflicts bool `json:"acknowledge_conflicts"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time"`                    // HH:mm; vazio preserva o horário

	AcknowledgeConflicts bool `json:"acknowledge_conflicts"`
}

// ======================================================
// HELPERS
// ======================================================

// conflictDialog monta o payload do diálogo de bloqueio,
// ordenado por horário crescente
func conflictDialog(conflicts []models.Appointment) []dto.ConflictDTO {
	out := make([]dto.ConflictDTO, 0, len(conflicts))
	for _, ap := range conflicts {
		start, end := domain.Window(&ap)
		out = append(out, dto.ConflictDTO{
			ID:          ap.ID,
			ScheduledAt: start,
			EndsAt:      end,
			ContactName: ap.Contact.DisplayName(),
			ServiceType: ap.ServiceType,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})

	return out
}

func mapSchedulingError(c *gin.Context, err error, conflicts []models.Appointment) {
	switch {
	case httperr.IsBusiness(err, "time_conflict") || httperr.IsExclusionConflict(err):
		c.JSON(http.StatusConflict, gin.H{
			"error_code": "time_conflict",
			"message":    "Conflito de horário.",
			"conflicts":  conflictDialog(conflicts),
		})

	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")

	case httperr.IsBusiness(err, "invalid_duration"):
		httperr.BadRequest(c, "invalid_duration", "Duração deve ser positiva (em minutos).")

	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário inválido.")

	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")

	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser movido.")

	default:
		httperr.Internal(c, "failed_to_save_appointment", "Erro ao salvar agendamento.")
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, conflicts, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			BusinessID:           businessID,
			ActorID:              &userID,
			ContactName:          req.ContactName,
			ContactPhone:         req.ContactPhone,
			ContactEmail:         req.ContactEmail,
			ServiceType:          req.ServiceType,
			Date:                 req.Date,
			Time:                 req.Time,
			DurationMinutes:      req.DurationMinutes,
			Notes:                req.Notes,
			AcknowledgeConflicts: req.AcknowledgeConflicts,
			EnforceMinAdvance:    true,
		},
	)

	if err != nil {
		mapSchedulingError(c, err, conflicts)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// RESCHEDULE (drag-and-drop do calendário)
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, conflicts, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		ucAppointment.RescheduleAppointmentInput{
			BusinessID:           businessID,
			AppointmentID:        uint(id),
			ActorID:              &userID,
			Date:                 req.Date,
			Time:                 req.Time,
			AcknowledgeConflicts: req.AcknowledgeConflicts,
		},
	)

	if err != nil {
		mapSchedulingError(c, err, conflicts)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(ctx *gin.Context, businessID uint, actorID *uint, id uint) (*models.Appointment, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := run(c, businessID, &userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, businessID uint, actorID *uint, id uint) (*models.Appointment, error) {
		return h.confirmUC.Execute(ctx.Request.Context(), businessID, actorID, id)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, businessID uint, actorID *uint, id uint) (*models.Appointment, error) {
		return h.completeUC.Execute(ctx.Request.Context(), businessID, actorID, id)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(ctx *gin.Context, businessID uint, actorID *uint, id uint) (*models.Appointment, error) {
		return h.cancelUC.Execute(ctx.Request.Context(), businessID, actorID, id)
	})
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), businessID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	appointments, err := h.listMonthUC.Execute(c.Request.Context(), businessID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// Overview do dia para previews (hover, célula compacta do mês)
func (h *AppointmentHandler) DayOverview(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	overview, err := h.overviewUC.Execute(c.Request.Context(), businessID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_build_overview", "Erro ao montar resumo do dia.")
		return
	}

	c.JSON(http.StatusOK, overview)
}
