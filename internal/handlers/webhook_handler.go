package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/receptionist-api/internal/cache"
	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
	"github.com/BruksfildServices01/receptionist-api/internal/notify"
	"github.com/BruksfildServices01/receptionist-api/internal/twiml"
	ucAppointment "github.com/BruksfildServices01/receptionist-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// WebhookHandler atende os callbacks do provedor de telefonia e as
// tool calls da recepcionista. Nenhuma rota aqui exige JWT: a
// autenticidade vem do provedor, e o rate limit segura abuso.
type WebhookHandler struct {
	db       *gorm.DB
	cache    *cache.BusinessCache
	notifier notify.Sender
	createUC *ucAppointment.CreateAppointment
}

func NewWebhookHandler(
	db *gorm.DB,
	bizCache *cache.BusinessCache,
	notifier notify.Sender,
	createUC *ucAppointment.CreateAppointment,
) *WebhookHandler {
	return &WebhookHandler{
		db:       db,
		cache:    bizCache,
		notifier: notifier,
		createUC: createUC,
	}
}

// ======================================================
// LOOKUP (cache → banco)
// ======================================================

func (h *WebhookHandler) businessByNumber(ctx context.Context, number string) (*models.Business, error) {
	var biz models.Business

	if id, ok := h.cache.GetID(ctx, number); ok {
		if err := h.db.First(&biz, id).Error; err == nil {
			return &biz, nil
		}
		// entrada velha: empresa sumiu ou trocou de número
		h.cache.Invalidate(ctx, number)
	}

	if err := h.db.Where("phone_number = ?", number).First(&biz).Error; err != nil {
		return nil, err
	}

	h.cache.PutID(ctx, number, biz.ID)
	return &biz, nil
}

func respondTwiML(c *gin.Context, body []byte, err error) {
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml", body)
}

// ======================================================
// POST /webhooks/voice
// ======================================================

// Voice atende a chamada entrante: resolve a empresa pelo número discado,
// registra a ligação e devolve o TwiML de saudação/encaminhamento.
func (h *WebhookHandler) Voice(c *gin.Context) {
	sid := c.PostForm("CallSid")
	from := c.PostForm("From")
	to := c.PostForm("To")

	if sid == "" {
		sid = uuid.NewString()
	}

	ctx := c.Request.Context()

	biz, err := h.businessByNumber(ctx, to)
	if err != nil {
		// número não cadastrado: responde educado e desliga
		body, rerr := twiml.Reject("This number is not in service.", "alice")
		respondTwiML(c, body, rerr)
		return
	}

	var rc models.ReceptionistConfig
	if err := h.db.Where("business_id = ?", biz.ID).First(&rc).Error; err != nil {
		body, rerr := twiml.Reject("We are unable to take your call right now.", "alice")
		respondTwiML(c, body, rerr)
		return
	}

	// 1️⃣ Contato pelo número de origem
	contact := models.Contact{
		BusinessID:  biz.ID,
		PhoneNumber: from,
	}
	h.db.Where("business_id = ? AND phone_number = ?", biz.ID, from).
		FirstOrCreate(&contact)

	// 2️⃣ Registro da ligação
	call := models.Call{
		BusinessID: biz.ID,
		ContactID:  contact.ID,
		Sid:        sid,
		FromNumber: from,
		ToNumber:   to,
		Status:     models.CallStatusInProgress,
	}
	if err := h.db.Create(&call).Error; err != nil && !httperr.IsUniqueViolation(err) {
		log.Println("voice webhook: failed to record call:", err)
	}

	// 3️⃣ Aviso por e-mail, fora do caminho da resposta
	if rc.NotifyEmail != "" {
		go func(email, caller, bizName string) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := h.notifier.Send(ctx, email,
				"Incoming call — "+bizName,
				"Your receptionist is handling a call from "+caller+".",
			)
			if err != nil {
				log.Println("voice webhook: notify email failed:", err)
			}
		}(rc.NotifyEmail, contact.DisplayName(), biz.Name)
	}

	// 4️⃣ TwiML
	if !rc.Enabled {
		body, rerr := twiml.Reject(
			"Thank you for calling "+biz.Name+". We are currently unavailable. Please try again later.",
			rc.VoiceName,
		)
		respondTwiML(c, body, rerr)
		return
	}

	body, rerr := twiml.Voice(rc.Greeting, rc.VoiceName, rc.ForwardingNumber)
	respondTwiML(c, body, rerr)
}

// ======================================================
// POST /webhooks/voice/status
// ======================================================

// callStatusFromProvider traduz o status do provedor para o nosso
func callStatusFromProvider(s string) string {
	switch s {
	case "completed":
		return models.CallStatusCompleted
	case "busy":
		return models.CallStatusBusy
	case "no-answer":
		return models.CallStatusNoAnswer
	case "failed", "canceled":
		return models.CallStatusFailed
	case "in-progress", "answered":
		return models.CallStatusInProgress
	case "ringing", "initiated", "queued":
		return models.CallStatusRinging
	default:
		return ""
	}
}

func (h *WebhookHandler) VoiceStatus(c *gin.Context) {
	sid := c.PostForm("CallSid")
	if sid == "" {
		httperr.BadRequest(c, "missing_call_sid", "CallSid obrigatório.")
		return
	}

	var call models.Call
	if err := h.db.Where("sid = ?", sid).First(&call).Error; err != nil {
		// status de chamada que nunca passou pelo /voice: ok, só ignora
		c.Status(http.StatusNoContent)
		return
	}

	updates := map[string]any{}

	if status := callStatusFromProvider(c.PostForm("CallStatus")); status != "" {
		updates["status"] = status
	}

	if dur := c.PostForm("CallDuration"); dur != "" {
		if seconds, err := strconv.Atoi(dur); err == nil && seconds >= 0 {
			updates["duration_seconds"] = seconds
		}
	}

	if rec := c.PostForm("RecordingUrl"); rec != "" {
		updates["recording_url"] = rec
	}

	if len(updates) > 0 {
		if err := h.db.Model(&call).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_call", "Erro ao atualizar ligação.")
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// POST /webhooks/tools/appointments
// ======================================================

type ToolAppointmentRequest struct {
	To string `json:"to" binding:"required"` // número da empresa

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone" binding:"required"`

	ServiceType     string `json:"service_type"`
	Date            string `json:"date" binding:"required"` // YYYY-MM-DD
	Time            string `json:"time" binding:"required"` // HH:mm
	DurationMinutes *int   `json:"duration_minutes"`
	Notes           string `json:"notes"`
}

// ToolCreateAppointment agenda em nome da recepcionista. Conflito volta
// como 409 com as janelas ocupadas para a IA oferecer outro horário.
func (h *WebhookHandler) ToolCreateAppointment(c *gin.Context) {
	var req ToolAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	biz, err := h.businessByNumber(c.Request.Context(), req.To)
	if err != nil {
		httperr.NotFound(c, "business_not_found", "Empresa não encontrada para este número.")
		return
	}

	ap, conflicts, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			BusinessID:      biz.ID,
			ActorID:         nil,
			ContactName:     req.ContactName,
			ContactPhone:    req.ContactPhone,
			ServiceType:     req.ServiceType,
			Date:            req.Date,
			Time:            req.Time,
			DurationMinutes: req.DurationMinutes,
			Notes:           req.Notes,

			// a IA nunca força agendamento em cima de conflito
			AcknowledgeConflicts: false,
			EnforceMinAdvance:    false,
		},
	)

	if err != nil {
		mapSchedulingError(c, err, conflicts)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference":    ap.Reference,
		"scheduled_at": ap.ScheduledAt,
		"status":       ap.Status,
	})
}
