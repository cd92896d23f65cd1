package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/middleware"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

// Configuração da recepcionista virtual pelo console
type ReceptionistHandler struct {
	db *gorm.DB
}

func NewReceptionistHandler(db *gorm.DB) *ReceptionistHandler {
	return &ReceptionistHandler{db: db}
}

type UpdateReceptionistRequest struct {
	Enabled          *bool   `json:"enabled"`
	Greeting         *string `json:"greeting"`
	VoiceName        *string `json:"voice_name"`
	ForwardingNumber *string `json:"forwarding_number"`
	NotifyEmail      *string `json:"notify_email" binding:"omitempty,email"`
}

func (h *ReceptionistHandler) Get(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var rc models.ReceptionistConfig
	if err := h.db.Where("business_id = ?", businessID).First(&rc).Error; err != nil {
		httperr.NotFound(c, "receptionist_not_found", "Configuração da recepcionista não encontrada.")
		return
	}

	c.JSON(http.StatusOK, rc)
}

func (h *ReceptionistHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var rc models.ReceptionistConfig
	if err := h.db.Where("business_id = ?", businessID).First(&rc).Error; err != nil {
		httperr.NotFound(c, "receptionist_not_found", "Configuração da recepcionista não encontrada.")
		return
	}

	var req UpdateReceptionistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Enabled != nil {
		rc.Enabled = *req.Enabled
	}
	if req.Greeting != nil {
		rc.Greeting = *req.Greeting
	}
	if req.VoiceName != nil {
		rc.VoiceName = *req.VoiceName
	}
	if req.ForwardingNumber != nil {
		rc.ForwardingNumber = *req.ForwardingNumber
	}
	if req.NotifyEmail != nil {
		rc.NotifyEmail = *req.NotifyEmail
	}

	if err := h.db.Save(&rc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_receptionist", "Erro ao salvar configuração da recepcionista.")
		return
	}

	c.JSON(http.StatusOK, rc)
}
