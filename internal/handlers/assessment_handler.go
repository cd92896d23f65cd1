package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/llm"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

// AssessmentHandler resume a transcrição da ligação via chat-completions
// e guarda o resultado na própria ligação
type AssessmentHandler struct {
	db  *gorm.DB
	llm *llm.Client
}

func NewAssessmentHandler(db *gorm.DB, client *llm.Client) *AssessmentHandler {
	return &AssessmentHandler{db: db, llm: client}
}

type AssessmentRequest struct {
	CallSid    string `json:"call_sid" binding:"required"`
	Transcript string `json:"transcript" binding:"required"`
}

// assessmentPrompt contextualiza o modelo com a empresa atendida
func assessmentPrompt(biz *models.Business) string {
	return "You are an assistant that summarizes phone calls handled by the AI " +
		"receptionist of " + biz.Name + ". Produce a short summary (2-3 sentences) " +
		"of the caller's intent and the outcome. Mention any appointment that was discussed."
}

func (h *AssessmentHandler) Assess(c *gin.Context) {
	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var call models.Call
	if err := h.db.Where("sid = ?", req.CallSid).First(&call).Error; err != nil {
		httperr.NotFound(c, "call_not_found", "Ligação não encontrada.")
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, call.BusinessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Empresa não encontrada.")
		return
	}

	summary, err := h.llm.Complete(c.Request.Context(), assessmentPrompt(&biz), req.Transcript)
	if err != nil {
		httperr.Internal(c, "assessment_failed", "Erro ao gerar resumo da ligação.")
		return
	}

	if err := h.db.Model(&call).Update("summary", summary).Error; err != nil {
		httperr.Internal(c, "failed_to_update_call", "Erro ao salvar resumo da ligação.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"call_sid": call.Sid,
		"summary":  summary,
	})
}
