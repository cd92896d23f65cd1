package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/receptionist-api/internal/cache"
	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/middleware"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
	"github.com/BruksfildServices01/receptionist-api/internal/storage"
	"github.com/BruksfildServices01/receptionist-api/internal/timezone"
)

type BusinessHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	cache    *cache.BusinessCache
}

func NewBusinessHandler(db *gorm.DB, uploader *storage.Uploader, bizCache *cache.BusinessCache) *BusinessHandler {
	return &BusinessHandler{
		db:       db,
		uploader: uploader,
		cache:    bizCache,
	}
}

type UpdateBusinessRequest struct {
	Name              *string `json:"name"`
	PhoneNumber       *string `json:"phone_number"`
	Timezone          *string `json:"timezone"`
	Address           *string `json:"address"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *BusinessHandler) GetMeBusiness(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var biz models.Business
	if err := h.db.First(&biz, businessID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "business_not_found", "Empresa não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_business", "Erro ao buscar dados da empresa.")
		return
	}

	c.JSON(http.StatusOK, biz)
}

func (h *BusinessHandler) UpdateMeBusiness(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var biz models.Business
	if err := h.db.First(&biz, businessID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "business_not_found", "Empresa não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_business", "Erro ao buscar dados da empresa.")
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	oldNumber := biz.PhoneNumber

	if req.Name != nil {
		biz.Name = *req.Name
	}

	if req.PhoneNumber != nil {
		biz.PhoneNumber = *req.PhoneNumber
	}

	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		biz.Timezone = *req.Timezone
	}

	if req.Address != nil {
		biz.Address = *req.Address
	}

	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima deve ser zero ou positiva (em minutos).")
			return
		}
		biz.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&biz).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "phone_number_in_use", "Número já pertence a outra empresa.")
			return
		}
		httperr.Internal(c, "failed_to_update_business", "Erro ao salvar as configurações da empresa.")
		return
	}

	// Número mudou → webhook de voz não pode resolver pelo cache velho
	if oldNumber != biz.PhoneNumber {
		h.cache.Invalidate(c.Request.Context(), oldNumber)
	}

	c.JSON(http.StatusOK, biz)
}

// ======================================================
// LOGO UPLOAD (S3 + webp)
// ======================================================

func (h *BusinessHandler) UploadLogo(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	if h.uploader == nil {
		httperr.Internal(c, "storage_not_configured", "Armazenamento de mídia não configurado.")
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Empresa não encontrada.")
		return
	}

	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo de imagem obrigatório (campo 'logo').")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadLogo(c.Request.Context(), biz.Slug, file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida ou falha no upload.")
		return
	}

	biz.LogoURL = url
	if err := h.db.Save(&biz).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Erro ao salvar logo.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
