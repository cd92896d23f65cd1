package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/httpresp"
	"github.com/BruksfildServices01/receptionist-api/internal/middleware"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

type CallHandler struct {
	db *gorm.DB
}

func NewCallHandler(db *gorm.DB) *CallHandler {
	return &CallHandler{db: db}
}

// List lista ligações recentes da empresa, mais novas primeiro.
// Filtro opcional ?status= e paginação por limit/offset.
func (h *CallHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	query := h.db.Model(&models.Call{}).
		Where("business_id = ?", businessID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	limit := 50
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 200 {
		limit = l
	}

	offset := 0
	if o, err := strconv.Atoi(c.Query("offset")); err == nil && o > 0 {
		offset = o
	}

	var total int64
	query.Count(&total)

	var calls []models.Call
	if err := query.
		Preload("Contact").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&calls).Error; err != nil {

		httperr.Internal(c, "failed_to_list_calls", "Erro ao listar ligações.")
		return
	}

	httpresp.Page(c, calls, total, limit, offset)
}
