package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
	"github.com/BruksfildServices01/receptionist-api/internal/httpresp"
	"github.com/BruksfildServices01/receptionist-api/internal/middleware"
	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

type ContactHandler struct {
	db *gorm.DB
}

func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{db: db}
}

// List lista contatos da empresa com busca opcional (?q=) por nome ou telefone
func (h *ContactHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	query := h.db.Model(&models.Contact{}).
		Where("business_id = ?", businessID)

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR phone_number LIKE ?", like, like)
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

	var contacts []models.Contact
	if err := query.
		Order("name ASC, phone_number ASC").
		Limit(limit).
		Offset(offset).
		Find(&contacts).Error; err != nil {

		httperr.Internal(c, "failed_to_list_contacts", "Erro ao listar contatos.")
		return
	}

	httpresp.Page(c, contacts, total, limit, offset)
}

type UpdateContactRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// Update corrige nome/e-mail de um contato criado pela recepcionista
func (h *ContactHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var contact models.Contact
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&contact).Error; err != nil {

		httperr.NotFound(c, "contact_not_found", "Contato não encontrado.")
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}

	if err := h.db.Save(&contact).Error; err != nil {
		httperr.Internal(c, "failed_to_update_contact", "Erro ao salvar contato.")
		return
	}

	c.JSON(http.StatusOK, contact)
}
