package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/receptionist-api/internal/httperr"
)

// parseDateParam lê ?date=YYYY-MM-DD; a conversão para o timezone da
// empresa acontece no use case, aqui só validamos o formato
func parseDateParam(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return time.Time{}, false
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return time.Time{}, false
	}

	return date, true
}
