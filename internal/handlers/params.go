package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/timezone"
)

// pathID lê um id numérico da rota e responde 400 quando inválido.
func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(n), true
}

func queryDecimal(c *gin.Context, name string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(c.Query(name))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, name+" must be a decimal number")
		return decimal.Zero, false
	}
	return d, true
}

// parseDate interpreta YYYY-MM-DD em UTC.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return timezone.StartOfDay(t), true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Dados inválidos.")
		return false
	}
	return true
}
