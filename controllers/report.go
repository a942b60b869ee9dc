package controllers

import (
	"net/http"

	"caixa/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportController summarizes the sales finalized since the till opened.
// The journal lives in memory only; it is gone when the process exits.
type ReportController struct {
	Register *models.Register
}

func (rc *ReportController) SessionReport(c *gin.Context) {
	sales := rc.Register.Sales()

	gross := decimal.Zero
	byMethod := map[models.PaymentMethod]decimal.Decimal{}
	for _, s := range sales {
		gross = gross.Add(s.Total)
		byMethod[s.PaymentMethod] = byMethod[s.PaymentMethod].Add(s.Total)
	}

	methods := gin.H{}
	for m, t := range byMethod {
		methods[string(m)] = gin.H{"total": t, "total_display": models.FormatBRL(t)}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(sales),
		"gross":         gross,
		"gross_display": models.FormatBRL(gross),
		"by_method":     methods,
		"sales":         sales,
	})
}
