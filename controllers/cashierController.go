package controllers

import (
	"net/http"
	"strconv"

	"caixa/middleware"
	"caixa/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CashierController adapts HTTP requests from the counter frontend to the
// register. It owns no state of its own; every response is rendered from a
// fresh snapshot.
type CashierController struct {
	Register *models.Register
}

type cartRow struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

func cartView(items []models.LineItem) gin.H {
	rows := make([]cartRow, 0, len(items))
	total := decimal.Zero
	for _, li := range items {
		rows = append(rows, cartRow{
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			LineTotal: li.LineTotal(),
		})
		total = total.Add(li.LineTotal())
	}
	return gin.H{
		"items":         rows,
		"total":         total,
		"total_display": models.FormatBRL(total),
	}
}

func changeView(r models.ChangeResult) gin.H {
	return gin.H{
		"kind":    r.Kind.String(),
		"amount":  r.Amount,
		"display": r.Display(),
	}
}

func (cc *CashierController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartView(cc.Register.CartItems()))
}

// AddItem puts a product into the cart. The quantity comes from the counter
// input, so it is validated as a positive whole number before the cart sees
// it.
func (cc *CashierController) AddItem(c *gin.Context) {
	var input struct {
		Name      string          `json:"name" binding:"required"`
		UnitPrice decimal.Decimal `json:"unit_price"`
		Quantity  float64         `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantity := int(input.Quantity)
	if float64(quantity) != input.Quantity {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidQuantity.Error()})
		return
	}
	if input.UnitPrice.Sign() < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "O preço não pode ser negativo."})
		return
	}

	items, err := cc.Register.AddItem(input.Name, input.UnitPrice, quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartView(items))
}

// RemoveItem drops the row the operator clicked. The index comes from the
// last rendered snapshot; one past the end is ignored, same as removing a
// row that is already gone.
func (cc *CashierController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item index"})
		return
	}
	c.JSON(http.StatusOK, cartView(cc.Register.RemoveItem(index)))
}

func (cc *CashierController) ClearCart(c *gin.Context) {
	cc.Register.ClearCart()
	c.JSON(http.StatusOK, cartView(nil))
}

// CallCustomer brings the selected customer from the queue to the counter.
func (cc *CashierController) CallCustomer(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.Register.CallCustomer(input.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": cc.Register.Customer()})
}

func (cc *CashierController) GetCustomer(c *gin.Context) {
	customer := cc.Register.Customer()
	display := customer
	if display == "" {
		display = "Nenhum"
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer, "display": display})
}

// SetPayment records the payment method and the cash received, answering
// with the recomputed change display.
func (cc *CashierController) SetPayment(c *gin.Context) {
	var input struct {
		Method         models.PaymentMethod `json:"method"`
		AmountTendered decimal.Decimal      `json:"amount_tendered"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Method != models.PaymentUnset && !input.Method.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Forma de pagamento desconhecida."})
		return
	}

	result := cc.Register.SetPayment(input.Method, input.AmountTendered)
	c.JSON(http.StatusOK, changeView(result))
}

func (cc *CashierController) GetChange(c *gin.Context) {
	c.JSON(http.StatusOK, changeView(cc.Register.Change()))
}

// Finalize commits the sale. Validation failures come back one at a time,
// in the order the operator can fix them; success returns the sale summary
// and the reset state.
func (cc *CashierController) Finalize(c *gin.Context) {
	sale, err := cc.Register.Finalize()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	middleware.SalesFinalizedTotal.WithLabelValues(string(sale.PaymentMethod)).Inc()

	c.JSON(http.StatusOK, gin.H{
		"message":       "Venda finalizada!",
		"sale":          sale,
		"total_display": models.FormatBRL(sale.Total),
		"cart":          cartView(nil),
		"customer":      gin.H{"customer": "", "display": "Nenhum"},
		"change":        changeView(models.ChangeResult{}),
	})
}

// Cancel aborts the sale in progress. The frontend relays the operator's
// answer to the confirm prompt in the request body.
func (cc *CashierController) Cancel(c *gin.Context) {
	var input struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch cc.Register.Cancel(func() bool { return input.Confirmed }) {
	case models.CancelNothing:
		c.JSON(http.StatusOK, gin.H{"status": "nothing-to-cancel"})
	case models.CancelDeclined:
		c.JSON(http.StatusOK, gin.H{"status": "declined"})
	default:
		c.JSON(http.StatusOK, gin.H{
			"status": "cancelled",
			"cart":   cartView(nil),
			"change": changeView(models.ChangeResult{}),
		})
	}
}
