package models

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart        = errors.New("O carrinho está vazio.")
	ErrNoActiveCustomer = errors.New("Nenhum cliente em atendimento. Chame um cliente antes de finalizar.")
	ErrNoPaymentMethod  = errors.New("Selecione uma forma de pagamento.")
	ErrInsufficientCash = errors.New("O valor recebido em dinheiro é insuficiente.")
)

// Sale is the record emitted when a transaction is finalized.
type Sale struct {
	ID            string          `json:"id"`
	Customer      string          `json:"customer"`
	Items         []LineItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	FinalizedAt   time.Time       `json:"finalized_at"`
}

type CancelOutcome int

const (
	// CancelNothing: cart empty and nobody being served, so there was
	// nothing to throw away and no prompt was raised.
	CancelNothing CancelOutcome = iota
	CancelDeclined
	CancelDone
)

// Register is the single till. It owns the cart, the payment selection and
// the customer session of the transaction in progress, plus the journal of
// sales finalized since the process started. There is one operator; the
// mutex keeps concurrent HTTP requests from interleaving mutations.
type Register struct {
	mu      sync.Mutex
	cart    Cart
	session Session
	payment PaymentSelection
	sales   []Sale
}

func NewRegister() *Register { return &Register{} }

func (r *Register) AddItem(name string, unitPrice decimal.Decimal, quantity int) ([]LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cart.AddItem(name, unitPrice, quantity)
}

func (r *Register) RemoveItem(index int) []LineItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart.RemoveItem(index)
	return r.cart.Items()
}

func (r *Register) ClearCart() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cart.Clear()
}

func (r *Register) CartItems() []LineItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cart.Items()
}

func (r *Register) CallCustomer(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.CallCustomer(name)
}

func (r *Register) Customer() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Customer()
}

// SetPayment records the method and the cash received, and answers with the
// change recomputed against the current total.
func (r *Register) SetPayment(method PaymentMethod, tendered decimal.Decimal) ChangeResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payment = PaymentSelection{Method: method, Tendered: tendered}
	return CalculateChange(r.cart.Total(), method, tendered)
}

func (r *Register) Payment() PaymentSelection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payment
}

// Change recomputes the change display from the current state. Never cached.
func (r *Register) Change() ChangeResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return CalculateChange(r.cart.Total(), r.payment.Method, r.payment.Tendered)
}

// Finalize commits the sale. Checks run in the order the operator can fix
// them; the first failure wins and nothing is mutated. On success the cart,
// the payment selection and the customer session all go back to their
// initial state, same as a fresh start.
func (r *Register) Finalize() (*Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if !r.session.Active() {
		return nil, ErrNoActiveCustomer
	}
	if r.payment.Method == PaymentUnset {
		return nil, ErrNoPaymentMethod
	}

	total := r.cart.Total()
	if r.payment.Method == PaymentCash && r.payment.Tendered.LessThan(total) {
		return nil, ErrInsufficientCash
	}

	sale := Sale{
		ID:            uuid.NewString(),
		Customer:      r.session.Customer(),
		Items:         r.cart.Items(),
		Total:         total,
		PaymentMethod: r.payment.Method,
		FinalizedAt:   time.Now(),
	}
	r.sales = append(r.sales, sale)

	r.cart.Clear()
	r.payment = PaymentSelection{}
	r.session.reset()

	return &sale, nil
}

// Cancel aborts the transaction in progress. With an empty cart and nobody
// being served there is nothing to cancel and confirm is never consulted.
// A declined confirmation leaves everything as it was. A confirmed cancel
// empties the cart and the payment selection but keeps the active customer
// at the counter, unlike Finalize.
func (r *Register) Cancel(confirm func() bool) CancelOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cart.Len() == 0 && !r.session.Active() {
		return CancelNothing
	}
	if !confirm() {
		return CancelDeclined
	}

	r.cart.Clear()
	r.payment = PaymentSelection{}
	return CancelDone
}

// Sales returns the journal of sales finalized since the process started.
func (r *Register) Sales() []Sale {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sale, len(r.sales))
	copy(out, r.sales)
	return out
}
