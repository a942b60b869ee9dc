package models

import "github.com/shopspring/decimal"

// PaymentMethod tags how the customer pays. Only cash produces change.
type PaymentMethod string

const (
	PaymentUnset PaymentMethod = ""
	PaymentCash  PaymentMethod = "dinheiro"
	PaymentCard  PaymentMethod = "cartao"
	PaymentPix   PaymentMethod = "pix"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentPix:
		return true
	}
	return false
}

// PaymentSelection is the method and tendered amount for the sale in
// progress. Tendered only means anything for cash, and nothing here
// survives a finalize or a confirmed cancel.
type PaymentSelection struct {
	Method   PaymentMethod
	Tendered decimal.Decimal
}

type ChangeKind int

const (
	// ChangeNone: non-cash payment, or no cash handed over yet.
	ChangeNone ChangeKind = iota
	// ChangeDue: the cash received covers the total and the difference
	// goes back to the customer.
	ChangeDue
	// ChangeOwed: the cash received falls short of the total.
	ChangeOwed
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeDue:
		return "troco"
	case ChangeOwed:
		return "falta"
	default:
		return "nenhum"
	}
}

// ChangeResult is what the change display shows. Amount is always
// non-negative; Kind tells the adapter whether it is change to hand back or
// an amount the customer still owes.
type ChangeResult struct {
	Kind   ChangeKind
	Amount decimal.Decimal
}

// Display renders the result the way the till shows it: a plain amount for
// change, "Falta R$ X" when the customer still owes.
func (r ChangeResult) Display() string {
	if r.Kind == ChangeOwed {
		return "Falta " + FormatBRL(r.Amount)
	}
	return FormatBRL(r.Amount)
}

// CalculateChange derives what goes back to the customer. Non-cash methods
// never show change, even though the customer pays the total exactly on
// those paths. Pure; callers recompute on every change to total, method or
// tendered amount.
func CalculateChange(total decimal.Decimal, method PaymentMethod, tendered decimal.Decimal) ChangeResult {
	if method != PaymentCash || tendered.Sign() <= 0 {
		return ChangeResult{Kind: ChangeNone, Amount: decimal.Zero}
	}

	change := tendered.Sub(total)
	if change.Sign() < 0 {
		return ChangeResult{Kind: ChangeOwed, Amount: change.Abs()}
	}
	return ChangeResult{Kind: ChangeDue, Amount: change}
}
