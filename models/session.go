package models

import "errors"

var ErrNoCustomerSelected = errors.New("Selecione um cliente da fila primeiro.")

// Session tracks the customer currently being served at the till. One at a
// time, no queueing, no history.
type Session struct {
	customer string
}

// CallCustomer brings a customer to the counter, replacing whoever was
// there before.
func (s *Session) CallCustomer(name string) error {
	if name == "" {
		return ErrNoCustomerSelected
	}
	s.customer = name
	return nil
}

// Customer returns the active customer, or "" when nobody is being served.
func (s *Session) Customer() string { return s.customer }

func (s *Session) Active() bool { return s.customer != "" }

func (s *Session) reset() { s.customer = "" }
