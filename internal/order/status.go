package order

import "fmt"

type Status string

const (
	StatusPlaced          Status = "Placed"
	StatusPaymentReceived Status = "PaymentReceived"
	StatusPreparing       Status = "Preparing"
	StatusReady           Status = "Ready"
	StatusHandedOver      Status = "HandedOver"
	StatusCancelled       Status = "Cancelled"
)

// Lifecycle is the forward path; Cancelled sits outside it.
var Lifecycle = []Status{StatusPlaced, StatusPaymentReceived, StatusPreparing, StatusReady, StatusHandedOver}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPlaced, StatusPaymentReceived, StatusPreparing, StatusReady, StatusHandedOver, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

func (s Status) IsTerminal() bool { return s == StatusHandedOver || s == StatusCancelled }

// Next returns the single forward step, or false on a terminal status.
func (s Status) Next() (Status, bool) {
	for i, st := range Lifecycle {
		if st == s && i+1 < len(Lifecycle) {
			return Lifecycle[i+1], true
		}
	}
	return "", false
}

// CanTransition reports whether to is reachable from s in one step.
func (s Status) CanTransition(to Status) bool {
	if s.IsTerminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	next, ok := s.Next()
	return ok && next == to
}
