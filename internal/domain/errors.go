package domain

import "errors"

// ErrInvalidPurchase - базовая (sentinel) ошибка отказа в покупке.
var ErrInvalidPurchase = errors.New("invalid purchase")

// Reason - причина отказа; используется транспортами как машиночитаемый код.
type Reason string

const (
	ReasonInvalidAccount       Reason = "invalid_account"
	ReasonEmptyRequest         Reason = "empty_request"
	ReasonInvalidTicketRequest Reason = "invalid_ticket_request"
	ReasonTooManyTickets       Reason = "too_many_tickets"
	ReasonMissingAdult         Reason = "missing_adult"
)

// PurchaseError - отказ с конкретной причиной. errors.Is(err, ErrInvalidPurchase) == true.
type PurchaseError struct {
	Reason Reason
	Msg    string
}

func (e *PurchaseError) Error() string { return e.Msg }

func (e *PurchaseError) Is(target error) bool { return target == ErrInvalidPurchase }

func newPurchaseError(reason Reason, msg string) *PurchaseError {
	return &PurchaseError{Reason: reason, Msg: msg}
}

// ReasonOf - достаёт причину отказа; ok=false, если это не PurchaseError.
func ReasonOf(err error) (Reason, bool) {
	var pe *PurchaseError
	if errors.As(err, &pe) {
		return pe.Reason, true
	}
	return "", false
}
