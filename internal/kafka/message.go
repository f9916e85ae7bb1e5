package kafka

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/pkg/jsonx"
)

// ErrInvalidMessage - сообщение не удалось разобрать.
var ErrInvalidMessage = errors.New("invalid message")

// PurchaseMessage - запрос на покупку в топике.
//
//	{"request_id":"...","account_id":1,"tickets":[{"type":"ADULT","quantity":2}]}
type PurchaseMessage struct {
	RequestID string                     `json:"request_id,omitempty"`
	AccountID int64                      `json:"account_id"`
	Tickets   []domain.TicketTypeRequest `json:"tickets"`
}

// DecodePurchaseMessage - строгий разбор: неизвестные поля и хвост после объекта запрещены.
// Бизнес-правила здесь не проверяются.
func DecodePurchaseMessage(raw []byte) (PurchaseMessage, error) {
	var pm PurchaseMessage
	if err := jsonx.DecodeStrict(bytes.NewReader(raw), &pm); err != nil {
		return PurchaseMessage{}, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	return pm, nil
}

// PaymentCommand - команда на списание для платёжного сервиса.
type PaymentCommand struct {
	Reference   string    `json:"reference"`
	RequestID   string    `json:"request_id,omitempty"`
	AccountID   int64     `json:"account_id"`
	Amount      int       `json:"amount"`
	RequestedAt time.Time `json:"requested_at"`
}

// ReservationCommand - команда на бронирование мест.
type ReservationCommand struct {
	Reference   string    `json:"reference"`
	RequestID   string    `json:"request_id,omitempty"`
	AccountID   int64     `json:"account_id"`
	Seats       int       `json:"seats"`
	RequestedAt time.Time `json:"requested_at"`
}
