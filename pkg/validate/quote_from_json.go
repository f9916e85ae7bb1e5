// Package validate - офлайн-проверка запросов на покупку из файлов и потоков.
package validate

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/pkg/jsonx"
)

// ErrInvalidInput - запрос не удалось разобрать как JSON.
var ErrInvalidInput = errors.New("invalid input")

// PurchaseRequest - запрос на покупку во входном файле.
type PurchaseRequest struct {
	AccountID int64                      `json:"account_id"`
	Tickets   []domain.TicketTypeRequest `json:"tickets"`
}

// QuoteLine - итог одного валидного запроса (канонический JSON в выводе).
type QuoteLine struct {
	AccountID   int64          `json:"account_id"`
	TotalAmount int            `json:"total_amount"`
	TotalSeats  int            `json:"total_seats"`
	Tickets     map[string]int `json:"tickets"`
}

func newQuoteLine(p domain.Purchase) QuoteLine {
	return QuoteLine{
		AccountID:   p.AccountID,
		TotalAmount: p.TotalAmount,
		TotalSeats:  p.TotalSeats,
		Tickets:     p.Counts.ByName(),
	}
}

// QuoteFromJSON - строгий разбор одного запроса и расчёт итогов.
// Ошибка разбора оборачивает ErrInvalidInput, отказ по правилам - domain.ErrInvalidPurchase.
func QuoteFromJSON(raw []byte) (QuoteLine, error) {
	var req PurchaseRequest
	if err := jsonx.DecodeStrict(bytes.NewReader(raw), &req); err != nil {
		return QuoteLine{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	p, err := domain.Quote(req.AccountID, req.Tickets)
	if err != nil {
		return QuoteLine{}, err
	}
	return newQuoteLine(p), nil
}
