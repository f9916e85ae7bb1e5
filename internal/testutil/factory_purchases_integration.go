//go:build integration

package testutil

import (
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

var accountSeq atomic.Int64

func init() { accountSeq.Store(time.Now().UnixNano() % 1_000_000_000) }

// NextAccountID - уникальный положительный account_id в рамках прогона.
func NextAccountID() int64 { return accountSeq.Add(1) }

// FamilyTickets - 2 взрослых, 1 ребёнок, 1 младенец: 65 к оплате, 3 места.
func FamilyTickets() []domain.TicketTypeRequest {
	return []domain.TicketTypeRequest{
		{Type: domain.Adult, Quantity: 2},
		{Type: domain.Child, Quantity: 1},
		{Type: domain.Infant, Quantity: 1},
	}
}
