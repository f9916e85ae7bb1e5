package ports

import (
	"context"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// TicketPurchaser - то, что нужно транспортам (HTTP, Kafka) от прикладного слоя.
type TicketPurchaser interface {
	PurchaseTickets(ctx context.Context, accountID int64, reqs ...domain.TicketTypeRequest) (domain.Purchase, error)
	Quote(ctx context.Context, accountID int64, reqs ...domain.TicketTypeRequest) (domain.Purchase, error)
}
