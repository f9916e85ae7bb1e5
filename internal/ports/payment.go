package ports

import "context"

// TicketPaymentService - внешний платёжный сервис.
// Ошибка возвращается как есть; ретраев и компенсаций на нашей стороне нет.
type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}
