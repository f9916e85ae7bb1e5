package usecase

import (
	"context"
	"errors"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
)

// Проверка, что TicketService удовлетворяет порту TicketPurchaser.
var _ ports.TicketPurchaser = (*TicketService)(nil)

// TicketService - покупка билетов: проверка правил, затем оплата и бронирование мест.
// Состояния между вызовами нет, поэтому сервис безопасен для конкурентного использования
// (если это верно для внешних сервисов).
type TicketService struct {
	payments     ports.TicketPaymentService
	reservations ports.SeatReservationService
	log          ports.Logger
}

// NewTicketService - DI-конструктор.
func NewTicketService(
	payments ports.TicketPaymentService,
	reservations ports.SeatReservationService,
	log ports.Logger,
) *TicketService {
	return &TicketService{
		payments:     payments,
		reservations: reservations,
		log:          log,
	}
}

// Quote - только проверка и расчёт, без вызова внешних сервисов.
func (s *TicketService) Quote(
	_ context.Context,
	accountID int64,
	reqs ...domain.TicketTypeRequest,
) (domain.Purchase, error) {
	return domain.Quote(accountID, reqs)
}

// PurchaseTickets - покупка билетов.
// Шаги:
//  1. domain.Quote - все бизнес-правила; при отказе внешние сервисы не вызываются;
//  2. оплата (accountID, сумма);
//  3. бронирование (accountID, места).
//
// Ошибки внешних сервисов возвращаются без обёртки. Если бронирование упало после
// успешной оплаты, компенсации нет: пишем ошибку в лог для ручной сверки.
func (s *TicketService) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	reqs ...domain.TicketTypeRequest,
) (domain.Purchase, error) {
	purchase, err := domain.Quote(accountID, reqs)
	if err != nil {
		reason, _ := domain.ReasonOf(err)
		metrics.Purchases.WithLabelValues("rejected").Inc()
		metrics.PurchasesRejected.WithLabelValues(string(reason)).Inc()
		s.log.Warnf(ctx, "purchase rejected account=%d reason=%s err=%v", accountID, reason, err)
		return domain.Purchase{}, err
	}

	if err := s.payments.MakePayment(ctx, accountID, purchase.TotalAmount); err != nil {
		metrics.Purchases.WithLabelValues("payment_failed").Inc()
		s.log.Errorf(ctx, "payment failed account=%d amount=%d err=%v", accountID, purchase.TotalAmount, err)
		return domain.Purchase{}, err
	}
	metrics.AmountCharged.Add(float64(purchase.TotalAmount))

	if err := s.reservations.ReserveSeat(ctx, accountID, purchase.TotalSeats); err != nil {
		metrics.Purchases.WithLabelValues("reservation_failed").Inc()
		s.log.Errorf(ctx, "seat reservation failed after payment account=%d amount=%d seats=%d err=%v (no compensation)",
			accountID, purchase.TotalAmount, purchase.TotalSeats, err)
		return domain.Purchase{}, err
	}
	metrics.SeatsReserved.Add(float64(purchase.TotalSeats))

	for _, t := range domain.TicketTypes {
		if n := purchase.Counts.Of(t); n > 0 {
			metrics.TicketsSold.WithLabelValues(t.String()).Add(float64(n))
		}
	}
	metrics.Purchases.WithLabelValues("ok").Inc()

	s.log.Infof(ctx, "purchase completed account=%d tickets=%d amount=%d seats=%d",
		accountID, purchase.Counts.Total(), purchase.TotalAmount, purchase.TotalSeats)
	return purchase, nil
}

// IsRejection - отказ по бизнес-правилам (а не сбой внешнего сервиса).
func IsRejection(err error) bool {
	return errors.Is(err, domain.ErrInvalidPurchase)
}
