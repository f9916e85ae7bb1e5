package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports/mocks"
	"github.com/Gunvolt24/cinema_tickets/internal/usecase"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// recorder - детерминированная подмена обоих внешних сервисов; пишет журнал вызовов.
type recorder struct {
	calls          []string
	paymentErr     error
	reservationErr error
}

func (r *recorder) MakePayment(_ context.Context, accountID int64, amount int) error {
	r.calls = append(r.calls, fmt.Sprintf("pay(%d,%d)", accountID, amount))
	return r.paymentErr
}

func (r *recorder) ReserveSeat(_ context.Context, accountID int64, seats int) error {
	r.calls = append(r.calls, fmt.Sprintf("reserve(%d,%d)", accountID, seats))
	return r.reservationErr
}

func tickets(pairs ...any) []domain.TicketTypeRequest {
	out := make([]domain.TicketTypeRequest, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.TicketTypeRequest{Type: pairs[i].(domain.TicketType), Quantity: pairs[i+1].(int)})
	}
	return out
}

func TestPurchaseTickets_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		accountID int64
		reqs      []domain.TicketTypeRequest
		wantErr   domain.Reason
		wantCalls []string
	}{
		{"too many tickets", 1, tickets(domain.Adult, 26), domain.ReasonTooManyTickets, nil},
		{"children without adult", 1, tickets(domain.Child, 2), domain.ReasonMissingAdult, nil},
		{"infant without adult", 1, tickets(domain.Infant, 1), domain.ReasonMissingAdult, nil},
		{"invalid account", 0, tickets(domain.Adult, 1), domain.ReasonInvalidAccount, nil},
		{"family", 1, tickets(domain.Adult, 2, domain.Child, 1, domain.Infant, 1), "", []string{"pay(1,65)", "reserve(1,3)"}},
		{"empty", 1, tickets(), domain.ReasonEmptyRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			svc := usecase.NewTicketService(rec, rec, noopLogger{})

			p, err := svc.PurchaseTickets(context.Background(), tt.accountID, tt.reqs...)
			if tt.wantErr != "" {
				reason, ok := domain.ReasonOf(err)
				if !ok || reason != tt.wantErr {
					t.Fatalf("want %s, got %v", tt.wantErr, err)
				}
				if !usecase.IsRejection(err) {
					t.Fatalf("rejection must match ErrInvalidPurchase: %v", err)
				}
				if len(rec.calls) != 0 {
					t.Fatalf("no collaborator must be called on rejection, got %v", rec.calls)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fmt.Sprint(rec.calls) != fmt.Sprint(tt.wantCalls) {
				t.Fatalf("calls: want %v, got %v", tt.wantCalls, rec.calls)
			}
			if p.TotalAmount != 65 || p.TotalSeats != 3 {
				t.Fatalf("unexpected purchase: %+v", p)
			}
		})
	}
}

func TestPurchaseTickets_PaymentBeforeReservation(t *testing.T) {
	ctrl := gomock.NewController(t)

	pay := mocks.NewMockTicketPaymentService(ctrl)
	res := mocks.NewMockSeatReservationService(ctrl)

	gomock.InOrder(
		pay.EXPECT().MakePayment(gomock.Any(), int64(7), 25*3+15*4).Return(nil),
		res.EXPECT().ReserveSeat(gomock.Any(), int64(7), 7).Return(nil),
	)

	svc := usecase.NewTicketService(pay, res, noopLogger{})
	_, err := svc.PurchaseTickets(context.Background(), 7, tickets(domain.Adult, 3, domain.Child, 4, domain.Infant, 2)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPurchaseTickets_PaymentErrorPropagatesUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)

	pay := mocks.NewMockTicketPaymentService(ctrl)
	res := mocks.NewMockSeatReservationService(ctrl)

	payErr := errors.New("card declined")
	pay.EXPECT().MakePayment(gomock.Any(), int64(1), 25).Return(payErr)
	res.EXPECT().ReserveSeat(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewTicketService(pay, res, noopLogger{})
	_, err := svc.PurchaseTickets(context.Background(), 1, tickets(domain.Adult, 1)...)
	if err != payErr {
		t.Fatalf("want the payment error as-is, got %v", err)
	}
	if usecase.IsRejection(err) {
		t.Fatalf("collaborator failure must not look like a rejection")
	}
}

func TestPurchaseTickets_ReservationErrorAfterPayment(t *testing.T) {
	resErr := errors.New("no seats service")
	rec := &recorder{reservationErr: resErr}
	svc := usecase.NewTicketService(rec, rec, noopLogger{})

	_, err := svc.PurchaseTickets(context.Background(), 3, tickets(domain.Adult, 2)...)
	if err != resErr {
		t.Fatalf("want the reservation error as-is, got %v", err)
	}
	// Оплата уже прошла, компенсации нет.
	if fmt.Sprint(rec.calls) != fmt.Sprint([]string{"pay(3,50)", "reserve(3,2)"}) {
		t.Fatalf("unexpected calls: %v", rec.calls)
	}
}

// countingLogger - считает записи по уровням.
type countingLogger struct{ infos, warns, errs int }

func (l *countingLogger) Infof(context.Context, string, ...any)  { l.infos++ }
func (l *countingLogger) Warnf(context.Context, string, ...any)  { l.warns++ }
func (l *countingLogger) Errorf(context.Context, string, ...any) { l.errs++ }

func TestPurchaseTickets_LogLevels(t *testing.T) {
	log := &countingLogger{}
	rec := &recorder{}
	svc := usecase.NewTicketService(rec, rec, log)

	if _, err := svc.PurchaseTickets(context.Background(), -1, tickets(domain.Adult, 1)...); err == nil {
		t.Fatalf("expected rejection")
	}
	if log.warns != 1 || log.errs != 0 {
		t.Fatalf("rejection must be a single warning, got %+v", *log)
	}

	rec.paymentErr = errors.New("gateway down")
	if _, err := svc.PurchaseTickets(context.Background(), 1, tickets(domain.Adult, 1)...); err == nil {
		t.Fatalf("expected payment error")
	}
	if log.errs != 1 {
		t.Fatalf("payment failure must be logged as error, got %+v", *log)
	}

	rec.paymentErr = nil
	if _, err := svc.PurchaseTickets(context.Background(), 1, tickets(domain.Adult, 1)...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.infos != 1 {
		t.Fatalf("success must be logged as info, got %+v", *log)
	}
}

func TestQuote_NoSideEffects(t *testing.T) {
	rec := &recorder{}
	svc := usecase.NewTicketService(rec, rec, noopLogger{})

	p, err := svc.Quote(context.Background(), 5, tickets(domain.Adult, 1, domain.Child, 1)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalAmount != 40 || p.TotalSeats != 2 {
		t.Fatalf("unexpected quote: %+v", p)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("quote must not call collaborators, got %v", rec.calls)
	}
}

// Огромные количества не должны переполнять сумму и доходить до оплаты.
func TestPurchaseTickets_HugeQuantitiesRejected(t *testing.T) {
	tests := []struct {
		name string
		reqs []domain.TicketTypeRequest
	}{
		{"max int adults with children", tickets(domain.Adult, math.MaxInt, domain.Child, 2)},
		{"two max int adult lines", tickets(domain.Adult, math.MaxInt, domain.Adult, math.MaxInt)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			svc := usecase.NewTicketService(rec, rec, noopLogger{})

			_, err := svc.PurchaseTickets(context.Background(), 1, tt.reqs...)
			if reason, ok := domain.ReasonOf(err); !ok || reason != domain.ReasonTooManyTickets {
				t.Fatalf("want %s, got %v", domain.ReasonTooManyTickets, err)
			}
			if len(rec.calls) != 0 {
				t.Fatalf("no collaborator must be called, got %v", rec.calls)
			}
		})
	}
}

// Только нулевые позиции: покупка проходит, оплата 0 и бронь 0 мест.
func TestPurchaseTickets_ZeroQuantitiesOnly(t *testing.T) {
	rec := &recorder{}
	svc := usecase.NewTicketService(rec, rec, noopLogger{})

	p, err := svc.PurchaseTickets(context.Background(), 4, tickets(domain.Adult, 0, domain.Child, 0)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalAmount != 0 || p.TotalSeats != 0 {
		t.Fatalf("unexpected purchase: %+v", p)
	}
	if fmt.Sprint(rec.calls) != fmt.Sprint([]string{"pay(4,0)", "reserve(4,0)"}) {
		t.Fatalf("unexpected calls: %v", rec.calls)
	}
}
