package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ ports.TicketPaymentService   = (*LedgerRepository)(nil)
	_ ports.SeatReservationService = (*LedgerRepository)(nil)
)

// LedgerRepository - учёт оплат и бронирований в Postgres.
// Каждая операция - одна запись в соответствующей таблице.
type LedgerRepository struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

// NewLedgerRepository - конструктор LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool, log ports.Logger) *LedgerRepository {
	return &LedgerRepository{pool: pool, log: log}
}

// MakePayment - фиксирует списание amount со счёта accountID.
func (r *LedgerRepository) MakePayment(ctx context.Context, accountID int64, amount int) error {
	var id int64
	if err := r.pool.QueryRow(ctx, `
		INSERT INTO ticket_payments (account_id, amount, request_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, accountID, amount, requestIDOrNil(ctx)).Scan(&id); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	r.log.Infof(ctx, "payment recorded id=%d amount=%d", id, amount)
	return nil
}

// ReserveSeat - фиксирует бронь seats мест для accountID.
func (r *LedgerRepository) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	var id int64
	if err := r.pool.QueryRow(ctx, `
		INSERT INTO seat_reservations (account_id, seats, request_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, accountID, seats, requestIDOrNil(ctx)).Scan(&id); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	r.log.Infof(ctx, "reservation recorded id=%d seats=%d", id, seats)
	return nil
}

// TotalCharged - сумма всех списаний по аккаунту.
func (r *LedgerRepository) TotalCharged(ctx context.Context, accountID int64) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM ticket_payments WHERE account_id = $1`,
		accountID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}

// TotalReserved - сумма забронированных мест по аккаунту.
func (r *LedgerRepository) TotalReserved(ctx context.Context, accountID int64) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(seats), 0) FROM seat_reservations WHERE account_id = $1`,
		accountID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum reservations: %w", err)
	}
	return total, nil
}

// requestIDOrNil - NULL в БД, если request_id в контексте нет.
func requestIDOrNil(ctx context.Context) *string {
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		return &id
	}
	return nil
}
