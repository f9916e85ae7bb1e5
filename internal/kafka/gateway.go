package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	_ ports.TicketPaymentService   = (*Gateway)(nil)
	_ ports.SeatReservationService = (*Gateway)(nil)
)

// writer - минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Gateway - публикует команды оплаты и бронирования во внешние топики.
// Запись синхронная: метод возвращается после подтверждения брокером.
type Gateway struct {
	payments     writer
	reservations writer
	log          ports.Logger
	now          func() time.Time
	newRef       func() string
}

// NewGateway - создаёт writer'ы для обоих топиков.
func NewGateway(cfg *ProducerConfig, log ports.Logger) *Gateway {
	return newGateway(cfg.writerFor(cfg.PaymentsTopic), cfg.writerFor(cfg.ReservationsTopic), log)
}

func newGateway(payments, reservations writer, log ports.Logger) *Gateway {
	return &Gateway{
		payments:     payments,
		reservations: reservations,
		log:          log,
		now:          time.Now,
		newRef:       uuid.NewString,
	}
}

// MakePayment - публикует PaymentCommand.
func (g *Gateway) MakePayment(ctx context.Context, accountID int64, amount int) error {
	requestID, _ := ctxmeta.RequestIDFromContext(ctx)
	cmd := PaymentCommand{
		Reference:   g.newRef(),
		RequestID:   requestID,
		AccountID:   accountID,
		Amount:      amount,
		RequestedAt: g.now().UTC(),
	}
	return g.publish(ctx, g.payments, "payment", accountID, cmd.Reference, cmd)
}

// ReserveSeat - публикует ReservationCommand.
func (g *Gateway) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	requestID, _ := ctxmeta.RequestIDFromContext(ctx)
	cmd := ReservationCommand{
		Reference:   g.newRef(),
		RequestID:   requestID,
		AccountID:   accountID,
		Seats:       seats,
		RequestedAt: g.now().UTC(),
	}
	return g.publish(ctx, g.reservations, "reservation", accountID, cmd.Reference, cmd)
}

// publish - ключ сообщения = account_id, поэтому команды одного аккаунта идут в одну партицию.
func (g *Gateway) publish(ctx context.Context, w writer, kind string, accountID int64, ref string, payload any) error {
	topic := topicOf(w, kind)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s command: %w", kind, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(accountID, 10)),
		Value: body,
		Headers: []kafka.Header{
			{Key: "reference", Value: []byte(ref)},
		},
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		metrics.GatewayCommandsPublished.WithLabelValues(topic, "error").Inc()
		return fmt.Errorf("publish %s command: %w", kind, err)
	}

	metrics.GatewayCommandsPublished.WithLabelValues(topic, "ok").Inc()
	g.log.Infof(ctx, "%s command published topic=%s reference=%s", kind, topic, ref)
	return nil
}

// Close - закрывает оба writer'а.
func (g *Gateway) Close() error {
	return errors.Join(g.payments.Close(), g.reservations.Close())
}

// topicOf - имя топика для меток метрик; у моков его нет.
func topicOf(w writer, fallback string) string {
	if kw, ok := w.(*kafka.Writer); ok && kw.Topic != "" {
		return kw.Topic
	}
	return fallback
}
