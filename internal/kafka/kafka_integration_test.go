//go:build integration

package kafka_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	mykafka "github.com/Gunvolt24/cinema_tickets/internal/kafka"
	"github.com/Gunvolt24/cinema_tickets/internal/testutil"
	"github.com/Gunvolt24/cinema_tickets/internal/usecase"
	"github.com/Gunvolt24/cinema_tickets/pkg/logger"
)

// Полный путь: сообщение о покупке → Consumer → TicketService → Gateway → топики команд.
func TestPurchaseFlow_ThroughRedpanda_TC(t *testing.T) {
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStart()

	env, stop, err := testutil.StartKafkaTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	purchasesTopic, group := testutil.UniqueTopicAndGroup("purchases-itest")
	paymentsTopic, _ := testutil.UniqueTopicAndGroup("payments-itest")
	reservationsTopic, _ := testutil.UniqueTopicAndGroup("reservations-itest")
	for _, topic := range []string{purchasesTopic, paymentsTopic, reservationsTopic} {
		require.NoError(t, testutil.EnsureTopic(ctxStart, env.Brokers[0], topic))
	}

	log := logger.NewNop()
	gw := mykafka.NewGateway(&mykafka.ProducerConfig{
		Brokers:           env.Brokers,
		PaymentsTopic:     paymentsTopic,
		ReservationsTopic: reservationsTopic,
		WriteTimeout:      10 * time.Second,
	}, log)
	t.Cleanup(func() { _ = gw.Close() })

	consumer := mykafka.NewConsumer(&mykafka.ConsumerConfig{
		Brokers:        env.Brokers,
		Topic:          purchasesTopic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 10 * time.Second,
	}, usecase.NewTicketService(gw, gw, log), log)
	t.Cleanup(func() { _ = consumer.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- consumer.Run(ctx) }()

	acc := testutil.NextAccountID()
	require.NoError(t, testutil.ProduceJSON(ctx, env.Brokers, purchasesTopic, mykafka.PurchaseMessage{
		RequestID: "itest-flow",
		AccountID: acc,
		Tickets:   testutil.FamilyTickets(),
	}))

	var pay mykafka.PaymentCommand
	msg, err := testutil.ReadOne(ctx, env.Brokers, paymentsTopic, &pay)
	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(acc, 10), string(msg.Key))
	require.Equal(t, acc, pay.AccountID)
	require.Equal(t, 65, pay.Amount)
	require.Equal(t, "itest-flow", pay.RequestID)
	require.NotEmpty(t, pay.Reference)

	var res mykafka.ReservationCommand
	_, err = testutil.ReadOne(ctx, env.Brokers, reservationsTopic, &res)
	require.NoError(t, err)
	require.Equal(t, acc, res.AccountID)
	require.Equal(t, 3, res.Seats)

	cancel()
	select {
	case err := <-errCh:
		require.True(t, errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded), "unexpected: %v", err)
	case <-time.After(10 * time.Second):
		t.Fatal("consumer did not stop")
	}
}
