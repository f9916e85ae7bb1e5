package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Повторный вызов не должен паниковать.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestPurchases_CountersByOutcome(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.Purchases.WithLabelValues("ok"))
	rejBefore := testutil.ToFloat64(metrics.Purchases.WithLabelValues("rejected"))

	metrics.Purchases.WithLabelValues("ok").Inc()
	metrics.Purchases.WithLabelValues("ok").Inc()

	if got := testutil.ToFloat64(metrics.Purchases.WithLabelValues("ok")); got != okBefore+2 {
		t.Fatalf("Purchases(ok): got=%v want=%v", got, okBefore+2)
	}
	if got := testutil.ToFloat64(metrics.Purchases.WithLabelValues("rejected")); got != rejBefore {
		t.Fatalf("Purchases(rejected): got=%v want=%v", got, rejBefore)
	}
}

func TestAmountAndSeats_Add(t *testing.T) {
	metrics.MustRegister()

	amount := testutil.ToFloat64(metrics.AmountCharged)
	seats := testutil.ToFloat64(metrics.SeatsReserved)

	metrics.AmountCharged.Add(65)
	metrics.SeatsReserved.Add(3)

	if got := testutil.ToFloat64(metrics.AmountCharged); got != amount+65 {
		t.Fatalf("AmountCharged: got=%v want=%v", got, amount+65)
	}
	if got := testutil.ToFloat64(metrics.SeatsReserved); got != seats+3 {
		t.Fatalf("SeatsReserved: got=%v want=%v", got, seats+3)
	}
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	const topic = "ticket-purchases"
	before := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues(topic))
	pubBefore := testutil.ToFloat64(metrics.GatewayCommandsPublished.WithLabelValues("ticket-payments", "ok"))

	metrics.KafkaMessagesConsumed.WithLabelValues(topic).Inc()
	metrics.GatewayCommandsPublished.WithLabelValues("ticket-payments", "ok").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues(topic)); got != before+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, before+1)
	}
	if got := testutil.ToFloat64(metrics.GatewayCommandsPublished.WithLabelValues("ticket-payments", "ok")); got != pubBefore+1 {
		t.Fatalf("GatewayCommandsPublished: got=%v want=%v", got, pubBefore+1)
	}
}
