package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Покупки.
var (
	Purchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchases_total",
			Help: "Purchase attempts by outcome",
		},
		[]string{"outcome"}, // ok|rejected|payment_failed|reservation_failed
	)
	PurchasesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchases_rejected_total",
			Help: "Rejected purchases by reason",
		},
		[]string{"reason"},
	)
	TicketsSold = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Tickets sold by ticket type",
		},
		[]string{"type"},
	)
	AmountCharged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_amount_charged_total",
			Help: "Total amount passed to the payment service",
		},
	)
	SeatsReserved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_seats_reserved_total",
			Help: "Total seats passed to the reservation service",
		},
	)
)

// Kafka: входящие запросы на покупку и исходящие команды шлюзов.
var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	GatewayCommandsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_commands_published_total",
			Help: "Payment/reservation commands written to Kafka",
		},
		[]string{"topic", "status"}, // ok|error
	)
)

var registerOnce sync.Once

// MustRegister - регистрирует все метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			Purchases, PurchasesRejected, TicketsSold, AmountCharged, SeatsReserved,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, GatewayCommandsPublished,
		)
	})
}
