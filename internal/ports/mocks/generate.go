//go:generate mockgen -source=../payment.go          -destination=./mock_payment.go          -package=mocks
//go:generate mockgen -source=../reservation.go      -destination=./mock_reservation.go      -package=mocks
//go:generate mockgen -source=../ticket_purchaser.go -destination=./mock_ticket_purchaser.go -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks

package mocks
