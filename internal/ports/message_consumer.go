package ports

import "context"

// MessageConsumer - фоновый источник запросов на покупку (Kafka).
// Run блокируется до отмены контекста или фатальной ошибки.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
