package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// handleMessage - разбирает и обрабатывает одно сообщение. Исход отражается в метриках и логе,
// оффсет коммитится вызывающим в любом случае.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) {
	pm, err := DecodePurchaseMessage(msg.Value)
	if err != nil {
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid message offset=%d: %v (skipped)", msg.Offset, err)
		return
	}

	ctx = ctxmeta.WithAccountID(ctx, pm.AccountID)
	if pm.RequestID != "" {
		ctx = ctxmeta.WithRequestID(ctx, pm.RequestID)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	_, err = c.service.PurchaseTickets(ctxTimeout, pm.AccountID, pm.Tickets...)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
	case errors.Is(err, domain.ErrInvalidPurchase):
		// Отказ уже залогирован сервисом; сообщение пропускаем.
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "purchase rejected offset=%d: %v (skipped)", msg.Offset, err)
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Errorf(ctx, "purchase failed offset=%d: %v (committed without retry)", msg.Offset, err)
	}
}

// commitSafely - коммитит оффсет; ошибку только логирует.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждёт d или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff возвращает следующее время ожидания с учётом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual - половина задержки фиксирована, вторая половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}
