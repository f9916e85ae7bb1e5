package ports

import "context"

// Logger - минимальный контракт логгера для прикладного слоя и транспортов.
// ctx передаётся, чтобы реализация могла достать request_id/trace_id.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)  // Infof - информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf - предупреждения (отказы в покупке и т.п.).
	Errorf(ctx context.Context, format string, args ...any) // Errorf - ошибки внешних сервисов.
}
