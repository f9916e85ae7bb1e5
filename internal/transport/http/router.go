package rest

import (
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler - HTTP-обработчики покупки билетов.
type Handler struct {
	service ports.TicketPurchaser
	log     ports.Logger
	timeout time.Duration // таймаут на обработку одного запроса (0 - без таймаута)
}

func NewHandler(service ports.TicketPurchaser, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter - gin-роутер со всеми маршрутами.
// otelServiceName пустой - трейсинг HTTP не подключается.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/prices", h.getPrices)
	r.POST("/purchases", h.purchaseTickets)
	r.POST("/purchases/quote", h.quoteTickets)

	r.NoRoute(notFound)
	r.NoMethod(methodNotAllowed)

	return r
}
