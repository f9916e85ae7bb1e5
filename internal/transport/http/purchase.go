package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/cinema_tickets/pkg/jsonx"
	"github.com/gin-gonic/gin"
)

// maxBodyBytes - 25 позиций укладываются с большим запасом.
const maxBodyBytes = 64 << 10

type ticketLine struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type purchaseRequest struct {
	AccountID int64        `json:"account_id"`
	Tickets   []ticketLine `json:"tickets"`
}

type purchaseResponse struct {
	AccountID   int64          `json:"account_id"`
	TotalAmount int            `json:"total_amount"`
	TotalSeats  int            `json:"total_seats"`
	Tickets     map[string]int `json:"tickets"`
}

type pricesResponse struct {
	Prices     map[string]int `json:"prices"`
	MaxTickets int            `json:"max_tickets_per_purchase"`
}

func toResponse(p domain.Purchase) purchaseResponse {
	return purchaseResponse{
		AccountID:   p.AccountID,
		TotalAmount: p.TotalAmount,
		TotalSeats:  p.TotalSeats,
		Tickets:     p.Counts.ByName(),
	}
}

// toDomain - неизвестный тип не отвергаем здесь: его отвергнет domain.Quote,
// сохранив порядок проверок (сначала аккаунт и пустой список).
func (r *purchaseRequest) toDomain() []domain.TicketTypeRequest {
	if len(r.Tickets) == 0 {
		return nil
	}
	out := make([]domain.TicketTypeRequest, 0, len(r.Tickets))
	for _, line := range r.Tickets {
		t, err := domain.ParseTicketType(line.Type)
		if err != nil {
			t = domain.TicketTypeUnknown
		}
		out = append(out, domain.TicketTypeRequest{Type: t, Quantity: line.Quantity})
	}
	return out
}

// errBodyTooLarge - тело длиннее maxBodyBytes.
var errBodyTooLarge = errors.New("request body too large")

// decodePurchase - строгий разбор тела: неизвестные поля и хвост после объекта - ошибка.
func decodePurchase(c *gin.Context) (*purchaseRequest, error) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var req purchaseRequest
	if err := jsonx.DecodeStrict(body, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, errBodyTooLarge
		}
		return nil, err
	}
	return &req, nil
}

func (h *Handler) requestContext(c *gin.Context, accountID int64) (context.Context, context.CancelFunc) {
	ctx := ctxmeta.WithAccountID(c.Request.Context(), accountID)
	if h.timeout > 0 {
		return context.WithTimeout(ctx, h.timeout)
	}
	return context.WithCancel(ctx)
}

func (h *Handler) purchaseTickets(c *gin.Context) {
	req, err := decodePurchase(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body: "+err.Error())
		return
	}

	ctx, cancel := h.requestContext(c, req.AccountID)
	defer cancel()

	purchase, err := h.service.PurchaseTickets(ctx, req.AccountID, req.toDomain()...)
	if err != nil {
		h.writeServiceError(ctx, c, err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(purchase))
}

func (h *Handler) quoteTickets(c *gin.Context) {
	req, err := decodePurchase(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body: "+err.Error())
		return
	}

	ctx, cancel := h.requestContext(c, req.AccountID)
	defer cancel()

	purchase, err := h.service.Quote(ctx, req.AccountID, req.toDomain()...)
	if err != nil {
		h.writeServiceError(ctx, c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(purchase))
}

func (h *Handler) getPrices(c *gin.Context) {
	prices := make(map[string]int, len(domain.TicketTypes))
	for t, price := range domain.PriceTable() {
		prices[t.String()] = price
	}
	c.JSON(http.StatusOK, pricesResponse{Prices: prices, MaxTickets: domain.MaxTicketsPerPurchase})
}

// writeServiceError - отказ по правилам -> 422 с кодом причины; сбой внешнего сервиса -> 502/504.
func (h *Handler) writeServiceError(ctx context.Context, c *gin.Context, err error) {
	if reason, ok := domain.ReasonOf(err); ok {
		writeError(c, http.StatusUnprocessableEntity, string(reason), err.Error())
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		h.log.Warnf(ctx, "purchase timed out: %v", err)
		writeError(c, http.StatusGatewayTimeout, codeUpstreamTimeout, "upstream timeout")
		return
	}
	h.log.Errorf(ctx, "purchase failed: %v", err)
	writeError(c, http.StatusBadGateway, codeUpstreamFailure, "payment or reservation service failed")
}
