package domain

import "fmt"

// MaxTicketsPerPurchase - потолок билетов в одной покупке.
const MaxTicketsPerPurchase = 25

// TicketCounts - агрегированные количества по типам (индекс - TicketType).
type TicketCounts [len(TicketTypes) + 1]int

// Of - количество билетов данного типа.
func (c TicketCounts) Of(t TicketType) int {
	if !t.Valid() {
		return 0
	}
	return c[t]
}

// Aggregate - суммирует количества по типам; false, как только общая сумма превысила limit.
// Позиции должны быть уже проверены: при неотрицательных количествах q > limit-total не переполняется.
func Aggregate(reqs []TicketTypeRequest, limit int) (TicketCounts, bool) {
	var counts TicketCounts
	total := 0
	for _, r := range reqs {
		if r.Quantity > limit-total {
			return TicketCounts{}, false
		}
		total += r.Quantity
		counts[r.Type] += r.Quantity
	}
	return counts, true
}

// Total - всего билетов по всем типам.
func (c TicketCounts) Total() int {
	total := 0
	for _, t := range TicketTypes {
		total += c[t]
	}
	return total
}

// ByName - количества с именами типов в ключах (для JSON-ответов).
func (c TicketCounts) ByName() map[string]int {
	out := make(map[string]int, len(TicketTypes))
	for _, t := range TicketTypes {
		out[t.String()] = c[t]
	}
	return out
}

// Purchase - итог проверенной покупки: сколько списать и сколько мест забронировать.
type Purchase struct {
	AccountID   int64
	Counts      TicketCounts
	TotalAmount int
	TotalSeats  int
}

// Quote - проверяет запрос и считает итоги без побочных эффектов.
// Правила применяются по порядку, первое нарушенное возвращается как *PurchaseError:
//  1. accountID > 0;
//  2. непустой список позиций;
//  3. корректные позиции (известный тип, неотрицательное количество);
//  4. суммарно не больше MaxTicketsPerPurchase билетов (только нулевые позиции допустимы: 0 к оплате, 0 мест);
//  5. детские и младенческие билеты только вместе со взрослым.
func Quote(accountID int64, reqs []TicketTypeRequest) (Purchase, error) {
	if accountID <= 0 {
		return Purchase{}, newPurchaseError(ReasonInvalidAccount, "Invalid account ID.")
	}
	if len(reqs) == 0 {
		return Purchase{}, newPurchaseError(ReasonEmptyRequest, "At least one ticket must be requested.")
	}
	for i, r := range reqs {
		if err := r.validate(); err != nil {
			return Purchase{}, newPurchaseError(ReasonInvalidTicketRequest, fmt.Sprintf("tickets[%d]: %v", i, err))
		}
	}

	counts, ok := Aggregate(reqs, MaxTicketsPerPurchase)
	if !ok {
		return Purchase{}, newPurchaseError(ReasonTooManyTickets,
			fmt.Sprintf("Cannot purchase more than %d tickets at a time.", MaxTicketsPerPurchase))
	}
	if counts.Of(Adult) == 0 && (counts.Of(Child) > 0 || counts.Of(Infant) > 0) {
		return Purchase{}, newPurchaseError(ReasonMissingAdult,
			"Child or Infant tickets cannot be purchased without an Adult ticket.")
	}

	p := Purchase{AccountID: accountID, Counts: counts}
	for _, t := range TicketTypes {
		p.TotalAmount += counts[t] * PriceOf(t)
		p.TotalSeats += counts[t] * SeatsFor(t)
	}
	return p, nil
}
