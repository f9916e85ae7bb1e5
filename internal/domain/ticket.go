package domain

import (
	"fmt"
	"strings"
)

// TicketType - тип билета. Закрытый набор значений; нулевое значение невалидно.
type TicketType uint8

const (
	TicketTypeUnknown TicketType = iota
	Adult
	Child
	Infant
)

// TicketTypes - все допустимые типы в порядке вывода.
var TicketTypes = [...]TicketType{Adult, Child, Infant}

func (t TicketType) String() string {
	switch t {
	case Adult:
		return "ADULT"
	case Child:
		return "CHILD"
	case Infant:
		return "INFANT"
	default:
		return fmt.Sprintf("TicketType(%d)", uint8(t))
	}
}

// Valid - входит ли значение в закрытый набор.
func (t TicketType) Valid() bool {
	switch t {
	case Adult, Child, Infant:
		return true
	default:
		return false
	}
}

// ParseTicketType - разбор имени типа (регистр и пробелы по краям не важны).
func ParseTicketType(s string) (TicketType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADULT":
		return Adult, nil
	case "CHILD":
		return Child, nil
	case "INFANT":
		return Infant, nil
	default:
		return TicketTypeUnknown, fmt.Errorf("unknown ticket type %q", s)
	}
}

func (t TicketType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown ticket type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *TicketType) UnmarshalText(b []byte) error {
	parsed, err := ParseTicketType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Фиксированные цены (в целых денежных единицах).
const (
	AdultPrice  = 25
	ChildPrice  = 15
	InfantPrice = 0
)

// PriceOf - цена одного билета данного типа.
func PriceOf(t TicketType) int {
	switch t {
	case Adult:
		return AdultPrice
	case Child:
		return ChildPrice
	case Infant:
		return InfantPrice
	default:
		return 0
	}
}

// SeatsFor - сколько мест занимает один билет: младенцы сидят на руках.
func SeatsFor(t TicketType) int {
	switch t {
	case Adult, Child:
		return 1
	default:
		return 0
	}
}

// PriceTable - прайс в виде, пригодном для отдачи наружу.
func PriceTable() map[TicketType]int {
	table := make(map[TicketType]int, len(TicketTypes))
	for _, t := range TicketTypes {
		table[t] = PriceOf(t)
	}
	return table
}

// TicketTypeRequest - одна позиция запроса: тип и количество.
type TicketTypeRequest struct {
	Type     TicketType `json:"type"`
	Quantity int        `json:"quantity"`
}

// NewTicketTypeRequest - конструктор с проверкой типа и количества.
func NewTicketTypeRequest(t TicketType, quantity int) (TicketTypeRequest, error) {
	req := TicketTypeRequest{Type: t, Quantity: quantity}
	if err := req.validate(); err != nil {
		return TicketTypeRequest{}, err
	}
	return req, nil
}

func (r TicketTypeRequest) validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("unknown ticket type %d", uint8(r.Type))
	}
	if r.Quantity < 0 {
		return fmt.Errorf("negative quantity %d for %s", r.Quantity, r.Type)
	}
	return nil
}
