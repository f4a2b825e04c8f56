package event

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Date                Date            `json:"date"`
	Time                string          `json:"time"`
	Location            string          `json:"location"`
	Category            Category        `json:"category"`
	Price               decimal.Decimal `json:"price"`
	MaxParticipants     int             `json:"maxParticipants"`
	CurrentParticipants int             `json:"currentParticipants"`
	Image               string          `json:"image"`
	Featured            bool            `json:"featured"`
	Status              Status          `json:"status"`
	AgeRange            string          `json:"ageRange"`
	Requirements        []string        `json:"requirements"`
	Host                Host            `json:"host"`
}

type Host struct {
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
	Rating float64 `json:"rating"`
}

var ErrNotFound = errors.New("event not found")

func init() {
	// prices go out as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// IsFree reports a zero price.
func (e Event) IsFree() bool {
	return e.Price.IsZero()
}

// IsFull does not trust currentParticipants <= maxParticipants.
func (e Event) IsFull() bool {
	return e.CurrentParticipants >= e.MaxParticipants
}
