package memstore

import (
	"maps"
	"slices"
	"time"
)

// State is the whole mutable data set, kept as plain rows. Rows are replaced,
// never edited in place, so Clone only has to copy the containers.
type State struct {
	Cart      CartRow
	Favorites map[string][]int64
	Session   SessionRow
	Intents   map[string]PaymentIntentRow
	Orders    []OrderRow
}

type CartRow struct {
	Items  []CartItemRow
	LastID int64
}

type CartItemRow struct {
	ID         int64
	BookID     int64
	Title      string
	Author     string
	Price      int64
	Quantity   int
	CoverImage string
}

type SessionRow struct {
	ID    string
	User  *UserRow
	Since time.Time
}

type UserRow struct {
	ID      string
	Name    string
	Email   string
	Picture string
}

type PaymentIntentRow struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
	UserID       string
	Status       string
	CreatedAt    time.Time
}

type OrderRow struct {
	ID              string
	UserID          string
	Lines           []CartItemRow
	Total           int64
	Status          string
	CreatedAt       time.Time
	PaymentIntentID string
}

func NewState() *State {
	return &State{
		Favorites: map[string][]int64{},
		Intents:   map[string]PaymentIntentRow{},
	}
}

func (s *State) Clone() *State {
	return &State{
		Cart:      s.Cart,
		Favorites: maps.Clone(s.Favorites),
		Session:   s.Session,
		Intents:   maps.Clone(s.Intents),
		Orders:    slices.Clone(s.Orders),
	}
}
