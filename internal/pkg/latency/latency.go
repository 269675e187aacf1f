package latency

import "time"

// Operation names an API call that carries a simulated round-trip delay.
type Operation string

const (
	OpLogin            Operation = "login"
	OpLogout           Operation = "logout"
	OpCurrentSession   Operation = "current_session"
	OpListDocuments    Operation = "list_documents"
	OpGetDocument      Operation = "get_document"
	OpDownloadDocument Operation = "download_document"
	OpListMagazines    Operation = "list_magazines"
	OpGetMagazine      Operation = "get_magazine"
	OpDownloadMagazine Operation = "download_magazine"
	OpListBooks        Operation = "list_books"
	OpGetBook          Operation = "get_book"
	OpSearch           Operation = "search"
	OpPreview          Operation = "preview"
	OpStats            Operation = "stats"
	OpListCart         Operation = "list_cart"
	OpAddToCart        Operation = "add_to_cart"
	OpSetCartQuantity  Operation = "set_cart_quantity"
	OpRemoveFromCart   Operation = "remove_from_cart"
	OpClearCart        Operation = "clear_cart"
	OpCreateIntent     Operation = "create_payment_intent"
	OpCancelIntent     Operation = "cancel_payment_intent"
	OpConfirmPayment   Operation = "confirm_payment"
	OpListOrders       Operation = "list_orders"
	OpGetOrder         Operation = "get_order"
	OpListFavorites    Operation = "list_favorites"
	OpToggleFavorite   Operation = "toggle_favorite"
	OpIsFavorite       Operation = "is_favorite"
)

var baseDelays = map[Operation]time.Duration{
	OpLogin:            1000 * time.Millisecond,
	OpLogout:           500 * time.Millisecond,
	OpCurrentSession:   300 * time.Millisecond,
	OpListDocuments:    800 * time.Millisecond,
	OpGetDocument:      400 * time.Millisecond,
	OpDownloadDocument: 1500 * time.Millisecond,
	OpListMagazines:    600 * time.Millisecond,
	OpGetMagazine:      400 * time.Millisecond,
	OpDownloadMagazine: 1200 * time.Millisecond,
	OpListBooks:        700 * time.Millisecond,
	OpGetBook:          400 * time.Millisecond,
	OpSearch:           1000 * time.Millisecond,
	OpPreview:          1000 * time.Millisecond,
	OpStats:            500 * time.Millisecond,
	OpListCart:         300 * time.Millisecond,
	OpAddToCart:        500 * time.Millisecond,
	OpSetCartQuantity:  300 * time.Millisecond,
	OpRemoveFromCart:   300 * time.Millisecond,
	OpClearCart:        300 * time.Millisecond,
	OpCreateIntent:     1000 * time.Millisecond,
	OpCancelIntent:     300 * time.Millisecond,
	OpConfirmPayment:   2000 * time.Millisecond,
	OpListOrders:       400 * time.Millisecond,
	OpGetOrder:         300 * time.Millisecond,
	OpListFavorites:    400 * time.Millisecond,
	OpToggleFavorite:   300 * time.Millisecond,
	OpIsFavorite:       100 * time.Millisecond,
}

// Simulator turns operations into artificial delays. A zero scale disables all delays.
type Simulator struct {
	scale float64
	sleep func(time.Duration)
}

func NewSimulator(scale float64) *Simulator {
	return NewSimulatorWithSleeper(scale, time.Sleep)
}

func NewSimulatorWithSleeper(scale float64, sleep func(time.Duration)) *Simulator {
	if scale < 0 {
		scale = 0
	}
	return &Simulator{scale: scale, sleep: sleep}
}

// Delay returns the scaled delay for op.
func (s *Simulator) Delay(op Operation) time.Duration {
	if s == nil || s.scale == 0 {
		return 0
	}
	return time.Duration(float64(baseDelays[op]) * s.scale)
}

// Wait blocks for the scaled delay of op. It is not interrupted by the caller
// going away: once issued, an operation always runs.
func (s *Simulator) Wait(op Operation) {
	if d := s.Delay(op); d > 0 {
		s.sleep(d)
	}
}
