package cart

import (
	"slices"

	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/domain/money"
)

// MaxQuantity caps a single line so that line totals and the subtotal stay exact.
const MaxQuantity = 9999

// Ledger holds the cart lines, at most one per book.
// Line ids come from lastID and are never reused, not even after Clear.
type Ledger struct {
	items  []Item
	lastID int64
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func ReconstructLedger(items []Item, lastID int64) *Ledger {
	return &Ledger{
		items:  slices.Clone(items),
		lastID: lastID,
	}
}

// Add puts quantity copies of book in the cart. An existing line for the
// same book keeps its id and denormalized fields and only grows in quantity.
func (l *Ledger) Add(book catalog.Book, quantity int) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return Item{}, ErrQuantityTooLarge
	}
	if !book.InStock {
		return Item{}, ErrBookUnavailable
	}

	if idx := l.indexOfBook(book.ID); idx >= 0 {
		if l.items[idx].Quantity > MaxQuantity-quantity {
			return Item{}, ErrQuantityTooLarge
		}
		l.items[idx].Quantity += quantity
		return l.items[idx], nil
	}

	l.lastID++
	item := Item{
		ID:         l.lastID,
		BookID:     book.ID,
		Title:      book.Title,
		Author:     book.Author,
		Price:      book.Price,
		Quantity:   quantity,
		CoverImage: book.CoverImage,
	}
	l.items = append(l.items, item)
	return item, nil
}

// SetQuantity overwrites the quantity of a line. A quantity of zero or less
// removes the line and reports removed=true. Above MaxQuantity the line is left as is.
func (l *Ledger) SetQuantity(itemID int64, quantity int) (removed bool, err error) {
	idx := l.indexOfItem(itemID)
	if idx < 0 {
		return false, ErrItemNotFound
	}
	if quantity <= 0 {
		l.items = slices.Delete(l.items, idx, idx+1)
		return true, nil
	}
	if quantity > MaxQuantity {
		return false, ErrQuantityTooLarge
	}
	l.items[idx].Quantity = quantity
	return false, nil
}

func (l *Ledger) Remove(itemID int64) error {
	idx := l.indexOfItem(itemID)
	if idx < 0 {
		return ErrItemNotFound
	}
	l.items = slices.Delete(l.items, idx, idx+1)
	return nil
}

func (l *Ledger) Clear() {
	l.items = nil
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) IsEmpty() bool { return len(l.items) == 0 }
func (l *Ledger) LastID() int64 { return l.lastID }

func (l *Ledger) Subtotal() money.Money {
	return Subtotal(l.items)
}

func (l *Ledger) ItemCount() int {
	return ItemCount(l.items)
}

func Subtotal(items []Item) money.Money {
	var total money.Money
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func ItemCount(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func (l *Ledger) indexOfBook(bookID int64) int {
	return slices.IndexFunc(l.items, func(it Item) bool { return it.BookID == bookID })
}

func (l *Ledger) indexOfItem(itemID int64) int {
	return slices.IndexFunc(l.items, func(it Item) bool { return it.ID == itemID })
}
