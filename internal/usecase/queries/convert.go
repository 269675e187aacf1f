package queries

import (
	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/domain/money"
	"legal-storefront/internal/domain/session"

	"github.com/jinzhu/copier"
)

// viewOption renders money as decimal euros; everything else copies by field name.
var viewOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Money(0),
			DstType: float64(0),
			Fn: func(src any) (any, error) {
				return src.(money.Money).Major(), nil
			},
		},
		{
			SrcType: (*money.Money)(nil),
			DstType: (*float64)(nil),
			Fn: func(src any) (any, error) {
				m, _ := src.(*money.Money)
				if m == nil {
					return (*float64)(nil), nil
				}
				v := m.Major()
				return &v, nil
			},
		},
	},
}

func toViews[V any, S any](src []S) ([]V, error) {
	out := make([]V, 0, len(src))
	if err := copier.CopyWithOption(&out, src, viewOption); err != nil {
		return nil, err
	}
	return out, nil
}

func toView[V any, S any](src S) (V, error) {
	var v V
	err := copier.CopyWithOption(&v, &src, viewOption)
	return v, err
}

func ToDocumentViews(docs []catalog.Document) ([]DocumentView, error) {
	return toViews[DocumentView](docs)
}

func ToMagazineViews(mags []catalog.Magazine) ([]MagazineView, error) {
	return toViews[MagazineView](mags)
}

func ToBookViews(books []catalog.Book) ([]BookView, error) {
	return toViews[BookView](books)
}

func ToCartItemViews(items []cart.Item) ([]CartItemView, error) {
	return toViews[CartItemView](items)
}

func ToUserView(u session.User) UserView {
	return UserView(u)
}

func ToOrderView(o *checkout.Order) (*OrderView, error) {
	items, err := ToCartItemViews(o.Items())
	if err != nil {
		return nil, err
	}
	return &OrderView{
		ID:              o.ID(),
		UserID:          o.UserID(),
		Items:           items,
		Total:           o.Total().Major(),
		Status:          string(o.Status()),
		CreatedAt:       o.CreatedAt(),
		PaymentIntentID: o.PaymentIntentID(),
	}, nil
}

func ToPaymentIntentView(pi *checkout.PaymentIntent) *PaymentIntentView {
	return &PaymentIntentView{
		ID:           pi.ID(),
		ClientSecret: pi.ClientSecret(),
		Amount:       pi.Amount().Cents(),
		Currency:     pi.Currency(),
	}
}
