package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

import (
	"context"
	"fmt"
	"strings"

	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/pkg/errs"
	"legal-storefront/internal/usecase/shared"
)

var (
	ErrDocumentNotFound = errs.NewKind(errs.KindNotFound, "Documento non trovato")
	ErrMagazineNotFound = errs.NewKind(errs.KindNotFound, "Rivista non trovata")
	ErrInvalidAssetType = errs.NewKind(errs.KindValidationFailed, "Tipo di contenuto non supportato")
)

// AssetType names the downloadable content kinds.
type AssetType string

const (
	AssetDocument AssetType = "document"
	AssetMagazine AssetType = "magazine"
)

type CatalogQueries interface {
	ListDocuments(ctx context.Context, category string) ([]DocumentView, error)
	ListMagazines(ctx context.Context) ([]MagazineView, error)
	ListBooks(ctx context.Context, category string) ([]BookView, error)
	// Get* return nil without error when the id does not resolve.
	GetDocument(ctx context.Context, id int64) (*DocumentView, error)
	GetMagazine(ctx context.Context, id int64) (*MagazineView, error)
	GetBook(ctx context.Context, id int64) (*BookView, error)
	Search(ctx context.Context, query, scope string) (*SearchView, error)
	DownloadURL(ctx context.Context, asset AssetType, id int64) (string, error)
	PreviewURL(ctx context.Context, asset AssetType, id int64) (string, error)
	Stats(ctx context.Context) (*StatsView, error)
}

type catalogQueriesImpl struct {
	catalog      shared.Catalog
	assetBaseURL string
}

func NewCatalogQueries(c shared.Catalog, assetBaseURL string) CatalogQueries {
	return &catalogQueriesImpl{
		catalog:      c,
		assetBaseURL: strings.TrimRight(assetBaseURL, "/"),
	}
}

func (q *catalogQueriesImpl) ListDocuments(_ context.Context, category string) ([]DocumentView, error) {
	return ToDocumentViews(q.catalog.Documents(category))
}

func (q *catalogQueriesImpl) ListMagazines(_ context.Context) ([]MagazineView, error) {
	return ToMagazineViews(q.catalog.Magazines())
}

func (q *catalogQueriesImpl) ListBooks(_ context.Context, category string) ([]BookView, error) {
	return ToBookViews(q.catalog.Books(category))
}

func (q *catalogQueriesImpl) GetDocument(_ context.Context, id int64) (*DocumentView, error) {
	d, ok := q.catalog.DocumentByID(id)
	if !ok {
		return nil, nil
	}
	v, err := toView[DocumentView](d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (q *catalogQueriesImpl) GetMagazine(_ context.Context, id int64) (*MagazineView, error) {
	m, ok := q.catalog.MagazineByID(id)
	if !ok {
		return nil, nil
	}
	v, err := toView[MagazineView](m)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (q *catalogQueriesImpl) GetBook(_ context.Context, id int64) (*BookView, error) {
	b, ok := q.catalog.BookByID(id)
	if !ok {
		return nil, nil
	}
	v, err := toView[BookView](b)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Search treats a blank query as "everything in scope" and lists the catalog
// directly instead of matching.
func (q *catalogQueriesImpl) Search(_ context.Context, query, scope string) (*SearchView, error) {
	sc, err := catalog.ParseScope(scope)
	if err != nil {
		return nil, err
	}

	var res catalog.SearchResult
	if strings.TrimSpace(query) == "" {
		res = q.listAll(sc)
	} else {
		res = q.catalog.Search(query, sc)
	}

	view := &SearchView{}
	if view.Documents, err = ToDocumentViews(res.Documents); err != nil {
		return nil, err
	}
	if view.Magazines, err = ToMagazineViews(res.Magazines); err != nil {
		return nil, err
	}
	if view.Books, err = ToBookViews(res.Books); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) listAll(sc catalog.Scope) catalog.SearchResult {
	res := catalog.SearchResult{}
	if sc == catalog.ScopeAll || sc == catalog.ScopeDocuments {
		res.Documents = q.catalog.Documents(catalog.AllCategories)
	}
	if sc == catalog.ScopeAll || sc == catalog.ScopeMagazines {
		res.Magazines = q.catalog.Magazines()
	}
	if sc == catalog.ScopeAll || sc == catalog.ScopeBooks {
		res.Books = q.catalog.Books(catalog.AllCategories)
	}
	return res
}

func (q *catalogQueriesImpl) DownloadURL(_ context.Context, asset AssetType, id int64) (string, error) {
	if err := q.checkAsset(asset, id); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%ss/%d/download", q.assetBaseURL, asset, id), nil
}

func (q *catalogQueriesImpl) PreviewURL(_ context.Context, asset AssetType, id int64) (string, error) {
	if err := q.checkAsset(asset, id); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%ss/%d/preview.pdf", q.assetBaseURL, asset, id), nil
}

func (q *catalogQueriesImpl) checkAsset(asset AssetType, id int64) error {
	switch asset {
	case AssetDocument:
		if _, ok := q.catalog.DocumentByID(id); !ok {
			return ErrDocumentNotFound
		}
	case AssetMagazine:
		if _, ok := q.catalog.MagazineByID(id); !ok {
			return ErrMagazineNotFound
		}
	default:
		return ErrInvalidAssetType
	}
	return nil
}

func (q *catalogQueriesImpl) Stats(_ context.Context) (*StatsView, error) {
	s := StatsView(q.catalog.Stats())
	return &s, nil
}
