package catalog

import (
	"strings"

	"legal-storefront/internal/domain/money"
)

// AllCategories is the sentinel category the storefront sends for "no filter".
const AllCategories = "Tutti"

type DocumentCategory string

const (
	DocumentCodes       DocumentCategory = "Codici"
	DocumentCaseLaw     DocumentCategory = "Giurisprudenza"
	DocumentForms       DocumentCategory = "Modulistica"
	DocumentLegislation DocumentCategory = "Normativa"
	DocumentCirculars   DocumentCategory = "Circolari"
	DocumentFormularies DocumentCategory = "Formulari"
)

type BookCategory string

const (
	BookManuals     BookCategory = "Manuali"
	BookCommentary  BookCategory = "Commentari"
	BookFormularies BookCategory = "Formulari"
	BookSpecialist  BookCategory = "Specialistici"
	BookCommercial  BookCategory = "Commerciale"
)

// Document is a downloadable legal document. Reference data, never mutated.
type Document struct {
	ID          int64
	Title       string
	Description string
	Category    DocumentCategory
	Date        string
	Format      string
	Pages       int
	Size        string
}

type Magazine struct {
	ID          int64
	Title       string
	Subtitle    string
	Issue       string
	CoverImage  string
	PublishDate string
	Pages       int
	Featured    bool
	Description string
	Articles    []string
}

type Book struct {
	ID            int64
	Title         string
	Subtitle      string
	Author        string
	CoverImage    string
	Price         money.Money
	OriginalPrice *money.Money
	Pages         int
	ISBN          string
	Rating        float64
	Reviews       int
	Bestseller    bool
	Description   string
	InStock       bool
	Category      BookCategory
}

func (d Document) matches(term string) bool {
	return containsFold(d.Title, term) || containsFold(d.Description, term)
}

func (m Magazine) matches(term string) bool {
	return containsFold(m.Title, term) || containsFold(m.Description, term)
}

func (b Book) matches(term string) bool {
	return containsFold(b.Title, term) || containsFold(b.Description, term) || containsFold(b.Author, term)
}

func (m Magazine) clone() Magazine {
	m.Articles = append([]string(nil), m.Articles...)
	return m
}

func (b Book) clone() Book {
	if b.OriginalPrice != nil {
		p := *b.OriginalPrice
		b.OriginalPrice = &p
	}
	return b
}

// IsAllCategories reports whether category means "no filter".
func IsAllCategories(category string) bool {
	c := strings.TrimSpace(category)
	return c == "" || strings.EqualFold(c, AllCategories) || strings.EqualFold(c, "all")
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
