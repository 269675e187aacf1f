package catalog

import (
	"strings"
)

// Catalog is the static, read-only collection offered by the storefront.
// Every accessor returns copies; the backing slices are never exposed.
type Catalog struct {
	documents []Document
	magazines []Magazine
	books     []Book
}

type SearchResult struct {
	Documents []Document
	Magazines []Magazine
	Books     []Book
}

type Stats struct {
	TotalDocuments    int
	TotalMagazines    int
	TotalBooks        int
	FeaturedMagazines int
	Bestsellers       int
}

func New(documents []Document, magazines []Magazine, books []Book) *Catalog {
	c := &Catalog{
		documents: append([]Document(nil), documents...),
		magazines: make([]Magazine, 0, len(magazines)),
		books:     make([]Book, 0, len(books)),
	}
	for _, m := range magazines {
		c.magazines = append(c.magazines, m.clone())
	}
	for _, b := range books {
		c.books = append(c.books, b.clone())
	}
	return c
}

func (c *Catalog) Documents(category string) []Document {
	out := make([]Document, 0, len(c.documents))
	all := IsAllCategories(category)
	for _, d := range c.documents {
		if all || string(d.Category) == category {
			out = append(out, d)
		}
	}
	return out
}

func (c *Catalog) Magazines() []Magazine {
	out := make([]Magazine, 0, len(c.magazines))
	for _, m := range c.magazines {
		out = append(out, m.clone())
	}
	return out
}

func (c *Catalog) Books(category string) []Book {
	out := make([]Book, 0, len(c.books))
	all := IsAllCategories(category)
	for _, b := range c.books {
		if all || string(b.Category) == category {
			out = append(out, b.clone())
		}
	}
	return out
}

func (c *Catalog) DocumentByID(id int64) (Document, bool) {
	for _, d := range c.documents {
		if d.ID == id {
			return d, true
		}
	}
	return Document{}, false
}

func (c *Catalog) MagazineByID(id int64) (Magazine, bool) {
	for _, m := range c.magazines {
		if m.ID == id {
			return m.clone(), true
		}
	}
	return Magazine{}, false
}

func (c *Catalog) BookByID(id int64) (Book, bool) {
	for _, b := range c.books {
		if b.ID == id {
			return b.clone(), true
		}
	}
	return Book{}, false
}

// Search matches query case-insensitively against titles and descriptions
// (and authors, for books). A blank query is not special here: it matches everything.
func (c *Catalog) Search(query string, scope Scope) SearchResult {
	term := strings.ToLower(strings.TrimSpace(query))
	res := SearchResult{
		Documents: []Document{},
		Magazines: []Magazine{},
		Books:     []Book{},
	}

	if scope.includes(ScopeDocuments) {
		for _, d := range c.documents {
			if d.matches(term) {
				res.Documents = append(res.Documents, d)
			}
		}
	}
	if scope.includes(ScopeMagazines) {
		for _, m := range c.magazines {
			if m.matches(term) {
				res.Magazines = append(res.Magazines, m.clone())
			}
		}
	}
	if scope.includes(ScopeBooks) {
		for _, b := range c.books {
			if b.matches(term) {
				res.Books = append(res.Books, b.clone())
			}
		}
	}
	return res
}

func (c *Catalog) Stats() Stats {
	s := Stats{
		TotalDocuments: len(c.documents),
		TotalMagazines: len(c.magazines),
		TotalBooks:     len(c.books),
	}
	for _, m := range c.magazines {
		if m.Featured {
			s.FeaturedMagazines++
		}
	}
	for _, b := range c.books {
		if b.Bestseller {
			s.Bestsellers++
		}
	}
	return s
}
