package queries

import "time"

// Views use the storefront's camelCase field names. Prices are decimal euros.

type UserView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// SessionRef names the login a session token must belong to.
type SessionRef struct {
	UserID    string
	SessionID string
}

type DocumentView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Format      string `json:"format"`
	Pages       int    `json:"pages"`
	Size        string `json:"size"`
}

type MagazineView struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Issue       string   `json:"issue"`
	CoverImage  string   `json:"coverImage"`
	PublishDate string   `json:"publishDate"`
	Pages       int      `json:"pages"`
	Featured    bool     `json:"featured"`
	Description string   `json:"description"`
	Articles    []string `json:"articles"`
}

type BookView struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Author        string   `json:"author"`
	CoverImage    string   `json:"coverImage"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Pages         int      `json:"pages"`
	ISBN          string   `json:"isbn"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Bestseller    bool     `json:"bestseller"`
	Description   string   `json:"description"`
	InStock       bool     `json:"inStock"`
	Category      string   `json:"category"`
}

type SearchView struct {
	Documents []DocumentView `json:"documents"`
	Magazines []MagazineView `json:"magazines"`
	Books     []BookView     `json:"books"`
}

type StatsView struct {
	TotalDocuments    int `json:"totalDocuments"`
	TotalMagazines    int `json:"totalMagazines"`
	TotalBooks        int `json:"totalBooks"`
	FeaturedMagazines int `json:"featuredMagazines"`
	Bestsellers       int `json:"bestsellers"`
}

type CartItemView struct {
	ID         int64   `json:"id"`
	BookID     int64   `json:"bookId"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	CoverImage string  `json:"coverImage"`
}

type CartView struct {
	Items     []CartItemView `json:"items"`
	Subtotal  float64        `json:"subtotal"`
	ItemCount int            `json:"itemCount"`
}

type OrderView struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	Items           []CartItemView `json:"items"`
	Total           float64        `json:"total"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	PaymentIntentID string         `json:"paymentIntentId,omitempty"`
}

type PaymentIntentView struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
