package request

type AddToCartRequest struct {
	BookID   int64 `json:"bookId" binding:"required"`
	Quantity *int  `json:"quantity,omitempty"`
}

// SetQuantityRequest removes the line when quantity is 0 or less.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
