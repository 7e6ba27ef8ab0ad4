package product

import "errors"

var (
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrTitleTooLong        = errors.New("title exceeds maximum length")
	ErrNegativePrice       = errors.New("purchase_price cannot be negative")
	ErrInvalidStatus       = errors.New("invalid product status")
	ErrAlreadySold         = errors.New("product already sold")
	ErrNotSold             = errors.New("product is not sold")
	ErrPurchasePriceLocked = errors.New("purchase_price is immutable once sold")
	ErrTooManyImages       = errors.New("too many images")
	ErrEmptyImageURL       = errors.New("image url cannot be empty")
)
