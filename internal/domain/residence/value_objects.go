package residence

import (
	"errors"
	"strings"
)

var (
	ErrPriceOutOfRange  = errors.New("price must be between 1000 and 1000000")
	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title cannot exceed 100 characters")
	ErrDescriptionLong  = errors.New("description cannot exceed 1000 characters")
	ErrEmptyLocation    = errors.New("location is required")
	ErrInvalidType      = errors.New("invalid residence type")
	ErrInvalidMediaKind = errors.New("invalid media kind")
	ErrInvalidRating    = errors.New("rating must be between 0 and 5")
	ErrNegativeReviews  = errors.New("reviews count cannot be negative")
)

const (
	MinPrice          = 1000
	MaxPrice          = 1000000
	MaxTitleLength    = 100
	MaxDescriptionLen = 1000
)

// Price is a nightly rate, bounded to [MinPrice, MaxPrice].
type Price struct {
	value int64
}

func NewPrice(v int64) (Price, error) {
	if v < MinPrice || v > MaxPrice {
		return Price{}, ErrPriceOutOfRange
	}
	return Price{value: v}, nil
}

func (p Price) Value() int64 {
	return p.value
}

// Reference is an optional, globally unique listing code. Empty means unset.
type Reference struct {
	value string
}

func NewReference(s string) Reference {
	return Reference{value: strings.TrimSpace(s)}
}

func (r Reference) Value() string {
	return r.value
}

func (r Reference) IsEmpty() bool {
	return r.value == ""
}
