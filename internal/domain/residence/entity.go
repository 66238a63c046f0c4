package residence

import (
	"strings"
	"time"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

type Residence struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       string
	description string
	kind        Type
	price       Price
	location    string
	address     string
	reference   Reference
	media       []Media
	amenities   []string
	status      Status
	rating      float64
	reviews     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewResidence validates every field and collects all violations so the
// caller can report them in one response. Owner is fixed at creation.
func NewResidence(
	ownerID uuid.UUID,
	title, description string,
	kind Type,
	price int64,
	location, address string,
	reference string,
	media []Media,
	amenities []string,
) (*Residence, error) {
	var violations []string

	title = strings.TrimSpace(title)
	if title == "" {
		violations = append(violations, ErrEmptyTitle.Error())
	} else if len(title) > MaxTitleLength {
		violations = append(violations, ErrTitleTooLong.Error())
	}

	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLen {
		violations = append(violations, ErrDescriptionLong.Error())
	}

	if !kind.IsValid() {
		violations = append(violations, ErrInvalidType.Error())
	}

	p, err := NewPrice(price)
	if err != nil {
		violations = append(violations, err.Error())
	}

	location = strings.TrimSpace(location)
	if location == "" {
		violations = append(violations, ErrEmptyLocation.Error())
	}

	for _, m := range media {
		if !m.Kind.IsValid() {
			violations = append(violations, ErrInvalidMediaKind.Error())
			break
		}
	}

	if len(violations) > 0 {
		return nil, errs.NewValidationError(violations...)
	}

	return &Residence{
		id:          uuid.New(),
		ownerID:     ownerID,
		title:       title,
		description: description,
		kind:        kind,
		price:       p,
		location:    location,
		address:     strings.TrimSpace(address),
		reference:   NewReference(reference),
		media:       media,
		amenities:   normalizeAmenities(amenities),
		status:      StatusAvailable,
	}, nil
}

func ReconstructResidence(
	id, ownerID uuid.UUID,
	title, description string,
	kind Type,
	price Price,
	location, address string,
	reference Reference,
	media []Media,
	amenities []string,
	status Status,
	rating float64,
	reviews int,
	createdAt, updatedAt time.Time,
) *Residence {
	return &Residence{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		kind:        kind,
		price:       price,
		location:    location,
		address:     address,
		reference:   reference,
		media:       media,
		amenities:   amenities,
		status:      status,
		rating:      rating,
		reviews:     reviews,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ApplyMediaUpdate rebuilds the media list for an update: existing entries
// survive unless their URL is listed in remove; newly attached entries are
// appended after the kept ones, preserving order.
func (r *Residence) ApplyMediaUpdate(remove []string, add []Media) {
	removeSet := make(map[string]struct{}, len(remove))
	for _, u := range remove {
		removeSet[u] = struct{}{}
	}

	kept := make([]Media, 0, len(r.media)+len(add))
	for _, m := range r.media {
		if _, drop := removeSet[m.URL]; !drop {
			kept = append(kept, m)
		}
	}
	r.media = append(kept, add...)
}

// ReplaceAmenities replaces the amenity set wholesale; it is never merged.
func (r *Residence) ReplaceAmenities(amenities []string) {
	r.amenities = normalizeAmenities(amenities)
}

func normalizeAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

func (r *Residence) ID() uuid.UUID        { return r.id }
func (r *Residence) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Residence) Title() string        { return r.title }
func (r *Residence) Description() string  { return r.description }
func (r *Residence) Kind() Type           { return r.kind }
func (r *Residence) Price() Price         { return r.price }
func (r *Residence) Location() string     { return r.location }
func (r *Residence) Address() string      { return r.address }
func (r *Residence) Reference() Reference { return r.reference }
func (r *Residence) Media() []Media       { return r.media }
func (r *Residence) Amenities() []string  { return r.amenities }
func (r *Residence) Status() Status       { return r.status }
func (r *Residence) Rating() float64      { return r.rating }
func (r *Residence) ReviewsCount() int    { return r.reviews }
func (r *Residence) CreatedAt() time.Time { return r.createdAt }
func (r *Residence) UpdatedAt() time.Time { return r.updatedAt }
