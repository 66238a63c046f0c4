//go:build unit || e2e

package builder

import (
	"time"

	domres "staybook/internal/domain/residence"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResidenceBuilder struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Type        string
	Price       int64
	Location    string
	Address     string
	Reference   string
	Media       []domres.Media
	Amenities   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewResidenceBuilder() *ResidenceBuilder {
	now := time.Now()
	return &ResidenceBuilder{
		OwnerID:     uuid.New(),
		Title:       "Seaside Apartment",
		Description: "Two bedrooms with a view of the harbor",
		Type:        "apartment",
		Price:       5000,
		Location:    "Lisbon",
		Address:     "12 Rua do Mar",
		Reference:   "",
		Media: []domres.Media{
			{URL: "/uploads/seaside-1.jpg", Kind: domres.MediaImage},
		},
		Amenities: []string{"wifi", "kitchen"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ResidenceBuilder) With(mutate func(*ResidenceBuilder)) *ResidenceBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ResidenceBuilder) BuildDomain() (*domres.Residence, error) {
	return domres.NewResidence(
		b.OwnerID,
		b.Title, b.Description,
		domres.Type(b.Type),
		b.Price,
		b.Location, b.Address,
		b.Reference,
		b.Media,
		b.Amenities,
	)
}

func (b *ResidenceBuilder) BuildCreateRequestDTO() reqdto.CreateResidenceRequest {
	media := make([]reqdto.MediaRequest, 0, len(b.Media))
	for _, m := range b.Media {
		media = append(media, reqdto.MediaRequest{URL: m.URL, Kind: string(m.Kind)})
	}
	return reqdto.CreateResidenceRequest{
		Title:       b.Title,
		Description: b.Description,
		Type:        b.Type,
		Price:       b.Price,
		Location:    b.Location,
		Address:     b.Address,
		Reference:   b.Reference,
		Media:       media,
		Amenities:   b.Amenities,
	}
}

func (b *ResidenceBuilder) BuildUpdateRequestDTO() reqdto.UpdateResidenceRequest {
	title := b.Title
	price := b.Price
	return reqdto.UpdateResidenceRequest{
		Title: &title,
		Price: &price,
	}
}

func (b *ResidenceBuilder) BuildViewQuery() *queries.ResidenceView {
	media := make([]queries.MediaView, 0, len(b.Media))
	for _, m := range b.Media {
		media = append(media, queries.MediaView{URL: m.URL, Kind: string(m.Kind)})
	}
	var ref *string
	if b.Reference != "" {
		r := b.Reference
		ref = &r
	}
	return &queries.ResidenceView{
		ID:          uuid.New(),
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		Description: b.Description,
		Type:        b.Type,
		Price:       b.Price,
		Location:    b.Location,
		Address:     b.Address,
		Reference:   ref,
		Media:       media,
		Amenities:   b.Amenities,
		Status:      "available",
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *ResidenceBuilder) WithOwnerID(id uuid.UUID) *ResidenceBuilder {
	b.OwnerID = id
	return b
}

func (b *ResidenceBuilder) WithTitle(title string) *ResidenceBuilder {
	b.Title = title
	return b
}

func (b *ResidenceBuilder) WithDescription(description string) *ResidenceBuilder {
	b.Description = description
	return b
}

func (b *ResidenceBuilder) WithType(t string) *ResidenceBuilder {
	b.Type = t
	return b
}

func (b *ResidenceBuilder) WithPrice(price int64) *ResidenceBuilder {
	b.Price = price
	return b
}

func (b *ResidenceBuilder) WithLocation(location string) *ResidenceBuilder {
	b.Location = location
	return b
}

func (b *ResidenceBuilder) WithReference(reference string) *ResidenceBuilder {
	b.Reference = reference
	return b
}

func (b *ResidenceBuilder) WithMedia(media []domres.Media) *ResidenceBuilder {
	b.Media = media
	return b
}

func (b *ResidenceBuilder) WithAmenities(amenities []string) *ResidenceBuilder {
	b.Amenities = amenities
	return b
}
