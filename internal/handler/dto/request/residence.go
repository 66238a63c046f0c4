package request

import (
	"staybook/internal/domain/residence"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
)

type MediaRequest struct {
	URL  string `json:"url" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=image video"`
}

type CreateResidenceRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Type        string         `json:"type" binding:"required"`
	Price       int64          `json:"price" binding:"required"`
	Location    string         `json:"location" binding:"required"`
	Address     string         `json:"address"`
	Reference   string         `json:"reference"`
	Media       []MediaRequest `json:"media"`
	Amenities   []string       `json:"amenities"`
}

func (r *CreateResidenceRequest) ToCommand() commands.CreateResidenceCommand {
	return commands.CreateResidenceCommand{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Price:       r.Price,
		Location:    r.Location,
		Address:     r.Address,
		Reference:   r.Reference,
		Media:       toDomainMedia(r.Media),
		Amenities:   r.Amenities,
	}
}

// UpdateResidenceRequest is a patch: absent fields keep their stored value.
// media_to_delete names existing entries by URL; media appends new entries.
// A non-null amenities array replaces the stored set wholesale.
type UpdateResidenceRequest struct {
	Title         *string        `json:"title,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Type          *string        `json:"type,omitempty"`
	Price         *int64         `json:"price,omitempty"`
	Location      *string        `json:"location,omitempty"`
	Address       *string        `json:"address,omitempty"`
	Reference     *string        `json:"reference,omitempty"`
	MediaToDelete []string       `json:"media_to_delete,omitempty"`
	Media         []MediaRequest `json:"media,omitempty"`
	Amenities     []string       `json:"amenities,omitempty"`
}

func (r *UpdateResidenceRequest) ToCommand() commands.UpdateResidenceCommand {
	return commands.UpdateResidenceCommand{
		Title:         r.Title,
		Description:   r.Description,
		Type:          r.Type,
		Price:         r.Price,
		Location:      r.Location,
		Address:       r.Address,
		Reference:     r.Reference,
		MediaToDelete: r.MediaToDelete,
		MediaToAdd:    toDomainMedia(r.Media),
		Amenities:     r.Amenities,
	}
}

// ListResidencesRequest binds the public listing filters from the query
// string.
type ListResidencesRequest struct {
	Location *string `form:"location"`
	Title    *string `form:"title"`
	MaxPrice *int64  `form:"max_price"`
}

func (r *ListResidencesRequest) ToFilters() queries.ResidenceFilters {
	return queries.ResidenceFilters{
		Location: r.Location,
		Title:    r.Title,
		MaxPrice: r.MaxPrice,
	}
}

func toDomainMedia(in []MediaRequest) []residence.Media {
	if len(in) == 0 {
		return nil
	}
	out := make([]residence.Media, 0, len(in))
	for _, m := range in {
		out = append(out, residence.Media{
			URL:  m.URL,
			Kind: residence.MediaKind(m.Kind),
		})
	}
	return out
}
