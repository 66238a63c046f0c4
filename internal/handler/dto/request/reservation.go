package request

import (
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateReservationRequest intentionally has no status or price field: the
// server fixes both, whatever the client sends.
type CreateReservationRequest struct {
	ResidenceID uuid.UUID `json:"residence_id" binding:"required"`
}

func (r *CreateReservationRequest) ToCommand() commands.CreateReservationCommand {
	return commands.CreateReservationCommand{
		ResidenceID: r.ResidenceID,
	}
}

type TransitionReservationRequest struct {
	Status string `json:"status" binding:"required"`
}
