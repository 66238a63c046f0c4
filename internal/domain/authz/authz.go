// Package authz decides whether an authenticated actor may perform an action
// on a residence or reservation. Decisions are pure functions over the actor
// and the already-resolved ownership relations; nothing here touches storage.
package authz

import (
	"staybook/internal/domain/user"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreateResidence       Action = "create-residence"
	ActionUpdateResidence       Action = "update-residence"
	ActionDeleteResidence       Action = "delete-residence"
	ActionCreateReservation     Action = "create-reservation"
	ActionViewReservation       Action = "view-reservation"
	ActionTransitionReservation Action = "transition-reservation"
	ActionDeleteReservation     Action = "delete-reservation"
	ActionViewOwnerStats        Action = "view-owner-stats"
)

// Actor is an authenticated identity plus its role.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// ResidenceRelation carries the ownership facts needed to authorize an action
// against a residence.
type ResidenceRelation struct {
	OwnerID uuid.UUID
}

// ReservationRelation carries both sides of the dual-access rule. A nil
// ResidenceOwnerID means the residence reference could not be resolved; any
// check that depends on the owner side then fails closed.
type ReservationRelation struct {
	BookerID         uuid.UUID
	ResidenceOwnerID *uuid.UUID
}

func (a Actor) isAdmin() bool {
	return a.Role == user.RoleAdmin
}

// CanActOnResidence evaluates residence-scoped actions.
func CanActOnResidence(actor Actor, action Action, rel ResidenceRelation) bool {
	switch action {
	case ActionCreateResidence:
		return actor.Role.IsValid()
	case ActionUpdateResidence, ActionDeleteResidence:
		return actor.ID == rel.OwnerID || actor.isAdmin()
	default:
		return false
	}
}

// CanActOnReservation evaluates reservation-scoped actions.
func CanActOnReservation(actor Actor, action Action, rel ReservationRelation) bool {
	switch action {
	case ActionCreateReservation:
		return actor.Role.IsValid()
	case ActionTransitionReservation:
		return rel.ResidenceOwnerID != nil && actor.ID == *rel.ResidenceOwnerID
	case ActionViewReservation, ActionDeleteReservation:
		if actor.ID == rel.BookerID {
			return true
		}
		return rel.ResidenceOwnerID != nil && actor.ID == *rel.ResidenceOwnerID
	default:
		return false
	}
}

// CanViewOwnerStats is allowed for any authenticated actor; the stats query
// itself is scoped to residences the actor owns.
func CanViewOwnerStats(actor Actor) bool {
	return actor.ID != uuid.Nil
}
