//go:build unit

package authz_test

import (
	"testing"

	"staybook/internal/domain/authz"
	"staybook/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func actor(role user.Role) authz.Actor {
	return authz.Actor{ID: uuid.New(), Role: role}
}

func TestCanActOnResidence(t *testing.T) {
	owner := actor(user.RoleOwner)
	admin := actor(user.RoleAdmin)
	client := actor(user.RoleClient)

	t.Run("create", func(t *testing.T) {
		cases := []struct {
			name  string
			actor authz.Actor
			want  bool
		}{
			{name: "client can create", actor: client, want: true},
			{name: "owner can create", actor: owner, want: true},
			{name: "admin can create", actor: admin, want: true},
			{name: "unknown role cannot create", actor: authz.Actor{ID: uuid.New(), Role: user.Role("ghost")}, want: false},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				got := authz.CanActOnResidence(c.actor, authz.ActionCreateResidence, authz.ResidenceRelation{})
				assert.Equal(t, c.want, got)
			})
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		rel := authz.ResidenceRelation{OwnerID: owner.ID}

		cases := []struct {
			name   string
			actor  authz.Actor
			action authz.Action
			want   bool
		}{
			{name: "owner updates own residence", actor: owner, action: authz.ActionUpdateResidence, want: true},
			{name: "owner deletes own residence", actor: owner, action: authz.ActionDeleteResidence, want: true},
			{name: "admin updates any residence", actor: admin, action: authz.ActionUpdateResidence, want: true},
			{name: "admin deletes any residence", actor: admin, action: authz.ActionDeleteResidence, want: true},
			{name: "client cannot update", actor: client, action: authz.ActionUpdateResidence, want: false},
			{name: "other owner cannot delete", actor: actor(user.RoleOwner), action: authz.ActionDeleteResidence, want: false},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.want, authz.CanActOnResidence(c.actor, c.action, rel))
			})
		}
	})

	t.Run("unknown action is denied", func(t *testing.T) {
		assert.False(t, authz.CanActOnResidence(admin, authz.Action("publish"), authz.ResidenceRelation{}))
	})
}

func TestCanActOnReservation(t *testing.T) {
	booker := actor(user.RoleClient)
	owner := actor(user.RoleOwner)
	stranger := actor(user.RoleClient)

	withOwner := authz.ReservationRelation{BookerID: booker.ID, ResidenceOwnerID: &owner.ID}
	orphaned := authz.ReservationRelation{BookerID: booker.ID, ResidenceOwnerID: nil}

	t.Run("transition is owner only", func(t *testing.T) {
		cases := []struct {
			name  string
			actor authz.Actor
			rel   authz.ReservationRelation
			want  bool
		}{
			{name: "residence owner transitions", actor: owner, rel: withOwner, want: true},
			{name: "booker cannot transition", actor: booker, rel: withOwner, want: false},
			{name: "stranger cannot transition", actor: stranger, rel: withOwner, want: false},
			{name: "owner check fails closed on orphan", actor: owner, rel: orphaned, want: false},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.want, authz.CanActOnReservation(c.actor, authz.ActionTransitionReservation, c.rel))
			})
		}
	})

	t.Run("view and delete honor dual access", func(t *testing.T) {
		for _, action := range []authz.Action{authz.ActionViewReservation, authz.ActionDeleteReservation} {
			cases := []struct {
				name  string
				actor authz.Actor
				rel   authz.ReservationRelation
				want  bool
			}{
				{name: "booker allowed", actor: booker, rel: withOwner, want: true},
				{name: "residence owner allowed", actor: owner, rel: withOwner, want: true},
				{name: "stranger denied", actor: stranger, rel: withOwner, want: false},
				{name: "booker keeps access to orphan", actor: booker, rel: orphaned, want: true},
				{name: "owner side fails closed on orphan", actor: owner, rel: orphaned, want: false},
			}

			for _, c := range cases {
				t.Run(string(action)+" "+c.name, func(t *testing.T) {
					assert.Equal(t, c.want, authz.CanActOnReservation(c.actor, action, c.rel))
				})
			}
		}
	})

	t.Run("create requires a valid role", func(t *testing.T) {
		assert.True(t, authz.CanActOnReservation(booker, authz.ActionCreateReservation, authz.ReservationRelation{}))
		assert.False(t, authz.CanActOnReservation(authz.Actor{ID: uuid.New(), Role: user.Role("ghost")}, authz.ActionCreateReservation, authz.ReservationRelation{}))
	})

	t.Run("unknown action is denied", func(t *testing.T) {
		assert.False(t, authz.CanActOnReservation(owner, authz.Action("refund"), withOwner))
	})
}

func TestCanViewOwnerStats(t *testing.T) {
	assert.True(t, authz.CanViewOwnerStats(actor(user.RoleOwner)))
	assert.True(t, authz.CanViewOwnerStats(actor(user.RoleClient)))
	assert.False(t, authz.CanViewOwnerStats(authz.Actor{}))
}
