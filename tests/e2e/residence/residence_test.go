//go:build e2e

package residence_test

import (
	"net/http"
	"testing"

	"staybook/internal/domain/user"
	"staybook/internal/handler/dto/request"
	"staybook/internal/handler/dto/response"
	"staybook/tests/common/authtest"
	"staybook/tests/common/builder"
	"staybook/tests/common/httptest"
	"staybook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	residencesURL      = "/api/residences"
	ownerResidencesURL = "/api/residences/owner"
)

type ResidenceSuite struct {
	e2e.SharedSuite
}

func TestResidenceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ResidenceSuite))
}

func (s *ResidenceSuite) createResidence(token string, reqBody request.CreateResidenceRequest) response.ResidenceResponse {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, residencesURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ResidenceResponse
	err := httptest.DecodeResponseBody(t, w.Body, &created)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	return created
}

func (s *ResidenceSuite) TestCreateResidence() {
	s.Run("owner creates a listing and anyone can read it back", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))

		reqBody := builder.NewResidenceBuilder().
			WithTitle("Harbor Loft").
			WithPrice(7500).
			WithReference("LIS-001").
			BuildCreateRequestDTO()

		created := s.createResidence(ownerToken, reqBody)

		// Detail is public, no token needed.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			residencesURL+"/"+created.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.ResidenceResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actual)
		require.NoError(t, err)

		ref := "LIS-001"
		expected := &response.ResidenceResponse{
			Title:       "Harbor Loft",
			Description: "Two bedrooms with a view of the harbor",
			Type:        "apartment",
			Price:       7500,
			Location:    "Lisbon",
			Address:     "12 Rua do Mar",
			Reference:   &ref,
			Media:       []response.MediaResponse{{URL: "/uploads/seaside-1.jpg", Kind: "image"}},
			Amenities:   []string{"wifi", "kitchen"},
			Status:      "available",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ResidenceResponse{}, "ID", "OwnerID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("residence response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("duplicate reference is rejected", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))

		first := builder.NewResidenceBuilder().WithReference("LIS-001").BuildCreateRequestDTO()
		s.createResidence(ownerToken, first)

		second := builder.NewResidenceBuilder().
			WithTitle("Another Listing").
			WithReference("LIS-001").
			BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, residencesURL, second, ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Reference already in use")
	})

	s.Run("domain validation failures return the violation list", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))

		reqBody := builder.NewResidenceBuilder().WithPrice(1).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, residencesURL, reqBody, ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid residence data")
	})

	s.Run("unauthenticated create is rejected", func() {
		t := s.T()

		reqBody := builder.NewResidenceBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, residencesURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *ResidenceSuite) TestListResidences() {
	s.Run("public list honors location and price filters", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))

		s.createResidence(ownerToken, builder.NewResidenceBuilder().
			WithTitle("Harbor Loft").WithLocation("Lisbon").WithPrice(5000).
			BuildCreateRequestDTO())
		s.createResidence(ownerToken, builder.NewResidenceBuilder().
			WithTitle("Mountain Villa").WithLocation("Porto").WithPrice(9000).
			BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			residencesURL+"?location=Lisbon&max_price=6000", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.ResidenceResponse
		err := httptest.DecodeResponseBody(t, w.Body, &items)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, "Harbor Loft", items[0].Title)
	})

	s.Run("owner list only returns the caller's residences", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleOwner))

		mine := s.createResidence(ownerToken, builder.NewResidenceBuilder().
			WithTitle("Harbor Loft").BuildCreateRequestDTO())
		s.createResidence(otherToken, builder.NewResidenceBuilder().
			WithTitle("Mountain Villa").BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ownerResidencesURL, nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.ResidenceResponse
		err := httptest.DecodeResponseBody(t, w.Body, &items)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, mine.ID, items[0].ID)
	})

	s.Run("missing residence returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			residencesURL+"/"+uuid.New().String(), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Residence not found")
	})
}

func (s *ResidenceSuite) TestUpdateResidence() {
	s.Run("owner patches fields and reworks media", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))
		created := s.createResidence(ownerToken, builder.NewResidenceBuilder().BuildCreateRequestDTO())

		title := "Harbor Loft Deluxe"
		price := int64(6500)
		reqBody := request.UpdateResidenceRequest{
			Title:         &title,
			Price:         &price,
			MediaToDelete: []string{"/uploads/seaside-1.jpg"},
			Media:         []request.MediaRequest{{URL: "/uploads/seaside-2.jpg", Kind: "image"}},
			Amenities:     []string{"wifi", "parking"},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			residencesURL+"/"+created.ID.String(), reqBody, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ResidenceResponse
		err := httptest.DecodeResponseBody(t, w.Body, &updated)
		require.NoError(t, err)

		require.Equal(t, "Harbor Loft Deluxe", updated.Title)
		require.Equal(t, int64(6500), updated.Price)
		require.Equal(t, []response.MediaResponse{{URL: "/uploads/seaside-2.jpg", Kind: "image"}}, updated.Media)
		require.Equal(t, []string{"wifi", "parking"}, updated.Amenities)
		// Untouched fields keep their stored value.
		require.Equal(t, created.Location, updated.Location)
	})

	s.Run("another owner cannot touch the listing", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleOwner))
		created := s.createResidence(ownerToken, builder.NewResidenceBuilder().BuildCreateRequestDTO())

		title := "Hijacked"
		reqBody := request.UpdateResidenceRequest{Title: &title}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			residencesURL+"/"+created.ID.String(), reqBody, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("admin can patch any listing", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		created := s.createResidence(ownerToken, builder.NewResidenceBuilder().BuildCreateRequestDTO())

		title := "Curated Listing"
		reqBody := request.UpdateResidenceRequest{Title: &title}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			residencesURL+"/"+created.ID.String(), reqBody, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *ResidenceSuite) TestDeleteResidence() {
	s.Run("owner deletes their listing", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))
		created := s.createResidence(ownerToken, builder.NewResidenceBuilder().BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			residencesURL+"/"+created.ID.String(), nil, ownerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			residencesURL+"/"+created.ID.String(), nil, "")
		httptest.AssertErrorResponse(t, gw, http.StatusNotFound, "Residence not found")
	})

	s.Run("a client cannot delete someone else's listing", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleOwner))
		clientToken := authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", string(user.RoleClient))
		created := s.createResidence(ownerToken, builder.NewResidenceBuilder().BuildCreateRequestDTO())

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			residencesURL+"/"+created.ID.String(), nil, clientToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}
