package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talentlink/internal/models"
	"talentlink/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestLogin_SendsCredentialsAndParsesTokenPair(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "secret", body["password"])

		json.NewEncoder(w).Encode(map[string]string{"access": "acc-token", "refresh": "ref-token"})
	}))

	pair, err := client.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "acc-token", pair.Access)
	assert.Equal(t, "ref-token", pair.Refresh)
}

func TestWithToken_AttachesBearerHeader(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer acc-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Profile{})
	}))

	_, err := client.WithToken("acc-token").ListProfiles(context.Background())
	require.NoError(t, err)

	// The bare client stays credential-free.
	bare, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Profile{})
	}))
	_, err = bare.ListProfiles(context.Background())
	require.NoError(t, err)
}

func TestUpstreamFailure_KeepsStatusClassDistinct(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		upstream   int
		wantCode   apperrors.ErrorCode
		wantStatus int
	}{
		{"unauthorized", http.StatusUnauthorized, apperrors.CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden, apperrors.CodeForbidden, http.StatusForbidden},
		{"not found", http.StatusNotFound, apperrors.CodeNotFound, http.StatusNotFound},
		{"other 4xx", http.StatusUnprocessableEntity, apperrors.CodeValidationFailed, http.StatusBadRequest},
		{"server error", http.StatusInternalServerError, apperrors.CodeUpstreamError, http.StatusBadGateway},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.upstream)
			}))

			_, err := client.ListProjects(context.Background())
			require.Error(t, err)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantCode, appErr.Code)
			assert.Equal(t, tc.wantStatus, appErr.HTTPCode)
		})
	}
}

func TestUnreachableUpstream_ReportsBadGateway(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens here anymore

	client := NewClient(srv.URL, time.Second)
	_, err := client.ListContracts(context.Background())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUpstreamUnreachable, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode)
}

func TestMarkNotificationRead_PatchesIsRead(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/notifications/7/", r.URL.Path)

		var body map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body["is_read"])

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	}))

	require.NoError(t, client.MarkNotificationRead(context.Background(), 7))
}

func TestPatchProposalStatus_SendsStatusOnly(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/proposals/3/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"status": "accepted"}, body)

		w.Write([]byte("{}"))
	}))

	require.NoError(t, client.PatchProposalStatus(context.Background(), 3, models.ProposalStatusAccepted))
}

func TestMalformedResponse_ReportsUpstreamError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))

	_, err := client.ListReviews(context.Background())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUpstreamError, appErr.Code)
}
