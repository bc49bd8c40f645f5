package social

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinecircle/internal/activity"
	"cinecircle/internal/common"
	"cinecircle/internal/identity"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, *identity.MockDirectory) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	directory := identity.NewMockDirectory(ctrl)
	svc := NewService(NewStore(0), directory, activity.NewStore(0), nil)

	router := mux.NewRouter()
	RegisterRoutes(router, svc)
	return router, directory
}

func authedRequest(t *testing.T, method, target string, body interface{}, userID, username string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)

	token, err := common.GenerateToken(userID, username)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestHandler_SendRequest(t *testing.T) {
	t.Run("requires auth", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/api/friends/requests", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing toUserId", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := authedRequest(t, http.MethodPost, "/api/friends/requests", map[string]string{}, "u1", "alice")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		router, directory := newTestRouter(t)
		directory.EXPECT().Resolve(gomock.Any(), "u1").Return(identity.Profile{ID: "u1", Username: "alice"}, nil)
		directory.EXPECT().Resolve(gomock.Any(), "u2").Return(identity.Profile{ID: "u2", Username: "bob"}, nil)

		req := authedRequest(t, http.MethodPost, "/api/friends/requests", map[string]string{"toUserId": "u2"}, "u1", "alice")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var request FriendRequest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &request))
		assert.Equal(t, "u1", request.FromUserID)
		assert.Equal(t, RequestPending, request.Status)
	})

	t.Run("self target is a 400", func(t *testing.T) {
		router, _ := newTestRouter(t)
		req := authedRequest(t, http.MethodPost, "/api/friends/requests", map[string]string{"toUserId": "u1"}, "u1", "alice")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate is a 409", func(t *testing.T) {
		router, directory := newTestRouter(t)
		directory.EXPECT().Resolve(gomock.Any(), "u1").Return(identity.Profile{ID: "u1", Username: "alice"}, nil).Times(2)
		directory.EXPECT().Resolve(gomock.Any(), "u2").Return(identity.Profile{ID: "u2", Username: "bob"}, nil).Times(2)

		first := authedRequest(t, http.MethodPost, "/api/friends/requests", map[string]string{"toUserId": "u2"}, "u1", "alice")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, first)
		require.Equal(t, http.StatusCreated, rec.Code)

		second := authedRequest(t, http.MethodPost, "/api/friends/requests", map[string]string{"toUserId": "u2"}, "u1", "alice")
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, second)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_AcceptFlow(t *testing.T) {
	router, directory := newTestRouter(t)
	directory.EXPECT().Resolve(gomock.Any(), "u1").Return(identity.Profile{ID: "u1", Username: "alice"}, nil).AnyTimes()
	directory.EXPECT().Resolve(gomock.Any(), "u2").Return(identity.Profile{ID: "u2", Username: "bob"}, nil).AnyTimes()

	send := authedRequest(t, http.MethodPost, "/api/friends/requests", map[string]string{"toUserId": "u2"}, "u1", "alice")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, send)
	require.Equal(t, http.StatusCreated, rec.Code)

	var request FriendRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &request))

	// Receiver lists their incoming requests.
	list := authedRequest(t, http.MethodGet, "/api/friends/requests", nil, "u2", "bob")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, list)
	require.Equal(t, http.StatusOK, rec.Code)
	var pending []FriendRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 1)

	// Accept, then both sides see each other.
	accept := authedRequest(t, http.MethodPost, "/api/friends/requests/"+request.ID+"/accept", nil, "u2", "bob")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, accept)
	require.Equal(t, http.StatusOK, rec.Code)

	friends := authedRequest(t, http.MethodGet, "/api/friends", nil, "u1", "alice")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, friends)
	require.Equal(t, http.StatusOK, rec.Code)
	var edges []FriendEdge
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &edges))
	require.Len(t, edges, 1)
	assert.Equal(t, "bob", edges[0].Username)

	// A second accept of the same id is gone.
	again := authedRequest(t, http.MethodPost, "/api/friends/requests/"+request.ID+"/accept", nil, "u2", "bob")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, again)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_RemoveFriend(t *testing.T) {
	router, _ := newTestRouter(t)

	req := authedRequest(t, http.MethodDelete, "/api/friends/u9", nil, "u1", "alice")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
