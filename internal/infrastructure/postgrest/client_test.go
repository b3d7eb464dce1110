package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuzu875641/phpbbs/internal/core/domain"
	"github.com/yuzu875641/phpbbs/internal/core/repository"
	"github.com/yuzu875641/phpbbs/pkg/config"
)

// recordedRequest captures what the store saw for wire-level assertions.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// storeStub is an httptest server that records every request and replies
// with a canned status and body.
type storeStub struct {
	server   *httptest.Server
	requests []recordedRequest
	status   int
	body     string
}

func newStoreStub(t *testing.T, status int, body string) *storeStub {
	t.Helper()

	stub := &storeStub{status: status, body: body}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		stub.requests = append(stub.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   data,
		})
		w.WriteHeader(stub.status)
		w.Write([]byte(stub.body))
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *storeStub) client() *Client {
	cfg := &config.Config{StoreURL: s.server.URL, StoreAPIKey: "test-key"}
	return NewClient(cfg, zerolog.Nop())
}

func (s *storeStub) lastRequest(t *testing.T) recordedRequest {
	t.Helper()
	require.NotEmpty(t, s.requests)
	return s.requests[len(s.requests)-1]
}

func TestClientSendsStoreCredentials(t *testing.T) {
	stub := newStoreStub(t, http.StatusOK, "[]")

	var out []domain.User
	err := stub.client().Select(context.Background(), "users", Eq("username", "alice"), &out)
	require.NoError(t, err)

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/rest/v1/users", req.Path)
	assert.Equal(t, "username=eq.alice", req.Query)
	assert.Equal(t, "test-key", req.Header.Get("apikey"))
	assert.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "return=representation", req.Header.Get("Prefer"))
}

func TestClientPropagatesStoreStatus(t *testing.T) {
	stub := newStoreStub(t, http.StatusInternalServerError, `{"message":"broken"}`)

	var out []domain.Post
	err := stub.client().Select(context.Background(), "posts", "", &out)
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, http.StatusInternalServerError, storeErr.Status)
	assert.Contains(t, storeErr.Body, "broken")
}

func TestUserRepositoryFindByUsername(t *testing.T) {
	t.Run("zero rows means not found, not failure", func(t *testing.T) {
		stub := newStoreStub(t, http.StatusOK, "[]")
		repo := NewUserRepository(stub.client())

		_, err := repo.FindByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("existing row is decoded", func(t *testing.T) {
		stub := newStoreStub(t, http.StatusOK,
			`[{"username":"bob","role":"speaker","hashed_seed":"e8bc163c"}]`)
		repo := NewUserRepository(stub.client())

		user, err := repo.FindByUsername(context.Background(), "bob")
		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.Equal(t, domain.RoleSpeaker, user.Role)

		req := stub.lastRequest(t)
		assert.Equal(t, "username=eq.bob", req.Query)
	})

	t.Run("store failure is not masked as not found", func(t *testing.T) {
		stub := newStoreStub(t, http.StatusBadGateway, "")
		repo := NewUserRepository(stub.client())

		_, err := repo.FindByUsername(context.Background(), "bob")
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestUserRepositoryCreate(t *testing.T) {
	stub := newStoreStub(t, http.StatusCreated, "[]")
	repo := NewUserRepository(stub.client())

	user := &domain.User{Username: "bob", Role: domain.RoleSpeaker, HashedSeed: "e8bc163c"}
	require.NoError(t, repo.Create(context.Background(), user))

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/rest/v1/users", req.Path)

	var sent map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, "bob", sent["username"])
	assert.Equal(t, "speaker", sent["role"])
	assert.Equal(t, "e8bc163c", sent["hashed_seed"])
}

func TestPostRepositoryCreate(t *testing.T) {
	stub := newStoreStub(t, http.StatusCreated,
		`[{"id":41,"username":"bob","user_id":"e8bc163","message":"Hi all","created_at":"2026-08-28T01:02:03Z"}]`)
	repo := NewPostRepository(stub.client())

	post := &domain.Post{Username: "bob", UserID: "e8bc163", Message: "Hi all"}
	require.NoError(t, repo.Create(context.Background(), post))

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, "bob", sent["username"])
	assert.Equal(t, "e8bc163", sent["user_id"])
	assert.Equal(t, "Hi all", sent["message"])
	assert.NotContains(t, sent, "id", "the store assigns ids")
	assert.NotContains(t, sent, "created_at", "the store assigns timestamps")

	// The returned representation fills in the assigned fields.
	assert.Equal(t, int64(41), post.ID)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestPostRepositoryListNewestFirst(t *testing.T) {
	stub := newStoreStub(t, http.StatusOK,
		`[{"id":2,"username":"bob","user_id":"e8bc163","message":"later","created_at":"2026-08-28T02:00:00Z"},
		  {"id":1,"username":"bob","user_id":"e8bc163","message":"earlier","created_at":"2026-08-28T01:00:00Z"}]`)
	repo := NewPostRepository(stub.client())

	posts, err := repo.ListNewestFirst(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "later", posts[0].Message)

	req := stub.lastRequest(t)
	assert.Equal(t, "order=created_at.desc", req.Query)
}

func TestPostRepositoryDeleteAll(t *testing.T) {
	stub := newStoreStub(t, http.StatusNoContent, "")
	repo := NewPostRepository(stub.client())

	require.NoError(t, repo.DeleteAll(context.Background()))

	req := stub.lastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/rest/v1/posts", req.Path)
	assert.Equal(t, "delete_all=true", req.Query)
}

func TestTopicRepository(t *testing.T) {
	t.Run("current topic", func(t *testing.T) {
		stub := newStoreStub(t, http.StatusOK, `[{"id":1,"content":"Weather"}]`)
		repo := NewTopicRepository(stub.client())

		topic, err := repo.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Weather", topic.Content)
	})

	t.Run("missing topic row", func(t *testing.T) {
		stub := newStoreStub(t, http.StatusOK, "[]")
		repo := NewTopicRepository(stub.client())

		_, err := repo.Current(context.Background())
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("set content patches the singleton row", func(t *testing.T) {
		stub := newStoreStub(t, http.StatusOK, "[]")
		repo := NewTopicRepository(stub.client())

		require.NoError(t, repo.SetContent(context.Background(), domain.TopicID, "Weather"))

		req := stub.lastRequest(t)
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/rest/v1/topics", req.Path)
		assert.Equal(t, "id=eq.1", req.Query)

		var sent map[string]string
		require.NoError(t, json.Unmarshal(req.Body, &sent))
		assert.Equal(t, map[string]string{"content": "Weather"}, sent)
	})
}

func TestClientUnreachableStore(t *testing.T) {
	cfg := &config.Config{StoreURL: "http://127.0.0.1:1", StoreAPIKey: "test-key"}
	client := NewClient(cfg, zerolog.Nop())

	var out []domain.Post
	err := client.Select(context.Background(), "posts", "", &out)
	require.Error(t, err)

	var storeErr *StoreError
	assert.False(t, errors.As(err, &storeErr), "transport failures are not store statuses")
}
