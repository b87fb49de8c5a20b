package client_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/client/client"
	"inkwell/internal/logging"
	"inkwell/internal/server/auth"
	"inkwell/internal/server/content"
	"inkwell/internal/server/httpapi"
	"inkwell/internal/server/models"
	"inkwell/internal/server/records"
	"inkwell/internal/server/sessions"
	"inkwell/internal/server/store"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := logging.NewJSON(io.Discard)
	backend := store.NewMemoryBackend()
	window := time.Millisecond

	users := store.NewCollection[models.UsersDoc](backend, "users", window)
	msgs := store.NewCollection[models.RecordsDoc](backend, "messages", window)
	posts := store.NewCollection[models.RecordsDoc](backend, "posts", window)
	page := store.NewCollection[models.ContentDoc](backend, "content", window)

	sm := sessions.NewManager([]byte("test-secret"), time.Hour)
	srv := httpapi.New(
		auth.NewService(users, sm, logger),
		records.NewMessageService(msgs, 0, 0, logger),
		records.NewPostService(posts, 0, 0, 0, logger),
		content.NewService(page, 0, 0, logger),
		sm,
		time.Hour,
		logger,
	)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_AuthRoundTrip(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()

	c, err := client.New(ts.URL)
	require.NoError(t, err)

	ident, err := c.Register(ctx, "alice", "pw1", "editor")
	require.NoError(t, err)
	assert.Equal(t, "alice", ident.Username)
	assert.Equal(t, "editor", ident.Role)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, ident.ID, me.ID)

	require.NoError(t, c.Logout(ctx))

	_, err = c.Me(ctx)
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	_, err = c.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, client.ErrUnauthorized)

	_, err = c.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = c.Me(ctx)
	assert.NoError(t, err)
}

func TestClient_RegisterConflict(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()

	c, err := client.New(ts.URL)
	require.NoError(t, err)
	_, err = c.Register(ctx, "alice", "pw1", "")
	require.NoError(t, err)

	c2, err := client.New(ts.URL)
	require.NoError(t, err)
	_, err = c2.Register(ctx, "alice", "pw2", "")
	assert.ErrorIs(t, err, client.ErrConflict)
}

func TestClient_Messages(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()

	c, err := client.New(ts.URL)
	require.NoError(t, err)
	_, err = c.Register(ctx, "alice", "pw1", "")
	require.NoError(t, err)

	rec, err := c.PostMessage(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.AuthorName)

	edited, err := c.EditMessage(ctx, rec.ID, "hello again")
	require.NoError(t, err)
	assert.Equal(t, "hello again", edited.Content)

	msgs, err := c.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello again", msgs[0].Content)

	_, err = c.EditMessage(ctx, "no-such-id", "x")
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestClient_PostsAndContent(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()

	c, err := client.New(ts.URL)
	require.NoError(t, err)
	_, err = c.Register(ctx, "alice", "pw1", "editor")
	require.NoError(t, err)

	post, err := c.CreatePost(ctx, "Draft", "x", false)
	require.NoError(t, err)

	post, err = c.UpdatePost(ctx, post.ID, "Draft", "x", true)
	require.NoError(t, err)
	assert.True(t, post.Published)

	posts, err := c.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	require.NoError(t, c.DeletePost(ctx, post.ID))
	assert.ErrorIs(t, c.DeletePost(ctx, post.ID), client.ErrNotFound)

	_, err = c.UpdateContent(ctx, "v1")
	require.NoError(t, err)
	page, err := c.UpdateContent(ctx, "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", page.Current)
	require.Len(t, page.History, 1)
	assert.Equal(t, "v1", page.History[0].Content)
}

func TestClient_ReaderCannotCreatePosts(t *testing.T) {
	ts := startServer(t)
	ctx := context.Background()

	c, err := client.New(ts.URL)
	require.NoError(t, err)
	_, err = c.Register(ctx, "ron", "pw1", "reader")
	require.NoError(t, err)

	_, err = c.CreatePost(ctx, "T", "C", false)
	assert.ErrorIs(t, err, client.ErrForbidden)
}

func TestClient_ServerUnavailable(t *testing.T) {
	c, err := client.New("http://127.0.0.1:1") // nothing listens here
	require.NoError(t, err)

	_, err = c.Me(context.Background())
	if !errors.Is(err, client.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}
