package cli

import (
	"bufio"
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/client/config"
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

// stubInputs replaces the interactive input seams with queued canned answers.
func stubInputs(t *testing.T, texts []string, password string) {
	t.Helper()

	origText, origPw, origMulti := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origText, origPw, origMulti
	})

	i := 0
	next := func() string {
		if i >= len(texts) {
			t.Fatalf("input queue exhausted after %d answers", i)
		}
		s := texts[i]
		i++
		return s
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return next(), nil
	}
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return next(), nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	ts := startServer(t)
	app, err := NewApp(&config.Config{ServerURL: ts.URL})
	require.NoError(t, err)
	return app
}

func TestApp_RegisterAndMessages(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"alice", ""}, "pw1") // username, role
	require.NoError(t, app.Register(ctx))
	assert.True(t, app.isLoggedIn())
	assert.Contains(t, app.getStatus(), "alice")

	stubInputs(t, []string{"hi there"}, "")
	require.NoError(t, app.Say(ctx))
	require.NoError(t, app.Messages(ctx))
	require.NoError(t, app.WhoAmI(ctx))

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "", app.getStatus())

	stubInputs(t, []string{"alice"}, "pw1")
	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())
}

func TestApp_ComposePublishRemove(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"ed", "editor"}, "pw1")
	require.NoError(t, app.Register(ctx))

	// compose a draft: title, body (multiline), publish answer
	stubInputs(t, []string{"My Title", "draft body", "n"}, "")
	require.NoError(t, app.Compose(ctx))

	posts, err := app.api.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.False(t, posts[0].Published)

	stubInputs(t, []string{posts[0].ID}, "")
	require.NoError(t, app.Publish(ctx))

	posts, err = app.api.Posts(ctx)
	require.NoError(t, err)
	require.True(t, posts[0].Published)

	stubInputs(t, []string{posts[0].ID}, "")
	require.NoError(t, app.Remove(ctx))

	posts, err = app.api.Posts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestApp_Page(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Page(ctx), "the page is readable before login")

	stubInputs(t, []string{"eve", "editor"}, "pw1")
	require.NoError(t, app.Register(ctx))

	stubInputs(t, []string{"fresh content"}, "")
	require.NoError(t, app.EditPage(ctx))

	page, err := app.api.Content(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh content", page.Current)
}

func TestApp_RegisterFailsOnDuplicate(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stubInputs(t, []string{"dup", ""}, "pw1")
	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Logout(ctx))

	stubInputs(t, []string{"dup", ""}, "pw2")
	assert.Error(t, app.Register(ctx))
	assert.False(t, app.isLoggedIn())
}
