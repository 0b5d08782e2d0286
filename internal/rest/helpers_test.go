package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/db"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/db/sqlite"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/live"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

const (
	adminEmail   = "coach@example.com"
	adminSubject = "coach-sub"
	viewerEmail  = "parent@example.com"

	emailHeader   = "X-Forwarded-Email"
	subjectHeader = "X-Forwarded-User"
)

var today = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	e       *echo.Echo
	store   *sqlite.Store
	manager *newsportal.Manager
	hub     *live.Hub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "news.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gate := auth.NewGate([]string{adminEmail})
	manager := newsportal.NewNewsManager(store, gate,
		newsportal.WithLogger(logger),
		newsportal.WithClock(func() time.Time { return today }),
	)
	hub := live.NewHub(manager, logger, nil)

	handler := NewNewsHandler(manager, hub, gate, Config{
		Identifier: auth.HeaderIdentifier{
			EmailHeader:   emailHeader,
			SubjectHeader: subjectHeader,
		},
		SignInURL:    "/oauth2/start",
		SignOutURL:   "/oauth2/sign_out",
		PingInterval: time.Second,
	}, logger)

	return &testEnv{
		e:       handler.RegisterRoutes(),
		store:   store,
		manager: manager,
		hub:     hub,
	}
}

func (env *testEnv) request(method, path, email, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	if email != "" {
		req.Header.Set(emailHeader, email)
		if email == adminEmail {
			req.Header.Set(subjectHeader, adminSubject)
		}
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) get(path, email string) *httptest.ResponseRecorder {
	return env.request(http.MethodGet, path, email, "", nil)
}

func (env *testEnv) postForm(path, email, form string) *httptest.ResponseRecorder {
	return env.request(http.MethodPost, path, email, echo.MIMEApplicationForm, strings.NewReader(form))
}

func (env *testEnv) sendJSON(method, path, email, body string) *httptest.ResponseRecorder {
	return env.request(method, path, email, echo.MIMEApplicationJSON, strings.NewReader(body))
}

// seed creates posts through the manager as the admin.
func (env *testEnv) seed(t *testing.T, forms ...newsportal.NewsForm) []newsportal.News {
	t.Helper()

	admin := &auth.Identity{Email: adminEmail, Subject: adminSubject}
	result := make([]newsportal.News, 0, len(forms))
	for _, f := range forms {
		n, err := env.manager.Create(context.Background(), admin, f)
		require.NoError(t, err)
		result = append(result, *n)
	}

	return result
}

// seedUndated inserts a legacy post without a date straight into the store.
func (env *testEnv) seedUndated(t *testing.T, title, description string) string {
	t.Helper()

	n, err := env.store.AddNews(context.Background(), &db.News{Title: title, Description: description})
	require.NoError(t, err)
	return n.ID
}
