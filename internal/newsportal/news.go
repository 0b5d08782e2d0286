package newsportal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/db"
)

const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Store is the news collection. db.Repository and sqlite.Store implement it.
type Store interface {
	News(ctx context.Context) ([]db.News, error)
	NewsByID(ctx context.Context, newsID string) (*db.News, error)
	AddNews(ctx context.Context, news *db.News) (*db.News, error)
	UpdateNews(ctx context.Context, news *db.News) (*db.News, error)
	DeleteNews(ctx context.Context, newsID string) (bool, error)
}

// Authorizer decides admin capability. It is asked on every mutation.
type Authorizer interface {
	Allows(id *auth.Identity) bool
}

// Notifier is poked after every successful mutation.
type Notifier interface {
	Notify()
}

// MutationObserver records the outcome of each mutation attempt.
type MutationObserver interface {
	ObserveMutation(op string, err error)
}

type Option func(*Manager)

func WithNotifier(n Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

func WithObserver(o MutationObserver) Option {
	return func(m *Manager) { m.observer = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

type Manager struct {
	db       Store
	gate     Authorizer
	notifier Notifier
	observer MutationObserver
	log      *slog.Logger
	now      func() time.Time
}

func NewNewsManager(store Store, gate Authorizer, opts ...Option) *Manager {
	m := &Manager{
		db:   store,
		gate: gate,
		log:  slog.Default(),
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// List reads the whole collection, newest first.
func (m *Manager) List(ctx context.Context) (NewsList, error) {
	dbNews, err := m.db.News(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	return NewNewsList(dbNews), nil
}

func (m *Manager) ByID(ctx context.Context, newsID string) (*News, error) {
	dbNews, err := m.db.NewsByID(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	} else if dbNews == nil {
		return nil, nil
	}

	news := NewNews(dbNews)
	return &news, nil
}

// Save creates a post when form.ID is empty and updates it otherwise.
func (m *Manager) Save(ctx context.Context, id *auth.Identity, form NewsForm) (*News, error) {
	if strings.TrimSpace(form.ID) == "" {
		return m.Create(ctx, id, form)
	}

	return m.Update(ctx, id, form)
}

func (m *Manager) Create(ctx context.Context, id *auth.Identity, form NewsForm) (news *News, err error) {
	defer func() { m.observe(OpCreate, err) }()

	if !m.gate.Allows(id) {
		return nil, ErrForbidden
	}

	in, err := m.validate(form)
	if err != nil {
		return nil, err
	}

	row := in.toDB()
	row.AuthorID = &id.Subject

	m.log.DebugContext(ctx, "create news", "title", in.Title, "date", in.Date, "author", id.Subject)

	added, err := m.db.AddNews(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("db add news: %w", err)
	}

	m.changed()

	result := NewNews(added)
	return &result, nil
}

// Update replaces title, date, description and video link. Provenance fields are never sent.
func (m *Manager) Update(ctx context.Context, id *auth.Identity, form NewsForm) (news *News, err error) {
	defer func() { m.observe(OpUpdate, err) }()

	if !m.gate.Allows(id) {
		return nil, ErrForbidden
	}

	in, err := m.validate(form)
	if err != nil {
		return nil, err
	}
	if in.ID == "" {
		return nil, &ValidationError{Field: "id", Message: "news id is required"}
	}

	m.log.DebugContext(ctx, "update news", "id", in.ID, "title", in.Title, "date", in.Date)

	updated, err := m.db.UpdateNews(ctx, in.toDB())
	if err != nil {
		return nil, fmt.Errorf("db update news: %w", err)
	} else if updated == nil {
		return nil, ErrNotFound
	}

	m.changed()

	result := NewNews(updated)
	return &result, nil
}

func (m *Manager) Delete(ctx context.Context, id *auth.Identity, newsID string) (err error) {
	defer func() { m.observe(OpDelete, err) }()

	if !m.gate.Allows(id) {
		return ErrForbidden
	}

	newsID = strings.TrimSpace(newsID)
	if newsID == "" {
		return &ValidationError{Field: "id", Message: "news id is required"}
	}

	ok, err := m.db.DeleteNews(ctx, newsID)
	if err != nil {
		return fmt.Errorf("db delete news: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	m.changed()

	return nil
}

// Export renders a fresh read of the collection as indented JSON.
func (m *Manager) Export(ctx context.Context, id *auth.Identity) (string, error) {
	if !m.gate.Allows(id) {
		return "", ErrForbidden
	}

	list, err := m.List(ctx)
	if err != nil {
		return "", err
	}

	if list == nil {
		list = NewsList{}
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal news: %w", err)
	}

	return string(data), nil
}

// newsInput is a NewsForm after trimming and validation.
type newsInput struct {
	ID          string
	Title       string
	Date        string
	Description string
	VideoURL    *string
}

func (m *Manager) validate(form NewsForm) (newsInput, error) {
	in := newsInput{
		ID:          strings.TrimSpace(form.ID),
		Title:       strings.TrimSpace(form.Title),
		Date:        strings.TrimSpace(form.Date),
		Description: strings.TrimSpace(form.Description),
	}

	if in.Title == "" || in.Description == "" {
		field := "title"
		if in.Title != "" {
			field = "description"
		}
		return in, &ValidationError{Field: field, Message: "Please fill out the title and description."}
	}

	if in.Date == "" {
		in.Date = m.now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return in, &ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format."}
	}

	if v := strings.TrimSpace(form.VideoURL); v != "" {
		in.VideoURL = &v
	}

	return in, nil
}

func (m *Manager) changed() {
	if m.notifier != nil {
		m.notifier.Notify()
	}
}

func (m *Manager) observe(op string, err error) {
	if m.observer != nil {
		m.observer.ObserveMutation(op, err)
	}
}
