package rpc

import (
	"context"
	"errors"
	"strings"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

//go:generate zenrpc

// NewsService provides RPC methods for news operations.
type NewsService struct {
	zenrpc.Service
	manager *newsportal.Manager
	gate    *auth.Gate
}

func NewNewsService(manager *newsportal.Manager, gate *auth.Gate) *NewsService {
	return &NewsService{manager: manager, gate: gate}
}

// newError maps domain errors to RPC error codes.
func newError(err error) error {
	var verr *newsportal.ValidationError
	switch {
	case errors.As(err, &verr):
		return zenrpc.NewStringError(400, verr.Message)
	case errors.Is(err, newsportal.ErrForbidden):
		return zenrpc.NewStringError(403, err.Error())
	case errors.Is(err, newsportal.ErrNotFound):
		return zenrpc.NewStringError(404, err.Error())
	}

	return err
}

// List returns all news sorted by date DESC, undated last.
//
//zenrpc:return list of news
//zenrpc:500 internal server error
func (s NewsService) List(ctx context.Context) ([]News, error) {
	list, err := s.manager.List(ctx)
	if err != nil {
		return nil, err
	}

	return NewNewsList(list), nil
}

// Search returns news whose title or description contains the query, case-insensitive.
//
//zenrpc:query search text, empty matches everything
//zenrpc:return list of news
//zenrpc:500 internal server error
func (s NewsService) Search(ctx context.Context, query string) ([]News, error) {
	list, err := s.manager.List(ctx)
	if err != nil {
		return nil, err
	}

	return NewNewsList(list.Filter(query)), nil
}

// ByID returns a single post.
//
//zenrpc:id news ID
//zenrpc:return news
//zenrpc:400 id is required
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s NewsService) ByID(ctx context.Context, id string) (*News, error) {
	if strings.TrimSpace(id) == "" {
		return nil, zenrpc.NewStringError(400, "id is required")
	}

	news, err := s.manager.ByID(ctx, id)
	if err != nil {
		return nil, err
	} else if news == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	result := NewNews(*news)
	return &result, nil
}

// Save creates a post when id is empty and updates it otherwise. Admin only.
//
//zenrpc:news post fields
//zenrpc:return saved news
//zenrpc:400 validation failed
//zenrpc:403 only admins can change news
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s NewsService) Save(ctx context.Context, news NewsForm) (*News, error) {
	saved, err := s.manager.Save(ctx, auth.FromContext(ctx), news.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewNews(*saved)
	return &result, nil
}

// Delete removes a post. Admin only.
//
//zenrpc:id news ID
//zenrpc:return true when deleted
//zenrpc:400 id is required
//zenrpc:403 only admins can change news
//zenrpc:404 news not found
//zenrpc:500 internal server error
func (s NewsService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.manager.Delete(ctx, auth.FromContext(ctx), id); err != nil {
		return false, newError(err)
	}

	return true, nil
}

// Export returns the whole collection as indented JSON text. Admin only.
//
//zenrpc:return indented JSON
//zenrpc:403 only admins can change news
//zenrpc:500 internal server error
func (s NewsService) Export(ctx context.Context) (string, error) {
	text, err := s.manager.Export(ctx, auth.FromContext(ctx))
	if err != nil {
		return "", newError(err)
	}

	return text, nil
}

// Session returns the resolved identity and admin capability of the caller.
//
//zenrpc:return current session
func (s NewsService) Session(ctx context.Context) (Session, error) {
	return NewSession(s.gate.Session(auth.FromContext(ctx))), nil
}
