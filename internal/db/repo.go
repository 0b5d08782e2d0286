package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// NewsChannel is the NOTIFY channel fired by the news table trigger.
const NewsChannel = "news_changed"

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// News returns the whole collection sorted by date DESC.
// Rows without a date go last, ties are broken by createdAt DESC.
func (r *Repository) News(ctx context.Context) ([]News, error) {
	var news []News
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."date" DESC NULLS LAST`).
		OrderExpr(`"t"."createdAt" DESC NULLS LAST`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsByID(ctx context.Context, newsID string) (*News, error) {
	news := &News{}
	err := r.db.ModelContext(ctx, news).
		Where(`"t"."newsId" = ?`, newsID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return news, nil
}

// AddNews inserts a new row. The id is assigned here, createdAt by the column default.
func (r *Repository) AddNews(ctx context.Context, news *News) (*News, error) {
	news.ID = uuid.NewString()
	news.CreatedAt = nil

	_, err := r.db.ModelContext(ctx, news).
		Returning("*").
		Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert news: %w", err)
	}

	return news, nil
}

// UpdateNews rewrites the editable columns only. Returns nil when the row does not exist.
func (r *Repository) UpdateNews(ctx context.Context, news *News) (*News, error) {
	res, err := r.db.ModelContext(ctx, news).
		Column(
			Columns.News.Title,
			Columns.News.Date,
			Columns.News.Description,
			Columns.News.VideoURL,
		).
		WherePK().
		Returning("*").
		Update()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}

	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return news, nil
}

// DeleteNews removes a row by id and reports whether it existed.
func (r *Repository) DeleteNews(ctx context.Context, newsID string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*News)(nil)).
		Where(`"t"."newsId" = ?`, newsID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
