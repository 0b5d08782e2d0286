// Package sqlite keeps the news collection in a single SQLite file.
// It mirrors db.Repository so the service can run without PostgreSQL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/db"
)

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (and if needed creates) the database at path.
func New(path string) (*Store, error) {
	sqldb, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// single writer, sqlite serializes anyway
	sqldb.SetMaxOpenConns(1)

	s := &Store{db: sqldb, now: time.Now}
	if err := s.initSchema(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS news (
		"newsId" TEXT PRIMARY KEY,
		"title" TEXT NOT NULL,
		"date" TEXT,
		"description" TEXT NOT NULL,
		"videoUrl" TEXT,
		"authorId" TEXT,
		"createdAt" TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS news_date_idx ON news ("date" DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

const selectNews = `SELECT "newsId", "title", "date", "description", "videoUrl", "authorId", "createdAt" FROM news`

func (s *Store) News(ctx context.Context) ([]db.News, error) {
	rows, err := s.db.QueryContext(ctx, selectNews+` ORDER BY "date" IS NULL, "date" DESC, "createdAt" DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	var news []db.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		news = append(news, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate news: %w", err)
	}

	return news, nil
}

func (s *Store) NewsByID(ctx context.Context, newsID string) (*db.News, error) {
	row := s.db.QueryRowContext(ctx, selectNews+` WHERE "newsId" = ?`, newsID)

	n, err := scanNews(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return n, nil
}

func (s *Store) AddNews(ctx context.Context, news *db.News) (*db.News, error) {
	created := s.now().UTC()
	news.ID = uuid.NewString()
	news.CreatedAt = &created

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO news ("newsId", "title", "date", "description", "videoUrl", "authorId", "createdAt")
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		news.ID, news.Title, news.Date, news.Description, news.VideoURL, news.AuthorID,
		created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert news: %w", err)
	}

	return news, nil
}

func (s *Store) UpdateNews(ctx context.Context, news *db.News) (*db.News, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE news SET "title" = ?, "date" = ?, "description" = ?, "videoUrl" = ? WHERE "newsId" = ?`,
		news.Title, news.Date, news.Description, news.VideoURL, news.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	return s.NewsByID(ctx, news.ID)
}

func (s *Store) DeleteNews(ctx context.Context, newsID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM news WHERE "newsId" = ?`, newsID)
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNews(row scanner) (*db.News, error) {
	var (
		n         db.News
		date      sql.NullString
		videoURL  sql.NullString
		authorID  sql.NullString
		createdAt string
	)

	if err := row.Scan(&n.ID, &n.Title, &date, &n.Description, &videoURL, &authorID, &createdAt); err != nil {
		return nil, err
	}

	n.Date = nullString(date)
	n.VideoURL = nullString(videoURL)
	n.AuthorID = nullString(authorID)

	if createdAt != "" {
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse createdAt %q: %w", createdAt, err)
		}
		n.CreatedAt = &t
	}

	return &n, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
