// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	News struct {
		ID, Title, Date, Description, VideoURL, AuthorID, CreatedAt string
	}
}{
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	News: struct {
		ID, Title, Date, Description, VideoURL, AuthorID, CreatedAt string
	}{
		ID:          "newsId",
		Title:       "title",
		Date:        "date",
		Description: "description",
		VideoURL:    "videoUrl",
		AuthorID:    "authorId",
		CreatedAt:   "createdAt",
	},
}

var Tables = struct {
	GooseDbVersion struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
}{
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID          string     `pg:"newsId,pk"`
	Title       string     `pg:"title,use_zero"`
	Date        *string    `pg:"date"`
	Description string     `pg:"description,use_zero"`
	VideoURL    *string    `pg:"videoUrl"`
	AuthorID    *string    `pg:"authorId"`
	CreatedAt   *time.Time `pg:"createdAt"`
}
