package rpc

import (
	"time"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

type News struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        *string    `json:"date,omitempty"`
	DateLabel   string     `json:"dateLabel"`
	Description string     `json:"description"`
	VideoURL    *string    `json:"videoUrl,omitempty"`
	EmbedURL    *string    `json:"embedUrl,omitempty"`
	AuthorID    *string    `json:"authorId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

type NewsForm struct {
	//id empty to create a new post
	ID string `json:"id,omitempty"`
	//title required
	Title string `json:"title"`
	//date YYYY-MM-DD, today when empty
	Date string `json:"date,omitempty"`
	//description required
	Description string `json:"description"`
	//videoUrl optional link, YouTube links are embedded
	VideoURL string `json:"videoUrl,omitempty"`
}

func (f NewsForm) ToModel() newsportal.NewsForm {
	return newsportal.NewsForm{
		ID:          f.ID,
		Title:       f.Title,
		Date:        f.Date,
		Description: f.Description,
		VideoURL:    f.VideoURL,
	}
}

type Session struct {
	Email   *string `json:"email,omitempty"`
	IsAdmin bool    `json:"isAdmin"`
	Status  string  `json:"status"`
}
