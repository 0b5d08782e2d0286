package newsportal

import (
	"time"
)

// News is a single post on the board.
type News struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date,omitempty"`
	Description string     `json:"description"`
	VideoURL    *string    `json:"videoUrl"`
	AuthorID    *string    `json:"authorId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// NewsForm is the raw admin input. An empty ID means create.
type NewsForm struct {
	ID          string `form:"id" json:"id"`
	Title       string `form:"title" json:"title"`
	Date        string `form:"date" json:"date"`
	Description string `form:"description" json:"description"`
	VideoURL    string `form:"videoUrl" json:"videoUrl"`
}

// FormFromNews fills the admin form for editing an existing post.
func FormFromNews(n News) NewsForm {
	form := NewsForm{
		ID:          n.ID,
		Title:       n.Title,
		Date:        n.Date,
		Description: n.Description,
	}
	if n.VideoURL != nil {
		form.VideoURL = *n.VideoURL
	}

	return form
}

// Card is the list entry shown on the public page.
type Card struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	DateLabel string `json:"dateLabel"`
}

// Detail is the content of the detail overlay.
type Detail struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DateLabel   string `json:"dateLabel"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl,omitempty"`
	EmbedURL    string `json:"embedUrl,omitempty"`
}
