package rest

import "time"

// News is the JSON representation of a post.
type News struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date,omitempty"`
	DateLabel   string     `json:"dateLabel"`
	Description string     `json:"description"`
	Excerpt     string     `json:"excerpt"`
	VideoURL    *string    `json:"videoUrl"`
	EmbedURL    string     `json:"embedUrl,omitempty"`
	AuthorID    *string    `json:"authorId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// NewsQuery is the public search request.
type NewsQuery struct {
	Q string `urlstruct:"q"`
}

// LiveCard is a list entry pushed to viewers. Description is sent so the
// page can filter without another round trip.
type LiveCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	DateLabel   string `json:"dateLabel"`
	Description string `json:"description"`
}

type LiveMessage struct {
	Type    string     `json:"type"`
	Version uint64     `json:"version"`
	Items   []LiveCard `json:"items"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type indexPage struct {
	Session    sessionView
	Query      string
	Cards      []LiveCard
	Total      int
	LiveURL    string
	SignInURL  string
	SignOutURL string
}

type adminRow struct {
	ID        string
	Title     string
	DateLabel string
	VideoURL  string
}

type adminPage struct {
	Session    sessionView
	Form       formView
	Rows       []adminRow
	Notice     string
	Error      string
	SignInURL  string
	SignOutURL string
}

type formView struct {
	ID          string
	Title       string
	Date        string
	Description string
	VideoURL    string
}

type sessionView struct {
	SignedIn bool
	IsAdmin  bool
	Status   string
}
