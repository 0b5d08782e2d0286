package rest

import (
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/live"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewNews(n newsportal.News) News {
	news := News{
		ID:          n.ID,
		Title:       n.Title,
		Date:        n.Date,
		DateLabel:   newsportal.FormatDate(n.Date),
		Description: n.Description,
		Excerpt:     newsportal.Excerpt(n.Description),
		VideoURL:    n.VideoURL,
		AuthorID:    n.AuthorID,
		CreatedAt:   n.CreatedAt,
	}
	if n.VideoURL != nil {
		news.EmbedURL = newsportal.EmbedURL(*n.VideoURL)
	}

	return news
}

func NewLiveCard(n newsportal.News) LiveCard {
	card := newsportal.NewCard(n)
	return LiveCard{
		ID:          card.ID,
		Title:       card.Title,
		Excerpt:     card.Excerpt,
		DateLabel:   card.DateLabel,
		Description: n.Description,
	}
}

func NewLiveMessage(snap live.Snapshot) LiveMessage {
	return LiveMessage{
		Type:    "snapshot",
		Version: snap.Version,
		Items:   Map(snap.Items, NewLiveCard),
	}
}

func newAdminRow(n newsportal.News) adminRow {
	row := adminRow{
		ID:        n.ID,
		Title:     n.Title,
		DateLabel: newsportal.FormatDate(n.Date),
	}
	if n.VideoURL != nil {
		row.VideoURL = *n.VideoURL
	}

	return row
}

func newFormView(f newsportal.NewsForm) formView {
	return formView{
		ID:          f.ID,
		Title:       f.Title,
		Date:        f.Date,
		Description: f.Description,
		VideoURL:    f.VideoURL,
	}
}

func newSessionView(s auth.Session) sessionView {
	return sessionView{
		SignedIn: s.SignedIn(),
		IsAdmin:  s.IsAdmin,
		Status:   s.Status,
	}
}
