package rpc

import (
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

func NewNews(n newsportal.News) News {
	news := News{
		ID:          n.ID,
		Title:       n.Title,
		DateLabel:   newsportal.FormatDate(n.Date),
		Description: n.Description,
		VideoURL:    n.VideoURL,
		AuthorID:    n.AuthorID,
		CreatedAt:   n.CreatedAt,
	}
	if n.Date != "" {
		news.Date = &n.Date
	}
	if n.VideoURL != nil {
		if embed := newsportal.EmbedURL(*n.VideoURL); embed != "" {
			news.EmbedURL = &embed
		}
	}

	return news
}

func NewNewsList(list newsportal.NewsList) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(list[i])
	}
	return result
}

func NewSession(s auth.Session) Session {
	session := Session{
		IsAdmin: s.IsAdmin,
		Status:  s.Status,
	}
	if s.Identity != nil {
		session.Email = &s.Identity.Email
	}

	return session
}
