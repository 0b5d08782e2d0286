package newsportal

import (
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/db"
)

func NewNews(n *db.News) News {
	news := News{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		VideoURL:    n.VideoURL,
		AuthorID:    n.AuthorID,
		CreatedAt:   n.CreatedAt,
	}

	if n.Date != nil {
		news.Date = *n.Date
	}

	return news
}

func NewNewsList(list []db.News) NewsList {
	result := make(NewsList, len(list))
	for i := range list {
		result[i] = NewNews(&list[i])
	}

	return result
}

// toDB builds a row from validated input. Provenance fields are left to the caller.
func (in newsInput) toDB() *db.News {
	n := &db.News{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		VideoURL:    in.VideoURL,
	}

	if in.Date != "" {
		date := in.Date
		n.Date = &date
	}

	return n
}
