package rest

import (
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

const feedTitle = "News"

func newFeedItem(base string, n newsportal.News) *feeds.Item {
	item := &feeds.Item{
		Id:          n.ID,
		IsPermaLink: "false",
		Title:       n.Title,
		Link:        &feeds.Link{Href: base + "/news/" + n.ID},
		Description: n.Description,
	}
	if n.VideoURL != nil {
		item.Link.Href = *n.VideoURL
	}
	// undated news carry no pubDate
	if t, err := time.Parse("2006-01-02", n.Date); err == nil {
		item.Created = t
	}

	return item
}

// Feed handles GET /feed.xml
func (h *NewsHandler) Feed(c echo.Context) error {
	list, err := h.publicList(c)
	if err != nil {
		h.log.Error("failed to load news for feed", "error", err)
		return c.String(http.StatusInternalServerError, "news are unavailable right now")
	}

	base := c.Scheme() + "://" + c.Request().Host
	feed := &feeds.Feed{
		Title:       feedTitle,
		Link:        &feeds.Link{Href: base + "/"},
		Description: "Latest news",
		Items:       make([]*feeds.Item, 0, len(list)),
	}
	for _, n := range list {
		feed.Items = append(feed.Items, newFeedItem(base, n))
	}

	out, err := feed.ToRss()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(out))
}
