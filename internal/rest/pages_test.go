package rest

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

func parseHTML(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func texts(sel *goquery.Selection) []string {
	return sel.Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
}

func TestNewsHandler_Index(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Empty", func(t *testing.T) {
		rec := env.get("/", "")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := parseHTML(t, rec.Body.String())
		assert.Equal(t, 0, doc.Find(".news-card").Length())
		assert.Equal(t, "No news.", strings.TrimSpace(doc.Find("#news-list .empty").Text()))
	})

	env.seed(t,
		newsportal.NewsForm{Title: "Spring camp", Date: "2024-03-10", Description: strings.Repeat("s", 200)},
		newsportal.NewsForm{Title: "Regional results", Date: "2024-03-20", Description: "Four medals at the regional championship"},
	)
	env.seedUndated(t, "Old notice", "Pool closed")

	t.Run("Cards", func(t *testing.T) {
		rec := env.get("/", "")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := parseHTML(t, rec.Body.String())
		cards := doc.Find("#news-list .news-card")
		require.Equal(t, 3, cards.Length())
		assert.Equal(t, []string{"Regional results", "Spring camp", "Old notice"}, texts(cards.Find(".news-title")))
		assert.Equal(t, []string{"20 Mar 2024", "10 Mar 2024", "Date not set"}, texts(cards.Find(".badge")))
		assert.Equal(t, strings.Repeat("s", 140)+"…", texts(cards.Find(".news-excerpt"))[1])

		id, ok := cards.First().Attr("data-id")
		assert.True(t, ok)
		assert.NotEmpty(t, id)

		live, _ := doc.Find("body").Attr("data-live")
		assert.Equal(t, "/live", live)
	})

	t.Run("Search", func(t *testing.T) {
		rec := env.get("/?q="+url.QueryEscape("  CHAMPIONSHIP "), "")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := parseHTML(t, rec.Body.String())
		assert.Equal(t, []string{"Regional results"}, texts(doc.Find(".news-card .news-title")))
		value, _ := doc.Find("#search").Attr("value")
		assert.Equal(t, "CHAMPIONSHIP", value)

		rec = env.get("/?q=butterfly", "")
		doc = parseHTML(t, rec.Body.String())
		assert.Equal(t, 0, doc.Find(".news-card").Length())
		assert.Equal(t, "No news matches your search.", strings.TrimSpace(doc.Find("#news-list .empty").Text()))
	})

	t.Run("Snapshot", func(t *testing.T) {
		require.NoError(t, env.hub.Refresh(context.Background()))
		env.seed(t, newsportal.NewsForm{Title: "Not yet broadcast", Date: "2024-04-01", Description: "d"})

		doc := parseHTML(t, env.get("/", "").Body.String())
		assert.Equal(t, 3, doc.Find(".news-card").Length())

		require.NoError(t, env.hub.Refresh(context.Background()))
		doc = parseHTML(t, env.get("/", "").Body.String())
		assert.Equal(t, 4, doc.Find(".news-card").Length())
	})
}

func TestNewsHandler_Detail(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seed(t,
		newsportal.NewsForm{Title: "Gala", Date: "2024-05-01", Description: "Club gala night", VideoURL: "https://www.youtube.com/watch?v=gala2024&t=5"},
		newsportal.NewsForm{Title: "Clinic", Date: "2024-05-02", Description: "Stroke clinic", VideoURL: "https://example.com/video"},
		newsportal.NewsForm{Title: "Plain", Date: "2024-05-03", Description: "No video"},
	)

	t.Run("YouTube", func(t *testing.T) {
		rec := env.get("/news/"+seeded[0].ID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := parseHTML(t, rec.Body.String())
		assert.Equal(t, "Gala", strings.TrimSpace(doc.Find("#panel-title").Text()))
		assert.Equal(t, "1 May 2024", strings.TrimSpace(doc.Find(".meta").Text()))
		assert.Equal(t, "Club gala night", strings.TrimSpace(doc.Find(".description").Text()))

		href, _ := doc.Find("a.video-link").Attr("href")
		assert.Equal(t, "https://www.youtube.com/watch?v=gala2024&t=5", href)
		src, _ := doc.Find("iframe").Attr("src")
		assert.Equal(t, "https://www.youtube.com/embed/gala2024", src)
	})

	t.Run("OtherLink", func(t *testing.T) {
		doc := parseHTML(t, env.get("/news/"+seeded[1].ID, "").Body.String())
		assert.Equal(t, 1, doc.Find("a.video-link").Length())
		assert.Equal(t, 0, doc.Find("iframe").Length())
	})

	t.Run("NoVideo", func(t *testing.T) {
		doc := parseHTML(t, env.get("/news/"+seeded[2].ID, "").Body.String())
		assert.Equal(t, 0, doc.Find("a.video-link").Length())
		assert.Equal(t, 0, doc.Find("iframe").Length())
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, env.get("/news/missing", "").Code)
	})
}

func TestNewsHandler_AdminPage(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seed(t, newsportal.NewsForm{Title: "Gala", Date: "2024-05-01", Description: "Club gala night", VideoURL: "https://youtu.be/gala"})

	t.Run("Anonymous", func(t *testing.T) {
		rec := env.get("/admin", "")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := parseHTML(t, rec.Body.String())
		href, _ := doc.Find("#login-btn").Attr("href")
		assert.Equal(t, "/oauth2/start", href)
		assert.Equal(t, 0, doc.Find("#logout-btn").Length())
		assert.Empty(t, strings.TrimSpace(doc.Find("#user-email").Text()))

		_, disabled := doc.Find("#news-title").Attr("disabled")
		assert.True(t, disabled)
		_, disabled = doc.Find("#save-btn").Attr("disabled")
		assert.True(t, disabled)
		assert.Equal(t, 0, doc.Find("#export-btn").Length())

		rows := doc.Find("#news-list-admin .list-row")
		require.Equal(t, 1, rows.Length())
		_, disabled = rows.Find(".edit-btn").Attr("disabled")
		assert.True(t, disabled)
		assert.Equal(t, 0, rows.Find("form.del-form").Length())
	})

	t.Run("SignedInWithoutAccess", func(t *testing.T) {
		doc := parseHTML(t, env.get("/admin", viewerEmail).Body.String())

		assert.Equal(t, "Signed in as: parent@example.com (no admin access)", strings.TrimSpace(doc.Find("#user-email").Text()))
		href, _ := doc.Find("#logout-btn").Attr("href")
		assert.Equal(t, "/oauth2/sign_out", href)
		assert.Equal(t, 0, doc.Find("#login-btn").Length())

		_, disabled := doc.Find("#news-desc").Attr("disabled")
		assert.True(t, disabled)
	})

	t.Run("Admin", func(t *testing.T) {
		doc := parseHTML(t, env.get("/admin", adminEmail).Body.String())

		assert.Equal(t, "Signed in as: coach@example.com (admin)", strings.TrimSpace(doc.Find("#user-email").Text()))
		_, disabled := doc.Find("#news-title").Attr("disabled")
		assert.False(t, disabled)
		assert.Equal(t, 1, doc.Find("#export-btn").Length())

		row := doc.Find("#news-list-admin .list-row")
		assert.Equal(t, "Gala", strings.TrimSpace(row.Find(".row-title").Text()))
		assert.Equal(t, "1 May 2024", strings.TrimSpace(row.Find(".muted").Text()))
		assert.Equal(t, "Video", strings.TrimSpace(row.Find(".video-link").Text()))

		edit, _ := row.Find("a.edit-btn").Attr("href")
		assert.Equal(t, "/admin?edit="+seeded[0].ID, edit)
		confirm, _ := row.Find("form.del-form input[name=confirm]").Attr("value")
		assert.Equal(t, "yes", confirm)
	})

	t.Run("Edit", func(t *testing.T) {
		doc := parseHTML(t, env.get("/admin?edit="+seeded[0].ID, adminEmail).Body.String())

		id, _ := doc.Find("#news-id").Attr("value")
		assert.Equal(t, seeded[0].ID, id)
		title, _ := doc.Find("#news-title").Attr("value")
		assert.Equal(t, "Gala", title)
		date, _ := doc.Find("#news-date").Attr("value")
		assert.Equal(t, "2024-05-01", date)
		assert.Equal(t, "Club gala night", doc.Find("#news-desc").Text())
		video, _ := doc.Find("#news-video").Attr("value")
		assert.Equal(t, "https://youtu.be/gala", video)

		doc = parseHTML(t, env.get("/admin?edit=missing", adminEmail).Body.String())
		assert.Equal(t, msgNotFound, strings.TrimSpace(doc.Find(".error").Text()))
	})
}

func TestNewsHandler_AdminSave(t *testing.T) {
	env := newTestEnv(t)

	t.Run("CreateRedirects", func(t *testing.T) {
		form := url.Values{"title": {"Open day"}, "description": {"Come and try the pool"}, "videoUrl": {""}}
		rec := env.postForm("/admin/save", adminEmail, form.Encode())
		require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
		assert.Equal(t, "/admin?saved=1", rec.Header().Get("Location"))

		doc := parseHTML(t, env.get("/admin?saved=1", adminEmail).Body.String())
		assert.Equal(t, noticeSaved, strings.TrimSpace(doc.Find(".notice").Text()))
		assert.Equal(t, []string{"Open day"}, texts(doc.Find(".row-title")))
		assert.Equal(t, []string{"15 Jun 2024"}, texts(doc.Find(".list-row .muted")))

		title, _ := doc.Find("#news-title").Attr("value")
		assert.Empty(t, title)
		id, _ := doc.Find("#news-id").Attr("value")
		assert.Empty(t, id)
	})

	t.Run("UpdateRedirects", func(t *testing.T) {
		list, err := env.manager.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 1)

		form := url.Values{"id": {list[0].ID}, "title": {"Open day moved"}, "date": {"2024-07-01"}, "description": {"Come and try the pool"}}
		rec := env.postForm("/admin/save", adminEmail, form.Encode())
		require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())

		updated, err := env.manager.ByID(context.Background(), list[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Open day moved", updated.Title)
		assert.Equal(t, "2024-07-01", updated.Date)
	})

	t.Run("ValidationKeepsInput", func(t *testing.T) {
		form := url.Values{"title": {"Half done"}, "description": {"   "}, "date": {"2024-08-01"}}
		rec := env.postForm("/admin/save", adminEmail, form.Encode())
		require.Equal(t, http.StatusBadRequest, rec.Code)

		doc := parseHTML(t, rec.Body.String())
		assert.Equal(t, "Please fill out the title and description.", strings.TrimSpace(doc.Find(".error").Text()))
		title, _ := doc.Find("#news-title").Attr("value")
		assert.Equal(t, "Half done", title)
		date, _ := doc.Find("#news-date").Attr("value")
		assert.Equal(t, "2024-08-01", date)
	})

	t.Run("Forbidden", func(t *testing.T) {
		form := url.Values{"title": {"Sneaky"}, "description": {"post"}}
		rec := env.postForm("/admin/save", viewerEmail, form.Encode())
		require.Equal(t, http.StatusForbidden, rec.Code)

		doc := parseHTML(t, rec.Body.String())
		assert.Equal(t, msgForbidden, strings.TrimSpace(doc.Find(".error").Text()))

		list, err := env.manager.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		form := url.Values{"id": {"missing"}, "title": {"t"}, "description": {"d"}}
		rec := env.postForm("/admin/save", adminEmail, form.Encode())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNewsHandler_AdminDelete(t *testing.T) {
	env := newTestEnv(t)
	seeded := env.seed(t, newsportal.NewsForm{Title: "Gala", Description: "Club gala night"})
	id := seeded[0].ID

	rec := env.postForm("/admin/delete", adminEmail, url.Values{"id": {id}}.Encode())
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgConfirm)

	rec = env.postForm("/admin/delete", viewerEmail, url.Values{"id": {id}, "confirm": {"yes"}}.Encode())
	require.Equal(t, http.StatusForbidden, rec.Code)

	news, err := env.manager.ByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, news)

	rec = env.postForm("/admin/delete", adminEmail, url.Values{"id": {id}, "confirm": {"yes"}}.Encode())
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin?deleted=1", rec.Header().Get("Location"))

	doc := parseHTML(t, env.get("/admin?deleted=1", adminEmail).Body.String())
	assert.Equal(t, noticeDeleted, strings.TrimSpace(doc.Find(".notice").Text()))
	assert.Equal(t, "No news.", strings.TrimSpace(doc.Find("#news-list-admin .empty").Text()))
}

func TestNewsHandler_AdminExport(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, newsportal.NewsForm{Title: "Gala", Date: "2024-05-01", Description: "Club gala night"})

	rec := env.get("/admin/export", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.get("/admin/export", adminEmail)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "[\n  {"))
	assert.Contains(t, rec.Body.String(), `"title": "Gala"`)
}
