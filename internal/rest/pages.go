package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

const (
	noticeSaved   = "Save successful. News is now visible on the main page."
	noticeDeleted = "Deleted."
	msgForbidden  = "Only admins can post news!"
	msgNotFound   = "This news no longer exists."
	msgConfirm    = "Please confirm the deletion."
)

// publicList serves the live snapshot and falls back to a store read before the first load.
func (h *NewsHandler) publicList(c echo.Context) (newsportal.NewsList, error) {
	if snap := h.hub.Snapshot(); snap.Version > 0 {
		return snap.Items, nil
	}

	return h.uc.List(c.Request().Context())
}

// Index handles GET /
func (h *NewsHandler) Index(c echo.Context) error {
	var req NewsQuery
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.publicList(c)
	if err != nil {
		h.log.Error("failed to load news for index", "error", err)
		return c.String(http.StatusInternalServerError, "news are unavailable right now")
	}

	return c.Render(http.StatusOK, "index.html", indexPage{
		Session:    newSessionView(h.gate.Session(identity(c))),
		Query:      strings.TrimSpace(req.Q),
		Cards:      Map(list.Filter(req.Q), NewLiveCard),
		Total:      len(list),
		LiveURL:    livePath,
		SignInURL:  h.cfg.SignInURL,
		SignOutURL: h.cfg.SignOutURL,
	})
}

// Detail handles GET /news/:id and renders the overlay fragment.
func (h *NewsHandler) Detail(c echo.Context) error {
	news, err := h.uc.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.log.Error("failed to load news detail", "error", err, "id", c.Param("id"))
		return c.String(http.StatusInternalServerError, "news are unavailable right now")
	}
	if news == nil {
		return c.String(http.StatusNotFound, "news not found")
	}

	return c.Render(http.StatusOK, "detail.html", newsportal.NewDetail(*news))
}

// Admin handles GET /admin. ?edit=<id> loads a post into the form.
func (h *NewsHandler) Admin(c echo.Context) error {
	page := adminPage{}
	switch {
	case c.QueryParam("saved") != "":
		page.Notice = noticeSaved
	case c.QueryParam("deleted") != "":
		page.Notice = noticeDeleted
	}

	if id := c.QueryParam("edit"); id != "" {
		news, err := h.uc.ByID(c.Request().Context(), id)
		switch {
		case err != nil:
			h.log.Error("failed to load news for editing", "error", err, "id", id)
			page.Error = "Error loading: " + err.Error()
		case news == nil:
			page.Error = msgNotFound
		default:
			page.Form = newFormView(newsportal.FormFromNews(*news))
		}
	}

	return h.renderAdmin(c, http.StatusOK, page)
}

// AdminSave handles POST /admin/save. Success redirects so the form is cleared
// and the list is read again; failures re-render with the submitted values.
func (h *NewsHandler) AdminSave(c echo.Context) error {
	var form newsportal.NewsForm
	if err := c.Bind(&form); err != nil {
		return h.renderAdmin(c, http.StatusBadRequest, adminPage{Error: "Error saving: invalid form"})
	}

	if _, err := h.uc.Save(c.Request().Context(), identity(c), form); err != nil {
		status, msg := adminError(err, "Error saving: ")
		if status == http.StatusInternalServerError {
			h.log.Error("admin save failed", "error", err)
		}
		return h.renderAdmin(c, status, adminPage{Form: newFormView(form), Error: msg})
	}

	return c.Redirect(http.StatusSeeOther, adminPath+"?saved=1")
}

// AdminDelete handles POST /admin/delete. The form must carry confirm=yes.
func (h *NewsHandler) AdminDelete(c echo.Context) error {
	if c.FormValue("confirm") != "yes" {
		return h.renderAdmin(c, http.StatusBadRequest, adminPage{Error: msgConfirm})
	}

	if err := h.uc.Delete(c.Request().Context(), identity(c), c.FormValue("id")); err != nil {
		status, msg := adminError(err, "Error deleting: ")
		if status == http.StatusInternalServerError {
			h.log.Error("admin delete failed", "error", err)
		}
		return h.renderAdmin(c, status, adminPage{Error: msg})
	}

	return c.Redirect(http.StatusSeeOther, adminPath+"?deleted=1")
}

// AdminExport handles GET /admin/export.
func (h *NewsHandler) AdminExport(c echo.Context) error {
	text, err := h.uc.Export(c.Request().Context(), identity(c))
	if errors.Is(err, newsportal.ErrForbidden) {
		return c.String(http.StatusForbidden, msgForbidden)
	} else if err != nil {
		h.log.Error("admin export failed", "error", err)
		return c.String(http.StatusInternalServerError, "Error exporting: "+err.Error())
	}

	return c.String(http.StatusOK, text)
}

func (h *NewsHandler) renderAdmin(c echo.Context, status int, page adminPage) error {
	page.Session = newSessionView(h.gate.Session(identity(c)))
	page.SignInURL = h.cfg.SignInURL
	page.SignOutURL = h.cfg.SignOutURL

	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		h.log.Error("failed to load news for admin", "error", err)
		if page.Error == "" {
			page.Error = "Error loading news: " + err.Error()
		}
	}
	page.Rows = Map(list, newAdminRow)

	return c.Render(status, "admin.html", page)
}

func adminError(err error, prefix string) (int, string) {
	var verr *newsportal.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Message
	case errors.Is(err, newsportal.ErrForbidden):
		return http.StatusForbidden, msgForbidden
	case errors.Is(err, newsportal.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	default:
		return http.StatusInternalServerError, prefix + err.Error()
	}
}
