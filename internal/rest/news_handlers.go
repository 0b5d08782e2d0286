package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/live"
	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

type Config struct {
	Identifier   auth.HeaderIdentifier
	SignInURL    string
	SignOutURL   string
	PingInterval time.Duration
}

type NewsHandler struct {
	uc   *newsportal.Manager
	hub  *live.Hub
	gate *auth.Gate
	cfg  Config
	log  *slog.Logger
}

func NewNewsHandler(uc *newsportal.Manager, hub *live.Hub, gate *auth.Gate, cfg Config, log *slog.Logger) *NewsHandler {
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 30 * time.Second
	}

	return &NewsHandler{
		uc:   uc,
		hub:  hub,
		gate: gate,
		cfg:  cfg,
		log:  log,
	}
}

func (h *NewsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// mutationError maps domain errors to HTTP responses.
func (h *NewsHandler) mutationError(c echo.Context, err error) error {
	var verr *newsportal.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, newsportal.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, newsportal.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

func identity(c echo.Context) *auth.Identity {
	return auth.FromContext(c.Request().Context())
}

// News handles GET /api/v1/news
// @Summary List news
// @Description Returns all news ordered by date DESC (undated last), optionally filtered by a case-insensitive substring of title or description
// @Tags news
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} rest.News
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/v1/news [get]
func (h *NewsHandler) News(c echo.Context) error {
	var req NewsQuery
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(list.Filter(req.Q), NewNews))
}

// NewsByID handles GET /api/v1/news/:id
// @Summary Get news by ID
// @Tags news
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} rest.News
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/v1/news/{id} [get]
func (h *NewsHandler) NewsByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid id")
	}

	news, err := h.uc.ByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if news == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: newsportal.ErrNotFound.Error()})
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// CreateNews handles POST /api/v1/news
// @Summary Create news
// @Description Admin only. Date defaults to today, a blank video URL is stored as null
// @Tags news
// @Accept json
// @Produce json
// @Param news body newsportal.NewsForm true "News"
// @Success 201 {object} rest.News
// @Failure 400,403,500 {object} rest.ErrorResponse
// @Router /api/v1/news [post]
func (h *NewsHandler) CreateNews(c echo.Context) error {
	var form newsportal.NewsForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	form.ID = ""

	news, err := h.uc.Create(c.Request().Context(), identity(c), form)
	if err != nil {
		return h.mutationError(c, err)
	}

	return c.JSON(http.StatusCreated, NewNews(*news))
}

// UpdateNews handles PUT /api/v1/news/:id
// @Summary Update news
// @Description Admin only. Replaces title, date, description and video URL
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "News ID"
// @Param news body newsportal.NewsForm true "News"
// @Success 200 {object} rest.News
// @Failure 400,403,404,500 {object} rest.ErrorResponse
// @Router /api/v1/news/{id} [put]
func (h *NewsHandler) UpdateNews(c echo.Context) error {
	var form newsportal.NewsForm
	if err := c.Bind(&form); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	form.ID = c.Param("id")

	news, err := h.uc.Update(c.Request().Context(), identity(c), form)
	if err != nil {
		return h.mutationError(c, err)
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// DeleteNews handles DELETE /api/v1/news/:id
// @Summary Delete news
// @Tags news
// @Param id path string true "News ID"
// @Success 204
// @Failure 403,404,500 {object} rest.ErrorResponse
// @Router /api/v1/news/{id} [delete]
func (h *NewsHandler) DeleteNews(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), identity(c), c.Param("id")); err != nil {
		return h.mutationError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Export handles GET /api/v1/export
// @Summary Export news
// @Description Admin only. The whole collection as indented JSON
// @Tags news
// @Produce json
// @Success 200 {array} newsportal.News
// @Failure 403,500 {object} rest.ErrorResponse
// @Router /api/v1/export [get]
func (h *NewsHandler) Export(c echo.Context) error {
	text, err := h.uc.Export(c.Request().Context(), identity(c))
	if err != nil {
		return h.mutationError(c, err)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(text))
}

// Session handles GET /api/v1/session
// @Summary Current session
// @Description Resolved identity, admin capability and status line
// @Tags auth
// @Produce json
// @Success 200 {object} auth.Session
// @Router /api/v1/session [get]
func (h *NewsHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.gate.Session(identity(c)))
}
