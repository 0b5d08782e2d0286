package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/auth"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	newsPath     = apiV1Prefix + "/news"
	newsByIDPath = apiV1Prefix + "/news/:id"
	exportPath   = apiV1Prefix + "/export"
	sessionPath  = apiV1Prefix + "/session"

	// Page paths
	indexPath       = "/"
	detailPath      = "/news/:id"
	livePath        = "/live"
	feedPath        = "/feed.xml"
	adminPath       = "/admin"
	adminSavePath   = adminPath + "/save"
	adminDeletePath = adminPath + "/delete"
	adminExportPath = adminPath + "/export"

	staticPathPrefix = "/static"
	healthPath       = "/health"
	swaggerDocPath   = "/swagger/doc.json"
)

// RegisterRoutes builds the echo engine with every page and API route.
// The identity middleware runs for all routes, including ones mounted later.
func (h *NewsHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = newRenderer()

	e.Use(middleware.Recover())
	e.Use(h.requestLogger())
	e.Use(h.identify)

	h.registerAPIRoutes(e)
	h.registerPageRoutes(e)
	h.registerServiceRoutes(e)

	return e
}

func (h *NewsHandler) registerAPIRoutes(e *echo.Echo) {
	e.GET(newsPath, h.News)
	e.POST(newsPath, h.CreateNews)
	e.GET(newsByIDPath, h.NewsByID)
	e.PUT(newsByIDPath, h.UpdateNews)
	e.DELETE(newsByIDPath, h.DeleteNews)
	e.GET(exportPath, h.Export)
	e.GET(sessionPath, h.Session)
}

func (h *NewsHandler) registerPageRoutes(e *echo.Echo) {
	e.GET(indexPath, h.Index)
	e.GET(detailPath, h.Detail)
	e.GET(livePath, h.Live)
	e.GET(feedPath, h.Feed)
	e.GET(adminPath, h.Admin)
	e.POST(adminSavePath, h.AdminSave)
	e.POST(adminDeletePath, h.AdminDelete)
	e.GET(adminExportPath, h.AdminExport)
	e.StaticFS(staticPathPrefix, echo.MustSubFS(webFS, "static"))
}

func (h *NewsHandler) registerServiceRoutes(e *echo.Echo) {
	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerDocPath, h.handleSwaggerDoc)
}

func (h *NewsHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NewsHandler) handleSwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api docs are not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

// identify puts the identity forwarded by the proxy into the request context.
func (h *NewsHandler) identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if id := h.cfg.Identifier.Identify(c.Request()); id != nil {
			req := c.Request()
			c.SetRequest(req.WithContext(auth.NewContext(req.Context(), id)))
		}

		return next(c)
	}
}

func (h *NewsHandler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			}
			if v.Error != nil {
				h.log.Error("HTTP request", append(attrs, "error", v.Error)...)
				return nil
			}

			h.log.Info("HTTP request", attrs...)
			return nil
		},
	})
}
