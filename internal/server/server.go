package server

import (
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"astrox_site/internal/config"
	"astrox_site/internal/handlers"
	appMiddleware "astrox_site/internal/middleware"
	"astrox_site/internal/services"
	"astrox_site/web"
)

// WasmPrefix is the URL prefix the client bundle is served under
const WasmPrefix = "/wasm"

// New builds the echo instance for the site. cache may be nil.
func New(cfg *config.Config, cache services.Cache) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.LogLevel))
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Skipper: skipCompression(cfg.BackgroundVideo, cfg.MissionVideo),
	}))
	e.Use(middleware.Secure())

	// Static file serving
	e.StaticFS("/static", echo.MustSubFS(web.StaticFS, "static"))

	wasmPath := ""
	if cfg.WasmDir != "" {
		wasmPath = WasmPrefix
		e.Static(WasmPrefix, cfg.WasmDir)
	}

	// The videos are opaque assets served as-is from the media directory
	for _, src := range []string{cfg.BackgroundVideo, cfg.MissionVideo} {
		e.File(src, filepath.Join(cfg.MediaDir, filepath.Base(src)))
	}

	landing := handlers.NewLandingHandler(
		handlers.LandingProps(cfg.BackgroundVideo, cfg.MissionVideo, wasmPath),
		cache,
		cfg.PageCacheTTL,
	)

	e.GET("/", landing.Landing)
	e.GET("/health", handlers.Health)

	return e
}

// skipCompression leaves media and partial responses alone: a gzip body
// cannot honor a Content-Range computed over the raw file.
func skipCompression(mediaPaths ...string) middleware.Skipper {
	media := make(map[string]bool, len(mediaPaths))
	for _, p := range mediaPaths {
		media[p] = true
	}
	return func(c echo.Context) bool {
		return c.Request().Header.Get("Range") != "" || media[c.Request().URL.Path]
	}
}

func logLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
