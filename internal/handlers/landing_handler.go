package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"astrox_site/internal/components"
	"astrox_site/internal/services"
	"astrox_site/internal/views"
)

// LandingCacheKey is where the rendered landing page is cached
const LandingCacheKey = "page:landing"

type LandingHandler struct {
	props views.LandingProps
	cache services.Cache
	ttl   time.Duration
}

// NewLandingHandler creates the landing page handler. A nil cache or a zero
// ttl renders the page on every request.
func NewLandingHandler(props views.LandingProps, cache services.Cache, ttl time.Duration) *LandingHandler {
	h := &LandingHandler{props: props, ttl: ttl}
	if ttl > 0 {
		h.cache = cache
	}
	return h
}

// Landing renders the single-page site
func (h *LandingHandler) Landing(c echo.Context) error {
	ctx := c.Request().Context()
	html, err := services.GetOrSet(h.cache, ctx, LandingCacheKey, h.ttl, func() (string, error) {
		var buf bytes.Buffer
		if err := views.Landing(h.props).Render(ctx, &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render page").SetInternal(err)
	}

	return c.HTML(http.StatusOK, html)
}

// Health reports that the server is up
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// LandingProps builds the page inputs from deployment settings
func LandingProps(backgroundVideo, missionVideo, wasmPath string) views.LandingProps {
	return views.LandingProps{
		Page:            components.PageConfig{WasmPath: wasmPath},
		BackgroundVideo: backgroundVideo,
		MissionVideo:    missionVideo,
	}
}
