package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arsitekstudio/cms-api/internal/core/domain"
	"github.com/arsitekstudio/cms-api/internal/core/ports"
)

// AnalyticsHandler records public page visits and serves the dashboard
// aggregates.
type AnalyticsHandler struct {
	analytics ports.AnalyticsService
}

func NewAnalyticsHandler(analytics ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

type trackRequest struct {
	Type string `json:"type" validate:"required,oneof=PAGE_VIEW PROJECT_VIEW"`
	Slug string `json:"slug" validate:"required"`
}

// Track records one visit. It always responds immediately; the write is
// queued behind the request.
//
// @Summary      Track a page or project view
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Success      202  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Router       /api/analytics [post]
func (h *AnalyticsHandler) Track(c echo.Context) error {
	var req trackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	r := c.Request()
	h.analytics.Track(r.Context(), ports.TrackEventInput{
		Type:      domain.EventType(req.Type),
		Slug:      req.Slug,
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
		IP:        clientIP(r),
	})
	return c.JSON(http.StatusAccepted, map[string]bool{"accepted": true})
}

// Stats returns the aggregated analytics report.
//
// @Summary      Analytics dashboard aggregates
// @Tags         analytics
// @Produce      json
// @Param        days  query  int  false  "Window in days"  default(30)
// @Success      200  {object}  ports.Stats
// @Router       /api/analytics/stats [get]
func (h *AnalyticsHandler) Stats(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		days = n
	}

	stats, err := h.analytics.Stats(c.Request().Context(), days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// clientIP prefers the first hop of X-Forwarded-For, falling back to the
// socket peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
