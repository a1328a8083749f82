// Package admin exposes operational endpoints for the demo: the
// connection-mode report and a raw table inspector over the mock store.
package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onkoai/oncodemo/internal/config"
	"github.com/onkoai/oncodemo/internal/platform/auth"
	"github.com/onkoai/oncodemo/internal/platform/store"
	"github.com/onkoai/oncodemo/pkg/result"
)

type Handler struct {
	cfg   *config.Config
	store *store.Store
}

func NewHandler(cfg *config.Config, s *store.Store) *Handler {
	return &Handler{cfg: cfg, store: s}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/status/connection", h.ConnectionStatus)

	adminGroup := api.Group("/admin", auth.RequireRole("admin"))
	adminGroup.GET("/tables", h.ListTables)
	adminGroup.GET("/tables/:name", h.InspectTable)
}

// ConnectionStatus reports which backend the server is running
// against. The demo never hides that it is a demo.
func (h *Handler) ConnectionStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, result.OK(h.cfg.Connection()))
}

func (h *Handler) ListTables(c echo.Context) error {
	return c.JSON(http.StatusOK, result.OK(h.store.Tables()))
}

// InspectTable dumps a collection's raw rows. An unknown name yields
// an empty collection, same as the query façade.
func (h *Handler) InspectTable(c echo.Context) error {
	rows := h.store.From(c.Param("name")).Select().Exec()
	return c.JSON(http.StatusOK, result.OK(rows.Data))
}
