package oncology

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onkoai/oncodemo/internal/platform/auth"
	"github.com/onkoai/oncodemo/pkg/result"
)

const defaultMarkerLimit = 50

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	clinical := api.Group("", auth.RequireRole("doctor", "patient"))
	clinical.GET("/patients/:id/tumor-markers", h.ListTumorMarkers)
	clinical.GET("/patients/:id/recommendations", h.GetRecommendation)

	api.POST("/ai/classify", h.Classify, auth.RequireRole("doctor"))
}

func (h *Handler) ListTumorMarkers(c echo.Context) error {
	markers, err := h.svc.ListMarkersByPatient(c.Request().Context(), c.Param("id"), defaultMarkerLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result.OK(markers))
}

func (h *Handler) GetRecommendation(c echo.Context) error {
	rec, err := h.svc.LatestRecommendation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, result.Fail("no recommendations for patient"))
	}
	return c.JSON(http.StatusOK, result.OK(rec))
}

type classifyRequest struct {
	Text string `json:"text"`
}

func (h *Handler) Classify(c echo.Context) error {
	var req classifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, result.Fail("text is required"))
	}
	return c.JSON(http.StatusOK, Classify(req.Text))
}
