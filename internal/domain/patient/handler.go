package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onkoai/oncodemo/internal/platform/auth"
	"github.com/onkoai/oncodemo/pkg/pagination"
	"github.com/onkoai/oncodemo/pkg/result"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Read endpoints – any authenticated role; visibility is narrowed
	// per role inside the service.
	readGroup := api.Group("", auth.RequireRole("doctor", "patient"))
	readGroup.GET("/patients", h.ListPatients)
	readGroup.GET("/patients/:id", h.GetPatient)

	// Write endpoints – doctor and admin only.
	writeGroup := api.Group("", auth.RequireRole("doctor"))
	writeGroup.POST("/patients", h.CreatePatient)
	writeGroup.PUT("/patients/:id", h.UpdatePatient)
}

func viewerFrom(c echo.Context) Viewer {
	ctx := c.Request().Context()
	return Viewer{
		UserID:    auth.UserIDFromContext(ctx),
		Role:      auth.RoleFromContext(ctx),
		PatientID: auth.PatientIDFromContext(ctx),
	}
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.GetPatients(c.Request().Context(), viewerFrom(c), pg.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, len(items), pg.Limit, 0))
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.GetPatientByID(c.Request().Context(), viewerFrom(c), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if p == nil {
		return c.JSON(http.StatusNotFound, result.Fail("patient not found"))
	}
	return c.JSON(http.StatusOK, result.OK(p))
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var params CreateParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
	}
	p, err := h.svc.CreatePatient(c.Request().Context(), params)
	if err != nil {
		return c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
	}
	return c.JSON(http.StatusCreated, result.OK(p))
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	var params UpdateParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
	}
	p, err := h.svc.UpdatePatient(c.Request().Context(), c.Param("id"), params)
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, result.Fail("patient not found"))
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
	}
	return c.JSON(http.StatusOK, result.OK(p))
}
