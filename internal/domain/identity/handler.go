package identity

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onkoai/oncodemo/pkg/result"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/session", h.Session)
	api.GET("/auth/me", h.Me)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
	}

	res := h.manager.SignIn(req.Email, req.Password)
	if res.Error != "" {
		return c.JSON(http.StatusUnauthorized, result.Fail(res.Error))
	}
	return c.JSON(http.StatusOK, result.OK(res))
}

func (h *Handler) Logout(c echo.Context) error {
	h.manager.SignOut()
	return c.JSON(http.StatusOK, result.OK(map[string]bool{"signed_out": true}))
}

func (h *Handler) Session(c echo.Context) error {
	// An absent session is a normal answer here, not a 401; the caller
	// asks "who am I" and "nobody" is a valid reply.
	return c.JSON(http.StatusOK, result.OK(h.manager.GetSession()))
}

func (h *Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, result.OK(h.manager.GetCurrentUser()))
}
