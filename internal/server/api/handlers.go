package api

import (
	"context"
	"errors"
	"mime"
	"net/http"

	"entrytree/internal/core"
	"entrytree/internal/server/service"

	"github.com/labstack/echo/v4"
)

// Handler contains the HTTP handlers for the tree API.
type Handler struct {
	svc *service.TreeService
}

// NewHandler creates a new handler with the given service dependency.
func NewHandler(svc *service.TreeService) *Handler {
	return &Handler{svc: svc}
}

// HandleRender handles POST /api/render.
// Accepts a tree description and returns its listing, node count and fingerprint.
func (h *Handler) HandleRender(c echo.Context) error {
	var desc core.Description
	if err := c.Bind(&desc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}

	result, err := h.svc.Render(c.Request().Context(), desc)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// HandleClone handles POST /api/clone.
// Clones the tree, applies the rename and additions to the clone and returns both.
func (h *Handler) HandleClone(c echo.Context) error {
	var req service.CloneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}

	result, err := h.svc.Clone(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// HandleArchive handles POST /api/archive.
// Returns the tree layout as a zip attachment.
func (h *Handler) HandleArchive(c echo.Context) error {
	var desc core.Description
	if err := c.Bind(&desc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}

	data, err := h.svc.Archive(c.Request().Context(), desc)
	if err != nil {
		return mapServiceError(c, err)
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": desc.Name + ".zip"})
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Blob(http.StatusOK, "application/zip", data)
}

// HandleDemo handles GET /api/demo.
// Returns the value semantics walkthrough as plain text.
func (h *Handler) HandleDemo(c echo.Context) error {
	out, err := h.svc.Demo(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.String(http.StatusOK, out)
}

// HandleHealth handles GET /health.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "healthy"})
}

// mapServiceError translates service-layer errors into appropriate HTTP responses.
func mapServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidTree),
		errors.Is(err, service.ErrUnknownKind):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrTooManyNodes),
		errors.Is(err, service.ErrTooDeep):
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": err.Error()})
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "request cancelled"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
