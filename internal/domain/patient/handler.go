package patient

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/icurounds/icurounds/pkg/pagination"
)

// Handler exposes the patient collection over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the patient endpoints on the API group. The active
// route is registered before the id route so "active" never binds as an id.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	patients := g.Group("/patients")
	patients.POST("", h.Create)
	patients.GET("", h.List)
	patients.GET("/active", h.Active)
	patients.GET("/:id", h.Get)
	patients.PATCH("/:id", h.Update)
	patients.PUT("/:id", h.Replace)
	patients.DELETE("/:id", h.Delete)
	patients.POST("/:id/activate", h.Activate)
	patients.GET("/:id/scores", h.Scores)
}

// Create admits a new bed and returns its id and blank record.
func (h *Handler) Create(c echo.Context) error {
	id, rec := h.svc.Create()
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":      id,
		"patient": rec,
	})
}

// List returns paginated bed summaries.
func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	summaries := h.svc.List()
	lo, hi := p.Slice(len(summaries))
	return c.JSON(http.StatusOK, pagination.NewResponse(summaries[lo:hi], len(summaries), p.Limit, p.Offset))
}

// Active returns the currently selected record.
func (h *Handler) Active(c echo.Context) error {
	rec, id, err := h.svc.Active()
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no active patient"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"id":      id,
		"patient": rec,
	})
}

// Get returns the record for the path id.
func (h *Handler) Get(c echo.Context) error {
	rec, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "patient not found"})
	}
	return c.JSON(http.StatusOK, rec)
}

// Update applies a partial patch. Patching an absent id is a silent no-op.
func (h *Handler) Update(c echo.Context) error {
	var patch map[string]json.RawMessage
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	rec, err := h.svc.Update(c.Param("id"), patch)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if rec == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, rec)
}

// Replace swaps the whole record. Replacing an absent id is a silent no-op.
func (h *Handler) Replace(c echo.Context) error {
	var rec Record
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if !h.svc.Replace(c.Param("id"), &rec) {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, &rec)
}

// Delete removes a bed and reports which bed is active afterwards.
func (h *Handler) Delete(c echo.Context) error {
	activeID, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "patient not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"active_id": activeID})
}

// Activate selects a bed. Activating an absent id keeps the previous
// selection; the response always carries the resulting active id.
func (h *Handler) Activate(c echo.Context) error {
	activeID := h.svc.Activate(c.Param("id"))
	return c.JSON(http.StatusOK, map[string]string{"active_id": activeID})
}

// Scores returns the derived score panel for a record.
func (h *Handler) Scores(c echo.Context) error {
	panel, err := h.svc.Panel(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "patient not found"})
	}
	return c.JSON(http.StatusOK, panel)
}
