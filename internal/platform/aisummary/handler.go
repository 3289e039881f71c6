package aisummary

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/icurounds/icurounds/internal/domain/patient"
)

// RecordGetter resolves a patient id to its record and derived panel.
type RecordGetter interface {
	Get(id string) (*patient.Record, error)
	Panel(id string) (*patient.ScorePanel, error)
}

// Handler serves on-demand summary generation.
type Handler struct {
	records RecordGetter
	client  *Client
	logger  zerolog.Logger
}

func NewHandler(records RecordGetter, client *Client, logger zerolog.Logger) *Handler {
	return &Handler{records: records, client: client, logger: logger}
}

// RegisterRoutes mounts the summary endpoint on the API group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/patients/:id/summary", h.Generate)
}

// Generate builds the handover prompt for a record and returns the model's
// narrative. Without an API key the endpoint reports 503.
func (h *Handler) Generate(c echo.Context) error {
	if !h.client.Configured() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "summary generation is not configured"})
	}

	id := c.Param("id")
	rec, err := h.records.Get(id)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "patient not found"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	panel, err := h.records.Panel(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "patient not found"})
	}

	summary, err := h.client.Generate(c.Request().Context(), BuildPrompt(rec, panel))
	if err != nil {
		h.logger.Error().Err(err).Str("patient_id", id).Msg("summary generation failed")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "summary generation failed"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"id":      id,
		"summary": summary,
	})
}
