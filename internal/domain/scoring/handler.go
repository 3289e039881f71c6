package scoring

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the stateless bedside calculators. Every endpoint takes a
// JSON input and returns the computed panel; nothing here touches patient
// state.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the calculator endpoints on the API group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	calc := g.Group("/calculators")
	calc.POST("/apache-ii", h.ApacheII)
	calc.POST("/saps3", h.Saps3)
	calc.POST("/p-possum", h.PPossum)
	calc.POST("/cam-icu", h.CamICU)
	calc.POST("/creatinine-clearance", h.CreatinineClearance)
	calc.POST("/sodium-correction", h.SodiumCorrection)
	calc.POST("/osmolality", h.Osmolality)
	calc.POST("/ventilation", h.Ventilation)
	calc.POST("/nutrition", h.Nutrition)
	calc.GET("/formulary", h.Formulary)
}

func (h *Handler) ApacheII(c echo.Context) error {
	var in ApacheInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	return c.JSON(http.StatusOK, ApacheII(in))
}

func (h *Handler) Saps3(c echo.Context) error {
	var in Saps3Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	return c.JSON(http.StatusOK, Saps3(in))
}

func (h *Handler) PPossum(c echo.Context) error {
	var in PossumInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	return c.JSON(http.StatusOK, PPossum(in))
}

// CamICUInput carries the four CAM-ICU features.
type CamICUInput struct {
	AcuteOnset           bool `json:"acute_onset"`
	Fluctuating          bool `json:"fluctuating"`
	Inattention          bool `json:"inattention"`
	AlteredConsciousness bool `json:"altered_consciousness"`
	DisorganizedThinking bool `json:"disorganized_thinking"`
}

// CamICUResult reports the delirium assessment.
type CamICUResult struct {
	Delirium bool `json:"delirium"`
}

func (h *Handler) CamICU(c echo.Context) error {
	var in CamICUInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	delirium := CamICU(in.AcuteOnset, in.Fluctuating, in.Inattention, in.AlteredConsciousness, in.DisorganizedThinking)
	return c.JSON(http.StatusOK, CamICUResult{Delirium: delirium})
}

func (h *Handler) CreatinineClearance(c echo.Context) error {
	var in CrClInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	return c.JSON(http.StatusOK, CreatinineClearance(in))
}

func (h *Handler) SodiumCorrection(c echo.Context) error {
	var in SodiumInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	return c.JSON(http.StatusOK, SodiumCorrection(in))
}

func (h *Handler) Osmolality(c echo.Context) error {
	var in OsmolalityInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	return c.JSON(http.StatusOK, Osmolality(in))
}

func (h *Handler) Ventilation(c echo.Context) error {
	var in DeadSpaceInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	return c.JSON(http.StatusOK, DeadSpace(in))
}

func (h *Handler) Nutrition(c echo.Context) error {
	var in NutritionInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	return c.JSON(http.StatusOK, Nutrition(in))
}

// Formulary returns the sedation drug table with charting limits.
func (h *Handler) Formulary(c echo.Context) error {
	return c.JSON(http.StatusOK, Formulary)
}
