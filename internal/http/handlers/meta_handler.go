package handlers

import (
	"github.com/adlaunch/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// MetaHandler serves the static option lists the wizard UI renders:
// objectives with display labels, statuses with badge colors, and the
// audience targeting choices.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaObjective struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type MetaStatus struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

func (h *MetaHandler) GetObjectives(c *fiber.Ctx) error {
	objectives := []MetaObjective{
		{ID: models.ObjectiveAwareness, Label: models.ObjectiveLabel(models.ObjectiveAwareness)},
		{ID: models.ObjectiveTraffic, Label: models.ObjectiveLabel(models.ObjectiveTraffic)},
		{ID: models.ObjectiveSales, Label: models.ObjectiveLabel(models.ObjectiveSales)},
	}
	return c.JSON(objectives)
}

func (h *MetaHandler) GetStatuses(c *fiber.Ctx) error {
	statuses := []MetaStatus{
		{ID: models.StatusActive, Color: models.StatusColor(models.StatusActive)},
		{ID: models.StatusPaused, Color: models.StatusColor(models.StatusPaused)},
		{ID: models.StatusCompleted, Color: models.StatusColor(models.StatusCompleted)},
	}
	return c.JSON(statuses)
}

func (h *MetaHandler) GetAudienceOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"locations":   models.TargetLocations,
		"ageBrackets": models.AgeBrackets,
		"genders":     []string{models.GenderAll, models.GenderMale, models.GenderFemale},
	})
}
