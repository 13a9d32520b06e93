package handlers

import (
	"errors"

	"github.com/adlaunch/backend/internal/events"
	"github.com/adlaunch/backend/internal/http/dto"
	"github.com/adlaunch/backend/internal/models"
	"github.com/adlaunch/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaigns *repositories.CampaignRepo
	publisher events.Publisher
	log       *zap.Logger
}

func NewCampaignHandler(campaigns *repositories.CampaignRepo, publisher events.Publisher, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns, publisher: publisher, log: log}
}

// ListCampaigns returns all campaigns, newest first.
func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	return c.JSON(h.campaigns.List())
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign data"})
	}

	if err := validateCreateRequest(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	name := req.Name
	if name == "" && req.ProductDescription != nil {
		name = models.CampaignName(*req.ProductDescription)
	}

	campaign := h.campaigns.Create(repositories.CreateCampaignInput{
		Name:               name,
		Objective:          req.Objective,
		Budget:             req.Budget,
		AdCopy:             req.AdCopy,
		ProductDescription: req.ProductDescription,
		ImageURL:           req.ImageURL,
		TargetLocation:     req.TargetLocation,
		AgeFrom:            req.AgeFrom,
		AgeTo:              req.AgeTo,
		Gender:             req.Gender,
		Status:             req.Status,
	})

	_ = h.publisher.Publish(c.Context(), events.StreamCampaigns, events.Event{
		Type:    events.EventCampaignCreated,
		Payload: map[string]any{"id": campaign.ID, "status": campaign.Status},
	})

	h.log.Info("campaign created", zap.String("campaign_id", campaign.ID))
	return c.JSON(campaign)
}

func validateCreateRequest(req *dto.CreateCampaignRequest) error {
	if !models.IsValidObjective(req.Objective) {
		return errors.New("objective must be one of awareness, traffic, sales")
	}
	if req.Budget < 0 {
		return errors.New("budget must be non-negative")
	}
	if req.AdCopy == "" {
		return errors.New("adCopy is required")
	}
	if req.TargetLocation == "" {
		return errors.New("targetLocation is required")
	}
	if req.AgeFrom >= req.AgeTo {
		return errors.New("ageFrom must be less than ageTo")
	}
	if !models.IsValidGender(req.Gender) {
		return errors.New("gender must be one of all, male, female")
	}
	if req.Status != "" && !models.IsValidStatus(req.Status) {
		return errors.New("status must be one of active, paused, completed")
	}
	return nil
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	campaign, ok := h.campaigns.GetByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
	}
	return c.JSON(campaign)
}

// UpdateCampaign merges partial fields into an existing campaign. Reach is
// never recomputed here, so a budget edit leaves it stale.
func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign data"})
	}

	if req.Objective != nil && !models.IsValidObjective(*req.Objective) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "objective must be one of awareness, traffic, sales"})
	}
	if req.Status != nil && !models.IsValidStatus(*req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "status must be one of active, paused, completed"})
	}
	if req.Gender != nil && !models.IsValidGender(*req.Gender) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "gender must be one of all, male, female"})
	}

	campaign, ok := h.campaigns.Update(c.Params("id"), repositories.CampaignUpdate{
		Name:               req.Name,
		Objective:          req.Objective,
		Budget:             req.Budget,
		AdCopy:             req.AdCopy,
		ProductDescription: req.ProductDescription,
		ImageURL:           req.ImageURL,
		TargetLocation:     req.TargetLocation,
		AgeFrom:            req.AgeFrom,
		AgeTo:              req.AgeTo,
		Gender:             req.Gender,
		Status:             req.Status,
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
	}

	_ = h.publisher.Publish(c.Context(), events.StreamCampaigns, events.Event{
		Type:    events.EventCampaignUpdated,
		Payload: map[string]any{"id": campaign.ID, "status": campaign.Status},
	})

	return c.JSON(campaign)
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id := c.Params("id")
	if !h.campaigns.Delete(id) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "campaign not found"})
	}

	_ = h.publisher.Publish(c.Context(), events.StreamCampaigns, events.Event{
		Type:    events.EventCampaignDeleted,
		Payload: map[string]any{"id": id},
	})

	return c.SendStatus(fiber.StatusNoContent)
}
