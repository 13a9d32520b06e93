package handlers

import (
	"github.com/adlaunch/backend/internal/http/dto"
	"github.com/adlaunch/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdCopyHandler struct {
	adCopy *services.AdCopyService
	log    *zap.Logger
}

func NewAdCopyHandler(adCopy *services.AdCopyService, log *zap.Logger) *AdCopyHandler {
	return &AdCopyHandler{adCopy: adCopy, log: log}
}

// GenerateAdCopy asks Gemini for three ad-copy variants. Provider failures
// surface as a 500; the wizard client substitutes templated copy on its
// side.
func (h *AdCopyHandler) GenerateAdCopy(c *fiber.Ctx) error {
	var req dto.GenerateAdCopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if req.ProductDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "product description is required"})
	}

	adCopies, err := h.adCopy.Suggest(c.Context(), req.ProductDescription, req.Objective)
	if err != nil {
		h.log.Error("ad copy generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to generate ad copy"})
	}

	return c.JSON(dto.AdCopyResponse{AdCopies: adCopies})
}
