package handlers

import (
	"errors"
	"strings"

	"spendlens/internal/dto"
	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InsightHandler struct {
	insightService *service.InsightService
	logger         *zap.Logger
}

func NewInsightHandler(insightService *service.InsightService, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		logger:         logger,
	}
}

// Ask godoc
// @Summary Ask a question about your spending
// @Description Answer a free-text question grounded in the user's expenses and the advice knowledge base
// @Tags insights
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Question"
// @Success 200 {object} dto.AskResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /insights/ask [post]
func (h *InsightHandler) Ask(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Question is required"})
	}

	resp, err := h.insightService.Ask(c.Context(), userID, req.Question)
	if err != nil {
		h.logger.Error("Failed to answer question", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to generate answer"})
	}

	return c.JSON(resp)
}

// Analyze godoc
// @Summary Analyze spending
// @Description Produce an LLM-generated summary and saving recommendations for the user's expense history
// @Tags insights
// @Produce json
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /insights/analyze [post]
func (h *InsightHandler) Analyze(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	resp, err := h.insightService.Analyze(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoExpenses) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No expenses to analyze"})
		}
		h.logger.Error("Failed to analyze expenses", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to analyze expenses"})
	}

	return c.JSON(resp)
}

// CategoryAdvice godoc
// @Summary Advice for a spending category
// @Description Knowledge-base advice for a category, falling back to general advice
// @Tags insights
// @Produce json
// @Param category path string true "Spending category"
// @Success 200 {object} dto.AdviceResponse
// @Security Bearer
// @Router /insights/advice/{category} [get]
func (h *InsightHandler) CategoryAdvice(c *fiber.Ctx) error {
	category := c.Params("category")
	return c.JSON(h.insightService.CategoryAdvice(category))
}
