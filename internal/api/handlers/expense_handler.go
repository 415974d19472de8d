package handlers

import (
	"errors"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/models"
	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// Create godoc
// @Summary Add an expense
// @Description Record a new expense entry for the authenticated user
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense entry"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	expense, err := h.expenseService.Add(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidExpense) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.Error("Failed to add expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add expense"})
	}

	return c.Status(fiber.StatusCreated).JSON(toExpenseResponse(expense))
}

// List godoc
// @Summary List expenses
// @Description List the authenticated user's expenses, most recent first
// @Tags expenses
// @Produce json
// @Success 200 {array} dto.ExpenseResponse
// @Security Bearer
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	expenses, err := h.expenseService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list expenses", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list expenses"})
	}

	resp := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, toExpenseResponse(&expenses[i]))
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete an expense
// @Description Delete one of the authenticated user's expenses
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	if err := h.expenseService.Delete(c.Context(), userID, expenseID); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Expense not found"})
		}
		h.logger.Error("Failed to delete expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete expense"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary Expense statistics
// @Description Total, average and per-category spending for the authenticated user
// @Tags expenses
// @Produce json
// @Success 200 {object} dto.ExpenseStatsResponse
// @Security Bearer
// @Router /expenses/stats [get]
func (h *ExpenseHandler) Stats(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	stats, err := h.expenseService.Stats(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to compute expense stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute stats"})
	}

	return c.JSON(stats)
}

func toExpenseResponse(expense *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          expense.ID.String(),
		Date:        expense.Date.Format("2006-01-02"),
		Category:    string(expense.Category),
		Amount:      expense.Amount,
		Currency:    expense.Currency,
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt.Format(time.RFC3339),
	}
}
