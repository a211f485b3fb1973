package handlers

import (
	"context"
	"errors"
	"net/http"

	request "arquitetura_xpto/internal/adapter/http/dto/request"
	response "arquitetura_xpto/internal/adapter/http/dto/response"
	"arquitetura_xpto/internal/domain/engine"
	"arquitetura_xpto/internal/domain/entities"
	"arquitetura_xpto/internal/usecase"
	"arquitetura_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBriefingPayload = pkg.NewDomainErrorSimple("INVALID_BRIEFING_INPUT", "Invalid briefing payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for the budget lifecycle.

type BudgetHandler struct {
	budgets   usecase.IBudgetUseCase
	briefings usecase.IBriefingUseCase
}

func NewBudgetHandler(budgets usecase.IBudgetUseCase, briefings usecase.IBriefingUseCase) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, briefings: briefings}
}

// CalculateBudget registers the briefing and runs a calculation over it in a
// single request, returning the draft budget with the extraction echo.
func (h *BudgetHandler) CalculateBudget(c *gin.Context) {
	var payload request.BriefingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBriefingPayload.HTTPStatus, errInvalidBriefingPayload.ToHTTPError())
		return
	}

	briefing, err := h.briefings.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.budgets.CalculateFromBriefing(c.Request.Context(), briefing.ID)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCalculationResult(result))
}

// RecalculateBudget produces a fresh budget for an existing briefing.
func (h *BudgetHandler) RecalculateBudget(c *gin.Context) {
	var payload request.RecalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	result, err := h.budgets.RecalculateFromBriefing(c.Request.Context(), payload.ResolveBriefingID())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCalculationResult(result))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.budgets.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) GetBudgetByCode(c *gin.Context) {
	budget, err := h.budgets.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ListBudgets returns every budget version produced for a briefing.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.budgets.ListByBriefingID(c.Request.Context(), c.Query("briefing_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, response.FromBudget(b))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BudgetHandler) SendBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.budgets.SendByID)
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.budgets.ApproveByID)
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.budgets.RejectByID)
}

func (h *BudgetHandler) patchBudgetStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Budget, error),
) {
	budget, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func mapBudgetError(err error) *pkg.AppError {
	var ve *engine.ValidationError
	if errors.As(err, &ve) {
		return pkg.NewDomainErrorSimple(ve.Code, ve.Message, http.StatusUnprocessableEntity)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidBudgetCode),
		errors.Is(err, usecase.ErrInvalidBriefingID),
		errors.Is(err, usecase.ErrInvalidProjectName),
		errors.Is(err, usecase.ErrInvalidOfficeID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBriefingNotFound):
		return pkg.NewDomainErrorSimple("BRIEFING_NOT_FOUND", "Briefing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBriefingArchived):
		return pkg.NewDomainErrorSimple("BRIEFING_ARCHIVED", "Briefing is archived", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotDraft):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_DRAFT", "Only draft budgets can be sent", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotSent):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_SENT", "Only sent budgets can be approved or rejected", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
