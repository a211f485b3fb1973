package handlers

import (
	"net/http"

	response "arquitetura_xpto/internal/adapter/http/dto/response"
	"arquitetura_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BriefingHandler exposes read access to stored intake records.

type BriefingHandler struct {
	usecase usecase.IBriefingUseCase
}

func NewBriefingHandler(uc usecase.IBriefingUseCase) *BriefingHandler {
	return &BriefingHandler{usecase: uc}
}

func (h *BriefingHandler) GetBriefing(c *gin.Context) {
	briefing, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBriefing(briefing))
}
