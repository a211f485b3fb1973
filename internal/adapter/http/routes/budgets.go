package routes

import (
	"arquitetura_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets   = "/budgets"
	PathBriefings = "/briefings"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CalculateBudget)
		budgets.POST("/recalculate", budgetHandler.RecalculateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.GET("/code/:code", budgetHandler.GetBudgetByCode)
		budgets.PATCH("/:id/send", budgetHandler.SendBudget)
		budgets.PATCH("/:id/approve", budgetHandler.ApproveBudget)
		budgets.PATCH("/:id/reject", budgetHandler.RejectBudget)
	}
}

func addBriefingRoutes(rg *gin.RouterGroup, briefingHandler *handlers.BriefingHandler) {
	briefings := rg.Group(PathBriefings)
	{
		briefings.GET("/:id", briefingHandler.GetBriefing)
	}
}
