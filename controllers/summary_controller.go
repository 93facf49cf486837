package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

// SummaryController serves invoice summaries for any scope
type SummaryController struct {
	summaries *services.SummaryService
}

// NewSummaryController creates a summary controller
func NewSummaryController(summaries *services.SummaryService) *SummaryController {
	return &SummaryController{summaries: summaries}
}

// Summarize handles GET /api/v1/summaries/:scope/:id. For the supplier scope
// the id is the supplier name.
func (sc *SummaryController) Summarize(c *gin.Context) {
	summary, err := sc.summaries.Summarize(services.SummaryScope(c.Param("scope")), c.Param("id"))
	respondSummary(c, summary, err)
}
