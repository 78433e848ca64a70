package handlers

import (
	"net/http"

	"wayfarer/database"

	"github.com/gin-gonic/gin"
)

// Download serves the stored PDF for a plan.
func (h *PlanHandler) Download(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing plan ID"})
		return
	}

	if !database.Enabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan storage is not configured"})
		return
	}

	record, err := database.GetPlan(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	if len(record.PDFData) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "PDF has not been generated for this plan"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=wayfarer-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", record.PDFData)
}
