package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"wayfarer/database"
	"wayfarer/planner"
	"wayfarer/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PlanRequest struct {
	DepartureCity string `json:"departure_city" binding:"required"`
	ArrivalCity   string `json:"arrival_city" binding:"required"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
}

type PlanResponse struct {
	PlanID string                 `json:"plan_id,omitempty"`
	Plan   *planner.ItineraryPlan `json:"plan"`
	PDFURL string                 `json:"pdf_url,omitempty"`
}

// PlanHandler serves the trip-planning endpoints around one Planner.
type PlanHandler struct {
	planner *planner.Planner
}

func NewPlanHandler(p *planner.Planner) *PlanHandler {
	return &PlanHandler{planner: p}
}

// Create runs the full planning workflow for a request. The planner
// itself never fails outright; a degraded plan is still a 200.
func (h *PlanHandler) Create(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	req.DepartureCity = strings.TrimSpace(req.DepartureCity)
	req.ArrivalCity = strings.TrimSpace(req.ArrivalCity)

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format. Use YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format. Use YYYY-MM-DD"})
		return
	}
	if !endDate.After(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
		return
	}

	plan := h.planner.PlanTrip(planner.ItineraryRequest{
		DepartureCity: req.DepartureCity,
		ArrivalCity:   req.ArrivalCity,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	})

	resp := PlanResponse{Plan: plan}

	// Persist only when a database is configured; the workflow itself is
	// stateless either way.
	if database.Enabled() {
		pdfBytes, err := services.GeneratePDFBytes(services.PDFData{
			DepartureCity: req.DepartureCity,
			Destination:   plan.Destination,
			TravelDates:   plan.TravelDates,
			Flights:       plan.Flights,
			POISummary:    plan.POISummary,
			DailyPlan:     plan.DailyPlan,
		})
		if err != nil {
			log.Printf("❌ PDF generation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}

		planJSON, _ := json.Marshal(plan)
		planID := uuid.New().String()
		if err := database.SavePlan(&database.PlanRecord{
			ID:            planID,
			DepartureCity: req.DepartureCity,
			ArrivalCity:   req.ArrivalCity,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			PlanJSON:      string(planJSON),
			PDFData:       pdfBytes,
		}); err != nil {
			log.Printf("❌ Failed to save plan: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
			return
		}

		resp.PlanID = planID
		resp.PDFURL = "/api/download/" + planID
	}

	c.JSON(http.StatusOK, resp)
}

// Get returns a stored plan as JSON.
func (h *PlanHandler) Get(c *gin.Context) {
	if !database.Enabled() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan storage is not configured"})
		return
	}

	record, err := database.GetPlan(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	var plan planner.ItineraryPlan
	if err := json.Unmarshal([]byte(record.PlanJSON), &plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse stored plan"})
		return
	}

	c.JSON(http.StatusOK, PlanResponse{
		PlanID: record.ID,
		Plan:   &plan,
		PDFURL: "/api/download/" + record.ID,
	})
}

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
