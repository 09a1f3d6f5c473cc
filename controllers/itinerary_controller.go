package controllers

import (
	"net/http"

	"itinerary-backend/models"
	"itinerary-backend/services"
	"itinerary-backend/utils"

	"github.com/gin-gonic/gin"
)

type ItineraryController struct {
	ItinerarySvc *services.ItineraryService
	AuditSvc     *services.AuditService
}

func NewItineraryController(svc *services.ItineraryService, audit *services.AuditService) *ItineraryController {
	return &ItineraryController{ItinerarySvc: svc, AuditSvc: audit}
}

// ListDays (GET /api/customers/:id/days) returns days with nested details.
func (ctrl *ItineraryController) ListDays(c *gin.Context) {
	if _, ok := requireSuperuser(c); !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	days, err := ctrl.ItinerarySvc.ListByCustomer(customerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list itinerary days")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, days)
}

// CreateDay (POST /api/customers/:id/days). A day number already used for
// this customer is a 409.
func (ctrl *ItineraryController) CreateDay(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var day models.ItineraryDay
	if err := c.ShouldBindJSON(&day); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid itinerary day payload: "+err.Error())
		return
	}
	day.ID = 0
	day.CustomerID = customerID

	if err := ctrl.ItinerarySvc.CreateDay(&day); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "create", "itinerary_day", day.ID, map[string]any{
		"customer_id": customerID,
		"day":         day.Day,
	})
	utils.JSONSuccess(c, http.StatusCreated, day)
}

// DeleteDay (DELETE /api/customers/:id/days/:dayID) removes the day and its
// details.
func (ctrl *ItineraryController) DeleteDay(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	dayID, ok := parseUintParam(c, "dayID")
	if !ok {
		return
	}
	if err := ctrl.ItinerarySvc.DeleteDay(customerID, dayID); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "delete", "itinerary_day", dayID, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": dayID})
}

// AddDetail (POST /api/customers/:id/days/:dayID/details)
func (ctrl *ItineraryController) AddDetail(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	dayID, ok := parseUintParam(c, "dayID")
	if !ok {
		return
	}

	var detail models.ItineraryDetail
	if err := c.ShouldBindJSON(&detail); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid detail payload: "+err.Error())
		return
	}
	detail.ID = 0

	if err := ctrl.ItinerarySvc.AddDetail(customerID, dayID, &detail); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "create", "itinerary_detail", detail.ID, map[string]any{
		"customer_id": customerID,
		"day_id":      dayID,
	})
	utils.JSONSuccess(c, http.StatusCreated, detail)
}

// DeleteDetail (DELETE /api/customers/:id/days/:dayID/details/:detailID)
func (ctrl *ItineraryController) DeleteDetail(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	dayID, ok := parseUintParam(c, "dayID")
	if !ok {
		return
	}
	detailID, ok := parseUintParam(c, "detailID")
	if !ok {
		return
	}
	if err := ctrl.ItinerarySvc.DeleteDetail(customerID, dayID, detailID); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "delete", "itinerary_detail", detailID, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": detailID})
}
