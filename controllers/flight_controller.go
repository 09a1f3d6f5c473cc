package controllers

import (
	"net/http"

	"itinerary-backend/models"
	"itinerary-backend/services"
	"itinerary-backend/utils"

	"github.com/gin-gonic/gin"
)

type FlightController struct {
	FlightSvc *services.FlightService
	AuditSvc  *services.AuditService
}

func NewFlightController(svc *services.FlightService, audit *services.AuditService) *FlightController {
	return &FlightController{FlightSvc: svc, AuditSvc: audit}
}

// ListFlights (GET /api/customers/:id/flights)
func (ctrl *FlightController) ListFlights(c *gin.Context) {
	if _, ok := requireSuperuser(c); !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	flights, err := ctrl.FlightSvc.ListByCustomer(customerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list flights")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, flights)
}

// CreateFlight (POST /api/customers/:id/flights)
func (ctrl *FlightController) CreateFlight(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var flight models.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid flight payload: "+err.Error())
		return
	}
	flight.ID = 0
	flight.CustomerID = customerID

	if err := ctrl.FlightSvc.Create(&flight); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "create", "flight", flight.ID, map[string]any{
		"customer_id": customerID,
		"role":        flight.Role,
	})
	utils.JSONSuccess(c, http.StatusCreated, flight)
}

// DeleteFlight (DELETE /api/customers/:id/flights/:flightID)
func (ctrl *FlightController) DeleteFlight(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	flightID, ok := parseUintParam(c, "flightID")
	if !ok {
		return
	}
	if err := ctrl.FlightSvc.Delete(customerID, flightID); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "delete", "flight", flightID, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": flightID})
}
