package controllers

import (
	"net/http"

	"itinerary-backend/models"
	"itinerary-backend/services"
	"itinerary-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	HotelSvc *services.HotelService
	AuditSvc *services.AuditService
}

func NewHotelController(svc *services.HotelService, audit *services.AuditService) *HotelController {
	return &HotelController{HotelSvc: svc, AuditSvc: audit}
}

// ListHotels (GET /api/customers/:id/hotels)
func (ctrl *HotelController) ListHotels(c *gin.Context) {
	if _, ok := requireSuperuser(c); !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	hotels, err := ctrl.HotelSvc.ListByCustomer(customerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list hotels")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// CreateHotel (POST /api/customers/:id/hotels)
func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel payload: "+err.Error())
		return
	}
	hotel.ID = 0
	hotel.CustomerID = customerID

	if err := ctrl.HotelSvc.Create(&hotel); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "create", "hotel", hotel.ID, map[string]any{
		"customer_id": customerID,
		"name":        hotel.Name,
	})
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// UpdateHotel (PUT /api/customers/:id/hotels/:hotelID)
func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	hotelID, ok := parseUintParam(c, "hotelID")
	if !ok {
		return
	}

	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel payload: "+err.Error())
		return
	}
	hotel.ID = hotelID
	hotel.CustomerID = customerID

	if err := ctrl.HotelSvc.Update(hotel); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "update", "hotel", hotelID, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": hotelID})
}

// DeleteHotel (DELETE /api/customers/:id/hotels/:hotelID)
func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	hotelID, ok := parseUintParam(c, "hotelID")
	if !ok {
		return
	}
	if err := ctrl.HotelSvc.Delete(customerID, hotelID); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "delete", "hotel", hotelID, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": hotelID})
}
