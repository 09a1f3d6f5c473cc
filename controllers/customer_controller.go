package controllers

import (
	"net/http"

	"itinerary-backend/models"
	"itinerary-backend/services"
	"itinerary-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
	AuditSvc    *services.AuditService
}

func NewCustomerController(svc *services.CustomerService, audit *services.AuditService) *CustomerController {
	return &CustomerController{CustomerSvc: svc, AuditSvc: audit}
}

type customerPayload struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Dates       string `json:"dates"`
	Guests      string `json:"guests"`
}

// ListCustomers (GET /api/customers)
func (ctrl *CustomerController) ListCustomers(c *gin.Context) {
	if _, ok := requireSuperuser(c); !ok {
		return
	}
	customers, err := ctrl.CustomerSvc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list customers")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

// CreateCustomer (POST /api/customers)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}

	var payload customerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer payload: "+err.Error())
		return
	}

	customer := models.Customer{
		Name:        payload.Name,
		Destination: payload.Destination,
		Dates:       payload.Dates,
		Guests:      payload.Guests,
	}
	if err := ctrl.CustomerSvc.Create(&customer); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "create", "customer", customer.ID, map[string]any{
		"name": customer.Name,
		"slug": customer.Slug,
	})
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

// GetCustomer (GET /api/customers/:id)
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	if _, ok := requireSuperuser(c); !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	customer, err := ctrl.CustomerSvc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// UpdateCustomer (PUT /api/customers/:id) — the slug is immutable and
// ignored even if supplied.
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var payload customerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer payload: "+err.Error())
		return
	}

	customer := models.Customer{
		ID:          id,
		Name:        payload.Name,
		Destination: payload.Destination,
		Dates:       payload.Dates,
		Guests:      payload.Guests,
	}
	if err := ctrl.CustomerSvc.Update(customer); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "update", "customer", id, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}

// DeleteCustomer (DELETE /api/customers/:id) cascades to every owned row.
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.CustomerSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "delete", "customer", id, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id})
}
