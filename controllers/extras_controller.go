package controllers

import (
	"net/http"

	"itinerary-backend/models"
	"itinerary-backend/services"
	"itinerary-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExtrasController covers the optional page sections: video, whatsapp
// contact, inclusions and exclusions.
type ExtrasController struct {
	ExtrasSvc *services.ExtrasService
	AuditSvc  *services.AuditService
}

func NewExtrasController(svc *services.ExtrasService, audit *services.AuditService) *ExtrasController {
	return &ExtrasController{ExtrasSvc: svc, AuditSvc: audit}
}

// SetVideo (PUT /api/customers/:id/video) creates or replaces the video.
func (ctrl *ExtrasController) SetVideo(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var video models.Video
	if err := c.ShouldBindJSON(&video); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid video payload: "+err.Error())
		return
	}

	saved, err := ctrl.ExtrasSvc.SetVideo(customerID, video)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "set", "video", saved.ID, map[string]any{"customer_id": customerID})
	utils.JSONSuccess(c, http.StatusOK, saved)
}

// DeleteVideo (DELETE /api/customers/:id/video)
func (ctrl *ExtrasController) DeleteVideo(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ExtrasSvc.DeleteVideo(customerID); err != nil {
		respondServiceError(c, err)
		return
	}
	ctrl.AuditSvc.Record(principal.Username, "delete", "video", customerID, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"customer_id": customerID})
}

// SetWhatsApp (PUT /api/customers/:id/whatsapp)
func (ctrl *ExtrasController) SetWhatsApp(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var cfg models.WhatsAppConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid whatsapp payload: "+err.Error())
		return
	}

	saved, err := ctrl.ExtrasSvc.SetWhatsApp(customerID, cfg)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ctrl.AuditSvc.Record(principal.Username, "set", "whatsapp", saved.ID, map[string]any{"customer_id": customerID})
	utils.JSONSuccess(c, http.StatusOK, saved)
}

// DeleteWhatsApp (DELETE /api/customers/:id/whatsapp)
func (ctrl *ExtrasController) DeleteWhatsApp(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ExtrasSvc.DeleteWhatsApp(customerID); err != nil {
		respondServiceError(c, err)
		return
	}
	ctrl.AuditSvc.Record(principal.Username, "delete", "whatsapp", customerID, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"customer_id": customerID})
}

// AddInclusion (POST /api/customers/:id/inclusions)
func (ctrl *ExtrasController) AddInclusion(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var inc models.PackageInclusion
	if err := c.ShouldBindJSON(&inc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid inclusion payload: "+err.Error())
		return
	}
	inc.ID = 0
	inc.CustomerID = customerID

	if err := ctrl.ExtrasSvc.AddInclusion(&inc); err != nil {
		respondServiceError(c, err)
		return
	}
	ctrl.AuditSvc.Record(principal.Username, "create", "inclusion", inc.ID, map[string]any{"customer_id": customerID})
	utils.JSONSuccess(c, http.StatusCreated, inc)
}

// DeleteInclusion (DELETE /api/customers/:id/inclusions/:itemID)
func (ctrl *ExtrasController) DeleteInclusion(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "itemID")
	if !ok {
		return
	}
	if err := ctrl.ExtrasSvc.DeleteInclusion(customerID, itemID); err != nil {
		respondServiceError(c, err)
		return
	}
	ctrl.AuditSvc.Record(principal.Username, "delete", "inclusion", itemID, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": itemID})
}

// AddExclusion (POST /api/customers/:id/exclusions)
func (ctrl *ExtrasController) AddExclusion(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var exc models.PackageExclusion
	if err := c.ShouldBindJSON(&exc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid exclusion payload: "+err.Error())
		return
	}
	exc.ID = 0
	exc.CustomerID = customerID

	if err := ctrl.ExtrasSvc.AddExclusion(&exc); err != nil {
		respondServiceError(c, err)
		return
	}
	ctrl.AuditSvc.Record(principal.Username, "create", "exclusion", exc.ID, map[string]any{"customer_id": customerID})
	utils.JSONSuccess(c, http.StatusCreated, exc)
}

// DeleteExclusion (DELETE /api/customers/:id/exclusions/:itemID)
func (ctrl *ExtrasController) DeleteExclusion(c *gin.Context) {
	principal, ok := requireSuperuser(c)
	if !ok {
		return
	}
	customerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseUintParam(c, "itemID")
	if !ok {
		return
	}
	if err := ctrl.ExtrasSvc.DeleteExclusion(customerID, itemID); err != nil {
		respondServiceError(c, err)
		return
	}
	ctrl.AuditSvc.Record(principal.Username, "delete", "exclusion", itemID, nil)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": itemID})
}
