package controllers

import (
	"net/http"
	"strconv"

	"itinerary-backend/services"
	"itinerary-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuditController struct {
	AuditSvc *services.AuditService
}

func NewAuditController(svc *services.AuditService) *AuditController {
	return &AuditController{AuditSvc: svc}
}

// ListLogs (GET /api/audit-logs?limit=n)
func (ctrl *AuditController) ListLogs(c *gin.Context) {
	if _, ok := requireSuperuser(c); !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	entries, err := ctrl.AuditSvc.Recent(limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list audit logs")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}
