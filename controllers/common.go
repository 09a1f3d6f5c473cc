package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"itinerary-backend/middleware"
	"itinerary-backend/services"
	"itinerary-backend/utils"

	"github.com/gin-gonic/gin"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(v), true
}

// requireSuperuser resolves the caller's principal and answers the canned
// 404 when it is missing or not privileged. Restricted surfaces look
// exactly like missing pages to everyone else.
func requireSuperuser(c *gin.Context) (middleware.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok || !principal.IsSuperuser {
		utils.JSONNotFound(c)
		return middleware.Principal{}, false
	}
	return principal, true
}

// respondServiceError maps service sentinel errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrDuplicateDay):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
