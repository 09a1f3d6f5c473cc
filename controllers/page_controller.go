package controllers

import (
	"errors"
	"net/http"

	"itinerary-backend/services"
	"itinerary-backend/utils"

	"github.com/gin-gonic/gin"
)

// PageController serves the two read views: the restricted customer listing
// and the public per-slug itinerary document.
type PageController struct {
	CustomerSvc *services.CustomerService
	PageSvc     *services.PageService
}

func NewPageController(customerSvc *services.CustomerService, pageSvc *services.PageService) *PageController {
	return &PageController{CustomerSvc: customerSvc, PageSvc: pageSvc}
}

// Home (GET /) lists all customers, newest first. Superuser only; any other
// caller gets the canned 404.
func (ctrl *PageController) Home(c *gin.Context) {
	if _, ok := requireSuperuser(c); !ok {
		return
	}

	customers, err := ctrl.CustomerSvc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list customers")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"customers": customers})
}

// CustomerItinerary (GET /itinerary/:slug) is the public page document.
func (ctrl *PageController) CustomerItinerary(c *gin.Context) {
	slug := c.Param("slug")

	page, err := ctrl.PageSvc.BuildPage(slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONNotFound(c)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to build itinerary page")
		return
	}

	c.JSON(http.StatusOK, page)
}
