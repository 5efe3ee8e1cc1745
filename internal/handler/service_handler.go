package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/service"
)

type serviceCreateRequest struct {
	TitleEn       string `json:"titleEn" binding:"required"`
	TitleHi       string `json:"titleHi" binding:"required"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionHi string `json:"descriptionHi"`
	ButtonTextEn  string `json:"buttonTextEn"`
	ButtonTextHi  string `json:"buttonTextHi"`
	ButtonLink    string `json:"buttonLink"`
	ImageURL      string `json:"imageUrl"`
	Order         int    `json:"order"`
}

type serviceUpdateRequest struct {
	TitleEn       *string `json:"titleEn"`
	TitleHi       *string `json:"titleHi"`
	DescriptionEn *string `json:"descriptionEn"`
	DescriptionHi *string `json:"descriptionHi"`
	ButtonTextEn  *string `json:"buttonTextEn"`
	ButtonTextHi  *string `json:"buttonTextHi"`
	ButtonLink    *string `json:"buttonLink"`
	ImageURL      *string `json:"imageUrl"`
	Order         *int    `json:"order"`
}

// GetServices lists the offering cards.
func (a *API) GetServices(c *gin.Context) {
	items, err := a.services.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load services")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateService adds an offering card.
func (a *API) CreateService(c *gin.Context) {
	var req serviceCreateRequest
	if !bindJSON(c, &req, "titleEn and titleHi are required") {
		return
	}

	item, err := a.services.Create(service.ServiceInput{
		TitleEn:       req.TitleEn,
		TitleHi:       req.TitleHi,
		DescriptionEn: req.DescriptionEn,
		DescriptionHi: req.DescriptionHi,
		ButtonTextEn:  req.ButtonTextEn,
		ButtonTextHi:  req.ButtonTextHi,
		ButtonLink:    req.ButtonLink,
		ImageURL:      req.ImageURL,
		Order:         req.Order,
	})
	if err != nil {
		if errors.Is(err, service.ErrServiceTitleMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create service")
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateService applies a partial update to an offering card.
func (a *API) UpdateService(c *gin.Context) {
	var req serviceUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.services.Update(c.Param("id"), service.ServiceUpdate{
		TitleEn:       req.TitleEn,
		TitleHi:       req.TitleHi,
		DescriptionEn: req.DescriptionEn,
		DescriptionHi: req.DescriptionHi,
		ButtonTextEn:  req.ButtonTextEn,
		ButtonTextHi:  req.ButtonTextHi,
		ButtonLink:    req.ButtonLink,
		ImageURL:      req.ImageURL,
		Order:         req.Order,
	})
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			respondError(c, http.StatusNotFound, "service not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update service")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteService removes an offering card.
func (a *API) DeleteService(c *gin.Context) {
	if err := a.services.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete service")
		return
	}
	respondDeleted(c)
}
