package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/db"
	"github.com/mandirseva/internal/locale"
	"github.com/mandirseva/internal/service"
)

type sliderCreateRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	TitleEn  string `json:"titleEn" binding:"required"`
	TitleHi  string `json:"titleHi" binding:"required"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive"`
}

type sliderUpdateRequest struct {
	ImageURL *string `json:"imageUrl"`
	TitleEn  *string `json:"titleEn"`
	TitleHi  *string `json:"titleHi"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}

type sliderResponse struct {
	db.SliderImage
	Title string `json:"title"`
}

// GetSliderImages lists hero slides. Inactive slides only appear with
// ?includeInactive=1. The resolved title follows the request language; both
// raw variants stay in the payload.
func (a *API) GetSliderImages(c *gin.Context) {
	items, err := a.sliders.List(queryFlag(c, "includeInactive"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load slider images")
		return
	}

	pref := a.requestLocale(c)
	response := make([]sliderResponse, 0, len(items))
	for _, item := range items {
		response = append(response, sliderResponse{
			SliderImage: item,
			Title:       locale.Pick(pref.Language, item.TitleEn, item.TitleHi),
		})
	}

	c.JSON(http.StatusOK, response)
}

// CreateSliderImage adds a hero slide. The three-slide cap on the homepage
// is presentation-only; the API accepts any number.
func (a *API) CreateSliderImage(c *gin.Context) {
	var req sliderCreateRequest
	if !bindJSON(c, &req, "imageUrl, titleEn and titleHi are required") {
		return
	}

	item, err := a.sliders.Create(service.SliderInput{
		ImageURL: req.ImageURL,
		TitleEn:  req.TitleEn,
		TitleHi:  req.TitleHi,
		Order:    req.Order,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSliderImageMissing), errors.Is(err, service.ErrSliderTitleMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create slider image")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateSliderImage applies a partial update to a hero slide.
func (a *API) UpdateSliderImage(c *gin.Context) {
	var req sliderUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.sliders.Update(c.Param("id"), service.SliderUpdate{
		ImageURL: req.ImageURL,
		TitleEn:  req.TitleEn,
		TitleHi:  req.TitleHi,
		Order:    req.Order,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSliderNotFound):
			respondError(c, http.StatusNotFound, "slider image not found")
		case errors.Is(err, service.ErrSliderImageMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update slider image")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteSliderImage removes a hero slide; deleting an already-removed id
// still reports success.
func (a *API) DeleteSliderImage(c *gin.Context) {
	if err := a.sliders.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete slider image")
		return
	}
	respondDeleted(c)
}
