package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/db"
	"github.com/mandirseva/internal/locale"
	"github.com/mandirseva/internal/service"
)

// Gaushala sub-site handlers. The request shapes mirror the main-site
// collections; only the storage namespace differs.

type gaushalaSliderResponse struct {
	db.GaushalaSlider
	Title string `json:"title"`
}

type gaushalaGalleryResponse struct {
	db.GaushalaGalleryItem
	Title    string `json:"title"`
	EmbedURL string `json:"embedUrl,omitempty"`
}

// GetGaushalaSliders lists gaushala hero slides.
func (a *API) GetGaushalaSliders(c *gin.Context) {
	items, err := a.gaushala.Sliders(queryFlag(c, "includeInactive"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load gaushala sliders")
		return
	}

	pref := a.requestLocale(c)
	response := make([]gaushalaSliderResponse, 0, len(items))
	for _, item := range items {
		response = append(response, gaushalaSliderResponse{
			GaushalaSlider: item,
			Title:          locale.Pick(pref.Language, item.TitleEn, item.TitleHi),
		})
	}
	c.JSON(http.StatusOK, response)
}

// CreateGaushalaSlider adds a gaushala hero slide.
func (a *API) CreateGaushalaSlider(c *gin.Context) {
	var req sliderCreateRequest
	if !bindJSON(c, &req, "imageUrl, titleEn and titleHi are required") {
		return
	}

	item, err := a.gaushala.CreateSlider(service.SliderInput{
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
			respondError(c, http.StatusInternalServerError, "failed to create gaushala slider")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateGaushalaSlider applies a partial update to a gaushala slide.
func (a *API) UpdateGaushalaSlider(c *gin.Context) {
	var req sliderUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.gaushala.UpdateSlider(c.Param("id"), service.SliderUpdate{
		ImageURL: req.ImageURL,
		TitleEn:  req.TitleEn,
		TitleHi:  req.TitleHi,
		Order:    req.Order,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGaushalaSliderNotFound):
			respondError(c, http.StatusNotFound, "gaushala slider not found")
		case errors.Is(err, service.ErrSliderImageMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update gaushala slider")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteGaushalaSlider removes a gaushala slide.
func (a *API) DeleteGaushalaSlider(c *gin.Context) {
	if err := a.gaushala.DeleteSlider(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete gaushala slider")
		return
	}
	respondDeleted(c)
}

type gaushalaAboutResponse struct {
	db.GaushalaAbout
	ContentEnHTML string `json:"contentEnHtml"`
	ContentHiHTML string `json:"contentHiHtml"`
}

// GetGaushalaAbout returns the gaushala about block, or null.
func (a *API) GetGaushalaAbout(c *gin.Context) {
	content, err := a.gaushala.About()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load gaushala about")
		return
	}
	if content == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, gaushalaAboutResponse{
		GaushalaAbout: *content,
		ContentEnHTML: service.RenderMarkdown(content.ContentEn),
		ContentHiHTML: service.RenderMarkdown(content.ContentHi),
	})
}

// UpsertGaushalaAbout replaces the gaushala about block.
func (a *API) UpsertGaushalaAbout(c *gin.Context) {
	var req aboutRequest
	if !bindJSON(c, &req, "title and content are required in both languages") {
		return
	}

	content, err := a.gaushala.UpsertAbout(service.GaushalaAboutInput{
		TitleEn:   req.TitleEn,
		TitleHi:   req.TitleHi,
		ContentEn: req.ContentEn,
		ContentHi: req.ContentHi,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrGaushalaAboutMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save gaushala about")
		return
	}

	c.JSON(http.StatusOK, content)
}

// GetGaushalaServices lists gaushala offering cards.
func (a *API) GetGaushalaServices(c *gin.Context) {
	items, err := a.gaushala.Services()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load gaushala services")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateGaushalaService adds a gaushala offering card.
func (a *API) CreateGaushalaService(c *gin.Context) {
	var req serviceCreateRequest
	if !bindJSON(c, &req, "titleEn and titleHi are required") {
		return
	}

	item, err := a.gaushala.CreateService(service.ServiceInput{
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
		respondError(c, http.StatusInternalServerError, "failed to create gaushala service")
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateGaushalaService applies a partial update to a gaushala offering
// card.
func (a *API) UpdateGaushalaService(c *gin.Context) {
	var req serviceUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.gaushala.UpdateService(c.Param("id"), service.ServiceUpdate{
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
		if errors.Is(err, service.ErrGaushalaServiceNotFound) {
			respondError(c, http.StatusNotFound, "gaushala service not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update gaushala service")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteGaushalaService removes a gaushala offering card.
func (a *API) DeleteGaushalaService(c *gin.Context) {
	if err := a.gaushala.DeleteService(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete gaushala service")
		return
	}
	respondDeleted(c)
}

func (a *API) gaushalaGalleryList(c *gin.Context, filter service.GalleryFilter) {
	items, err := a.gaushala.Gallery(filter)
	if err != nil {
		if errors.Is(err, service.ErrGalleryTypeInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load gaushala gallery")
		return
	}

	pref := a.requestLocale(c)
	response := make([]gaushalaGalleryResponse, 0, len(items))
	for _, item := range items {
		entry := gaushalaGalleryResponse{
			GaushalaGalleryItem: item,
			Title:               locale.Pick(pref.Language, item.TitleEn, item.TitleHi),
		}
		if item.Type == db.GalleryTypeVideo {
			if embed, ok := BuildVideoEmbedURL(item.URL); ok {
				entry.EmbedURL = embed
			}
		}
		response = append(response, entry)
	}
	c.JSON(http.StatusOK, response)
}

// GetGaushalaGallery lists gaushala gallery items.
func (a *API) GetGaushalaGallery(c *gin.Context) {
	a.gaushalaGalleryList(c, service.GalleryFilter{
		Type:            c.Query("type"),
		IncludeInactive: queryFlag(c, "includeInactive"),
	})
}

// GetGaushalaGalleryByType lists gaushala gallery items of one type.
func (a *API) GetGaushalaGalleryByType(c *gin.Context) {
	a.gaushalaGalleryList(c, service.GalleryFilter{
		Type:            c.Param("type"),
		IncludeInactive: queryFlag(c, "includeInactive"),
	})
}

// CreateGaushalaGalleryItem adds a gaushala gallery entry.
func (a *API) CreateGaushalaGalleryItem(c *gin.Context) {
	var req galleryCreateRequest
	if !bindJSON(c, &req, "type and url are required") {
		return
	}

	item, err := a.gaushala.CreateGalleryItem(service.GalleryInput{
		Type:         req.Type,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		TitleEn:      req.TitleEn,
		TitleHi:      req.TitleHi,
		Order:        req.Order,
		IsActive:     req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryTypeInvalid), errors.Is(err, service.ErrGalleryURLMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create gaushala gallery item")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateGaushalaGalleryItem applies a partial update to a gaushala gallery
// entry.
func (a *API) UpdateGaushalaGalleryItem(c *gin.Context) {
	var req galleryUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.gaushala.UpdateGalleryItem(c.Param("id"), service.GalleryUpdate{
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		TitleEn:      req.TitleEn,
		TitleHi:      req.TitleHi,
		Order:        req.Order,
		IsActive:     req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGaushalaGalleryNotFound):
			respondError(c, http.StatusNotFound, "gaushala gallery item not found")
		case errors.Is(err, service.ErrGalleryURLMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update gaushala gallery item")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteGaushalaGalleryItem removes a gaushala gallery entry.
func (a *API) DeleteGaushalaGalleryItem(c *gin.Context) {
	if err := a.gaushala.DeleteGalleryItem(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete gaushala gallery item")
		return
	}
	respondDeleted(c)
}
