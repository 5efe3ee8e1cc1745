package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/db"
	"github.com/mandirseva/internal/locale"
	"github.com/mandirseva/internal/service"
)

type galleryCreateRequest struct {
	Type         string `json:"type" binding:"required"`
	URL          string `json:"url" binding:"required"`
	ThumbnailURL string `json:"thumbnailUrl"`
	TitleEn      string `json:"titleEn"`
	TitleHi      string `json:"titleHi"`
	Order        int    `json:"order"`
	IsActive     *bool  `json:"isActive"`
}

type galleryUpdateRequest struct {
	URL          *string `json:"url"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	TitleEn      *string `json:"titleEn"`
	TitleHi      *string `json:"titleHi"`
	Order        *int    `json:"order"`
	IsActive     *bool   `json:"isActive"`
}

type galleryItemResponse struct {
	db.GalleryItem
	Title    string `json:"title"`
	EmbedURL string `json:"embedUrl,omitempty"`
}

func (a *API) galleryResponse(c *gin.Context, items []db.GalleryItem) []galleryItemResponse {
	pref := a.requestLocale(c)
	response := make([]galleryItemResponse, 0, len(items))
	for _, item := range items {
		entry := galleryItemResponse{
			GalleryItem: item,
			Title:       locale.Pick(pref.Language, item.TitleEn, item.TitleHi),
		}
		if item.Type == db.GalleryTypeVideo {
			if embed, ok := BuildVideoEmbedURL(item.URL); ok {
				entry.EmbedURL = embed
			}
		}
		response = append(response, entry)
	}
	return response
}

// GetGallery lists gallery items. Inactive items only appear with
// ?includeInactive=1; video rows carry a derived embedUrl.
func (a *API) GetGallery(c *gin.Context) {
	items, err := a.gallery.List(service.GalleryFilter{
		Type:            c.Query("type"),
		IncludeInactive: queryFlag(c, "includeInactive"),
	})
	if err != nil {
		if errors.Is(err, service.ErrGalleryTypeInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load gallery")
		return
	}
	c.JSON(http.StatusOK, a.galleryResponse(c, items))
}

// GetGalleryByType lists active gallery items of one type (photo or video).
func (a *API) GetGalleryByType(c *gin.Context) {
	items, err := a.gallery.List(service.GalleryFilter{
		Type:            c.Param("type"),
		IncludeInactive: queryFlag(c, "includeInactive"),
	})
	if err != nil {
		if errors.Is(err, service.ErrGalleryTypeInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load gallery")
		return
	}
	c.JSON(http.StatusOK, a.galleryResponse(c, items))
}

// CreateGalleryItem adds a photo or video entry.
func (a *API) CreateGalleryItem(c *gin.Context) {
	var req galleryCreateRequest
	if !bindJSON(c, &req, "type and url are required") {
		return
	}

	item, err := a.gallery.Create(service.GalleryInput{
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
			respondError(c, http.StatusInternalServerError, "failed to create gallery item")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateGalleryItem applies a partial update; the item type is immutable.
func (a *API) UpdateGalleryItem(c *gin.Context) {
	var req galleryUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.gallery.Update(c.Param("id"), service.GalleryUpdate{
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		TitleEn:      req.TitleEn,
		TitleHi:      req.TitleHi,
		Order:        req.Order,
		IsActive:     req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGalleryNotFound):
			respondError(c, http.StatusNotFound, "gallery item not found")
		case errors.Is(err, service.ErrGalleryURLMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update gallery item")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteGalleryItem removes a gallery entry.
func (a *API) DeleteGalleryItem(c *gin.Context) {
	if err := a.gallery.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete gallery item")
		return
	}
	respondDeleted(c)
}
