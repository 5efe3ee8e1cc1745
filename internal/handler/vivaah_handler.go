package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/db"
	"github.com/mandirseva/internal/service"
)

type vivaahPageInfoRequest struct {
	TitleEn       string `json:"titleEn" binding:"required"`
	TitleHi       string `json:"titleHi" binding:"required"`
	DescriptionEn string `json:"descriptionEn" binding:"required"`
	DescriptionHi string `json:"descriptionHi" binding:"required"`
}

type vivaahPageInfoResponse struct {
	db.VivaahPageInfo
	DescriptionEnHTML string `json:"descriptionEnHtml"`
	DescriptionHiHTML string `json:"descriptionHiHtml"`
}

type sammelanCreateRequest struct {
	TitleEn        string `json:"titleEn" binding:"required"`
	TitleHi        string `json:"titleHi" binding:"required"`
	OverallIncome  string `json:"overallIncome"`
	OverallExpense string `json:"overallExpense"`
	AsOfDate       string `json:"asOfDate"`
	IsActive       *bool  `json:"isActive"`
}

type sammelanUpdateRequest struct {
	TitleEn        *string `json:"titleEn"`
	TitleHi        *string `json:"titleHi"`
	OverallIncome  *string `json:"overallIncome"`
	OverallExpense *string `json:"overallExpense"`
	AsOfDate       *string `json:"asOfDate"`
	IsActive       *bool   `json:"isActive"`
}

type participantCreateRequest struct {
	SammelanID        string `json:"sammelanId" binding:"required"`
	Type              string `json:"type" binding:"required"`
	NameEn            string `json:"nameEn" binding:"required"`
	NameHi            string `json:"nameHi" binding:"required"`
	FatherNameEn      string `json:"fatherNameEn"`
	FatherNameHi      string `json:"fatherNameHi"`
	MotherNameEn      string `json:"motherNameEn"`
	MotherNameHi      string `json:"motherNameHi"`
	GrandparentNameEn string `json:"grandparentNameEn"`
	GrandparentNameHi string `json:"grandparentNameHi"`
	LocationEn        string `json:"locationEn"`
	LocationHi        string `json:"locationHi"`
	Order             int    `json:"order"`
}

type participantUpdateRequest struct {
	SammelanID        *string `json:"sammelanId"`
	NameEn            *string `json:"nameEn"`
	NameHi            *string `json:"nameHi"`
	FatherNameEn      *string `json:"fatherNameEn"`
	FatherNameHi      *string `json:"fatherNameHi"`
	MotherNameEn      *string `json:"motherNameEn"`
	MotherNameHi      *string `json:"motherNameHi"`
	GrandparentNameEn *string `json:"grandparentNameEn"`
	GrandparentNameHi *string `json:"grandparentNameHi"`
	LocationEn        *string `json:"locationEn"`
	LocationHi        *string `json:"locationHi"`
	Order             *int    `json:"order"`
}

// GetVivaahPageInfo returns the vivaah intro block, or null when never
// saved.
func (a *API) GetVivaahPageInfo(c *gin.Context) {
	info, err := a.vivaah.PageInfo()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load vivaah page info")
		return
	}
	if info == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, vivaahPageInfoResponse{
		VivaahPageInfo:    *info,
		DescriptionEnHTML: service.RenderMarkdown(info.DescriptionEn),
		DescriptionHiHTML: service.RenderMarkdown(info.DescriptionHi),
	})
}

// UpsertVivaahPageInfo replaces the vivaah intro block.
func (a *API) UpsertVivaahPageInfo(c *gin.Context) {
	var req vivaahPageInfoRequest
	if !bindJSON(c, &req, "title and description are required in both languages") {
		return
	}

	info, err := a.vivaah.UpsertPageInfo(service.VivaahPageInfoInput{
		TitleEn:       req.TitleEn,
		TitleHi:       req.TitleHi,
		DescriptionEn: req.DescriptionEn,
		DescriptionHi: req.DescriptionHi,
	})
	if err != nil {
		if errors.Is(err, service.ErrVivaahPageInfoMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save vivaah page info")
		return
	}

	c.JSON(http.StatusOK, info)
}

// GetSammelans lists every sammelan summary in creation order.
func (a *API) GetSammelans(c *gin.Context) {
	items, err := a.vivaah.Sammelans()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load sammelans")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetActiveSammelan returns the currently active sammelan, or null.
func (a *API) GetActiveSammelan(c *gin.Context) {
	item, err := a.vivaah.ActiveSammelan()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load active sammelan")
		return
	}
	if item == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateSammelan adds a sammelan summary.
func (a *API) CreateSammelan(c *gin.Context) {
	var req sammelanCreateRequest
	if !bindJSON(c, &req, "titleEn and titleHi are required") {
		return
	}

	item, err := a.vivaah.CreateSammelan(service.SammelanInput{
		TitleEn:        req.TitleEn,
		TitleHi:        req.TitleHi,
		OverallIncome:  req.OverallIncome,
		OverallExpense: req.OverallExpense,
		AsOfDate:       req.AsOfDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrSammelanTitleMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create sammelan")
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateSammelan applies a partial update to a sammelan summary.
func (a *API) UpdateSammelan(c *gin.Context) {
	var req sammelanUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.vivaah.UpdateSammelan(c.Param("id"), service.SammelanUpdate{
		TitleEn:        req.TitleEn,
		TitleHi:        req.TitleHi,
		OverallIncome:  req.OverallIncome,
		OverallExpense: req.OverallExpense,
		AsOfDate:       req.AsOfDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrSammelanNotFound) {
			respondError(c, http.StatusNotFound, "sammelan not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update sammelan")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteSammelan removes a sammelan and its participant listings.
func (a *API) DeleteSammelan(c *gin.Context) {
	if err := a.vivaah.DeleteSammelan(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete sammelan")
		return
	}
	respondDeleted(c)
}

// GetParticipants lists the matrimonial entries of one sammelan,
// optionally filtered with ?type=bride|groom.
func (a *API) GetParticipants(c *gin.Context) {
	items, err := a.vivaah.Participants(c.Param("sammelanId"), c.Query("type"))
	if err != nil {
		if errors.Is(err, service.ErrParticipantTypeInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load participants")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateParticipant adds a matrimonial listing; the referenced sammelan
// must exist.
func (a *API) CreateParticipant(c *gin.Context) {
	var req participantCreateRequest
	if !bindJSON(c, &req, "sammelanId, type, nameEn and nameHi are required") {
		return
	}

	item, err := a.vivaah.CreateParticipant(service.ParticipantInput{
		SammelanID:        req.SammelanID,
		Type:              req.Type,
		NameEn:            req.NameEn,
		NameHi:            req.NameHi,
		FatherNameEn:      req.FatherNameEn,
		FatherNameHi:      req.FatherNameHi,
		MotherNameEn:      req.MotherNameEn,
		MotherNameHi:      req.MotherNameHi,
		GrandparentNameEn: req.GrandparentNameEn,
		GrandparentNameHi: req.GrandparentNameHi,
		LocationEn:        req.LocationEn,
		LocationHi:        req.LocationHi,
		Order:             req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantTypeInvalid),
			errors.Is(err, service.ErrParticipantNameMissing),
			errors.Is(err, service.ErrParticipantSammelanNeeded):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create participant")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateParticipant applies a partial update to a matrimonial listing.
func (a *API) UpdateParticipant(c *gin.Context) {
	var req participantUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.vivaah.UpdateParticipant(c.Param("id"), service.ParticipantUpdate{
		SammelanID:        req.SammelanID,
		NameEn:            req.NameEn,
		NameHi:            req.NameHi,
		FatherNameEn:      req.FatherNameEn,
		FatherNameHi:      req.FatherNameHi,
		MotherNameEn:      req.MotherNameEn,
		MotherNameHi:      req.MotherNameHi,
		GrandparentNameEn: req.GrandparentNameEn,
		GrandparentNameHi: req.GrandparentNameHi,
		LocationEn:        req.LocationEn,
		LocationHi:        req.LocationHi,
		Order:             req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantNotFound):
			respondError(c, http.StatusNotFound, "participant not found")
		case errors.Is(err, service.ErrParticipantSammelanNeeded):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update participant")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteParticipant removes a matrimonial listing.
func (a *API) DeleteParticipant(c *gin.Context) {
	if err := a.vivaah.DeleteParticipant(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete participant")
		return
	}
	respondDeleted(c)
}
