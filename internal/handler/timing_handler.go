package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/service"
)

type timingCreateRequest struct {
	NameEn       string `json:"nameEn" binding:"required"`
	NameHi       string `json:"nameHi" binding:"required"`
	SummerTime   string `json:"summerTime"`
	WinterTime   string `json:"winterTime"`
	MonsoonTime  string `json:"monsoonTime"`
	FestivalTime string `json:"festivalTime"`
	Category     string `json:"category" binding:"required"`
	Order        int    `json:"order"`
}

type timingUpdateRequest struct {
	NameEn       *string `json:"nameEn"`
	NameHi       *string `json:"nameHi"`
	SummerTime   *string `json:"summerTime"`
	WinterTime   *string `json:"winterTime"`
	MonsoonTime  *string `json:"monsoonTime"`
	FestivalTime *string `json:"festivalTime"`
	Category     *string `json:"category"`
	Order        *int    `json:"order"`
}

// GetPoojaTimings lists schedule rows, optionally filtered with
// ?category=aarti|darshan.
func (a *API) GetPoojaTimings(c *gin.Context) {
	items, err := a.timings.List(c.Query("category"))
	if err != nil {
		if errors.Is(err, service.ErrTimingCategoryInvalid) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load pooja timings")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreatePoojaTiming adds a schedule row.
func (a *API) CreatePoojaTiming(c *gin.Context) {
	var req timingCreateRequest
	if !bindJSON(c, &req, "nameEn, nameHi and category are required") {
		return
	}

	item, err := a.timings.Create(service.TimingInput{
		NameEn:       req.NameEn,
		NameHi:       req.NameHi,
		SummerTime:   req.SummerTime,
		WinterTime:   req.WinterTime,
		MonsoonTime:  req.MonsoonTime,
		FestivalTime: req.FestivalTime,
		Category:     req.Category,
		Order:        req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTimingNameMissing), errors.Is(err, service.ErrTimingCategoryInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create pooja timing")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdatePoojaTiming applies a partial update to a schedule row.
func (a *API) UpdatePoojaTiming(c *gin.Context) {
	var req timingUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.timings.Update(c.Param("id"), service.TimingUpdate{
		NameEn:       req.NameEn,
		NameHi:       req.NameHi,
		SummerTime:   req.SummerTime,
		WinterTime:   req.WinterTime,
		MonsoonTime:  req.MonsoonTime,
		FestivalTime: req.FestivalTime,
		Category:     req.Category,
		Order:        req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTimingNotFound):
			respondError(c, http.StatusNotFound, "pooja timing not found")
		case errors.Is(err, service.ErrTimingCategoryInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update pooja timing")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeletePoojaTiming removes a schedule row.
func (a *API) DeletePoojaTiming(c *gin.Context) {
	if err := a.timings.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete pooja timing")
		return
	}
	respondDeleted(c)
}
