package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/service"
)

type teamMemberCreateRequest struct {
	NameEn        string `json:"nameEn" binding:"required"`
	NameHi        string `json:"nameHi" binding:"required"`
	DesignationEn string `json:"designationEn" binding:"required"`
	DesignationHi string `json:"designationHi" binding:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ImageURL      string `json:"imageUrl"`
	Order         int    `json:"order"`
}

type teamMemberUpdateRequest struct {
	NameEn        *string `json:"nameEn"`
	NameHi        *string `json:"nameHi"`
	DesignationEn *string `json:"designationEn"`
	DesignationHi *string `json:"designationHi"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	ImageURL      *string `json:"imageUrl"`
	Order         *int    `json:"order"`
}

// GetTeamMembers lists trustees and staff.
func (a *API) GetTeamMembers(c *gin.Context) {
	items, err := a.team.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load team members")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateTeamMember adds a team entry.
func (a *API) CreateTeamMember(c *gin.Context) {
	var req teamMemberCreateRequest
	if !bindJSON(c, &req, "name and designation are required in both languages") {
		return
	}

	item, err := a.team.Create(service.TeamMemberInput{
		NameEn:        req.NameEn,
		NameHi:        req.NameHi,
		DesignationEn: req.DesignationEn,
		DesignationHi: req.DesignationHi,
		Phone:         req.Phone,
		Email:         req.Email,
		ImageURL:      req.ImageURL,
		Order:         req.Order,
	})
	if err != nil {
		if errors.Is(err, service.ErrTeamMemberNameMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create team member")
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateTeamMember applies a partial update to a team entry.
func (a *API) UpdateTeamMember(c *gin.Context) {
	var req teamMemberUpdateRequest
	if !bindJSON(c, &req, "invalid update payload") {
		return
	}

	item, err := a.team.Update(c.Param("id"), service.TeamMemberUpdate{
		NameEn:        req.NameEn,
		NameHi:        req.NameHi,
		DesignationEn: req.DesignationEn,
		DesignationHi: req.DesignationHi,
		Phone:         req.Phone,
		Email:         req.Email,
		ImageURL:      req.ImageURL,
		Order:         req.Order,
	})
	if err != nil {
		if errors.Is(err, service.ErrTeamMemberNotFound) {
			respondError(c, http.StatusNotFound, "team member not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update team member")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteTeamMember removes a team entry.
func (a *API) DeleteTeamMember(c *gin.Context) {
	if err := a.team.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete team member")
		return
	}
	respondDeleted(c)
}
