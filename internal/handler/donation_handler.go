package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/service"
)

type donationRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	State        string `json:"state"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
	Address      string `json:"address"`
	DonationType string `json:"donationType" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
}

// GetDonations lists donation intent records, newest first. Admin-only.
func (a *API) GetDonations(c *gin.Context) {
	items, err := a.donations.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load donations")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateDonation records a donation intent from the public form. No
// payment is processed here.
func (a *API) CreateDonation(c *gin.Context) {
	var req donationRequest
	if !bindJSON(c, &req, "firstName, phone, donationType and amount are required") {
		return
	}

	item, err := a.donations.Create(service.DonationInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Email:        req.Email,
		State:        req.State,
		City:         req.City,
		Pincode:      req.Pincode,
		Address:      req.Address,
		DonationType: req.DonationType,
		Amount:       req.Amount,
	})
	if err != nil {
		if errors.Is(err, service.ErrDonationIncomplete) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to record donation")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteDonation removes a donation record.
func (a *API) DeleteDonation(c *gin.Context) {
	if err := a.donations.Delete(c.Param("id")); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete donation")
		return
	}
	respondDeleted(c)
}
