package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/db"
	"github.com/mandirseva/internal/service"
)

// Singleton content pages: about, trust, contact and terms. GET returns the
// stored object or null; PUT replaces the single row, creating it on first
// write. Long-form content fields carry markdown and are additionally
// served as sanitized HTML.

type aboutRequest struct {
	TitleEn   string `json:"titleEn" binding:"required"`
	TitleHi   string `json:"titleHi" binding:"required"`
	ContentEn string `json:"contentEn" binding:"required"`
	ContentHi string `json:"contentHi" binding:"required"`
	ImageURL  string `json:"imageUrl"`
}

type aboutResponse struct {
	db.AboutContent
	ContentEnHTML string `json:"contentEnHtml"`
	ContentHiHTML string `json:"contentHiHtml"`
}

// GetAbout returns the about page, or null when never saved.
func (a *API) GetAbout(c *gin.Context) {
	content, err := a.about.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load about content")
		return
	}
	if content == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, aboutResponse{
		AboutContent:  *content,
		ContentEnHTML: service.RenderMarkdown(content.ContentEn),
		ContentHiHTML: service.RenderMarkdown(content.ContentHi),
	})
}

// UpsertAbout replaces the about page content.
func (a *API) UpsertAbout(c *gin.Context) {
	var req aboutRequest
	if !bindJSON(c, &req, "title and content are required in both languages") {
		return
	}

	content, err := a.about.Upsert(service.AboutInput{
		TitleEn:   req.TitleEn,
		TitleHi:   req.TitleHi,
		ContentEn: req.ContentEn,
		ContentHi: req.ContentHi,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrAboutContentMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save about content")
		return
	}

	c.JSON(http.StatusOK, content)
}

type trustRequest struct {
	TitleEn    string `json:"titleEn" binding:"required"`
	TitleHi    string `json:"titleHi" binding:"required"`
	SubtitleEn string `json:"subtitleEn"`
	SubtitleHi string `json:"subtitleHi"`
	ContentEn  string `json:"contentEn" binding:"required"`
	ContentHi  string `json:"contentHi" binding:"required"`
}

type trustResponse struct {
	db.TrustContent
	ContentEnHTML string `json:"contentEnHtml"`
	ContentHiHTML string `json:"contentHiHtml"`
}

// GetTrust returns the trust page, or null when never saved.
func (a *API) GetTrust(c *gin.Context) {
	content, err := a.trust.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load trust content")
		return
	}
	if content == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, trustResponse{
		TrustContent:  *content,
		ContentEnHTML: service.RenderMarkdown(content.ContentEn),
		ContentHiHTML: service.RenderMarkdown(content.ContentHi),
	})
}

// UpsertTrust replaces the trust page content.
func (a *API) UpsertTrust(c *gin.Context) {
	var req trustRequest
	if !bindJSON(c, &req, "title and content are required in both languages") {
		return
	}

	content, err := a.trust.Upsert(service.TrustInput{
		TitleEn:    req.TitleEn,
		TitleHi:    req.TitleHi,
		SubtitleEn: req.SubtitleEn,
		SubtitleHi: req.SubtitleHi,
		ContentEn:  req.ContentEn,
		ContentHi:  req.ContentHi,
	})
	if err != nil {
		if errors.Is(err, service.ErrTrustContentMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save trust content")
		return
	}

	c.JSON(http.StatusOK, content)
}

type contactRequest struct {
	Phone1    string `json:"phone1" binding:"required"`
	Phone2    string `json:"phone2"`
	Email1    string `json:"email1"`
	Email2    string `json:"email2"`
	AddressEn string `json:"addressEn" binding:"required"`
	AddressHi string `json:"addressHi" binding:"required"`
}

// GetContact returns the contact block, or null when never saved.
func (a *API) GetContact(c *gin.Context) {
	info, err := a.contact.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load contact info")
		return
	}
	if info == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpsertContact replaces the contact block.
func (a *API) UpsertContact(c *gin.Context) {
	var req contactRequest
	if !bindJSON(c, &req, "phone1, addressEn and addressHi are required") {
		return
	}

	info, err := a.contact.Upsert(service.ContactInput{
		Phone1:    req.Phone1,
		Phone2:    req.Phone2,
		Email1:    req.Email1,
		Email2:    req.Email2,
		AddressEn: req.AddressEn,
		AddressHi: req.AddressHi,
	})
	if err != nil {
		if errors.Is(err, service.ErrContactInfoMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save contact info")
		return
	}

	c.JSON(http.StatusOK, info)
}

type termsRequest struct {
	TitleEn   string `json:"titleEn" binding:"required"`
	TitleHi   string `json:"titleHi" binding:"required"`
	ContentEn string `json:"contentEn" binding:"required"`
	ContentHi string `json:"contentHi" binding:"required"`
}

type termsResponse struct {
	db.TermsContent
	ContentEnHTML string `json:"contentEnHtml"`
	ContentHiHTML string `json:"contentHiHtml"`
}

// GetTerms returns the terms page, or null when never saved.
func (a *API) GetTerms(c *gin.Context) {
	content, err := a.terms.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load terms content")
		return
	}
	if content == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, termsResponse{
		TermsContent:  *content,
		ContentEnHTML: service.RenderMarkdown(content.ContentEn),
		ContentHiHTML: service.RenderMarkdown(content.ContentHi),
	})
}

// UpsertTerms replaces the terms page content.
func (a *API) UpsertTerms(c *gin.Context) {
	var req termsRequest
	if !bindJSON(c, &req, "title and content are required in both languages") {
		return
	}

	content, err := a.terms.Upsert(service.TermsInput{
		TitleEn:   req.TitleEn,
		TitleHi:   req.TitleHi,
		ContentEn: req.ContentEn,
		ContentHi: req.ContentHi,
	})
	if err != nil {
		if errors.Is(err, service.ErrTermsContentMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save terms content")
		return
	}

	c.JSON(http.StatusOK, content)
}
