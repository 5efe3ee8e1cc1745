package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/service"
)

type settingRequest struct {
	ValueEn string `json:"valueEn"`
	ValueHi string `json:"valueHi"`
}

// GetSettings lists every site setting.
func (a *API) GetSettings(c *gin.Context) {
	items, err := a.settings.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetSetting fetches a single setting by key.
func (a *API) GetSetting(c *gin.Context) {
	item, err := a.settings.Get(c.Param("key"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSettingNotFound):
			respondError(c, http.StatusNotFound, "setting not found")
		case errors.Is(err, service.ErrSettingKeyMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to load setting")
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpsertSetting writes both language values for a key, creating the row
// when the key is new. This is the one collection where a missing target
// means create rather than 404.
func (a *API) UpsertSetting(c *gin.Context) {
	var req settingRequest
	if !bindJSON(c, &req, "invalid setting payload") {
		return
	}

	item, err := a.settings.Upsert(c.Param("key"), req.ValueEn, req.ValueHi)
	if err != nil {
		if errors.Is(err, service.ErrSettingKeyMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to save setting")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteSetting removes a setting by key.
func (a *API) DeleteSetting(c *gin.Context) {
	if err := a.settings.Delete(c.Param("key")); err != nil {
		if errors.Is(err, service.ErrSettingKeyMissing) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete setting")
		return
	}
	respondDeleted(c)
}
