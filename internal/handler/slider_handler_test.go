package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSliderHandlerTest(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file:slider_handler?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&db.SliderImage{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	if err := gdb.Exec("DELETE FROM slider_images").Error; err != nil {
		t.Fatalf("failed to reset test db: %v", err)
	}

	api := NewAPI(gdb, t.TempDir(), "/static/uploads")
	r := gin.New()
	r.GET("/api/slider-images", api.GetSliderImages)
	r.POST("/api/slider-images", api.CreateSliderImage)
	r.PATCH("/api/slider-images/:id", api.UpdateSliderImage)
	r.DELETE("/api/slider-images/:id", api.DeleteSliderImage)

	return r, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSliderHandlerValidation(t *testing.T) {
	r, cleanup := setupSliderHandlerTest(t)
	defer cleanup()

	w := doJSON(t, r, http.MethodPost, "/api/slider-images", map[string]interface{}{
		"titleEn": "Welcome",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatalf("expected flat error body, got %v", body)
	}
}

func TestSliderHandlerCreateBeyondDisplayCap(t *testing.T) {
	r, cleanup := setupSliderHandlerTest(t)
	defer cleanup()

	for i := 0; i < 5; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/slider-images", map[string]interface{}{
			"imageUrl": "/static/uploads/slide.jpg",
			"titleEn":  "Slide",
			"titleHi":  "स्लाइड",
			"order":    i,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on create %d, got %d: %s", i, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/slider-images", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on list, got %d", w.Code)
	}
	var items []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected the store to accept any number of slides, got %d", len(items))
	}
	if _, ok := items[0]["title"]; !ok {
		t.Fatalf("expected resolved title field in list payload")
	}
}

func TestSliderHandlerLifecycle(t *testing.T) {
	r, cleanup := setupSliderHandlerTest(t)
	defer cleanup()

	w := doJSON(t, r, http.MethodPost, "/api/slider-images", map[string]interface{}{
		"imageUrl": "/static/uploads/slide.jpg",
		"titleEn":  "Welcome",
		"titleHi":  "स्वागत",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on create, got %d", w.Code)
	}
	var created map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("expected id in create response")
	}

	w = doJSON(t, r, http.MethodPatch, "/api/slider-images/"+id, map[string]interface{}{
		"titleEn": "Namaste",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on update, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/api/slider-images/missing-id", map[string]interface{}{
		"titleEn": "Namaste",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/slider-images/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/slider-images/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected repeated delete to succeed, got %d", w.Code)
	}
}
