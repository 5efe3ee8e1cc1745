package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mandirseva/internal/config"
	"github.com/mandirseva/internal/db"
	"github.com/mandirseva/internal/handler"
	"github.com/mandirseva/internal/router"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	handler http.Handler
	public  httpClient
	admin   httpClient
	baseURL string
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(h http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: h, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

func TestE2E_API(t *testing.T) {
	suite := newE2ESuite(t)
	suite.login(t)

	t.Run("public endpoints", suite.testPublicEndpoints)
	t.Run("auth guard", suite.testAuthGuard)
	t.Run("content admin flow", suite.testContentAdminFlow)
	t.Run("donation flow", suite.testDonationFlow)
	t.Run("vivaah flow", suite.testVivaahFlow)
	t.Run("gaushala flow", suite.testGaushalaFlow)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file:mandirseva_e2e?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	db.DB = gdb

	hashed, err := bcrypt.GenerateFromPassword([]byte("e2e-secret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := gdb.Create(&db.AdminUser{Username: "admin", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed admin user: %v", err)
	}

	cfg := config.AppConfig{
		SessionSecret: "e2e-session-secret",
		UploadDir:     t.TempDir(),
		UploadURLPath: "/static/uploads",
	}
	api := handler.NewAPI(gdb, cfg.UploadDir, cfg.UploadURLPath)
	r := router.SetupRouter(api, &cfg)

	return &e2eSuite{
		handler: r,
		public:  newLocalClient(r, false),
		admin:   newLocalClient(r, true),
		baseURL: "http://mandirseva.test",
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()

	status, body := s.doJSON(t, s.admin, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "admin",
		"password": "e2e-secret",
	})
	if status != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", status, body)
	}
}

func (s *e2eSuite) doJSON(t *testing.T, client httpClient, method, path string, payload interface{}) (int, string) {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func decodeInto(t *testing.T, body string, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		t.Fatalf("failed to decode %q: %v", body, err)
	}
}

func (s *e2eSuite) testPublicEndpoints(t *testing.T) {
	status, body := s.doJSON(t, s.public, http.MethodGet, "/ping", nil)
	if status != http.StatusOK || !strings.Contains(body, "pong") {
		t.Fatalf("expected pong, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.public, http.MethodGet, "/api/slider-images", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from slider list, got %d", status)
	}
	var sliders []map[string]interface{}
	decodeInto(t, body, &sliders)

	status, body = s.doJSON(t, s.public, http.MethodGet, "/api/about", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from about, got %d", status)
	}
	if strings.TrimSpace(body) != "null" {
		t.Fatalf("expected null about before first write, got %s", body)
	}

	status, _ = s.doJSON(t, s.public, http.MethodGet, "/api/pooja-timings", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from timings, got %d", status)
	}
	status, _ = s.doJSON(t, s.public, http.MethodGet, "/api/gallery", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from gallery, got %d", status)
	}
}

func (s *e2eSuite) testAuthGuard(t *testing.T) {
	status, _ := s.doJSON(t, s.public, http.MethodPost, "/api/slider-images", map[string]interface{}{
		"imageUrl": "/static/uploads/x.jpg",
		"titleEn":  "X",
		"titleHi":  "एक्स",
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", status)
	}

	status, _ = s.doJSON(t, s.public, http.MethodGet, "/api/donations", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected donation list to require auth, got %d", status)
	}

	status, body := s.doJSON(t, s.admin, http.MethodGet, "/api/auth/me", nil)
	if status != http.StatusOK || !strings.Contains(body, "admin") {
		t.Fatalf("expected logged-in session, got %d %s", status, body)
	}
}

func (s *e2eSuite) testContentAdminFlow(t *testing.T) {
	status, body := s.doJSON(t, s.admin, http.MethodPost, "/api/slider-images", map[string]interface{}{
		"imageUrl": "/static/uploads/hero.jpg",
		"titleEn":  "Welcome",
		"titleHi":  "स्वागत",
		"order":    1,
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on slider create, got %d %s", status, body)
	}
	var slider map[string]interface{}
	decodeInto(t, body, &slider)
	sliderID, _ := slider["id"].(string)
	if sliderID == "" {
		t.Fatalf("expected slider id in response")
	}

	status, body = s.doJSON(t, s.admin, http.MethodPut, "/api/about", map[string]interface{}{
		"titleEn":   "About the Trust",
		"titleHi":   "ट्रस्ट के बारे में",
		"contentEn": "## History\nThe temple was built long ago.",
		"contentHi": "## इतिहास\nमंदिर बहुत पहले बना था।",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on about upsert, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.public, http.MethodGet, "/api/about", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on about read, got %d", status)
	}
	var about map[string]interface{}
	decodeInto(t, body, &about)
	html, _ := about["contentEnHtml"].(string)
	if !strings.Contains(html, "<h2") {
		t.Fatalf("expected rendered markdown in about payload, got %q", html)
	}

	status, body = s.doJSON(t, s.admin, http.MethodPut, "/api/settings/temple_name", map[string]interface{}{
		"valueEn": "Shri Ram Mandir",
		"valueHi": "श्री राम मंदिर",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on setting upsert, got %d %s", status, body)
	}
	status, body = s.doJSON(t, s.public, http.MethodGet, "/api/settings/temple_name", nil)
	if status != http.StatusOK || !strings.Contains(body, "Shri Ram Mandir") {
		t.Fatalf("expected setting readback, got %d %s", status, body)
	}

	status, _ = s.doJSON(t, s.admin, http.MethodDelete, "/api/slider-images/"+sliderID, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on slider delete, got %d", status)
	}
	status, _ = s.doJSON(t, s.admin, http.MethodDelete, "/api/slider-images/"+sliderID, nil)
	if status != http.StatusOK {
		t.Fatalf("expected repeated delete to succeed, got %d", status)
	}
}

func (s *e2eSuite) testDonationFlow(t *testing.T) {
	status, body := s.doJSON(t, s.public, http.MethodPost, "/api/donations", map[string]interface{}{
		"firstName": "Ram",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete donation, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.public, http.MethodPost, "/api/donations", map[string]interface{}{
		"firstName":    "Ram",
		"phone":        "9999999999",
		"donationType": "annadaan",
		"amount":       "1100",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on donation create, got %d %s", status, body)
	}
	var first map[string]interface{}
	decodeInto(t, body, &first)
	if created, _ := first["createdAt"].(string); created == "" {
		t.Fatalf("expected server-assigned createdAt, got %v", first)
	}

	time.Sleep(5 * time.Millisecond)
	status, body = s.doJSON(t, s.public, http.MethodPost, "/api/donations", map[string]interface{}{
		"firstName":    "Sita",
		"phone":        "8888888888",
		"donationType": "gaushala",
		"amount":       "501",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on second donation, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.admin, http.MethodGet, "/api/donations", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on donation list, got %d %s", status, body)
	}
	var donations []map[string]interface{}
	decodeInto(t, body, &donations)
	if len(donations) != 2 {
		t.Fatalf("expected 2 donations, got %d", len(donations))
	}
	if name, _ := donations[0]["firstName"].(string); name != "Sita" {
		t.Fatalf("expected newest donation first, got %v", donations[0])
	}
}

func (s *e2eSuite) testVivaahFlow(t *testing.T) {
	status, body := s.doJSON(t, s.admin, http.MethodPost, "/api/vivaah/sammelans", map[string]interface{}{
		"titleEn": "Vivaah Sammelan 2026",
		"titleHi": "विवाह सम्मेलन 2026",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on sammelan create, got %d %s", status, body)
	}
	var sammelan map[string]interface{}
	decodeInto(t, body, &sammelan)
	sammelanID, _ := sammelan["id"].(string)
	if sammelanID == "" {
		t.Fatalf("expected sammelan id")
	}

	status, body = s.doJSON(t, s.admin, http.MethodPost, "/api/vivaah/participants", map[string]interface{}{
		"sammelanId": "no-such-sammelan",
		"type":       "bride",
		"nameEn":     "Radha",
		"nameHi":     "राधा",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown sammelan, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.admin, http.MethodPost, "/api/vivaah/participants", map[string]interface{}{
		"sammelanId": sammelanID,
		"type":       "bride",
		"nameEn":     "Radha",
		"nameHi":     "राधा",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on participant create, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.public, http.MethodGet, fmt.Sprintf("/api/vivaah/participants/%s?type=bride", sammelanID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on participant list, got %d %s", status, body)
	}
	var participants []map[string]interface{}
	decodeInto(t, body, &participants)
	if len(participants) != 1 {
		t.Fatalf("expected 1 bride, got %d", len(participants))
	}

	status, body = s.doJSON(t, s.public, http.MethodGet, "/api/vivaah/active-sammelan", nil)
	if status != http.StatusOK || strings.TrimSpace(body) == "null" {
		t.Fatalf("expected an active sammelan, got %d %s", status, body)
	}
	status, body = s.doJSON(t, s.public, http.MethodGet, "/api/vivaah/sammelans/active", nil)
	if status != http.StatusOK || strings.TrimSpace(body) == "null" {
		t.Fatalf("expected the nested active form to answer too, got %d %s", status, body)
	}

	status, _ = s.doJSON(t, s.admin, http.MethodDelete, "/api/vivaah/sammelans/"+sammelanID, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on sammelan delete, got %d", status)
	}
	status, body = s.doJSON(t, s.public, http.MethodGet, fmt.Sprintf("/api/vivaah/participants/%s", sammelanID), nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on participant list, got %d", status)
	}
	decodeInto(t, body, &participants)
	if len(participants) != 0 {
		t.Fatalf("expected cascade delete of participants, got %d", len(participants))
	}
}

func (s *e2eSuite) testGaushalaFlow(t *testing.T) {
	status, body := s.doJSON(t, s.admin, http.MethodPost, "/api/gaushala/sliders", map[string]interface{}{
		"imageUrl": "/static/uploads/gaushala-hero.jpg",
		"titleEn":  "Our Gaushala",
		"titleHi":  "हमारी गौशाला",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on gaushala slider create, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.public, http.MethodGet, "/api/gaushala/sliders", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on gaushala slider list, got %d", status)
	}
	var slides []map[string]interface{}
	decodeInto(t, body, &slides)
	if len(slides) != 1 {
		t.Fatalf("expected 1 gaushala slide, got %d", len(slides))
	}

	status, body = s.doJSON(t, s.admin, http.MethodPut, "/api/gaushala/about", map[string]interface{}{
		"titleEn":   "Our Gaushala",
		"titleHi":   "हमारी गौशाला",
		"contentEn": "Shelter for cows.",
		"contentHi": "गायों का आश्रय।",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on gaushala about upsert, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.public, http.MethodGet, "/api/gaushala/about", nil)
	if status != http.StatusOK || !strings.Contains(body, "Our Gaushala") {
		t.Fatalf("expected gaushala about readback, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.admin, http.MethodPost, "/api/gaushala/gallery", map[string]interface{}{
		"type": "video",
		"url":  "https://youtu.be/abc123DEF45",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on gaushala gallery create, got %d %s", status, body)
	}

	status, body = s.doJSON(t, s.public, http.MethodGet, "/api/gaushala/gallery?type=video", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on gaushala gallery list, got %d", status)
	}
	var items []map[string]interface{}
	decodeInto(t, body, &items)
	if len(items) != 1 {
		t.Fatalf("expected 1 gaushala video, got %d", len(items))
	}
	if embed, _ := items[0]["embedUrl"].(string); !strings.Contains(embed, "youtube.com/embed/") {
		t.Fatalf("expected derived embed url, got %v", items[0])
	}
}
