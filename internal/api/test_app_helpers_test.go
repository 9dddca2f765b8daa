package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quellskin/quell/internal/db"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "quell-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, testSecretKey, time.UTC)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, handler)
	return app, database
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, authToken string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		request.Header.Set("Cookie", authCookieName+"="+authToken)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, out any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie != nil && cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

// registerTestUser creates an account and returns the session token and the
// one-time recovery code.
func registerTestUser(t *testing.T, app *fiber.App, email string) (string, string) {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":        email,
		"password":     "StrongPass1",
		"display_name": "Test User",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d", response.StatusCode)
	}

	token := responseCookieValue(response.Cookies(), authCookieName)
	if token == "" {
		t.Fatal("expected auth cookie after registration")
	}

	var payload struct {
		RecoveryCode string `json:"recovery_code"`
	}
	decodeJSONBody(t, response, &payload)
	if payload.RecoveryCode == "" {
		t.Fatal("expected recovery code in registration response")
	}
	return token, payload.RecoveryCode
}

// onboardTestUser submits a minimal questionnaire so the account passes the
// onboarding gate.
func onboardTestUser(t *testing.T, app *fiber.App, authToken string) {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/profile/questionnaire", authToken, fiber.Map{
		"full_name":         "Test User",
		"age":               30,
		"skin_type":         "Dry/Cracked",
		"eczema_locations":  []string{"Face"},
		"visual_appearance": []string{"Dry & Flaky"},
		"perceived_stress":  "Low",
		"sleep_impact":      "None",
		"gut_health":        "Good",
		"smoking":           "Never",
		"itch_score":        4,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("questionnaire submit returned status %d", response.StatusCode)
	}
	response.Body.Close()
}
