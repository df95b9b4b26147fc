package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hartharney/EXpeditious-Logistics/internal/models"
	"github.com/hartharney/EXpeditious-Logistics/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestIssueToken(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	hashed, _ := utils.HashPassword("password123")
	db.Create(&models.User{Username: "tokenuser", Email: "token@x.com", Password: hashed})

	t.Run("Success", func(t *testing.T) {
		body := map[string]string{
			"email":    "token@x.com",
			"password": "password123",
		}
		jsonBody, _ := json.Marshal(body)

		req, _ := http.NewRequest("POST", "/auth/token", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NotEmpty(t, resp["token"])

		// The issued token opens the gated routes
		req2, _ := http.NewRequest("GET", "/users?token="+resp["token"], nil)
		w2 := httptest.NewRecorder()
		r.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusOK, w2.Code)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		body := map[string]string{
			"email":    "token@x.com",
			"password": "wrong",
		}
		jsonBody, _ := json.Marshal(body)

		req, _ := http.NewRequest("POST", "/auth/token", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		body := map[string]string{
			"email":    "nobody@x.com",
			"password": "password123",
		}
		jsonBody, _ := json.Marshal(body)

		req, _ := http.NewRequest("POST", "/auth/token", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid Input", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/auth/token", bytes.NewBuffer([]byte("invalid json")))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DB Error", func(t *testing.T) {
		db.Migrator().DropTable(&models.User{})
		defer db.AutoMigrate(&models.User{})

		body := map[string]string{
			"email":    "token@x.com",
			"password": "password123",
		}
		jsonBody, _ := json.Marshal(body)

		req, _ := http.NewRequest("POST", "/auth/token", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleLoginForm(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	hashed, _ := utils.HashPassword("password123")
	db.Create(&models.User{Username: "formuser", Email: "form@x.com", Password: hashed})

	t.Run("Success Sets Session", func(t *testing.T) {
		form := url.Values{}
		form.Add("email", "form@x.com")
		form.Add("password", "password123")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/tracking", w.Header().Get("Location"))
		assert.NotEmpty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		form := url.Values{}
		form.Add("email", "form@x.com")
		form.Add("password", "wrong")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("Unknown User", func(t *testing.T) {
		form := url.Values{}
		form.Add("email", "nope@x.com")
		form.Add("password", "password123")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
