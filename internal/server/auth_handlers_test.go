package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"yatube/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSignup_CreatesUserAndReturnsToken(t *testing.T) {
	_, app, db := setupTestApp(t)

	req := jsonRequest(t, http.MethodPost, "/auth/signup/", map[string]string{
		"username": "newcomer",
		"email":    "newcomer@example.com",
		"password": "SecurePass12!@",
	})
	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "newcomer", result.User.Username)

	var user models.User
	require.NoError(t, db.Where("username = ?", "newcomer").First(&user).Error)
	assert.NotEqual(t, "SecurePass12!@", user.Password)
}

func TestSignup_RejectsWeakPassword(t *testing.T) {
	_, app, _ := setupTestApp(t)

	req := jsonRequest(t, http.MethodPost, "/auth/signup/", map[string]string{
		"username": "newcomer",
		"email":    "newcomer@example.com",
		"password": "short",
	})
	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignup_RejectsReservedUsername(t *testing.T) {
	_, app, _ := setupTestApp(t)

	req := jsonRequest(t, http.MethodPost, "/auth/signup/", map[string]string{
		"username": "follow",
		"email":    "follow@example.com",
		"password": "SecurePass12!@",
	})
	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	_, app, _ := setupTestApp(t)

	payload := map[string]string{
		"username": "original",
		"email":    "taken@example.com",
		"password": "SecurePass12!@",
	}
	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/signup/", payload))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload["username"] = "pretender"
	resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/signup/", payload))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLogin_RoundTrip(t *testing.T) {
	_, app, _ := setupTestApp(t)

	signup := map[string]string{
		"username": "returning",
		"email":    "returning@example.com",
		"password": "SecurePass12!@",
	}
	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/signup/", signup))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/login/", map[string]string{
		"email":    "returning@example.com",
		"password": "SecurePass12!@",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.Token)
}

func TestLogin_WrongPasswordIs401(t *testing.T) {
	_, app, _ := setupTestApp(t)

	signup := map[string]string{
		"username": "careful",
		"email":    "careful@example.com",
		"password": "SecurePass12!@",
	}
	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/signup/", signup))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/login/", map[string]string{
		"email":    "careful@example.com",
		"password": "WrongPass12!@",
	}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UnknownEmailIs401(t *testing.T) {
	_, app, _ := setupTestApp(t)

	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/login/", map[string]string{
		"email":    "ghost@example.com",
		"password": "whatever1234!A",
	}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_HonorsNextRedirect(t *testing.T) {
	_, app, _ := setupTestApp(t)

	signup := map[string]string{
		"username": "wanderer",
		"email":    "wanderer@example.com",
		"password": "SecurePass12!@",
	}
	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/signup/", signup))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/login/?next=%2Fnew%2F", map[string]string{
		"email":    "wanderer@example.com",
		"password": "SecurePass12!@",
	}))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/new/", resp.Header.Get("Location"))
}

func TestLoginPage_EchoesNext(t *testing.T) {
	_, app, _ := setupTestApp(t)

	resp := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/auth/login/?next=%2Ffollow%2F", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "/follow/", body["next"])
}

func TestContactUs_RedirectsToThankYou(t *testing.T) {
	_, app, _ := setupTestApp(t)

	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/contact-us/", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "hello",
		"body":    "I have a question",
	}))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/thank-you/", resp.Header.Get("Location"))
}

func TestContactUs_MissingFieldsRejected(t *testing.T) {
	_, app, _ := setupTestApp(t)

	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/contact-us/", map[string]string{
		"email": "not-an-email",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
