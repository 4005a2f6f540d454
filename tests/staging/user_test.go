//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type profileResponse struct {
	Data struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Balance string `json:"balance"`
	} `json:"data"`
}

func TestUserRegistrationAndProfile(t *testing.T) {
	email := fmt.Sprintf("staging-%d@casedrop.test", time.Now().UnixNano())

	resp, body := makeRequest(t, "POST", "/api/v1/user/register", map[string]string{"email": email})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Register: expected status 201, got %d: %s", resp.StatusCode, body)
	}

	var reg registerResponse
	if err := json.Unmarshal(body, &reg); err != nil {
		t.Fatalf("Failed to unmarshal register response: %v", err)
	}

	// Registering the same email again must be rejected
	resp, _ = makeRequest(t, "POST", "/api/v1/user/register", map[string]string{"email": email})
	if resp.StatusCode == http.StatusCreated {
		t.Error("Duplicate register: expected an error status, got 201")
	}

	resp, body = makeRequest(t, "GET", "/api/v1/user/profile?user_id="+reg.Data.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Profile: expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var profile profileResponse
	if err := json.Unmarshal(body, &profile); err != nil {
		t.Fatalf("Failed to unmarshal profile response: %v", err)
	}
	if profile.Data.User.Email != email {
		t.Errorf("Profile email = %q, want %q", profile.Data.User.Email, email)
	}
	if profile.Data.Balance != reg.Data.Balance {
		t.Errorf("Profile balance = %s, want starting balance %s", profile.Data.Balance, reg.Data.Balance)
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/user/register", map[string]string{"email": "not-an-email"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
