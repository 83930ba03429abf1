package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLoginSuccess(t *testing.T) {
	app, db := newTestApp(t)
	admin := seedAdmin(t, db)

	resp := request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    testEmail,
		"password": testPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	env := decode(t, resp)
	if !env.Success {
		t.Error("success = false")
	}

	var data struct {
		Token string `json:"token"`
		Admin struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"admin"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Token == "" {
		t.Error("token missing")
	}
	if data.Admin.ID != admin.ID || data.Admin.Email != testEmail {
		t.Errorf("admin = %+v", data.Admin)
	}
}

func TestLoginFailureIsUndifferentiated(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)

	wrongPassword := request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    testEmail,
		"password": "wrong",
	})
	unknownEmail := request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nobody@looncamp.com",
		"password": testPassword,
	})

	if wrongPassword.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", wrongPassword.StatusCode)
	}
	if unknownEmail.StatusCode != http.StatusUnauthorized {
		t.Errorf("unknown email status = %d, want 401", unknownEmail.StatusCode)
	}

	// Identical bodies, so callers cannot enumerate accounts.
	bodyA, _ := io.ReadAll(wrongPassword.Body)
	bodyB, _ := io.ReadAll(unknownEmail.Body)
	wrongPassword.Body.Close()
	unknownEmail.Body.Close()
	if string(bodyA) != string(bodyB) {
		t.Errorf("responses differ:\n%s\n%s", bodyA, bodyB)
	}
}

func TestLoginMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{"email": testEmail})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateAdminRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodPost, "/api/auth/create-admin", "", fiber.Map{
		"email":    "second@looncamp.com",
		"password": "secret",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestCreateAdmin(t *testing.T) {
	app, db := newTestApp(t)
	token := loginToken(t, app, db)

	resp := request(t, app, http.MethodPost, "/api/auth/create-admin", token, fiber.Map{
		"email":    "second@looncamp.com",
		"password": "secret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var data struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
	env := decode(t, resp)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.ID == 0 || data.Email != "second@looncamp.com" {
		t.Errorf("data = %+v", data)
	}

	// The new admin can log in right away.
	login := request(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "second@looncamp.com",
		"password": "secret",
	})
	if login.StatusCode != http.StatusOK {
		t.Errorf("new admin login status = %d, want 200", login.StatusCode)
	}

	// Duplicate email is rejected.
	dup := request(t, app, http.MethodPost, "/api/auth/create-admin", token, fiber.Map{
		"email":    "second@looncamp.com",
		"password": "other",
	})
	if dup.StatusCode != http.StatusBadRequest {
		t.Errorf("duplicate status = %d, want 400", dup.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodGet, "/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Success   bool   `json:"success"`
		Timestamp string `json:"timestamp"`
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Timestamp == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestApp(t)

	resp := request(t, app, http.MethodGet, "/api/nope", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	env := decode(t, resp)
	if env.Success {
		t.Error("success = true on unknown route")
	}
}
