package user

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type noopCartCreator struct{}

func (noopCartCreator) CreateForUser(userID int) error { return nil }

func makeAppWithUserHandler() (*fiber.App, *Service) {
	svc := NewService(NewInMemoryRepository(nil), noopCartCreator{})
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func postJSON(app *fiber.App, path, body string) (int, string) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestCreateUserRoute(t *testing.T) {
	app, _ := makeAppWithUserHandler()

	code, body := postJSON(app, "/api/user/create", `{"username":"alice","password":"secret","confirmPassword":"secret"}`)
	if code != fiber.StatusOK {
		t.Fatalf("expected 200 for valid create, got %d (%s)", code, body)
	}
	if !strings.Contains(body, `"username":"alice"`) {
		t.Fatalf("response missing username: %s", body)
	}
	if strings.Contains(body, `"password":"secret"`) {
		t.Fatalf("response contains cleartext password: %s", body)
	}

	// mismatched confirmation maps to 401 per the API contract
	code, _ = postJSON(app, "/api/user/create", `{"username":"carol","password":"secret","confirmPassword":"nomatch"}`)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for mismatch, got %d", code)
	}

	// short password maps to 400
	code, _ = postJSON(app, "/api/user/create", `{"username":"carol","password":"abcd","confirmPassword":"abcd"}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for short password, got %d", code)
	}

	// duplicate username maps to 409
	code, _ = postJSON(app, "/api/user/create", `{"username":"alice","password":"secret","confirmPassword":"secret"}`)
	if code != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", code)
	}
}

func TestUserLookupRoutes(t *testing.T) {
	app, svc := makeAppWithUserHandler()

	created, err := svc.Create("alice", "secret", "secret")
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/user/alice", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for existing username, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("GET", "/api/user/id/1", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for existing id %d, got %d", created.ID, res.StatusCode)
	}

	// never-created user yields 404 on both lookup routes
	req = httptest.NewRequest("GET", "/api/user/bob", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown username, got %d", res.StatusCode)
	}
	req = httptest.NewRequest("GET", "/api/user/id/999", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", res.StatusCode)
	}

	// non-numeric id yields 400
	req = httptest.NewRequest("GET", "/api/user/id/abc", nil)
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", res.StatusCode)
	}
}
