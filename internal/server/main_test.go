package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"yatube/internal/config"
	"yatube/internal/database"
	"yatube/internal/middleware"
	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "handler-test-secret-key-0123456789",
		Port:          "0",
		Env:           "test",
		PageSize:      10,
		FeedCacheTTL:  0,
		PreviewLength: 15,
	}
}

// newTestServer builds a Server over in-memory SQLite with caching disabled.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := testConfig()
	middleware.InitMiddleware(cfg)
	return newServerWithDB(cfg, db, nil)
}

// newTestApp registers the full route table with the real auth middleware.
func newTestApp(s *Server) *fiber.App {
	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

func createUserFixture(t *testing.T, s *Server, username string) *models.User {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	if err := s.db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createPostFixture(t *testing.T, s *Server, authorID uint, text string) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: authorID}
	if err := s.db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func tokenFor(t *testing.T, s *Server, userID uint) string {
	t.Helper()
	token, err := s.generateToken(userID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

// doJSON issues a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
