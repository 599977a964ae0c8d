package users

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"talenthub-api/internal/jwt"
	"talenthub-api/internal/logger"
	"talenthub-api/internal/middleware"
	"talenthub-api/internal/models"
	"talenthub-api/internal/user"
	"talenthub-api/pkg/redis/redistest"
)

// memoryRepo is an in-memory user.Repository with a unique email
// constraint
type memoryRepo struct {
	users map[string]*models.User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]*models.User)}
}

func (r *memoryRepo) SaveUser(ctx context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailAlreadyExists
		}
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *memoryRepo) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	stored, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u := *stored
	return &u, nil
}

func (r *memoryRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, stored := range r.users {
		if stored.Email == email {
			u := *stored
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memoryRepo) UpdateUser(ctx context.Context, u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return user.ErrEmailAlreadyExists
		}
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

type testEnv struct {
	router      *gin.Engine
	userService *user.Service
	jwtService  *jwt.Service
}

func setupUsersRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := logrus.New()
	l.SetOutput(io.Discard)
	customLogger := logger.New(l)

	userService := user.NewService(newMemoryRepo(), redistest.New(), customLogger)
	jwtService := jwt.NewService("secret", "api.test.local", time.Hour)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuthMiddleware(jwtService))
	RegisterRoutes(v1, NewHandler(userService, customLogger))

	return &testEnv{router: r, userService: userService, jwtService: jwtService}
}

func (env *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	created, err := env.userService.CreateUser(context.Background(), user.NewUser{
		FullName:       "Ada Lovelace",
		Email:          email,
		PhoneNumber:    "+15550100",
		HashedPassword: "$2a$10$fakehashfakehashfakehash",
		Role:           "student",
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	return created
}

func (env *testEnv) authedRequest(t *testing.T, method, path, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		token, err := env.jwtService.GenerateToken(userID)
		if err != nil {
			t.Fatalf("GenerateToken returned error: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestUpdateProfileRequiresAuth(t *testing.T) {
	env := setupUsersRouter(t)

	w := env.authedRequest(t, http.MethodPost, "/api/v1/users/profile/update", `{"bio":"hi"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestUpdateProfile(t *testing.T) {
	env := setupUsersRouter(t)
	created := env.createUser(t, "ada@example.com")

	w := env.authedRequest(t, http.MethodPost, "/api/v1/users/profile/update",
		`{"bio":"Systems tinkerer","skills":"go,rust,c++"}`, created.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["message"] != "Profile updated successfully." {
		t.Errorf("message = %q, want %q", body["message"], "Profile updated successfully.")
	}

	userBody, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("response has no user object: %s", w.Body.String())
	}
	if _, exposed := userBody["password"]; exposed {
		t.Error("response exposes the password hash")
	}

	profile, ok := userBody["profile"].(map[string]any)
	if !ok {
		t.Fatalf("response has no profile object: %s", w.Body.String())
	}
	if profile["bio"] != "Systems tinkerer" {
		t.Errorf("bio = %q, want %q", profile["bio"], "Systems tinkerer")
	}
	if got, want := profile["skills"], []any{"go", "rust", "c++"}; !reflect.DeepEqual(got, want) {
		t.Errorf("skills = %v, want %v", got, want)
	}
}

func TestUpdateProfilePartialKeepsFields(t *testing.T) {
	env := setupUsersRouter(t)
	created := env.createUser(t, "ada@example.com")

	w := env.authedRequest(t, http.MethodPost, "/api/v1/users/profile/update",
		`{"fullname":"Ada King"}`, created.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	userBody := body["user"].(map[string]any)
	if userBody["fullname"] != "Ada King" {
		t.Errorf("fullname = %q, want %q", userBody["fullname"], "Ada King")
	}
	if userBody["email"] != "ada@example.com" {
		t.Errorf("email = %q, want unchanged %q", userBody["email"], "ada@example.com")
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	env := setupUsersRouter(t)

	w := env.authedRequest(t, http.MethodPost, "/api/v1/users/profile/update",
		`{"bio":"hi"}`, "user-missing")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	body := decodeBody(t, w)
	if body["message"] != "User not found." {
		t.Errorf("message = %q, want %q", body["message"], "User not found.")
	}
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	env := setupUsersRouter(t)
	created := env.createUser(t, "ada@example.com")
	env.createUser(t, "grace@example.com")

	w := env.authedRequest(t, http.MethodPost, "/api/v1/users/profile/update",
		`{"email":"grace@example.com"}`, created.ID)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["message"] != "User already exists with this email." {
		t.Errorf("message = %q, want %q", body["message"], "User already exists with this email.")
	}
}

func TestUpdateProfileMalformedBody(t *testing.T) {
	env := setupUsersRouter(t)
	created := env.createUser(t, "ada@example.com")

	w := env.authedRequest(t, http.MethodPost, "/api/v1/users/profile/update",
		`{"bio":`, created.ID)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetMe(t *testing.T) {
	env := setupUsersRouter(t)
	created := env.createUser(t, "ada@example.com")

	w := env.authedRequest(t, http.MethodGet, "/api/v1/users/me", "", created.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	body := decodeBody(t, w)
	userBody, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("response has no user object: %s", w.Body.String())
	}
	if userBody["id"] != created.ID {
		t.Errorf("id = %q, want %q", userBody["id"], created.ID)
	}
	if _, exposed := userBody["password"]; exposed {
		t.Error("response exposes the password hash")
	}
}
