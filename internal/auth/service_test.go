package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"talenthub-api/internal/jwt"
	"talenthub-api/internal/logger"
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
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func newTestAuthService(secret string) *Service {
	l := logrus.New()
	l.SetOutput(io.Discard)
	customLogger := logger.New(l)

	cache := redistest.New()
	userService := user.NewService(newMemoryRepo(), cache, customLogger)
	jwtService := jwt.NewService(secret, "api.test.local", 24*time.Hour)

	return NewService(userService, jwtService, cache, customLogger, bcrypt.MinCost)
}

func registerTestUser(t *testing.T, svc *Service, email string) {
	t.Helper()
	err := svc.Register(context.Background(), "Ada Lovelace", email, "+15550100", "s3cret-pass", "student")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newTestAuthService("secret")
	registerTestUser(t, svc, "ada@example.com")

	u, err := svc.userService.GetUserByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail returned error: %v", err)
	}
	if u.Password == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService("secret")
	registerTestUser(t, svc, "ada@example.com")

	err := svc.Register(context.Background(), "Ada Again", "ada@example.com", "+15550101", "other-pass", "recruiter")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("Register error = %v, want ErrUserExists", err)
	}
}

func TestRegisterDuplicateEmailDifferentCase(t *testing.T) {
	svc := newTestAuthService("secret")
	registerTestUser(t, svc, "ada@example.com")

	err := svc.Register(context.Background(), "Ada Again", "ADA@Example.com", "+15550101", "other-pass", "student")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("Register error = %v, want ErrUserExists", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService("secret")
	registerTestUser(t, svc, "ada@example.com")

	u, token, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass", "student")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Error("Login returned empty token")
	}
	if u.FullName != "Ada Lovelace" {
		t.Errorf("FullName = %q, want %q", u.FullName, "Ada Lovelace")
	}
}

func TestLoginRoleCaseInsensitive(t *testing.T) {
	svc := newTestAuthService("secret")
	registerTestUser(t, svc, "ada@example.com")

	if _, _, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass", "Student"); err != nil {
		t.Fatalf("Login with differently-cased role returned error: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService("secret")
	registerTestUser(t, svc, "ada@example.com")

	_, _, err := svc.Login(context.Background(), "ada@example.com", "wrong-pass", "student")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService("secret")

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever", "student")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRoleMismatch(t *testing.T) {
	svc := newTestAuthService("secret")
	registerTestUser(t, svc, "ada@example.com")

	_, _, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass", "recruiter")
	if !errors.Is(err, ErrRoleMismatch) {
		t.Fatalf("Login error = %v, want ErrRoleMismatch", err)
	}
}

func TestLoginMissingSecret(t *testing.T) {
	svc := newTestAuthService("")
	registerTestUser(t, svc, "ada@example.com")

	_, _, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass", "student")
	if !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("Login error = %v, want ErrMissingSecret", err)
	}
}

func TestLoginRateLimited(t *testing.T) {
	svc := newTestAuthService("secret")
	registerTestUser(t, svc, "ada@example.com")

	for i := 0; i < maxFailedAttempts; i++ {
		_, _, err := svc.Login(context.Background(), "ada@example.com", fmt.Sprintf("wrong-%d", i), "student")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: error = %v, want ErrInvalidCredentials", i, err)
		}
	}

	// Even the correct password is refused while throttled
	_, _, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass", "student")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("Login error = %v, want ErrRateLimited", err)
	}

	// Other accounts are unaffected
	registerTestUser(t, svc, "grace@example.com")
	if _, _, err := svc.Login(context.Background(), "grace@example.com", "s3cret-pass", "student"); err != nil {
		t.Fatalf("Login for unrelated account returned error: %v", err)
	}
}

// Concurrent failures must not lose increments; the counter is a single
// atomic bump, not a read-modify-write.
func TestRecordFailedAttemptConcurrent(t *testing.T) {
	svc := newTestAuthService("secret")

	const attempts = 25
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.recordFailedAttempt(context.Background(), "ada@example.com")
		}()
	}
	wg.Wait()

	got, err := svc.redisClient.Get(context.Background(), redisKeyForFailedAttempts("ada@example.com"))
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != "25" {
		t.Errorf("counter = %q, want %q", got, "25")
	}
}

func TestLoginSuccessClearsFailedAttempts(t *testing.T) {
	svc := newTestAuthService("secret")
	registerTestUser(t, svc, "ada@example.com")

	for i := 0; i < maxFailedAttempts-1; i++ {
		svc.Login(context.Background(), "ada@example.com", "wrong-pass", "student")
	}
	if _, _, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass", "student"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	// Counter was reset, so the budget of failed attempts is full again
	for i := 0; i < maxFailedAttempts-1; i++ {
		svc.Login(context.Background(), "ada@example.com", "wrong-pass", "student")
	}
	if _, _, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass", "student"); err != nil {
		t.Fatalf("Login after reset returned error: %v", err)
	}
}

func TestLoginCacheOutageFailsOpen(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	customLogger := logger.New(l)

	cache := redistest.New()
	userService := user.NewService(newMemoryRepo(), cache, customLogger)
	jwtService := jwt.NewService("secret", "api.test.local", 24*time.Hour)
	svc := NewService(userService, jwtService, cache, customLogger, bcrypt.MinCost)

	registerTestUser(t, svc, "ada@example.com")

	cache.FailAll = true
	if _, _, err := svc.Login(context.Background(), "ada@example.com", "s3cret-pass", "student"); err != nil {
		t.Fatalf("Login with unavailable cache returned error: %v", err)
	}
}
