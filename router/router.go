package router

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	authAPI "talenthub-api/api/v1/auth"
	usersAPI "talenthub-api/api/v1/users"
	internalAuth "talenthub-api/internal/auth"
	jwt "talenthub-api/internal/jwt"
	log "talenthub-api/internal/logger"
	"talenthub-api/internal/middleware"
	internalUser "talenthub-api/internal/user"
	"talenthub-api/pkg/config"
	"talenthub-api/pkg/mongo"
	"talenthub-api/pkg/redis"

	"github.com/getsentry/sentry-go"
	sentrylogrus "github.com/getsentry/sentry-go/logrus"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/sirupsen/logrus"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// Package-level services to avoid recreation
var (
	jwtService   *jwt.Service
	userService  *internalUser.Service
	authService  *internalAuth.Service
	logger       *logrus.Logger
	customLogger *log.Logger
)

// InitServices initializes all required services
func InitServices(database *mongodriver.Database, redisClient redis.RedisClient) error {
	// Initialize logger with Sentry hook
	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Setup Sentry hook for logrus if DSN is provided
	sentryDSN := os.Getenv("SENTRY_DSN")
	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         sentryDSN,
			Environment: os.Getenv("APP_ENV"),
			Release:     os.Getenv("APP_VERSION"),
		})
		if err != nil {
			return errors.New("failed to initialize Sentry: " + err.Error())
		}

		// Add Sentry hook to logrus
		levels := []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel}
		hook, err := sentrylogrus.New(levels, sentry.ClientOptions{
			Dsn: sentryDSN,
		})
		if err != nil {
			logger.WithError(err).Error("Failed to initialize Sentry hook")
		} else {
			logger.AddHook(hook)
			logger.Info("Sentry integration initialized successfully")
		}
	}

	// Initialize custom logger wrapper
	customLogger = log.New(logger)

	cfg := config.GetConfig()

	// Initialize JWT service
	jwtService = jwt.NewService(
		cfg.Auth.SecretKey,
		cfg.Auth.Issuer,
		cfg.Auth.TokenExpiry,
	)

	// Initialize user repository and service
	userRepo := internalUser.NewRepository(database)
	userService = internalUser.NewService(userRepo, redisClient, customLogger)

	// Initialize auth service with all dependencies
	authService = internalAuth.NewService(userService, jwtService, redisClient, customLogger, cfg.Auth.BcryptCost)

	logger.Info("All services initialized successfully")
	return nil
}

// CSRFMiddleware creates a middleware for CSRF protection
func CSRFMiddleware(secret string, secure bool, domain string) gin.HandlerFunc {
	csrfMiddleware := csrf.Protect(
		[]byte(secret),
		csrf.Secure(secure),
		csrf.HttpOnly(true),
		csrf.Path("/"),
		csrf.CookieName("csrfToken"),
		csrf.MaxAge(3600), // 1 hour
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.Domain(domain),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, _ := gin.CreateTestContext(w)
			c.Request = r

			// Log CSRF error for monitoring
			logger.WithFields(logrus.Fields{
				"remoteIP":  c.ClientIP(),
				"path":      r.URL.Path,
				"method":    r.Method,
				"userAgent": r.UserAgent(),
			}).Error("CSRF token mismatch")

			c.IndentedJSON(http.StatusForbidden, gin.H{"error": "CSRF token mismatch"})
			c.Abort()
		})),
	)

	return func(c *gin.Context) {
		csrfMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)
		c.Abort()
	}
}

// SetupEngine creates a new Gin engine with default middleware
func SetupEngine() *gin.Engine {
	return gin.Default()
}

// SetupAuthRoutes configures auth-related routes
func SetupAuthRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Create auth handler using the global services
	authHandler := authAPI.NewHandler(authService, config.GetConfig().Auth, customLogger)

	// All auth endpoints are public, including logout
	authAPI.RegisterRoutes(v1, authHandler)
}

// SetupUsersRoutes configures user-related routes
func SetupUsersRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Create users handler using the global service
	usersHandler := usersAPI.NewHandler(userService, customLogger)

	// Create user route group with auth middleware
	userGroup := v1.Group("")
	userGroup.Use(middleware.JWTAuthMiddleware(jwtService))
	usersAPI.RegisterRoutes(userGroup, usersHandler)
}

// SetupCSRFProtection configures CSRF protection when a secret is present.
// Browser clients authenticate with a SameSite=Strict cookie, so the extra
// token is opt-in.
func SetupCSRFProtection(r *gin.Engine) {
	csrfSecret := os.Getenv("CSRF_SECRET")
	if csrfSecret == "" {
		return
	}

	csrfSecureStr := os.Getenv("CSRF_SECURE")
	csrfSecure, _ := strconv.ParseBool(csrfSecureStr)

	r.Use(CSRFMiddleware(csrfSecret, csrfSecure, config.GetConfig().Auth.CookieDomain))
}

// SetupCORS configures CORS settings
func SetupCORS(r *gin.Engine) {
	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.SetTrustedProxies(nil)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = origins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-TOKEN"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 24 * time.Hour

	r.Use(cors.New(corsConfig))
}

// SetupRouter creates and configures the main router with all routes
func SetupRouter(database *mongodriver.Database) (*gin.Engine, error) {
	// Set global database reference
	mongo.DB = database

	// Get Redis client
	redisClient := redis.GetDefault()

	// Initialize all services
	if err := InitServices(database, redisClient); err != nil {
		return nil, err
	}

	// Create and configure Gin router
	r := SetupEngine()

	// Setup CORS
	SetupCORS(r)

	// Setup optional CSRF protection
	SetupCSRFProtection(r)

	// Configure routes
	SetupAuthRoutes(r)
	SetupUsersRoutes(r)

	logger.Info("Router setup completed successfully")
	return r, nil
}
