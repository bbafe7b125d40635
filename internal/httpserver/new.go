package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"taskmaster-ai/config"
	"taskmaster-ai/internal/analysis"
	"taskmaster-ai/pkg/duedate"
	"taskmaster-ai/pkg/encrypter"
	"taskmaster-ai/pkg/log"
	"taskmaster-ai/pkg/scope"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	postgresDB *sql.DB

	// Auth
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter

	// Tasks and analysis
	analyzer analysis.Analyzer
	resolver *duedate.Resolver

	// Middleware
	corsConfig      config.CORSConfig
	rateLimitConfig config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB

	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter

	Analyzer analysis.Analyzer
	Resolver *duedate.Resolver

	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		jwtManager:      cfg.JWTManager,
		encrypter:       cfg.Encrypter,
		analyzer:        cfg.Analyzer,
		resolver:        cfg.Resolver,
		corsConfig:      cfg.CORS,
		rateLimitConfig: cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.analyzer == nil {
		return errors.New("analyzer is required")
	}
	if srv.resolver == nil {
		return errors.New("due date resolver is required")
	}
	return nil
}
