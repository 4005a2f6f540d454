package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/casedrop/casedrop/internal/catalog"
	"github.com/casedrop/casedrop/internal/database"
	"github.com/casedrop/casedrop/internal/handler"
	"github.com/casedrop/casedrop/internal/ledger"
	"github.com/casedrop/casedrop/internal/logger"
	"github.com/casedrop/casedrop/internal/metrics"
	"github.com/casedrop/casedrop/internal/opening"
	"github.com/casedrop/casedrop/internal/user"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	catalogService catalog.Service
	openingService opening.Service
	ledgerService  ledger.Service
	userService    user.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, catalogService catalog.Service, openingService opening.Service, ledgerService ledger.Service, userService user.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Storefront routes
		r.Get("/cases", handler.HandleListCases(catalogService))
		r.Get("/cases/{caseID}", handler.HandleGetCase(catalogService))
		r.Get("/collections", handler.HandleListCollections(catalogService))

		// User routes
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handler.HandleRegister(userService))
			r.Get("/profile", handler.HandleGetProfile(userService))
		})

		// Opening routes
		r.Route("/openings", func(r chi.Router) {
			r.Post("/", handler.HandleOpenCase(openingService))
			r.Get("/pending", handler.HandleGetPendingOpening(openingService))
			r.Post("/keep", handler.HandleResolveKeep(openingService))
			r.Post("/sell", handler.HandleResolveSell(openingService))
		})

		// Inventory routes
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(ledgerService))
			r.Post("/sell", handler.HandleSellItems(ledgerService))
			r.Post("/delete", handler.HandleDeleteItems(ledgerService))
		})

		// Admin routes
		adminHandler := handler.NewAdminHandler(catalogService, userService, ledgerService)
		r.Route("/admin", func(r chi.Router) {
			r.Route("/cards", func(r chi.Router) {
				r.Get("/", adminHandler.HandleListCards)
				r.Post("/", adminHandler.HandleUpsertCard)
				r.Delete("/{cardID}", adminHandler.HandleDeleteCard)
			})
			r.Route("/cases", func(r chi.Router) {
				r.Post("/", adminHandler.HandleUpsertCase)
				r.Delete("/{caseID}", adminHandler.HandleDeleteCase)
			})
			r.Route("/collections", func(r chi.Router) {
				r.Post("/", adminHandler.HandleUpsertCollection)
				r.Delete("/{collectionID}", adminHandler.HandleDeleteCollection)
			})
			r.Route("/users", func(r chi.Router) {
				r.Get("/", adminHandler.HandleListUsers)
				r.Post("/balance", adminHandler.HandleAdjustBalance)
				r.Post("/role", adminHandler.HandleSetRole)
				r.Delete("/{userID}", adminHandler.HandleDeleteUser)
			})
			r.Route("/cache", func(r chi.Router) {
				r.Get("/stats", adminHandler.HandleGetCacheStats)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		catalogService: catalogService,
		openingService: openingService,
		ledgerService:  ledgerService,
		userService:    userService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
