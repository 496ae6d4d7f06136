package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/book"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/user"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const repoTimeout = 5 * time.Second

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dbPool := mustOpenDB(cfg.DatabaseDSN)
	defer dbPool.Close()

	bookRepository := book.NewPostgresRepo(dbPool, repoTimeout)
	bookHandler := book.NewHTTPHandler(book.NewService(bookRepository))

	userRepository := user.NewPostgresRepo(dbPool, repoTimeout)
	authService, err := auth.NewService(auth.Config{Secret: cfg.JWTSecret, TokenTTL: cfg.TokenTTL}, userRepository)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}
	authHandler := auth.NewHTTPHandler(authService)

	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Server is running"))
	})
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	authLimiter := httpx.NewRateLimitMiddleware(5, 10)
	router.Handle("POST /auth/register", authLimiter.Middleware(http.HandlerFunc(authHandler.Register)))
	router.Handle("POST /auth/login", authLimiter.Middleware(http.HandlerFunc(authHandler.Login)))

	bookMux := http.NewServeMux()
	bookMux.HandleFunc("GET /books", bookHandler.List)
	bookMux.HandleFunc("POST /books", bookHandler.Create)
	bookMux.HandleFunc("GET /books/{id}", bookHandler.Get)
	bookMux.HandleFunc("PUT /books/{id}", bookHandler.Update)
	bookMux.HandleFunc("DELETE /books/{id}", bookHandler.Delete)

	requireAuth := httpx.AuthMiddleware(cfg.JWTSecret)
	router.Handle("/books", requireAuth(bookMux))
	router.Handle("/books/", requireAuth(bookMux))

	handler := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(
			httpx.RecoveryMiddleware(
				httpx.SecurityHeadersMiddleware(
					httpx.CORSMiddleware(cfg.AllowedOrigins)(
						httpx.RequestSizeLimitMiddleware(1 << 20)(router),
					),
				),
			),
		),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
