package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"vidplan/internal/config"
	"vidplan/internal/handler"
	"vidplan/internal/middleware"
	"vidplan/internal/repository/postgres"
	"vidplan/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Bootstrap schema and the default workspace
	if err := postgres.RunSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	if err := postgres.EnsureDefaultWorkspace(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure default workspace: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	workspaceRepo := postgres.NewWorkspaceRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	templateRepo := postgres.NewTemplateRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	workspaceService := service.NewWorkspaceService(workspaceRepo, txManager, logger)
	projectService := service.NewProjectService(projectRepo, workspaceRepo, logger)
	templateService := service.NewTemplateService(templateRepo, workspaceRepo, logger)

	// Create handlers
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	templateHandler := handler.NewTemplateHandler(templateService, logger)
	healthHandler := handler.NewHealthHandler(pool)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Service endpoints
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /api/health", healthHandler.HealthCheck)

	// Workspace routes
	mux.HandleFunc("GET /api/workspaces", workspaceHandler.ListWorkspaces)
	mux.HandleFunc("POST /api/workspaces", workspaceHandler.CreateWorkspace)
	mux.HandleFunc("GET /api/workspaces/{id}", workspaceHandler.GetWorkspace)
	mux.HandleFunc("PUT /api/workspaces/{id}", workspaceHandler.UpdateWorkspace)
	mux.HandleFunc("DELETE /api/workspaces/{id}", workspaceHandler.DeleteWorkspace)

	// Project routes (workspace-scoped)
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("PUT /api/projects/{id}", projectHandler.UpdateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.DeleteProject)

	// Template routes (workspace-scoped)
	mux.HandleFunc("GET /api/templates", templateHandler.ListTemplates)
	mux.HandleFunc("POST /api/templates", templateHandler.CreateTemplate)
	mux.HandleFunc("GET /api/templates/{id}", templateHandler.GetTemplate)
	mux.HandleFunc("PUT /api/templates/{id}", templateHandler.UpdateTemplate)
	mux.HandleFunc("DELETE /api/templates/{id}", templateHandler.DeleteTemplate)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → RequestLogger → WorkspaceScope → Routes
	root = middleware.WorkspaceScope()(root)
	root = middleware.RequestLogger(logger)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", middleware.ScopeHeader},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
