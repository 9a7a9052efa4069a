package main

import (
	"context"
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vidplan/internal/config"
	"vidplan/internal/domain/services"
	"vidplan/internal/httputil"
	"vidplan/internal/repository/postgres"
	"vidplan/internal/service"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// fixtures is the demo dataset loaded into the default workspace (and one
// extra workspace) on a full seed run
type fixtures struct {
	Workspaces []struct {
		Name        string  `yaml:"name"`
		Description *string `yaml:"description"`
	} `yaml:"workspaces"`
	Projects []struct {
		Name        string  `yaml:"name"`
		Description *string `yaml:"description"`
		Status      string  `yaml:"status"`
		VideoTitle  *string `yaml:"video_title"`
	} `yaml:"projects"`
	Templates []struct {
		Type    string `yaml:"type"`
		Name    string `yaml:"name"`
		Content string `yaml:"content"`
	} `yaml:"templates"`
}

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := postgres.DropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.RunSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	if err := postgres.EnsureDefaultWorkspace(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure default workspace: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	var data fixtures
	if err := yaml.Unmarshal(fixturesYAML, &data); err != nil {
		log.Fatalf("Failed to parse fixtures: %v", err)
	}

	// Create repositories and services; seeding goes through the service
	// layer so fixtures obey the same rules as API clients
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	workspaceRepo := postgres.NewWorkspaceRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	templateRepo := postgres.NewTemplateRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	workspaceService := service.NewWorkspaceService(workspaceRepo, txManager, logger)
	projectService := service.NewProjectService(projectRepo, workspaceRepo, logger)
	templateService := service.NewTemplateService(templateRepo, workspaceRepo, logger)

	log.Println("📝 Seeding workspaces...")
	for _, ws := range data.Workspaces {
		req := &services.CreateWorkspaceRequest{Name: ws.Name}
		if ws.Description != nil {
			req.Description = httputil.OptionalString{Present: true, Value: ws.Description}
		}
		if _, err := workspaceService.CreateWorkspace(ctx, req); err != nil {
			log.Printf("⚠️  Skipping workspace %q: %v", ws.Name, err)
		}
	}

	log.Println("📝 Seeding projects...")
	for _, p := range data.Projects {
		req := &services.CreateProjectRequest{
			Name:        p.Name,
			Status:      p.Status,
			WorkspaceID: config.DefaultWorkspaceID,
		}
		if p.Description != nil {
			req.Description = httputil.OptionalString{Present: true, Value: p.Description}
		}
		if p.VideoTitle != nil {
			req.VideoTitle = httputil.OptionalString{Present: true, Value: p.VideoTitle}
		}
		if _, err := projectService.CreateProject(ctx, req); err != nil {
			log.Printf("⚠️  Skipping project %q: %v", p.Name, err)
		}
	}

	log.Println("📝 Seeding templates...")
	for _, t := range data.Templates {
		req := &services.CreateTemplateRequest{
			Type:        t.Type,
			Name:        t.Name,
			Content:     t.Content,
			WorkspaceID: config.DefaultWorkspaceID,
		}
		if _, err := templateService.CreateTemplate(ctx, req); err != nil {
			log.Printf("⚠️  Skipping template %q: %v", t.Name, err)
		}
	}

	log.Println("✅ Seeding complete")
}
