package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tradyon/schema-api/internal/application/dto"
	"github.com/tradyon/schema-api/internal/application/export"
	"github.com/tradyon/schema-api/internal/application/workspace"
	"github.com/tradyon/schema-api/internal/domain/catalog"
	"github.com/tradyon/schema-api/internal/domain/repository"
	"github.com/tradyon/schema-api/internal/infrastructure/exportfs"
	"github.com/tradyon/schema-api/internal/infrastructure/memory"
	infrapdf "github.com/tradyon/schema-api/internal/infrastructure/pdf"
	"github.com/tradyon/schema-api/internal/infrastructure/postgres"
	infrasheets "github.com/tradyon/schema-api/internal/infrastructure/sheets"
	"github.com/tradyon/schema-api/internal/infrastructure/sqlite"
	"github.com/tradyon/schema-api/internal/infrastructure/xlsx"
	"github.com/tradyon/schema-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/tradyon/schema-api/internal/interfaces/http"
	"github.com/tradyon/schema-api/pkg/config"
	"github.com/tradyon/schema-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	repo, closeRepo := openStore(ctx, cfg, log)
	defer closeRepo()

	cat := catalog.Default()
	if cfg.Catalog.File != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Catalog.File).Msg("cargar catálogo")
		}
	}

	// Google Sheets solo si está habilitado; sin publicador el export queda en disco.
	var publisher export.SheetPublisher
	if cfg.Sheets.Enabled {
		p, err := infrasheets.NewPublisher(ctx, infrasheets.Config{
			CredentialsFile: cfg.Sheets.CredentialsFile,
			CredentialsJSON: cfg.Sheets.CredentialsJSON,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Google Sheets")
		}
		publisher = p
	}

	files := exportfs.NewOS(cfg.Export.OutputDir)
	workspaceUC := workspace.NewWorkspaceUseCase(repo, cat, log)
	exportUC := export.NewExportUseCase(workspaceUC, files,
		[]export.Renderer{
			xlsx.NewWorkbookRenderer(),
			infrapdf.NewSpecSheetRenderer(),
			xmlexport.NewRenderer(),
		},
		publisher,
		export.Config{Workbook: cfg.Export.Workbook, PDF: cfg.Export.PDF, XML: cfg.Export.XML},
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Tradyon Schema API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name, Store: cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WorkspaceUC: workspaceUC,
		ExportUC:    exportUC,
		Catalog:     cat,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore abre el backend configurado y devuelve su función de cierre.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.WorkspaceRepository, func()) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		repo := postgres.NewWorkspaceRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			log.Fatal().Err(err).Msg("esquema PostgreSQL")
		}
		return repo, pool.Close
	case config.StoreSQLite:
		repo, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SQLite.Path).Msg("abrir SQLite")
		}
		return repo, func() { _ = repo.Close() }
	default:
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		return memory.NewWorkspaceRepository(), func() {}
	}
}
