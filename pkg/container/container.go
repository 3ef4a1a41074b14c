package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"quoteboard-backend/internal/config"
	"quoteboard-backend/internal/infrastructure/database"
	"quoteboard-backend/internal/migrations"

	authorHandler "quoteboard-backend/internal/domains/author/handler"
	authorRepo "quoteboard-backend/internal/domains/author/repository"
	authorService "quoteboard-backend/internal/domains/author/service"

	listHandler "quoteboard-backend/internal/domains/list/handler"
	listRepo "quoteboard-backend/internal/domains/list/repository"
	listService "quoteboard-backend/internal/domains/list/service"

	entryHandler "quoteboard-backend/internal/domains/entry/handler"
	entryRepo "quoteboard-backend/internal/domains/entry/repository"
	entryService "quoteboard-backend/internal/domains/entry/service"

	authorListHandler "quoteboard-backend/internal/domains/authorlist/handler"
	authorListRepo "quoteboard-backend/internal/domains/authorlist/repository"
	authorListService "quoteboard-backend/internal/domains/authorlist/service"
)

// Container is the root of the dependency graph. Everything is constructed
// once at startup and passed explicitly; there is no process-wide database
// client hiding in a package variable.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorRepo     authorRepo.Repository
	ListRepo       listRepo.Repository
	EntryRepo      entryRepo.Repository
	AuthorListRepo authorListRepo.Repository

	AuthorService     authorService.Service
	ListService       listService.Service
	EntryService      entryService.Service
	AuthorListService authorListService.Service

	AuthorHandler     *authorHandler.AuthorHandler
	ListHandler       *listHandler.ListHandler
	EntryHandler      *entryHandler.EntryHandler
	AuthorListHandler *authorListHandler.AuthorListHandler
}

// NewContainer initializes the whole graph in dependency order:
// config, database (+ migrations), repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.Run(context.Background(), dbConfig.DSN()); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.ListRepo = listRepo.NewPostgresRepository(pool)
	c.EntryRepo = entryRepo.NewPostgresRepository(pool)
	c.AuthorListRepo = authorListRepo.NewPostgresRepository(pool)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.ListService = listService.NewListService(c.ListRepo)
	c.EntryService = entryService.NewEntryService(c.EntryRepo)
	c.AuthorListService = authorListService.NewAuthorListService(c.AuthorListRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.ListHandler = listHandler.NewListHandler(c.ListService)
	c.EntryHandler = entryHandler.NewEntryHandler(c.EntryService)
	c.AuthorListHandler = authorListHandler.NewAuthorListHandler(c.AuthorListService)

	log.Info().Str("environment", cfg.App.Environment).Msg("Container initialized")

	return c, nil
}

// Cleanup releases everything the container owns.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
