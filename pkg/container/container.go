package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"articles-backend/internal/config"
	infraCache "articles-backend/internal/infrastructure/cache"
	"articles-backend/internal/infrastructure/database"
	"articles-backend/pkg/cache"
	"articles-backend/pkg/jwt"

	"articles-backend/internal/domains/article"
	articleHandler "articles-backend/internal/domains/article/handler"
	articleRepo "articles-backend/internal/domains/article/repository"
	articleService "articles-backend/internal/domains/article/service"

	"articles-backend/internal/domains/author"
	authorHandler "articles-backend/internal/domains/author/handler"
	authorRepo "articles-backend/internal/domains/author/repository"
	authorService "articles-backend/internal/domains/author/service"

	"articles-backend/internal/domains/tag"
	tagHandler "articles-backend/internal/domains/tag/handler"
	tagRepo "articles-backend/internal/domains/tag/repository"
	tagService "articles-backend/internal/domains/tag/service"
)

// Container holds every application dependency. It is the root of the
// dependency graph; everything in it is a singleton for the lifetime
// of the process.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	AuthorRepo  author.Repository
	TagRepo     tag.Repository
	ArticleRepo article.Repository

	AuthorService  author.Service
	TagService     tag.Service
	ArticleService article.Service

	AuthorHandler  *authorHandler.AuthorHandler
	TagHandler     *tagHandler.TagHandler
	ArticleHandler *articleHandler.ArticleHandler
}

// NewContainer builds the dependency graph in order:
// config, infrastructure, repositories, services, handlers.
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

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is not fatal: repositories treat every cache
	// lookup as a best-effort read.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("redis connection failed (non-critical): %v", err)
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, c.Cache)
	c.TagRepo = tagRepo.NewPostgresRepository(pool, c.Cache)
	c.ArticleRepo = articleRepo.NewPostgresRepository(pool, c.Cache)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.TagService = tagService.NewTagService(c.TagRepo)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.JWTManager)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
}

// Cleanup releases connections during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("failed to close redis: %v", err)
			}
		}
	}
}
