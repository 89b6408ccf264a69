package config

import (
	"ShopMate/database/postgres"
	authHandler "ShopMate/internal/api/auth/handler"
	authRepository "ShopMate/internal/api/auth/repository"
	authService "ShopMate/internal/api/auth/service"
	cartHandler "ShopMate/internal/api/cart/handler"
	cartRepository "ShopMate/internal/api/cart/repository"
	cartService "ShopMate/internal/api/cart/service"
	catalogHandler "ShopMate/internal/api/catalog/handler"
	catalogRepository "ShopMate/internal/api/catalog/repository"
	catalogService "ShopMate/internal/api/catalog/service"
	chatHandler "ShopMate/internal/api/chat/handler"
	chatService "ShopMate/internal/api/chat/service"
	"ShopMate/internal/middleware"
	"ShopMate/pkg/audio"
	"ShopMate/pkg/bcrypt"
	"ShopMate/pkg/redis"
	"ShopMate/pkg/s3"
	"ShopMate/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	handlers    []handler
	redisServer redis.IRedis
	s3Client    s3.ItfS3
	transcriber audio.ITranscriber
	catalogRepo catalogRepository.Repository
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.catalogRepo == nil {
		return nil, fmt.Errorf("product catalog is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithTranscriber() ServerOption {
	return func(s *Server) error {
		s.transcriber = audio.New()
		return nil
	}
}

func WithCatalog() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before catalog")
		}

		path := os.Getenv("PRODUCT_DATASET_PATH")
		if path == "" {
			path = "data/products.csv"
		}

		products, err := catalogRepository.LoadDataset(path, s.log)
		if err != nil {
			s.log.Errorf("Failed to load product dataset: %v", err)
			return fmt.Errorf("failed to load product dataset: %w", err)
		}

		s.catalogRepo = catalogRepository.New(products, s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware)

	// Catalog Domain
	catalogServices := catalogService.NewCatalogService(s.log, s.catalogRepo)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	// Chat Domain
	chatServices := chatService.NewChatService(s.log, catalogServices, s.redisServer, s.transcriber, s.s3Client, s.utils)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices)

	// Cart Domain
	cartRepo := cartRepository.New(s.db, s.log)
	cartServices := cartService.NewCartService(s.log, cartRepo, catalogServices, s.utils)
	cartHandlers := cartHandler.New(s.log, s.validator, s.middleware, cartServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, catalogHandlers, chatHandlers, cartHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
