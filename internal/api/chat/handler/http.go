package chatHandler

import (
	chatService "ShopMate/internal/api/chat/service"
	"ShopMate/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")

	chat.Post("/messages", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.SendMessage)
	chat.Post("/voice", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.SendVoiceMessage)
	chat.Get("/stats", h.middleware.NewTokenMiddleware, h.GetStats)
}
