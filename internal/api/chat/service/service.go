package chatService

import (
	"context"
	"sync"

	catalogService "ShopMate/internal/api/catalog/service"
	"ShopMate/internal/api/chat"
	"ShopMate/internal/entity"
	"ShopMate/pkg/audio"
	"ShopMate/pkg/redis"
	"ShopMate/pkg/s3"
	"ShopMate/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IChatService interface {
	SendMessage(ctx context.Context, user entity.UserLoginData, req chat.SendMessageRequest) (*chat.ChatResponse, error)
	ProcessVoiceMessage(ctx context.Context, user entity.UserLoginData, req chat.VoiceMessageRequest) (*chat.VoiceChatResponse, error)
	GetStats(ctx context.Context, userID string) (*chat.StatsResponse, error)
}

// conversation pairs one user's turn log with the lock that serializes that
// user's turns. Turns of different users never contend.
type conversation struct {
	mu    sync.Mutex
	turns entity.ConversationContext
}

type chatService struct {
	log            *logrus.Logger
	catalogService catalogService.ICatalogService
	redisServer    redis.IRedis
	transcriber    audio.ITranscriber
	s3Client       s3.ItfS3
	utils          utils.IUtils

	// One conversation per user, created lazily. The outer mutex only
	// guards the map.
	mu       sync.Mutex
	contexts map[string]*conversation
}

func NewChatService(
	log *logrus.Logger,
	cs catalogService.ICatalogService,
	redisServer redis.IRedis,
	transcriber audio.ITranscriber,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IChatService {
	return &chatService{
		log:            log,
		catalogService: cs,
		redisServer:    redisServer,
		transcriber:    transcriber,
		s3Client:       s3Client,
		utils:          utils,
		contexts:       make(map[string]*conversation),
	}
}

func (s *chatService) conversationFor(userID string) *conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.contexts[userID]
	if !ok {
		conv = &conversation{}
		s.contexts[userID] = conv
	}
	return conv
}
