package chatService

import (
	"ShopMate/internal/api/chat"
	"ShopMate/internal/entity"
	contextPkg "ShopMate/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *chatService) SendMessage(ctx context.Context, user entity.UserLoginData, req chat.SendMessageRequest) (*chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	conv := s.conversationFor(user.ID)
	conv.mu.Lock()
	result := s.interpret(req.Message, &conv.turns, user.Username)
	turns := conv.turns.Len()
	conv.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
		"intent":     result.intent,
		"results":    len(result.results),
		"turns":      turns,
	}).Info("Chat turn interpreted")

	if len(result.results) > 0 {
		if _, err := s.redisServer.IncrRecommendations(ctx, user.ID); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    user.ID,
				"error":      err.Error(),
			}).Warn("Failed to increment recommendation counter")
		}
	}

	return &chat.ChatResponse{
		Reply:   result.reply,
		Intent:  result.intent,
		Results: result.results,
	}, nil
}

func (s *chatService) GetStats(ctx context.Context, userID string) (*chat.StatsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	count, err := s.redisServer.GetRecommendations(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to read recommendation counter")
		return nil, err
	}

	return &chat.StatsResponse{RecommendationsServed: count}, nil
}
