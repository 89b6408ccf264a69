package chatService

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	catalogRepository "ShopMate/internal/api/catalog/repository"
	catalogService "ShopMate/internal/api/catalog/service"
	"ShopMate/internal/api/chat"
	"ShopMate/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	counts map[string]int64
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: make(map[string]int64)}
}

func (f *fakeRedis) IncrRecommendations(_ context.Context, userID string) (int64, error) {
	f.counts[userID]++
	return f.counts[userID], nil
}

func (f *fakeRedis) GetRecommendations(_ context.Context, userID string) (int64, error) {
	return f.counts[userID], nil
}

func chatTestProducts() []entity.Product {
	return []entity.Product{
		{ID: "P1", Name: "Samsung Galaxy S23", Category: "Smartphone", Price: 74999, Rating: 4.6},
		{ID: "P2", Name: "Samsung Galaxy M14", Category: "Smartphone", Price: 13999, Rating: 4.2},
		{ID: "P3", Name: "Apple iPhone 15", Category: "Smartphone", Price: 70000, Rating: 4.7},
		{ID: "P4", Name: "Apple iPhone 13", Category: "Smartphone", Price: 52999, Rating: 4.5},
		{ID: "P5", Name: "Nike Air Max 270", Category: "Fashion", Price: 12999, Rating: 4.6},
		{ID: "P6", Name: "Nike Revolution 6", Category: "Fashion", Price: 3999, Rating: 4.3},
		{ID: "P7", Name: "Samsung Crystal 4K TV", Category: "Television", Price: 42999, Rating: 4.5},
	}
}

func newTestChatService(t *testing.T, redisServer *fakeRedis) *chatService {
	t.Helper()
	log := logrus.New()
	repo := catalogRepository.New(chatTestProducts(), log)
	cs := catalogService.NewCatalogServiceWithRand(log, repo, rand.New(rand.NewSource(7)))

	return &chatService{
		log:            log,
		catalogService: cs,
		redisServer:    redisServer,
		contexts:       make(map[string]*conversation),
	}
}

func TestInterpret_Help(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	var convCtx entity.ConversationContext

	got := s.interpret("help", &convCtx, "riya")
	assert.Equal(t, IntentHelp, got.intent)
	assert.Nil(t, got.results)
	// Help never touches the conversation log.
	assert.Equal(t, 0, convCtx.Len())

	// Only the exact keyword counts; a sentence mentioning help falls
	// through the ladder.
	got = s.interpret("please help me", &convCtx, "riya")
	assert.NotEqual(t, IntentHelp, got.intent)
}

func TestInterpret_GreetingBeatsLaterIntents(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	var convCtx entity.ConversationContext

	// Carries a brand and a category, but the greeting rung wins and no
	// catalog query or context write happens.
	got := s.interpret("hey, any samsung phones?", &convCtx, "riya")
	assert.Equal(t, IntentGreeting, got.intent)
	assert.Nil(t, got.results)
	assert.Equal(t, 0, convCtx.Len())
	assert.Contains(t, got.reply, "riya")
}

func TestInterpret_FilteredSearch(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	var convCtx entity.ConversationContext

	got := s.interpret("samsung phone under 30000", &convCtx, "riya")
	require.Equal(t, IntentFilteredSearch, got.intent)

	require.Len(t, got.results, 1)
	assert.Equal(t, "P2", got.results[0].ID)

	assert.Contains(t, got.reply, "brand **Samsung**")
	assert.Contains(t, got.reply, "category **Smartphone**")
	assert.Contains(t, got.reply, "budget **up to ₹30000**")

	assert.Equal(t, 1, convCtx.Len())
}

func TestInterpret_FilteredSearchEmptyFallsBackToTopRated(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	var convCtx entity.ConversationContext

	got := s.interpret("xiaomi phone under 500", &convCtx, "riya")
	require.Equal(t, IntentFilteredSearch, got.intent)

	// Nothing matches, so the global top list substitutes for an empty
	// result set.
	require.NotEmpty(t, got.results)
	assert.Equal(t, "P3", got.results[0].ID)
	assert.Contains(t, got.reply, "nothing matched")
}

func TestInterpret_RecommendationUsesContextCategory(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	var convCtx entity.ConversationContext

	first := s.interpret("nike shoes", &convCtx, "riya")
	require.Equal(t, IntentFilteredSearch, first.intent)

	got := s.interpret("best", &convCtx, "riya")
	require.Equal(t, IntentRecommendation, got.intent)

	require.NotEmpty(t, got.results)
	for _, p := range got.results {
		assert.Equal(t, "Fashion", p.Category)
	}
	assert.Equal(t, "P5", got.results[0].ID)
	assert.Contains(t, got.reply, "Fashion")
}

func TestInterpret_RecommendationWithoutContext(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	var convCtx entity.ConversationContext

	got := s.interpret("recommend something", &convCtx, "riya")
	require.Equal(t, IntentRecommendation, got.intent)

	// No category known at all, so the global top list answers.
	require.NotEmpty(t, got.results)
	assert.Equal(t, "P3", got.results[0].ID)
}

func TestInterpret_Similar(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	var convCtx entity.ConversationContext

	t.Run("finds neighbors", func(t *testing.T) {
		got := s.interpret("similar to iphone 15", &convCtx, "riya")
		require.Equal(t, IntentSimilar, got.intent)
		require.NotEmpty(t, got.results)
		for _, p := range got.results {
			assert.Equal(t, "Smartphone", p.Category)
			assert.NotEqual(t, "P3", p.ID)
		}
	})

	t.Run("unknown anchor yields no results", func(t *testing.T) {
		got := s.interpret("similar to doesnotexist123", &convCtx, "riya")
		assert.Equal(t, IntentSimilar, got.intent)
		assert.Nil(t, got.results)
		assert.Contains(t, got.reply, "doesnotexist123")
	})

	t.Run("bare similar asks for a product", func(t *testing.T) {
		got := s.interpret("similar products", &convCtx, "riya")
		assert.Equal(t, IntentSimilar, got.intent)
		assert.Nil(t, got.results)
	})

	// The similar rung never writes to the conversation log.
	assert.Equal(t, 0, convCtx.Len())
}

func TestInterpret_NameSearchKeepsCatalogOrder(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	var convCtx entity.ConversationContext

	got := s.interpret("galaxy", &convCtx, "riya")
	require.Equal(t, IntentNameSearch, got.intent)

	require.Len(t, got.results, 2)
	assert.Equal(t, "P1", got.results[0].ID)
	assert.Equal(t, "P2", got.results[1].ID)
}

func TestInterpret_Fallback(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	var convCtx entity.ConversationContext

	got := s.interpret("qwertyuiop", &convCtx, "riya")
	assert.Equal(t, IntentFallback, got.intent)
	assert.Nil(t, got.results)
	assert.Equal(t, 1, convCtx.Len())
}

func TestSendMessage_CountsRecommendations(t *testing.T) {
	redisServer := newFakeRedis()
	s := newTestChatService(t, redisServer)
	user := entity.UserLoginData{ID: "u1", Username: "riya"}
	ctx := context.Background()

	// A turn with results bumps the counter.
	resp, err := s.SendMessage(ctx, user, chat.SendMessageRequest{Message: "nike shoes"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Results)

	// A turn without results does not.
	resp, err = s.SendMessage(ctx, user, chat.SendMessageRequest{Message: "qwertyuiop"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)

	stats, err := s.GetStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.RecommendationsServed)
}

func TestSendMessage_ConcurrentTurnsSameUser(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	user := entity.UserLoginData{ID: "u1", Username: "riya"}
	ctx := context.Background()

	// Simultaneous requests carrying the same token serialize on the user's
	// conversation; every turn must land in the log. Run with -race.
	const turns = 20
	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.SendMessage(ctx, user, chat.SendMessageRequest{Message: "qwertyuiop"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	conv := s.conversationFor(user.ID)
	assert.Equal(t, turns, conv.turns.Len())
}

func TestSendMessage_ContextIsPerUser(t *testing.T) {
	s := newTestChatService(t, newFakeRedis())
	ctx := context.Background()

	userA := entity.UserLoginData{ID: "a", Username: "riya"}
	userB := entity.UserLoginData{ID: "b", Username: "arjun"}

	_, err := s.SendMessage(ctx, userA, chat.SendMessageRequest{Message: "nike shoes"})
	require.NoError(t, err)

	// User B has no context, so "best" resolves globally instead of to
	// user A's Fashion history.
	resp, err := s.SendMessage(ctx, userB, chat.SendMessageRequest{Message: "best"})
	require.NoError(t, err)
	require.Equal(t, IntentRecommendation, resp.Intent)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "P3", resp.Results[0].ID)
}
