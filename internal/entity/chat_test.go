package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationContext_AppendEvictsOldest(t *testing.T) {
	var ctx ConversationContext

	for i := 0; i < ContextWindow+5; i++ {
		ctx.Append(TurnRecord{Text: fmt.Sprintf("turn %d", i)})
	}

	assert.Equal(t, ContextWindow, ctx.Len())

	// The five oldest turns are gone, so the oldest surviving brand/category
	// lookup must not see them.
	brand, category := ctx.LastKnown()
	assert.Empty(t, brand)
	assert.Empty(t, category)
}

func TestConversationContext_LastKnown(t *testing.T) {
	t.Run("empty context yields nothing", func(t *testing.T) {
		var ctx ConversationContext
		brand, category := ctx.LastKnown()
		assert.Empty(t, brand)
		assert.Empty(t, category)
	})

	t.Run("newest entity wins", func(t *testing.T) {
		var ctx ConversationContext
		ctx.Append(TurnRecord{Text: "samsung phone", Brand: "samsung", Category: "Smartphone"})
		ctx.Append(TurnRecord{Text: "nike shoes", Brand: "nike", Category: "Fashion"})

		brand, category := ctx.LastKnown()
		assert.Equal(t, "nike", brand)
		assert.Equal(t, "Fashion", category)
	})

	t.Run("brand and category resolve independently", func(t *testing.T) {
		var ctx ConversationContext
		ctx.Append(TurnRecord{Text: "samsung phone", Brand: "samsung", Category: "Smartphone"})
		ctx.Append(TurnRecord{Text: "show me shoes", Category: "Fashion"})

		brand, category := ctx.LastKnown()
		assert.Equal(t, "samsung", brand)
		assert.Equal(t, "Fashion", category)
	})

	t.Run("turns without entities are skipped", func(t *testing.T) {
		var ctx ConversationContext
		ctx.Append(TurnRecord{Text: "nike shoes", Brand: "nike", Category: "Fashion"})
		ctx.Append(TurnRecord{Text: "thanks"})
		ctx.Append(TurnRecord{Text: "anything cheaper", PriceCeiling: 2000, HasPriceCeiling: true})

		brand, category := ctx.LastKnown()
		assert.Equal(t, "nike", brand)
		assert.Equal(t, "Fashion", category)
	})

	t.Run("eviction forgets old entities", func(t *testing.T) {
		var ctx ConversationContext
		ctx.Append(TurnRecord{Text: "nike shoes", Brand: "nike", Category: "Fashion"})
		for i := 0; i < ContextWindow; i++ {
			ctx.Append(TurnRecord{Text: "filler"})
		}

		brand, category := ctx.LastKnown()
		assert.Empty(t, brand)
		assert.Empty(t, category)
	})
}
