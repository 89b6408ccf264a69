package entity

// ContextWindow bounds the per-conversation turn log. Once exceeded, the
// oldest turn is evicted first.
const ContextWindow = 30

// TurnRecord captures one user utterance and whatever entities were extracted
// from it. A record is appended after extraction and never mutated.
type TurnRecord struct {
	Text            string
	Brand           string
	Category        string
	PriceCeiling    int
	HasPriceCeiling bool
}

// ConversationContext is the bounded, append-only turn log of a single
// conversation. It belongs to exactly one conversation and is not safe for
// concurrent use; callers own one per user.
type ConversationContext struct {
	turns []TurnRecord
}

func (c *ConversationContext) Append(turn TurnRecord) {
	c.turns = append(c.turns, turn)
	if len(c.turns) > ContextWindow {
		c.turns = c.turns[1:]
	}
}

func (c *ConversationContext) Len() int {
	return len(c.turns)
}

// LastKnown resolves the most recently seen brand and category independently,
// scanning from the newest turn to the oldest and stopping as soon as both are
// found. Either result may be empty when no prior turn carried that entity.
func (c *ConversationContext) LastKnown() (brand, category string) {
	for i := len(c.turns) - 1; i >= 0; i-- {
		if category == "" && c.turns[i].Category != "" {
			category = c.turns[i].Category
		}
		if brand == "" && c.turns[i].Brand != "" {
			brand = c.turns[i].Brand
		}
		if brand != "" && category != "" {
			break
		}
	}
	return brand, category
}
