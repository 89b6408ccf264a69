package chatService

import (
	"fmt"
	"strings"

	catalogRepository "ShopMate/internal/api/catalog/repository"
	"ShopMate/internal/entity"
	"ShopMate/pkg/nlp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Intent labels reported back to the client.
const (
	IntentHelp           = "help"
	IntentGreeting       = "greeting"
	IntentSimilar        = "similar"
	IntentFilteredSearch = "filtered_search"
	IntentRecommendation = "recommendation"
	IntentNameSearch     = "name_search"
	IntentFallback       = "fallback"
)

const fallbackListSize = 10

var helpKeywords = []string{"help", "menu", "commands"}

var greetingTokens = []string{"hello", "hi ", " hi", "hey", "namaste", "yo", "sup", "hii", "hlo"}

var recommendationCues = []string{"best", "recommend", "suggest", "top"}

var titleCaser = cases.Title(language.English)

// interpretation is one resolved turn: the reply text plus an optional result
// set. A nil result set means "no rows to show", which is distinct from an
// empty filter match (that case substitutes the global top list instead).
type interpretation struct {
	intent  string
	reply   string
	results []entity.Product
}

// interpret runs one turn through the intent ladder. The ladder order is
// load-bearing: a message that satisfies several intents always resolves to
// the earliest one, so a greeting containing a brand name stays a greeting.
// The conversation context is appended to as a side effect once extraction
// has run (intents past the similar-to rung).
func (s *chatService) interpret(text string, convCtx *entity.ConversationContext, callerName string) interpretation {
	msg := nlp.Normalize(text)
	name := callerName
	if name == "" {
		name = "there"
	}

	// 1. Help: exact keyword only
	for _, kw := range helpKeywords {
		if msg == kw {
			return interpretation{intent: IntentHelp, reply: helpText()}
		}
	}

	// 2. Greeting: never triggers a catalog query
	for _, token := range greetingTokens {
		if strings.Contains(msg, token) {
			return interpretation{intent: IntentGreeting, reply: s.greetingReply(name)}
		}
	}

	// 3. Similar-to
	if strings.Contains(msg, "similar to") || strings.HasPrefix(msg, "similar ") {
		return s.similarReply(msg, name)
	}

	// Entity extraction; the turn is recorded even when nothing was found.
	brand := nlp.DetectBrand(msg)
	category := nlp.DetectCategory(msg)
	ceiling, hasCeiling := nlp.DetectPriceCeiling(msg)

	convCtx.Append(entity.TurnRecord{
		Text:            text,
		Brand:           brand,
		Category:        category,
		PriceCeiling:    ceiling,
		HasPriceCeiling: hasCeiling,
	})
	lastBrand, lastCategory := convCtx.LastKnown()

	// 4. Filtered search
	if brand != "" || category != "" || hasCeiling {
		return s.filteredSearchReply(name, catalogRepository.Filter{
			Brand:           brand,
			Category:        category,
			PriceCeiling:    ceiling,
			HasPriceCeiling: hasCeiling,
		})
	}

	// 5. Recommendation request, resolving a missing category from context
	if containsAny(msg, recommendationCues) {
		return s.recommendationReply(name, category, lastCategory, lastBrand)
	}

	// 6. Direct name search
	if direct := s.catalogService.SearchName(msg); len(direct) > 0 {
		return s.nameSearchReply(name, direct)
	}

	// 7. Fallback
	return interpretation{intent: IntentFallback, reply: fallbackText(name)}
}

func (s *chatService) greetingReply(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s 👋\n", name)
	b.WriteString("I'm your smart shopping assistant.\n\n")
	b.WriteString("You can ask me things like:\n")
	b.WriteString("- `samsung phone under 25000`\n")
	b.WriteString("- `best laptop`\n")
	b.WriteString("- `nike shoes`\n")
	b.WriteString("- `similar to iPhone 15`\n")

	if deal, ok := s.catalogService.DealOfDay(); ok {
		fmt.Fprintf(&b, "\n⭐ Today's special deal:\n**%s** (₹%d, ⭐ %.1f) – a really strong option at this price. 🔥",
			deal.Name, deal.Price, deal.Rating)
	}

	return b.String()
}

func (s *chatService) similarReply(msg, name string) interpretation {
	cleaned := msg
	for _, filler := range []string{"similar to", "similar", "products", "show"} {
		cleaned = strings.ReplaceAll(cleaned, filler, "")
	}
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return interpretation{
			intent: IntentSimilar,
			reply:  fmt.Sprintf("Which product do you want alternatives for, %s? Example: `similar to iPhone 15`", name),
		}
	}

	base, similar, found := s.catalogService.FindSimilar(cleaned)
	if !found {
		return interpretation{
			intent: IntentSimilar,
			reply:  fmt.Sprintf("❌ Couldn't find any product like `%s`, %s. Try writing the name a bit more clearly.", cleaned, name),
		}
	}
	if len(similar) == 0 {
		return interpretation{
			intent: IntentSimilar,
			reply:  fmt.Sprintf("No other options near the price range of '%s' 😅", base.Name),
		}
	}

	reply := fmt.Sprintf(
		"🔁 %s, you asked for products similar to **%s**.\n\n"+
			"All of these are **%s** too, in roughly the same price range (±30%%). Take a look 👇",
		name, base.Name, base.Category)

	return interpretation{intent: IntentSimilar, reply: reply, results: similar}
}

func (s *chatService) filteredSearchReply(name string, filter catalogRepository.Filter) interpretation {
	results := s.catalogService.Filter(filter)

	if len(results) == 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "❌ %s, nothing matched your exact filters.\n\n", name)
		b.WriteString("No stress 😄 – these are the top products by rating instead:\n")
		if deal, ok := s.catalogService.DealOfDay(); ok {
			fmt.Fprintf(&b, "\n💥 Today's special deal: **%s** (₹%d, ⭐ %.1f)\n", deal.Name, deal.Price, deal.Rating)
		}
		b.WriteString("The other options are listed below 👇")

		return interpretation{
			intent:  IntentFilteredSearch,
			reply:   b.String(),
			results: s.catalogService.TopRated(fallbackListSize),
		}
	}

	var criteria []string
	if filter.Brand != "" {
		criteria = append(criteria, fmt.Sprintf("brand **%s**", titleCaser.String(filter.Brand)))
	}
	if filter.Category != "" {
		criteria = append(criteria, fmt.Sprintf("category **%s**", filter.Category))
	}
	if filter.HasPriceCeiling {
		criteria = append(criteria, fmt.Sprintf("budget **up to ₹%d**", filter.PriceCeiling))
	}
	criteriaText := strings.Join(criteria, ", ")

	top := results[0]

	var b strings.Builder
	fmt.Fprintf(&b, "✅ %s, for %s the strongest match is:\n\n", name, criteriaText)
	fmt.Fprintf(&b, "**%s** (₹%d, ⭐ %.1f)\n", top.Name, top.Price, top.Rating)
	fmt.Fprintf(&b, "- Category: %s\n", top.Category)
	b.WriteString("- Reason: good rating and the price fits your range.\n\n")
	b.WriteString("I've listed more options below so you can compare 👇")
	if deal, ok := s.catalogService.DealOfDay(); ok {
		fmt.Fprintf(&b, "\n\n💥 Today's special deal (overall): **%s** (₹%d, ⭐ %.1f) – worth a look if you want one more option.",
			deal.Name, deal.Price, deal.Rating)
	}

	return interpretation{intent: IntentFilteredSearch, reply: b.String(), results: results}
}

func (s *chatService) recommendationReply(name, category, lastCategory, lastBrand string) interpretation {
	guess := category
	if guess == "" {
		guess = lastCategory
	}

	if guess != "" {
		results := s.catalogService.Filter(catalogRepository.Filter{Category: guess})
		if len(results) > 0 {
			top := results[0]

			var b strings.Builder
			fmt.Fprintf(&b, "⭐ %s, going by your recent interest, the best option in **%s** looks like:\n\n", name, guess)
			fmt.Fprintf(&b, "**%s** (₹%d, ⭐ %.1f)\n", top.Name, top.Price, top.Rating)
			fmt.Fprintf(&b, "- Category: %s\n\n", top.Category)
			b.WriteString("More good options from the same category are below 👇")
			if deal, ok := s.catalogService.DealOfDay(); ok {
				fmt.Fprintf(&b, "\n\n💥 Today's special deal (global): **%s** (₹%d, ⭐ %.1f)",
					deal.Name, deal.Price, deal.Rating)
			}

			return interpretation{intent: IntentRecommendation, reply: b.String(), results: results}
		}
	}

	results := s.catalogService.TopRated(fallbackListSize)
	if len(results) == 0 {
		return interpretation{intent: IntentFallback, reply: fallbackText(name)}
	}
	top := results[0]

	brandHint := ""
	if lastBrand != "" {
		brandHint = fmt.Sprintf(" (you were mostly looking at **%s** earlier)", titleCaser.String(lastBrand))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⭐ %s, the overall strongest product right now%s:\n\n", name, brandHint)
	fmt.Fprintf(&b, "**%s** (₹%d, ⭐ %.1f)\n\n", top.Name, top.Price, top.Rating)
	b.WriteString("The other top rated options are below 👇")
	if deal, ok := s.catalogService.DealOfDay(); ok {
		fmt.Fprintf(&b, "\n\n💥 Today's special deal: **%s** (₹%d, ⭐ %.1f)", deal.Name, deal.Price, deal.Rating)
	}

	return interpretation{intent: IntentRecommendation, reply: b.String(), results: results}
}

func (s *chatService) nameSearchReply(name string, matches []entity.Product) interpretation {
	top := matches[0]

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 %s, you searched by name.\nThis is what I found:\n\n", name)
	fmt.Fprintf(&b, "**%s** (₹%d, ⭐ %.1f)\n\n", top.Name, top.Price, top.Rating)
	b.WriteString("Items with a similar name are listed below 👇")
	if deal, ok := s.catalogService.DealOfDay(); ok {
		fmt.Fprintf(&b, "\n\n💥 One more deal you might like: **%s** (₹%d, ⭐ %.1f)", deal.Name, deal.Price, deal.Rating)
	}

	return interpretation{intent: IntentNameSearch, reply: b.String(), results: matches}
}

func helpText() string {
	return "📘 *Help – example queries:*\n" +
		"- `samsung phone under 30000`\n" +
		"- `best laptop`\n" +
		"- `recommend tv`\n" +
		"- `nike shoes`\n" +
		"- `similar to iPhone 15`\n" +
		"- `beauty products under 500`\n" +
		"- `grocery items`"
}

func fallbackText(name string) string {
	return fmt.Sprintf("❓ %s, I didn't quite get what you're after 😅\n\n", name) +
		"Try something like:\n" +
		"- `samsung phone under 25000`\n" +
		"- `best laptop`\n" +
		"- `nike shoes`\n" +
		"- `tv under 50000`\n" +
		"- `similar to iPhone 15`\n" +
		"- `help`\n\n" +
		"Then I'll come back with a smart recommendation and the full list 🙂"
}

func containsAny(text string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
