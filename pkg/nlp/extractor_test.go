package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases and trims", input: "  Samsung Phone  ", expected: "samsung phone"},
		{name: "strips diacritics", input: "Pokémon tshirt", expected: "pokemon tshirt"},
		{name: "keeps punctuation", input: "H&M jacket <= 2000", expected: "h&m jacket <= 2000"},
		{name: "empty stays empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestDetectBrand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "simple match", text: "show me nike shoes", expected: "nike"},
		{name: "brand embedded in sentence", text: "any good samsung deals", expected: "samsung"},
		{name: "no brand", text: "show me some shoes", expected: ""},
		{name: "first listed entry wins", text: "adidas or nike which is better", expected: "nike"},
		{name: "punctuated brand", text: "h&m jacket", expected: "h&m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectBrand(tt.text))
		})
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "synonym resolves to canonical", text: "i want a new phone", expected: "Smartphone"},
		{name: "tv synonym", text: "any tv under 30000", expected: "Television"},
		{name: "multiword synonym", text: "need a washing machine", expected: "Home Appliance"},
		{name: "key fallback", text: "good grocery offers", expected: "Grocery"},
		{name: "no category", text: "hello there", expected: ""},
		// "oil" sits in the Beauty synonym list, so table order decides.
		{name: "table order decides overlap", text: "cooking oil bottle", expected: "Kitchen"},
		{name: "nothing detected from brand alone", text: "samsung", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectCategory(tt.text))
		})
	}
}

func TestDetectPriceCeiling(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
		found    bool
	}{
		{name: "under cue", text: "phone under 30000", expected: 30000, found: true},
		{name: "below cue", text: "laptops below 60000", expected: 60000, found: true},
		{name: "upto cue", text: "shoes upto 5000", expected: 5000, found: true},
		{name: "rupee symbol", text: "tv ₹25000", expected: 25000, found: true},
		{name: "rs marker", text: "rs 2000 kurti", expected: 2000, found: true},
		{name: "comparison operator", text: "fridge <= 40000", expected: 40000, found: true},
		{name: "number without cue ignored", text: "iphone 15", expected: 0, found: false},
		{name: "no number at all", text: "cheap phone please", expected: 0, found: false},
		{name: "first number wins", text: "under 5000 or maybe 10000", expected: 5000, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := DetectPriceCeiling(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, price)
		})
	}
}

func TestCanonicalCategories(t *testing.T) {
	got := CanonicalCategories()
	assert.Len(t, got, len(Categories))
	assert.Equal(t, "Smartphone", got[0])
	assert.Equal(t, "Beauty", got[len(got)-1])
}
