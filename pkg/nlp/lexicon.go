package nlp

// Brands holds every brand token the extractor knows about, matched as a
// substring of the lowercased query. Slice order is the precedence for queries
// that mention more than one brand: the first listed entry wins. That order is
// deterministic but essentially arbitrary, so keep new entries at the end.
var Brands = []string{
	"samsung", "iphone", "apple", "xiaomi", "redmi", "realme", "oneplus",
	"vivo", "oppo", "iqoo", "tecno", "moto", "nokia",
	"hp", "dell", "asus", "lenovo", "acer", "msi", "microsoft", "infinix",
	"nike", "adidas", "levis", "zara", "puma", "h&m", "woodland", "us polo",
	"biba", "ray-ban", "wildcraft", "jockey", "casio", "titan", "fossil",
	"ikea", "godrej", "nilkamal",
	"prestige", "milton", "cello", "bajaj", "whirlpool", "havells", "philips",
	"kent", "faber", "kutchina",
	"tata", "aashirvaad", "amul", "colgate", "nivea", "lakme", "dove", "maggi",
	"surf", "clinic", "parachute",
}

// CategoryEntry maps one logical category key to its canonical display label
// and the free-text synonyms that resolve to it.
type CategoryEntry struct {
	Key       string
	Canonical string
	Synonyms  []string
}

// Categories is the closed category table. Both the entry order and each
// synonym list order matter: detection scans top to bottom and returns the
// first hit. A synonym must never appear under two entries.
var Categories = []CategoryEntry{
	{
		Key:       "smartphone",
		Canonical: "Smartphone",
		Synonyms:  []string{"phone", "mobile", "smartphone"},
	},
	{
		Key:       "laptop",
		Canonical: "Laptop",
		Synonyms:  []string{"laptop", "notebook"},
	},
	{
		Key:       "television",
		Canonical: "Television",
		Synonyms:  []string{"tv", "television", "smart tv"},
	},
	{
		Key:       "fashion",
		Canonical: "Fashion",
		Synonyms: []string{"clothes", "cloths", "dress", "shirt", "tshirt", "t-shirt", "jeans",
			"hoodie", "jacket", "coat", "kurti", "kurta", "shoes", "sneaker",
			"fashion", "wear", "top"},
	},
	{
		Key:       "furniture",
		Canonical: "Furniture",
		Synonyms: []string{"furniture", "sofa", "bed", "almirah", "wardrobe", "chair",
			"table", "bookshelf", "mattress"},
	},
	{
		Key:       "kitchen",
		Canonical: "Kitchen",
		Synonyms: []string{"kitchen", "cooker", "pressure cooker", "stove", "gas stove",
			"pan", "fry pan", "bottle", "utensil"},
	},
	{
		Key:       "home appliance",
		Canonical: "Home Appliance",
		Synonyms: []string{"appliance", "fridge", "refrigerator", "washing machine",
			"fan", "bulb", "chimney", "heater", "cooler", "air cooler",
			"purifier"},
	},
	{
		Key:       "grocery",
		Canonical: "Grocery",
		Synonyms:  []string{"grocery", "atta", "tea", "noodles", "maggi", "detergent", "butter", "rice"},
	},
	{
		Key:       "beauty",
		Canonical: "Beauty",
		Synonyms: []string{"beauty", "cream", "lotion", "shampoo", "kajal", "serum", "perfume",
			"lipstick", "oil", "cosmetic"},
	},
}

// CanonicalCategories returns the canonical labels in table order.
func CanonicalCategories() []string {
	out := make([]string, 0, len(Categories))
	for _, entry := range Categories {
		out = append(out, entry.Canonical)
	}
	return out
}
