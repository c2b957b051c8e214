// Package seed generates a deterministic sample survey for a fresh store.
package seed

// Syllables are combined to form spawn names in the style the game uses:
// two or three syllables, capitalised, with no meaning.
var Syllables = []string{
	"ba", "bo", "cha", "da", "dor", "el", "fa", "ge", "ha", "ie",
	"ka", "lo", "lu", "ma", "ne", "no", "oz", "pa", "pi", "qua",
	"ra", "ri", "sa", "su", "ta", "ti", "ul", "va", "vi", "wo",
	"xi", "ya", "ze", "zo", "ine", "ite", "ium", "ara", "ex", "on",
}

// Endings are appended to some names to read more mineral-like.
var Endings = []string{"ine", "ite", "ium", "ane", "ol", "ux"}

// categoryAttributes lists which attributes a category carries in game.
// Attributes outside the list are left unset.
var categoryAttributes = map[string][]string{
	"Inorganic: Mineral":  {"oq", "cd", "dr", "hr", "ma", "pe", "sr", "ut"},
	"Inorganic: Chemical": {"oq", "cd", "dr", "fl", "hr", "ma", "pe", "sr", "ut"},
	"Inorganic: Energy":   {"oq", "pe"},
	"Organic: Flora":      {"oq", "cr", "dr", "er", "fl", "hr", "pe"},
	"Organic: Creature":   {"oq", "cr", "dr", "er", "fl", "hr", "pe"},
}
