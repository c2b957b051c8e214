package models

import "strings"

// Planet is a survey location.
type Planet string

// Planets lists every location a resource can spawn on, in display order.
var Planets = []Planet{
	"Corellia", "Dantooine", "Dathomir", "Endor", "Lok",
	"Mustafar", "Naboo", "Rori", "Talus", "Tatooine", "Yavin IV",
}

// Category is a top-level material category.
type Category string

// ResourceType is a subtype within a Category.
type ResourceType string

const (
	CategoryMineral  Category = "Inorganic: Mineral"
	CategoryChemical Category = "Inorganic: Chemical"
	CategoryEnergy   Category = "Inorganic: Energy"
	CategoryFlora    Category = "Organic: Flora"
	CategoryCreature Category = "Organic: Creature"
)

// CategorySpec pairs a category with the subtypes it allows.
type CategorySpec struct {
	Category Category
	Types    []ResourceType
}

// Categories lists the material categories in display order.
var Categories = []CategorySpec{
	{CategoryMineral, []ResourceType{"Metal", "Ore", "Gemstone", "Radioactive"}},
	{CategoryChemical, []ResourceType{"Gas", "Water", "Petrochemical"}},
	{CategoryEnergy, []ResourceType{"Renewable", "Direct"}},
	{CategoryFlora, []ResourceType{"Flora"}},
	{CategoryCreature, []ResourceType{"Harvest"}},
}

// TypesFor returns the subtypes of c, or nil for an unknown category.
func TypesFor(c Category) []ResourceType {
	for _, spec := range Categories {
		if spec.Category == c {
			return spec.Types
		}
	}
	return nil
}

// Attribute is a two-letter quality attribute code.
type Attribute string

const (
	AttrOQ Attribute = "oq" // overall quality
	AttrCD Attribute = "cd" // conductivity
	AttrDR Attribute = "dr" // decay resistance
	AttrHR Attribute = "hr" // heat resistance
	AttrMA Attribute = "ma" // malleability
	AttrPE Attribute = "pe" // potential energy
	AttrSR Attribute = "sr" // shock resistance
	AttrUT Attribute = "ut" // unit toughness
	AttrFL Attribute = "fl" // flavor
	AttrCR Attribute = "cr" // cold resistance
	AttrER Attribute = "er" // entangle resistance
)

// Attributes lists the quality attributes in display order.
var Attributes = []Attribute{
	AttrOQ, AttrCD, AttrDR, AttrHR, AttrMA, AttrPE,
	AttrSR, AttrUT, AttrFL, AttrCR, AttrER,
}

// HighQuality is the stat value at which a resource is considered top grade.
const HighQuality = 900

// Label returns the upper-case column label, e.g. "OQ".
func (a Attribute) Label() string {
	return strings.ToUpper(string(a))
}

// IsValid reports whether a is one of the known attribute codes.
func (a Attribute) IsValid() bool {
	for _, known := range Attributes {
		if a == known {
			return true
		}
	}
	return false
}
