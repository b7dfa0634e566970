package model

// Faction is one of the four playable allegiances
type Faction string

const (
	FactionWei Faction = "wei"
	FactionShu Faction = "shu"
	FactionWu  Faction = "wu"
	FactionQun Faction = "qun"
)

// AllFactions lists the valid factions in seating order
var AllFactions = []Faction{FactionWei, FactionShu, FactionWu, FactionQun}

// Valid reports whether f is one of the four faction labels
func (f Faction) Valid() bool {
	for _, v := range AllFactions {
		if v == f {
			return true
		}
	}
	return false
}

// Attribute is one of the six numeric character dimensions
type Attribute string

const (
	AttrLeadership Attribute = "leadership"
	AttrMight      Attribute = "might"
	AttrIntellect  Attribute = "intellect"
	AttrPolitics   Attribute = "politics"
	AttrCharisma   Attribute = "charisma"
	AttrFortune    Attribute = "fortune"
)

// AllAttributes lists the six attributes in draw order
var AllAttributes = []Attribute{AttrLeadership, AttrMight, AttrIntellect, AttrPolitics, AttrCharisma, AttrFortune}

// Valid reports whether a is a known attribute
func (a Attribute) Valid() bool {
	for _, v := range AllAttributes {
		if v == a {
			return true
		}
	}
	return false
}

// Stats is the six-dimensional attribute vector of a character
type Stats struct {
	Leadership int `json:"leadership" bson:"leadership"`
	Might      int `json:"might" bson:"might"`
	Intellect  int `json:"intellect" bson:"intellect"`
	Politics   int `json:"politics" bson:"politics"`
	Charisma   int `json:"charisma" bson:"charisma"`
	Fortune    int `json:"fortune" bson:"fortune"`
}

// Get returns the value of a single attribute; unknown attributes read as 0.
func (s Stats) Get(a Attribute) int {
	switch a {
	case AttrLeadership:
		return s.Leadership
	case AttrMight:
		return s.Might
	case AttrIntellect:
		return s.Intellect
	case AttrPolitics:
		return s.Politics
	case AttrCharisma:
		return s.Charisma
	case AttrFortune:
		return s.Fortune
	}
	return 0
}

// Sum adds all six attributes
func (s Stats) Sum() int {
	return s.Leadership + s.Might + s.Intellect + s.Politics + s.Charisma + s.Fortune
}

// Character is an immutable roster entry
type Character struct {
	Name    string  `json:"name" bson:"name"`
	Faction Faction `json:"faction" bson:"faction"`
	Stats   Stats   `json:"stats" bson:"stats"`
}
