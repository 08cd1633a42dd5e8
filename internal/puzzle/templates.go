package puzzle

import "wordheist/internal/domain"

// Template is one case in the rotation
type Template struct {
	Theme      string
	Title      string
	Difficulty string
	Letters    string
	Mystery    string
	Words      domain.WordBuckets
}

// templates is the fixed pool. Order is part of the generated output: append only.
var templates = []Template{
	{
		Theme: "Mystery", Title: "The Maltese Mystery", Difficulty: "hard",
		Letters: "CRIMES", Mystery: "CRIMES",
		Words: domain.WordBuckets{
			3: {"ICE", "IRE", "SIR", "RIM"},
			4: {"RICE", "MICE", "RISE", "SIRE", "MIRE"},
			5: {"CRIME", "CRIES", "MISER"},
			6: {"CRIMES"},
		},
	},
	{
		Theme: "Heist", Title: "The Vanishing Vault", Difficulty: "medium",
		Letters: "STOLEN", Mystery: "STOLEN",
		Words: domain.WordBuckets{
			3: {"LOT", "NET", "TEN", "SON", "ONE", "TOE"},
			4: {"LOST", "SLOT", "NOTE", "TONE", "LENS", "NEST"},
			5: {"STONE", "NOTES", "ONSET", "STOLE"},
			6: {"STOLEN"},
		},
	},
	{
		Theme: "Poison", Title: "The Bitter Teacup", Difficulty: "hard",
		Letters: "POISON", Mystery: "POISON",
		Words: domain.WordBuckets{
			3: {"SIP", "SON", "PIN", "ION", "NIP"},
			4: {"SNIP", "SPIN", "PINS", "SOON"},
			5: {"SPOON"},
			6: {"POISON"},
		},
	},
	{
		Theme: "Detective", Title: "The Foggy Pier", Difficulty: "medium",
		Letters: "SLEUTH", Mystery: "SLEUTH",
		Words: domain.WordBuckets{
			3: {"THE", "HUT", "LET", "SET", "SHE", "USE"},
			4: {"SHUT", "HUTS", "LUTE", "LEST", "LETS"},
			5: {"LUTES"},
			6: {"SLEUTH", "HUSTLE"},
		},
	},
	{
		Theme: "Motive", Title: "The Silent Heir", Difficulty: "medium",
		Letters: "MOTIVE", Mystery: "MOTIVE",
		Words: domain.WordBuckets{
			3: {"TOE", "TIE", "VET", "MET"},
			4: {"MOVE", "VOTE", "TOME", "MITE", "EMIT", "OMIT", "ITEM", "TIME", "VETO"},
			5: {"MOVIE", "VOMIT"},
			6: {"MOTIVE"},
		},
	},
	{
		Theme: "Locked Room", Title: "The Sealed Study", Difficulty: "medium",
		Letters: "CLOSET", Mystery: "CLOSET",
		Words: domain.WordBuckets{
			3: {"COT", "LOT", "SET", "LET", "TOE"},
			4: {"COST", "LOST", "SLOT", "COLT", "LOTS", "CLOT", "TOES"},
			5: {"CLOSE", "STOLE", "COLTS", "CLOTS"},
			6: {"CLOSET"},
		},
	},
	{
		Theme: "Kidnapping", Title: "The Midnight Note", Difficulty: "easy",
		Letters: "RANSOM", Mystery: "RANSOM",
		Words: domain.WordBuckets{
			3: {"RAN", "MAN", "OAR", "ARM", "SON"},
			4: {"ROAM", "MOAN", "ROAN", "NORM", "SOAR", "ARMS", "MORN"},
			5: {"ROAMS", "MOANS", "MANOR", "NORMS"},
			6: {"RANSOM"},
		},
	},
	{
		Theme: "Forgery", Title: "The Counterfeit Canvas", Difficulty: "hard",
		Letters: "FORGER", Mystery: "FORGER",
		Words: domain.WordBuckets{
			3: {"FOR", "ORE", "ERR", "FOG", "ROE"},
			4: {"FORE", "GORE", "FROG", "OGRE", "ERGO"},
			5: {"FORGE", "GOFER"},
			6: {"FORGER"},
		},
	},
	{
		Theme: "Espionage", Title: "The Double Cross", Difficulty: "medium",
		Letters: "AGENTS", Mystery: "AGENTS",
		Words: domain.WordBuckets{
			3: {"TAN", "NET", "SAT", "GAS", "TAG", "NAG", "GET"},
			4: {"GATE", "SANE", "NEAT", "STAG", "SENT", "TANG"},
			5: {"AGENT", "GATES", "STAGE", "GENTS"},
			6: {"AGENTS"},
		},
	},
	{
		Theme: "Evidence", Title: "The Muddy Footprints", Difficulty: "easy",
		Letters: "TRACES", Mystery: "TRACES",
		Words: domain.WordBuckets{
			3: {"ACE", "ART", "CAR", "CAT", "EAT", "RAT", "SEA", "TEA"},
			4: {"CART", "CARE", "RACE", "RATE", "STAR", "TEAR", "CAST"},
			5: {"TRACE", "CRATE", "CATER", "REACT", "CARTS", "STARE"},
			6: {"TRACES", "CRATES"},
		},
	},
	{
		Theme: "Burglary", Title: "The Open Window", Difficulty: "easy",
		Letters: "THIEFS", Mystery: "THIEF",
		Words: domain.WordBuckets{
			3: {"FIT", "HIT", "SIT", "THE", "ITS", "HIS"},
			4: {"FIST", "SIFT", "HEFT", "THIS"},
			5: {"THIEF", "SHIFT", "HEIST"},
		},
	},
	{
		Theme: "Corruption", Title: "The Crooked Precinct", Difficulty: "easy",
		Letters: "BADGES", Mystery: "BADGE",
		Words: domain.WordBuckets{
			3: {"BAD", "BAG", "GAS", "SAD", "BED", "AGE"},
			4: {"BADE", "BEAD", "AGED", "SAGE", "BEDS", "BAGS"},
			5: {"BADGE", "BASED", "BEADS"},
			6: {"BADGES"},
		},
	},
}

// ValidateTemplates checks every template in the pool
func ValidateTemplates() error {
	return validatePool(templates)
}
