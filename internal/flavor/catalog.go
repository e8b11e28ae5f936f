package flavor

import (
	"sort"

	"github.com/Veraticus/the-flavor-must-flow/internal/model"
)

// Family groups related flavors for display.
type Family struct {
	Name    string
	Flavors []model.Flavor
}

// Catalog is the known flavor vocabulary.
type Catalog struct {
	index    map[model.Flavor]string
	families []Family
}

// NewCatalog builds a catalog from families. A flavor listed in more than
// one family belongs to the first.
func NewCatalog(families ...Family) *Catalog {
	c := &Catalog{
		index:    make(map[model.Flavor]string),
		families: make([]Family, 0, len(families)),
	}
	for _, fam := range families {
		kept := make([]model.Flavor, 0, len(fam.Flavors))
		for _, f := range fam.Flavors {
			if _, dup := c.index[f]; dup || f == "" {
				continue
			}
			c.index[f] = fam.Name
			kept = append(kept, f)
		}
		c.families = append(c.families, Family{Name: fam.Name, Flavors: kept})
	}
	return c
}

// Contains reports whether f is a known flavor.
func (c *Catalog) Contains(f model.Flavor) bool {
	_, ok := c.index[f]
	return ok
}

// FamilyOf returns the family name of f.
func (c *Catalog) FamilyOf(f model.Flavor) (string, bool) {
	name, ok := c.index[f]
	return name, ok
}

// Families returns the families in declaration order.
func (c *Catalog) Families() []Family {
	out := make([]Family, len(c.families))
	for i, fam := range c.families {
		out[i] = Family{Name: fam.Name, Flavors: append([]model.Flavor(nil), fam.Flavors...)}
	}
	return out
}

// All returns every flavor, sorted.
func (c *Catalog) All() []model.Flavor {
	out := make([]model.Flavor, 0, len(c.index))
	for f := range c.index {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of flavors.
func (c *Catalog) Len() int {
	return len(c.index)
}

// DefaultCatalog returns the built-in flavor vocabulary.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Family{Name: "Tone & Style", Flavors: []model.Flavor{
			"Parody Spoof", "Anarchic Comedy", "Dark Comedy", "Satire", "Farce",
			"Noir Neo Noir", "Mockumentary", "Giallo", "Screwball",
			"Melodrama", "Psychological Thriller", "Suspense Thriller", "Action Thriller",
			"Erotic Thriller", "Avant Garde Experimental", "Buddy Comedy", "Quirky Comedy",
		}},
		Family{Name: "Themes", Flavors: []model.Flavor{
			"War And Trauma", "Addiction Self Destruction", "Identity Memory",
			"Time Determinism", "Language Communication", "Religion Faith",
			"Artificial Intelligence", "Political Corruption", "Moral Dilemma",
			"Revenge Vengeance", "Isolation Madness", "Power Control",
			"Family Legacy", "Love Loss",
		}},
		Family{Name: "Sci-Fi & Fantasy", Flavors: []model.Flavor{
			"Space Opera", "Cyberpunk", "Post Apocalyptic", "Dystopian Future",
			"Alien Contact Invasion", "Time Travel Sci Fi", "Science Fantasy",
			"High Fantasy", "Dark Fantasy", "Mythic Religious Fantasy", "Superhero",
			"Steampunk", "Fantasy Epic", "Supernatural Fantasy", "Sci-Fi Epic", "Kaiju",
		}},
		Family{Name: "Action & Crime", Flavors: []model.Flavor{
			"Espionage Spy Thriller", "Crime Epic Gangster", "Heist",
			"Assassin Hitman", "Military War Action", "Police Procedural",
			"Vigilante Justice", "Conspiracy Thriller", "Gun Fu", "One-Man Army",
			"Car Action", "Disaster Action", "Samurai", "Wuxia", "Sword & Sandal",
			"True Crime", "Drug Crime", "Caper", "Cop Drama", "Sword & Sorcery",
			"Legal Thriller", "Political Thriller",
		}},
		Family{Name: "Drama & Character", Flavors: []model.Flavor{
			"Biographical Drama", "Legal Drama Courtroom", "Coming Of Age",
			"Romantic Tragedy", "Music Drama", "Psychological Character Study",
			"Family Saga", "Historical Epic", "Prison Drama", "Political Drama",
			"Medical Drama", "Workplace Drama", "Financial Drama", "Docudrama",
		}},
		Family{Name: "Horror", Flavors: HorrorFlavors()},
		Family{Name: "Mystery", Flavors: []model.Flavor{
			"Whodunnit", "Cozy Mystery", "Hardboiled Detective", "Serial Killer",
		}},
		Family{Name: "Setting", Flavors: []model.Flavor{
			"Space Setting", "Fantasy World", "War Zone", "Urban Crime",
			"Ancient World", "Rural America", "Futuristic City",
			"Sea Adventure", "Jungle Adventure", "Desert Adventure", "Mountain Adventure",
			"Quest Adventure", "Road Trip",
		}},
		Family{Name: "Mood", Flavors: []model.Flavor{
			"Bleak Somber", "Philosophical Reflective", "Tense Paranoid",
			"Hopeful Uplifting", "Nostalgic Whimsical", "Macabre Disturbing",
			"Romantic Bittersweet", "Playful Irreverent", "Cynical Sardonic",
		}},
		Family{Name: "Animation & Anime", Flavors: []model.Flavor{
			"Adult Animation", "Hand-Drawn Animation", "Computer Animation", "Stop Motion",
			"Isekai", "Mecha", "Seinen", "Shonen", "Shojo", "Slice Of Life",
		}},
		Family{Name: "Documentary", Flavors: DocumentaryFlavors()},
		Family{Name: "Western", Flavors: []model.Flavor{
			"Classical Western", "Contemporary Western", "Spaghetti Western", "Western Epic",
		}},
		Family{Name: "Romance & Musical", Flavors: []model.Flavor{
			"Romantic Comedy", "Feel-Good Romance", "Steamy Romance", "Teen Romance",
			"Classic Musical", "Jukebox Musical", "Rock Musical",
		}},
		Family{Name: "Comedy", Flavors: []model.Flavor{
			"Raunchy Comedy", "Stoner Comedy", "Sketch Comedy", "Stand-Up",
		}},
	)
}

// HorrorFlavors returns the horror family.
func HorrorFlavors() []model.Flavor {
	return []model.Flavor{
		"Supernatural Horror", "Possession Exorcism", "Slasher", "Folk Horror", "Body Horror",
		"Haunted House", "Found Footage", "Creature Feature", "Occult Horror",
		"Survival Horror", "Psychological Horror", "Vampire Horror", "Werewolf Horror",
		"Witch Horror", "Zombie Horror", "Teen Horror",
	}
}

// DocumentaryFlavors returns the documentary family.
func DocumentaryFlavors() []model.Flavor {
	return []model.Flavor{
		"Crime Documentary", "Music Documentary", "Nature Documentary", "History Documentary",
		"Political Documentary", "Science Documentary", "Sports Documentary", "Travel Documentary",
		"Faith Documentary",
	}
}
