package flavor

import "github.com/Veraticus/the-flavor-must-flow/internal/model"

// DefaultRules returns the built-in rule table. Rules are grouped by the
// genre they mostly serve; order is only for readability.
func DefaultRules() RuleSet {
	return NewRuleSet(defaultRules()...)
}

func defaultRules() []Rule {
	return []Rule{
		// Action
		{
			Name:    "Gun Fu",
			Flavors: []model.Flavor{"Gun Fu", "Action Thriller"},
			Score:   14,
			When:    []Predicate{AnyGenres{"action", "thriller"}, AnySignals{"gun fu"}},
		},
		{
			Name:    "One-Man Army",
			Flavors: []model.Flavor{"One-Man Army", "Action Thriller"},
			Score:   12,
			When:    []Predicate{AnyGenres{"action"}, AnySignals{"one-man army"}},
		},
		{
			Name:    "Car Action",
			Flavors: []model.Flavor{"Car Action", "Action Thriller"},
			Score:   11,
			When:    []Predicate{AnyGenres{"action"}, AnySignals{"car chase", "stunt driver"}},
		},
		{
			Name:    "Assassin Hitman",
			Flavors: []model.Flavor{"Assassin Hitman", "Noir Neo Noir"},
			Score:   11,
			When:    []Predicate{AnyGenres{"action", "crime", "thriller"}, AnySignals{"hitman", "assassin"}},
		},
		{
			Name:    "Heist",
			Flavors: []model.Flavor{"Heist", "Urban Crime"},
			Score:   12,
			When:    []Predicate{AnyGenres{"action", "crime"}, AnySignals{"heist", "robbery"}},
		},
		{
			Name:    "Espionage Spy Thriller",
			Flavors: []model.Flavor{"Espionage Spy Thriller", "Conspiracy Thriller"},
			Score:   12,
			When:    []Predicate{AnyGenres{"action", "thriller"}, AnySignals{"spy", "espionage", "cia", "mi6", "undercover"}},
		},
		{
			Name:    "Police Procedural",
			Flavors: []model.Flavor{"Police Procedural"},
			Score:   10,
			When:    []Predicate{AnyGenres{"crime", "action", "thriller"}, AnySignals{"police", "homicide", "forensics", "interrogation"}},
		},
		{
			Name:    "Vigilante Justice",
			Flavors: []model.Flavor{"Vigilante Justice", "Action Thriller"},
			Score:   10,
			When:    []Predicate{AnyGenres{"action", "crime", "thriller"}, AnySignals{"vigilante"}},
		},
		{
			Name:    "Crime Epic Gangster",
			Flavors: []model.Flavor{"Crime Epic Gangster", "Urban Crime"},
			Score:   12,
			When:    []Predicate{AnyGenres{"crime", "drama"}, AnySignals{"mafia", "gangster", "yakuza", "triad", "cartel"}},
		},
		{
			Name:    "Military War Action",
			Flavors: []model.Flavor{"Military War Action", "War Zone"},
			Score:   10,
			When:    []Predicate{AnyGenres{"action", "war"}, AnySignals{"hostage"}},
		},

		// Adventure
		{
			Name:    "Quest Adventure",
			Flavors: []model.Flavor{"Quest Adventure", "Fantasy World"},
			Score:   10,
			When:    []Predicate{AnyGenres{"adventure"}, AnySignals{"quest", "artifact", "chosen one", "prophecy"}},
		},
		{
			Name:    "Sea Adventure",
			Flavors: []model.Flavor{"Sea Adventure"},
			Score:   10,
			When:    []Predicate{AnyGenres{"adventure"}, AnySignals{"sea voyage", "pirate", "mutiny"}},
		},
		{
			Name:    "Jungle Adventure",
			Flavors: []model.Flavor{"Jungle Adventure"},
			Score:   10,
			When:    []Predicate{AnyGenres{"adventure"}, AnySignals{"jungle", "expedition", "lost city"}},
		},
		{
			Name:    "Desert Adventure",
			Flavors: []model.Flavor{"Desert Adventure"},
			Score:   9,
			When:    []Predicate{AnyGenres{"adventure"}, AnySignals{"desert"}},
		},
		{
			Name:    "Mountain Adventure",
			Flavors: []model.Flavor{"Mountain Adventure"},
			Score:   9,
			When:    []Predicate{AnyGenres{"adventure"}, AnySignals{"mountain"}},
		},
		{
			Name:    "Road Trip",
			Flavors: []model.Flavor{"Road Trip"},
			Score:   9,
			When:    []Predicate{AnyGenres{"adventure", "comedy", "drama"}, AnySignals{"road trip", "globe-trotting"}},
		},

		// Animation / Anime
		{
			Name:    "Adult Animation",
			Flavors: []model.Flavor{"Adult Animation"},
			Score:   9,
			When:    []Predicate{AnyGenres{"animation", "comedy"}, AnyKeywords{"adult animation"}},
			Unless:  []Predicate{AnyGenres{"family"}},
		},
		{
			Name:    "Hand-Drawn Animation",
			Flavors: []model.Flavor{"Hand-Drawn Animation"},
			Score:   8,
			When:    []Predicate{AnyGenres{"animation"}, AnyKeywords{"hand-drawn animation"}},
		},
		{
			Name:    "Computer Animation",
			Flavors: []model.Flavor{"Computer Animation"},
			Score:   8,
			When:    []Predicate{AnyGenres{"animation"}, AnyKeywords{"cgi", "computer animation"}},
		},
		{
			Name:    "Stop Motion",
			Flavors: []model.Flavor{"Stop Motion"},
			Score:   8,
			When:    []Predicate{AnyGenres{"animation"}, AnyKeywords{"stop motion"}},
		},
		{
			Name:    "Isekai",
			Flavors: []model.Flavor{"Isekai", "Fantasy World"},
			Score:   10,
			When:    []Predicate{AnyGenres{"animation", "fantasy"}, AnySignals{"chosen one", "prophecy"}, AnyKeywords{"isekai"}},
		},
		{
			Name:    "Mecha",
			Flavors: []model.Flavor{"Mecha", "Science Fantasy"},
			Score:   10,
			When:    []Predicate{AnyGenres{"animation", "science fiction"}, AnySignals{"mecha"}},
		},

		// Comedy
		{
			Name:    "Parody Spoof",
			Flavors: []model.Flavor{"Parody Spoof", "Playful Irreverent"},
			Score:   11,
			When:    []Predicate{AnyGenres{"comedy"}, AnySignals{"parody", "spoof"}},
		},
		{
			Name:    "Anarchic Comedy",
			Flavors: []model.Flavor{"Anarchic Comedy", "Quirky Comedy"},
			Score:   9,
			When:    []Predicate{AnyGenres{"comedy"}, AnySignals{"quirky", "high-concept"}},
		},
		{
			Name:    "Dark Comedy",
			Flavors: []model.Flavor{"Dark Comedy", "Cynical Sardonic"},
			Score:   10,
			When:    []Predicate{AnyGenres{"comedy", "drama", "crime"}, AnyKeywords{"dark comedy"}},
		},
		{
			Name:    "Satire",
			Flavors: []model.Flavor{"Satire"},
			Score:   9,
			When:    []Predicate{AnyGenres{"comedy"}, AnySignals{"satire"}},
		},
		{
			Name:    "Farce",
			Flavors: []model.Flavor{"Farce"},
			Score:   9,
			When:    []Predicate{AnyGenres{"comedy"}, AnySignals{"farce"}},
		},
		{
			Name:    "Buddy Comedy",
			Flavors: []model.Flavor{"Buddy Comedy"},
			Score:   9,
			When:    []Predicate{AnyGenres{"comedy", "action"}, AnySignals{"buddy comedy", "buddy cop"}},
		},
		{
			Name:    "Mockumentary",
			Flavors: []model.Flavor{"Mockumentary"},
			Score:   9,
			When:    []Predicate{AnyGenres{"comedy"}, AnySignals{"mockumentary"}},
		},
		{
			Name:    "Raunchy Comedy",
			Flavors: []model.Flavor{"Raunchy Comedy"},
			Score:   8,
			When:    []Predicate{AnyGenres{"comedy"}, AnySignals{"raunchy"}},
		},
		{
			Name:    "Stoner Comedy",
			Flavors: []model.Flavor{"Stoner Comedy"},
			Score:   8,
			When:    []Predicate{AnyGenres{"comedy"}, AnySignals{"stoner"}},
		},
		{
			Name:    "Screwball",
			Flavors: []model.Flavor{"Screwball"},
			Score:   8,
			When:    []Predicate{AnyGenres{"comedy", "romance"}, AnySignals{"screwball"}},
		},
		{
			Name:    "Sketch Comedy",
			Flavors: []model.Flavor{"Sketch Comedy"},
			Score:   7,
			When:    []Predicate{AnyGenres{"comedy"}, AnySignals{"sketch"}},
		},
		{
			Name:    "Stand-Up",
			Flavors: []model.Flavor{"Stand-Up"},
			Score:   7,
			When:    []Predicate{AnyGenres{"comedy"}, AnySignals{"stand-up"}},
		},

		// Crime
		{
			Name:    "True Crime",
			Flavors: []model.Flavor{"True Crime", "Crime Documentary"},
			Score:   11,
			When:    []Predicate{AnyGenres{"crime", "documentary"}, AnySignals{"true crime"}},
		},
		{
			Name:    "Drug Crime",
			Flavors: []model.Flavor{"Drug Crime", "Urban Crime"},
			Score:   10,
			When:    []Predicate{AnyGenres{"crime", "drama"}, AnySignals{"cartel"}},
		},
		{
			Name:    "Caper",
			Flavors: []model.Flavor{"Caper", "Heist"},
			Score:   9,
			When:    []Predicate{AnyGenres{"crime", "comedy", "action"}, AnySignals{"heist"}},
		},
		{
			Name:    "Cop Drama",
			Flavors: []model.Flavor{"Cop Drama", "Police Procedural"},
			Score:   8,
			When:    []Predicate{AnyGenres{"crime", "drama"}, AnySignals{"police"}},
		},
		{
			Name:    "Hardboiled Detective",
			Flavors: []model.Flavor{"Hardboiled Detective", "Noir Neo Noir"},
			Score:   10,
			When:    []Predicate{AnyGenres{"crime", "mystery"}, AnySignals{"private eye", "gumshoe", "hard-boiled"}},
		},

		// Documentary
		{
			Name:    "Crime Documentary",
			Flavors: []model.Flavor{"Crime Documentary"},
			Score:   10,
			When:    []Predicate{AnyGenres{"documentary"}, AnySignals{"true crime", "investigation"}},
		},
		{
			Name:    "Music Documentary",
			Flavors: []model.Flavor{"Music Documentary"},
			Score:   9,
			When:    []Predicate{AnyGenres{"documentary", "music"}, AnySignals{"concert", "tour", "studio session", "composer"}},
		},
		{
			Name:    "History Documentary",
			Flavors: []model.Flavor{"History Documentary"},
			Score:   9,
			When:    []Predicate{AnyGenres{"documentary", "history"}, AnySignals{"oral history", "archival footage", "interview"}},
		},
		{
			Name:    "Political Documentary",
			Flavors: []model.Flavor{"Political Documentary"},
			Score:   9,
			When:    []Predicate{AnyGenres{"documentary"}, AnySignals{"political scandal"}},
		},
		{
			Name:    "Science Documentary",
			Flavors: []model.Flavor{"Science Documentary"},
			Score:   8,
			When:    []Predicate{AnyGenres{"documentary"}, AnySignals{"artificial intelligence", "virtual reality", "black hole", "wormhole"}},
		},
		{
			Name:    "Travel Documentary",
			Flavors: []model.Flavor{"Travel Documentary"},
			Score:   8,
			When:    []Predicate{AnyGenres{"documentary"}, AnySignals{"globe-trotting"}},
		},

		// Drama
		{
			Name:    "Biographical Drama",
			Flavors: []model.Flavor{"Biographical Drama", "Psychological Character Study"},
			Score:   10,
			When:    []Predicate{AnyGenres{"drama"}, AnySignals{"biopic", "based on true story"}},
		},
		{
			Name:    "Legal Drama Courtroom",
			Flavors: []model.Flavor{"Legal Drama Courtroom"},
			Score:   10,
			When:    []Predicate{AnyGenres{"drama"}, AnySignals{"courtroom"}},
		},
		{
			Name:    "Medical Drama",
			Flavors: []model.Flavor{"Medical Drama"},
			Score:   9,
			When:    []Predicate{AnyGenres{"drama"}, AnyKeywords{"hospital", "surgeon", "diagnosis", "emergency room"}},
		},
		{
			Name:    "Prison Drama",
			Flavors: []model.Flavor{"Prison Drama"},
			Score:   9,
			When:    []Predicate{AnyGenres{"drama", "crime"}, AnySignals{"prison"}},
		},
		{
			Name:    "Financial Drama",
			Flavors: []model.Flavor{"Financial Drama"},
			Score:   9,
			When:    []Predicate{AnyGenres{"drama"}, AnySignals{"financial crisis"}},
		},
		{
			Name:    "Political Drama",
			Flavors: []model.Flavor{"Political Drama", "Political Corruption"},
			Score:   9,
			When:    []Predicate{AnyGenres{"drama", "history"}, AnySignals{"political scandal"}},
		},
		{
			Name:    "Workplace Drama",
			Flavors: []model.Flavor{"Workplace Drama"},
			Score:   8,
			When:    []Predicate{AnyGenres{"drama"}, AnySignals{"workplace"}},
		},
		{
			Name:    "Family Saga",
			Flavors: []model.Flavor{"Family Saga"},
			Score:   10,
			When:    []Predicate{AnyGenres{"drama"}, AnyKeywords{"patriarch", "matriarch", "multi-generational", "dynasty"}},
		},
		{
			Name:    "Coming Of Age",
			Flavors: []model.Flavor{"Coming Of Age"},
			Score:   9,
			When:    []Predicate{AnyGenres{"drama"}, AnySignals{"coming-of-age"}},
		},
		{
			Name:    "Romantic Tragedy",
			Flavors: []model.Flavor{"Romantic Tragedy", "Love Loss"},
			Score:   10,
			When:    []Predicate{AnyGenres{"drama", "romance"}, AnySignals{"grief"}},
		},

		// Fantasy
		{
			Name:    "High Fantasy",
			Flavors: []model.Flavor{"High Fantasy", "Fantasy World", "Fantasy Epic"},
			Score:   12,
			When:    []Predicate{AnyGenres{"fantasy"}, AnySignals{"wizard", "dragon", "elf", "dwarf", "orc", "prophecy", "chosen one", "sword", "magic", "spell"}},
		},
		{
			Name:    "Dark Fantasy",
			Flavors: []model.Flavor{"Dark Fantasy"},
			Score:   10,
			When:    []Predicate{AnyGenres{"fantasy", "horror"}, AnySignals{"demon", "curse", "occult"}},
		},
		{
			Name:    "Sword & Sorcery",
			Flavors: []model.Flavor{"Sword & Sorcery"},
			Score:   10,
			When:    []Predicate{AnyGenres{"fantasy", "action"}, AnySignals{"sword & sorcery", "barbarian"}},
		},
		{
			Name:    "Supernatural Fantasy",
			Flavors: []model.Flavor{"Supernatural Fantasy"},
			Score:   9,
			When:    []Predicate{AnyGenres{"fantasy"}, AnySignals{"fae", "faerie"}},
		},
		{
			Name:    "Mythic Religious Fantasy",
			Flavors: []model.Flavor{"Mythic Religious Fantasy"},
			Score:   9,
			When:    []Predicate{AnyGenres{"fantasy", "history"}, AnySignals{"mythology", "pantheon"}},
		},
		{
			Name:    "Samurai",
			Flavors: []model.Flavor{"Samurai"},
			Score:   11,
			When:    []Predicate{AnyGenres{"action", "drama"}, AnySignals{"samurai"}},
		},
		{
			Name:    "Wuxia",
			Flavors: []model.Flavor{"Wuxia"},
			Score:   11,
			When:    []Predicate{AnyGenres{"action", "fantasy"}, AnySignals{"wuxia"}},
		},
		{
			Name:    "Sword & Sandal",
			Flavors: []model.Flavor{"Sword & Sandal", "Historical Epic"},
			Score:   11,
			When:    []Predicate{AnyGenres{"action", "history"}, AnySignals{"sword & sandal"}},
		},

		// History
		{
			Name:    "Historical Epic",
			Flavors: []model.Flavor{"Historical Epic"},
			Score:   10,
			When:    []Predicate{AnyGenres{"history", "drama"}, AnyKeywords{"empire", "revolution", "chronicle"}},
		},
		{
			Name:    "Ancient World",
			Flavors: []model.Flavor{"Ancient World"},
			Score:   9,
			When:    []Predicate{AnyGenres{"history"}, AnySignals{"ancient world"}},
		},

		// Horror
		{
			Name:    "Slasher",
			Flavors: []model.Flavor{"Slasher", "Serial Killer"},
			Score:   12,
			When:    []Predicate{AnyGenres{"horror", "thriller"}, AnySignals{"slasher", "serial killer", "final girl"}},
		},
		{
			Name:    "Supernatural Horror",
			Flavors: []model.Flavor{"Supernatural Horror", "Haunted House"},
			Score:   12,
			When:    []Predicate{AnyGenres{"horror"}, AnySignals{"haunted house", "ghost", "possession", "exorcism"}},
		},
		{
			Name:    "Occult Horror",
			Flavors: []model.Flavor{"Occult Horror", "Witch Horror"},
			Score:   11,
			When:    []Predicate{AnyGenres{"horror"}, AnySignals{"occult", "witch", "witchcraft", "satanic", "curse"}},
		},
		{
			Name:    "Body Horror",
			Flavors: []model.Flavor{"Body Horror", "Macabre Disturbing"},
			Score:   11,
			When:    []Predicate{AnyGenres{"horror"}, AnySignals{"body horror", "mutation"}},
		},
		{
			Name:    "Creature Feature",
			Flavors: []model.Flavor{"Creature Feature"},
			Score:   10,
			When:    []Predicate{AnyGenres{"horror", "science fiction"}, AnySignals{"monster", "kaiju"}},
		},
		{
			Name:    "Found Footage",
			Flavors: []model.Flavor{"Found Footage", "Survival Horror"},
			Score:   10,
			When:    []Predicate{AnyGenres{"horror"}, AnySignals{"found footage"}},
		},
		{
			Name:    "Psychological Horror",
			Flavors: []model.Flavor{"Psychological Horror", "Isolation Madness"},
			Score:   10,
			When:    []Predicate{AnyGenres{"horror", "drama"}, AnySignals{"gaslighting", "stalker"}},
		},
		{
			Name:    "Vampire Horror",
			Flavors: []model.Flavor{"Vampire Horror"},
			Score:   10,
			When:    []Predicate{AnyGenres{"horror"}, AnySignals{"vampire"}},
		},
		{
			Name:    "Werewolf Horror",
			Flavors: []model.Flavor{"Werewolf Horror"},
			Score:   10,
			When:    []Predicate{AnyGenres{"horror"}, AnySignals{"werewolf"}},
		},
		{
			Name:    "Zombie Horror",
			Flavors: []model.Flavor{"Zombie Horror"},
			Score:   10,
			When:    []Predicate{AnyGenres{"horror"}, AnySignals{"zombie"}},
		},
		{
			Name:    "Teen Horror",
			Flavors: []model.Flavor{"Teen Horror"},
			Score:   8,
			When:    []Predicate{AnyGenres{"horror"}, AnyKeywords{"high school"}},
		},

		// Mystery
		{
			Name:    "Whodunnit",
			Flavors: []model.Flavor{"Whodunnit", "Suspense Thriller"},
			Score:   10,
			When:    []Predicate{AnyGenres{"mystery", "thriller"}, AnySignals{"whodunnit", "closed circle", "country manor"}},
		},
		{
			Name:    "Cozy Mystery",
			Flavors: []model.Flavor{"Cozy Mystery"},
			Score:   9,
			When:    []Predicate{AnyGenres{"mystery", "comedy"}, AnySignals{"cozy mystery", "amateur sleuth"}},
		},
		{
			Name:    "Hardboiled Detective (Mystery)",
			Flavors: []model.Flavor{"Hardboiled Detective", "Noir Neo Noir"},
			Score:   10,
			When:    []Predicate{AnyGenres{"mystery", "crime"}, AnySignals{"private eye", "gumshoe", "hard-boiled"}},
		},

		// Romance / Musical
		{
			Name:    "Romantic Comedy",
			Flavors: []model.Flavor{"Romantic Comedy"},
			Score:   10,
			When:    []Predicate{AnyGenres{"romance", "comedy"}, AnySignals{"rom-com", "meet-cute", "enemies to lovers", "fake dating", "friends to lovers"}},
		},
		{
			Name:    "Feel-Good Romance",
			Flavors: []model.Flavor{"Feel-Good Romance"},
			Score:   8,
			When:    []Predicate{AnyGenres{"romance"}, AnySignals{"holiday romance"}},
		},
		{
			Name:    "Steamy Romance",
			Flavors: []model.Flavor{"Steamy Romance"},
			Score:   8,
			When:    []Predicate{AnyGenres{"romance"}, AnySignals{"steamy"}},
		},
		{
			Name:    "Teen Romance",
			Flavors: []model.Flavor{"Teen Romance"},
			Score:   8,
			When:    []Predicate{AnyGenres{"romance"}, AnySignals{"teen romance"}},
		},
		{
			Name:    "Classic Musical",
			Flavors: []model.Flavor{"Classic Musical"},
			Score:   9,
			When:    []Predicate{AnyGenres{"music", "romance", "comedy"}, AnySignals{"musical"}},
		},
		{
			Name:    "Jukebox Musical",
			Flavors: []model.Flavor{"Jukebox Musical"},
			Score:   8,
			When:    []Predicate{AnyGenres{"music"}, AnySignals{"jukebox musical"}},
		},
		{
			Name:    "Music Drama",
			Flavors: []model.Flavor{"Music Drama"},
			Score:   9,
			When:    []Predicate{AnyGenres{"music", "drama"}, AnySignals{"concert", "tour", "studio session", "audition", "composer"}},
		},

		// Sci-fi
		{
			Name:    "Cyberpunk",
			Flavors: []model.Flavor{"Cyberpunk", "Futuristic City"},
			Score:   12,
			When:    []Predicate{AnyGenres{"science fiction"}, AnySignals{"cyberpunk"}},
		},
		{
			Name:    "Dystopian Future",
			Flavors: []model.Flavor{"Dystopian Future", "Political Corruption"},
			Score:   11,
			When:    []Predicate{AnyGenres{"science fiction", "thriller"}, AnySignals{"dystopia"}},
		},
		{
			Name:    "Post Apocalyptic",
			Flavors: []model.Flavor{"Post Apocalyptic", "Bleak Somber"},
			Score:   11,
			When:    []Predicate{AnyGenres{"science fiction"}, AnySignals{"post-apocalyptic"}},
		},
		{
			Name:    "Alien Contact Invasion",
			Flavors: []model.Flavor{"Alien Contact Invasion"},
			Score:   11,
			When:    []Predicate{AnyGenres{"science fiction"}, AnySignals{"space opera", "spaceship", "alien invasion"}, AnyKeywords{"alien invasion", "first contact", "mothership"}},
		},
		{
			Name:    "Time Travel Sci Fi",
			Flavors: []model.Flavor{"Time Travel Sci Fi", "Time Determinism"},
			Score:   11,
			When:    []Predicate{AnyGenres{"science fiction"}, AnySignals{"time travel", "time loop"}},
		},
		{
			Name:    "Space Opera",
			Flavors: []model.Flavor{"Space Opera", "Space Setting", "Sci-Fi Epic"},
			Score:   12,
			When:    []Predicate{AnyGenres{"science fiction", "adventure"}, AnySignals{"space opera", "spaceship", "hyperspace"}},
		},
		{
			Name:    "Science Fantasy",
			Flavors: []model.Flavor{"Science Fantasy"},
			Score:   9,
			When:    []Predicate{AnyGenres{"science fiction", "fantasy"}, AnySignals{"magic", "mythology"}},
		},
		{
			Name:    "Artificial Intelligence",
			Flavors: []model.Flavor{"Artificial Intelligence"},
			Score:   10,
			When:    []Predicate{AnyGenres{"science fiction"}, AnySignals{"artificial intelligence", "robot", "android", "cyborg", "virtual reality"}},
		},
		{
			Name:    "Steampunk",
			Flavors: []model.Flavor{"Steampunk"},
			Score:   9,
			When:    []Predicate{AnyGenres{"science fiction"}, AnySignals{"steampunk"}},
		},
		{
			Name:    "Kaiju Creature Feature",
			Flavors: []model.Flavor{"Creature Feature", "Kaiju"},
			Score:   10,
			When:    []Predicate{AnyGenres{"science fiction"}, AnySignals{"kaiju"}},
		},

		// Thriller
		{
			Name:    "Psychological Thriller",
			Flavors: []model.Flavor{"Psychological Thriller", "Tense Paranoid"},
			Score:   11,
			When:    []Predicate{AnyGenres{"thriller", "drama"}, AnySignals{"amnesia", "gaslighting", "identity", "stalker"}},
		},
		{
			Name:    "Suspense Thriller",
			Flavors: []model.Flavor{"Suspense Thriller"},
			Score:   11,
			When:    []Predicate{AnyGenres{"thriller"}, AnySignals{"ticking clock", "siege", "hostage", "bomb", "ransom", "kidnapping"}},
		},
		{
			Name:    "Conspiracy Thriller",
			Flavors: []model.Flavor{"Conspiracy Thriller"},
			Score:   11,
			When:    []Predicate{AnyGenres{"thriller"}, AnySignals{"conspiracy", "whistleblower", "cover-up"}},
		},
		{
			Name:    "Erotic Thriller",
			Flavors: []model.Flavor{"Erotic Thriller"},
			Score:   9,
			When:    []Predicate{AnyGenres{"thriller", "romance"}, AnySignals{"erotic"}},
		},
		{
			Name:    "Serial Killer",
			Flavors: []model.Flavor{"Serial Killer"},
			Score:   10,
			When:    []Predicate{AnyGenres{"thriller", "crime"}, AnySignals{"serial killer", "forensics", "interrogation"}},
		},
		{
			Name:    "Legal Thriller",
			Flavors: []model.Flavor{"Legal Thriller"},
			Score:   9,
			When:    []Predicate{AnyGenres{"thriller", "drama"}, AnyKeywords{"appeal", "death row", "jury tampering"}},
		},
		{
			Name:    "Political Thriller",
			Flavors: []model.Flavor{"Political Thriller"},
			Score:   9,
			When:    []Predicate{AnyGenres{"thriller", "drama"}, AnySignals{"political scandal"}},
		},

		// War
		{
			Name:    "Military War Action (War)",
			Flavors: []model.Flavor{"Military War Action", "War Zone"},
			Score:   11,
			When:    []Predicate{AnyGenres{"war", "action"}, AnySignals{"hostage"}},
		},
		{
			Name:    "War And Trauma",
			Flavors: []model.Flavor{"War And Trauma", "Bleak Somber"},
			Score:   11,
			When:    []Predicate{AnyGenres{"war", "drama"}, AnySignals{"ptsd"}},
		},
		{
			Name:    "Historical Epic (War)",
			Flavors: []model.Flavor{"Historical Epic"},
			Score:   10,
			When:    []Predicate{AnyGenres{"war", "history"}, AnyKeywords{"campaign", "armistice", "occupation"}},
		},

		// Western
		{
			Name:    "Classical Western",
			Flavors: []model.Flavor{"Classical Western"},
			Score:   11,
			When:    []Predicate{AnyGenres{"western"}, AnyKeywords{"frontier", "sheriff", "outlaw", "posse", "duel"}},
		},
		{
			Name:    "Spaghetti Western",
			Flavors: []model.Flavor{"Spaghetti Western"},
			Score:   10,
			When:    []Predicate{AnyGenres{"western"}, AnyKeywords{"spaghetti western", "bounty hunter", "gunslinger"}},
		},
		{
			Name:    "Contemporary Western",
			Flavors: []model.Flavor{"Contemporary Western"},
			Score:   9,
			When:    []Predicate{AnyGenres{"western", "crime", "drama"}, AnyKeywords{"neo-western", "modern ranch", "borderland"}},
		},
		{
			Name:    "Western Epic",
			Flavors: []model.Flavor{"Western Epic"},
			Score:   9,
			When:    []Predicate{AnyGenres{"western", "history"}, AnyKeywords{"railroad", "migration", "homestead"}},
		},

		// Moods / Cross-Cutting
		{
			Name:    "Addiction Self Destruction",
			Flavors: []model.Flavor{"Addiction Self Destruction", "Psychological Character Study"},
			Score:   9,
			When:    []Predicate{AnyGenres{"drama", "music", "crime"}, AnySignals{"addiction"}},
		},
		{
			Name:    "Identity Memory",
			Flavors: []model.Flavor{"Identity Memory"},
			Score:   9,
			When:    []Predicate{AnyGenres{"thriller", "drama", "science fiction"}, AnySignals{"identity", "amnesia"}},
		},
		{
			Name:    "Religion Faith",
			Flavors: []model.Flavor{"Religion Faith"},
			Score:   8,
			When:    []Predicate{AnyGenres{"drama", "history", "documentary", "horror"}, AnyKeywords{"faith", "religion", "pilgrimage", "church"}},
		},
		{
			Name:    "Moral Dilemma",
			Flavors: []model.Flavor{"Moral Dilemma", "Philosophical Reflective"},
			Score:   8,
			When:    []Predicate{AnyGenres{"drama", "thriller"}, AnyKeywords{"moral dilemma", "ethics"}},
		},
		{
			Name:    "Revenge Vengeance",
			Flavors: []model.Flavor{"Revenge Vengeance", "Action Thriller"},
			Score:   9,
			When:    []Predicate{AnyGenres{"action", "thriller", "drama"}, AnyKeywords{"revenge", "vengeance", "payback"}},
		},
		{
			Name:    "Isolation Madness",
			Flavors: []model.Flavor{"Isolation Madness"},
			Score:   8,
			When:    []Predicate{AnyGenres{"drama", "horror", "thriller"}, AnyKeywords{"isolation", "madness", "cabin fever"}},
		},
		{
			Name:    "Power Control",
			Flavors: []model.Flavor{"Power Control"},
			Score:   8,
			When:    []Predicate{AnyGenres{"drama", "thriller"}, AnyKeywords{"power struggle", "manipulation", "control"}},
		},
		{
			Name:    "Family Legacy",
			Flavors: []model.Flavor{"Family Legacy"},
			Score:   8,
			When:    []Predicate{AnyGenres{"drama", "crime", "history"}, AnyKeywords{"legacy", "inheritance", "lineage", "succession"}},
		},
		{
			Name:    "Love Loss",
			Flavors: []model.Flavor{"Love Loss", "Romantic Bittersweet"},
			Score:   8,
			When:    []Predicate{AnyGenres{"drama", "romance"}, AnySignals{"grief"}},
		},
		{
			Name:    "Bleak Somber",
			Flavors: []model.Flavor{"Bleak Somber"},
			Score:   7,
			When:    []Predicate{AnyGenres{"drama", "war", "horror", "science fiction"}, AnyKeywords{"bleak", "somber", "grim", "nihilistic"}},
		},
		{
			Name:    "Hopeful Uplifting",
			Flavors: []model.Flavor{"Hopeful Uplifting"},
			Score:   7,
			When:    []Predicate{AnyGenres{"drama", "family", "romance"}, AnyKeywords{"hopeful", "uplifting", "inspirational"}},
		},
		{
			Name:    "Nostalgic Whimsical",
			Flavors: []model.Flavor{"Nostalgic Whimsical"},
			Score:   7,
			When:    []Predicate{AnyGenres{"family", "animation", "comedy", "drama"}, AnyKeywords{"nostalgic", "whimsical", "storybook"}},
		},
		{
			Name:    "Playful Irreverent",
			Flavors: []model.Flavor{"Playful Irreverent"},
			Score:   7,
			When:    []Predicate{AnyGenres{"comedy", "family"}, AnyKeywords{"playful", "irreverent", "wacky"}},
		},
		{
			Name:    "Cynical Sardonic",
			Flavors: []model.Flavor{"Cynical Sardonic"},
			Score:   7,
			When:    []Predicate{AnyGenres{"comedy", "drama"}, AnyKeywords{"cynical", "sardonic"}},
		},

		// Setting
		{
			Name:    "Space Setting",
			Flavors: []model.Flavor{"Space Setting"},
			Score:   7,
			When:    []Predicate{AnyGenres{"science fiction", "adventure"}, AnySignals{"space"}},
		},
		{
			Name:    "Futuristic City",
			Flavors: []model.Flavor{"Futuristic City"},
			Score:   7,
			When:    []Predicate{AnyGenres{"science fiction"}, AnySignals{"futuristic city"}},
		},
		{
			Name:    "Rural America",
			Flavors: []model.Flavor{"Rural America"},
			Score:   7,
			When:    []Predicate{AnyGenres{"drama", "western", "horror", "crime"}, AnySignals{"rural"}},
		},
		{
			Name:    "Urban Crime",
			Flavors: []model.Flavor{"Urban Crime"},
			Score:   7,
			When:    []Predicate{AnyGenres{"crime"}, AnySignals{"urban"}},
		},
		{
			Name:    "War Zone",
			Flavors: []model.Flavor{"War Zone"},
			Score:   8,
			When:    []Predicate{AnyGenres{"war", "action"}, AnySignals{"war zone"}},
		},
		{
			Name:    "Fantasy World",
			Flavors: []model.Flavor{"Fantasy World"},
			Score:   8,
			When:    []Predicate{AnyGenres{"fantasy", "animation"}, AnySignals{"fantasy world"}},
		},

		// Style
		{
			Name:    "Noir Neo Noir",
			Flavors: []model.Flavor{"Noir Neo Noir"},
			Score:   10,
			When: []Predicate{
				AnyGenres{"crime", "thriller", "mystery", "drama"},
				MustKeywordPattern(`neo-noir|film noir|noir|femme fatale`),
			},
		},
		{
			Name:    "Giallo",
			Flavors: []model.Flavor{"Giallo", "Macabre Disturbing"},
			Score:   10,
			When:    []Predicate{AnyGenres{"horror", "thriller", "mystery"}, AnyKeywords{"giallo"}},
		},
		{
			Name:    "Melodrama",
			Flavors: []model.Flavor{"Melodrama"},
			Score:   8,
			When:    []Predicate{AnyGenres{"drama", "romance"}, AnyKeywords{"melodrama", "tearjerker"}},
		},
		{
			Name:    "Avant Garde Experimental",
			Flavors: []model.Flavor{"Avant Garde Experimental"},
			Score:   8,
			When:    []Predicate{AnyKeywords{"avant-garde", "experimental film", "surrealism", "non-linear narrative"}},
		},
		{
			Name:    "Superhero",
			Flavors: []model.Flavor{"Superhero"},
			Score:   11,
			When: []Predicate{
				AnyGenres{"action", "science fiction", "fantasy", "adventure", "animation"},
				MustKeywordPattern(`superheroe?s?|super ?powers?|based on comic|comic book`),
			},
		},
		{
			Name:    "Disaster Action",
			Flavors: []model.Flavor{"Disaster Action"},
			Score:   10,
			When: []Predicate{
				AnyGenres{"action", "thriller", "science fiction"},
				MustKeywordPattern(`disaster(?: movie)?|earthquake|tsunami|volcano|asteroid|meteor`),
			},
		},
		{
			Name:    "Tense Paranoid",
			Flavors: []model.Flavor{"Tense Paranoid"},
			Score:   7,
			When:    []Predicate{AnyGenres{"thriller"}, AnySignals{"conspiracy", "stalker", "whistleblower"}},
			Unless:  []Predicate{AnyGenres{"comedy"}},
		},
		{
			Name:    "Philosophical Reflective",
			Flavors: []model.Flavor{"Philosophical Reflective"},
			Score:   7,
			When:    []Predicate{AnyGenres{"drama", "science fiction"}, AnyKeywords{"philosophy", "existentialism", "meaning of life"}},
		},
		{
			Name:    "Language Communication",
			Flavors: []model.Flavor{"Language Communication"},
			Score:   8,
			When:    []Predicate{AnyGenres{"drama", "science fiction"}, AnyKeywords{"sign language", "linguistics", "language barrier", "translator"}},
		},
		{
			Name:    "Docudrama",
			Flavors: []model.Flavor{"Docudrama"},
			Score:   9,
			When:    []Predicate{AllGenres{"drama", "history"}, AnySignals{"based on true story", "biopic"}},
		},

		// Horror extras
		{
			Name:    "Possession Exorcism",
			Flavors: []model.Flavor{"Possession Exorcism"},
			Score:   12,
			When:    []Predicate{AnyGenres{"horror"}, AnySignals{"possession", "exorcism", "demon"}},
		},
		{
			Name:    "Folk Horror",
			Flavors: []model.Flavor{"Folk Horror"},
			Score:   11,
			When:    []Predicate{AnyGenres{"horror"}, AnySignals{"folk horror"}},
			Bonus: func(c *Context) int {
				if c.HasSignal("rural") {
					return 2
				}
				return 0
			},
		},
		{
			Name:    "Zombie Apocalypse",
			Flavors: []model.Flavor{"Zombie Horror", "Survival Horror", "Post Apocalyptic"},
			Score:   6,
			When:    []Predicate{AllSignals{"zombie", "post-apocalyptic"}},
			Bonus: func(c *Context) int {
				if c.HasKeyword("zombie apocalypse") {
					return 2
				}
				return 0
			},
		},
		{
			Name:    "Survival Horror",
			Flavors: []model.Flavor{"Survival Horror"},
			Score:   8,
			When:    []Predicate{AnyGenres{"horror"}, AnyKeywords{"survival", "trapped", "outbreak"}},
		},

		// Anime
		{
			Name:    "Mecha Kaiju",
			Flavors: []model.Flavor{"Mecha", "Kaiju"},
			Score:   6,
			When:    []Predicate{AllSignals{"mecha", "kaiju"}},
		},
		{
			Name:    "Shonen",
			Flavors: []model.Flavor{"Shonen"},
			Score:   8,
			When:    []Predicate{AllGenres{"animation", "action"}, AnyKeywords{"anime", "shonen", "shounen"}},
		},
		{
			Name:    "Seinen",
			Flavors: []model.Flavor{"Seinen"},
			Score:   8,
			When:    []Predicate{AnyGenres{"animation"}, AnyKeywords{"seinen"}},
		},
		{
			Name:    "Shojo",
			Flavors: []model.Flavor{"Shojo"},
			Score:   8,
			When:    []Predicate{AnyGenres{"animation"}, AnyKeywords{"shojo", "shoujo"}},
		},
		{
			Name:    "Slice Of Life",
			Flavors: []model.Flavor{"Slice Of Life"},
			Score:   8,
			When:    []Predicate{AnyGenres{"animation", "drama", "comedy"}, AnyKeywords{"slice of life", "everyday life"}},
		},

		// Documentary extras
		{
			Name:    "Nature Documentary",
			Flavors: []model.Flavor{"Nature Documentary"},
			Score:   9,
			When: []Predicate{
				AnyGenres{"documentary"},
				MustKeywordPattern(`nature|wildlife|animals?|ocean life|planet earth`),
			},
		},
		{
			Name:    "Sports Documentary",
			Flavors: []model.Flavor{"Sports Documentary"},
			Score:   9,
			When: []Predicate{
				AnyGenres{"documentary"},
				MustKeywordPattern(`sports?|athletes?|olympics|football|basketball|baseball|boxing`),
			},
		},
		{
			Name:    "Faith Documentary",
			Flavors: []model.Flavor{"Faith Documentary"},
			Score:   8,
			When:    []Predicate{AllGenres{"documentary"}, AnyKeywords{"faith", "religion", "spirituality"}},
		},
		{
			Name:    "Rock Musical",
			Flavors: []model.Flavor{"Rock Musical"},
			Score:   9,
			When:    []Predicate{AnyGenres{"music"}, AnyKeywords{"rock musical", "rock opera", "glam rock"}},
		},
	}
}
