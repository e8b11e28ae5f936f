package signal

import "github.com/Veraticus/the-flavor-must-flow/internal/model"

// Rule assigns one signal to every keyword matching any of its patterns
// or listed verbatim in Exact. Patterns are word-boundary anchored at compile time.
type Rule struct {
	Signal   model.Signal
	Family   string
	Patterns []string
	Exact    []string
}

// HeuristicRule is a coarse token-class rule used only for keywords that no
// primary rule matched.
type HeuristicRule struct {
	Signal  model.Signal
	Pattern string
}

// DefaultRules returns the primary signal rules in evaluation order.
func DefaultRules() []Rule {
	rules := make([]Rule, 0, 200)
	rules = append(rules, horrorRules()...)
	rules = append(rules, scifiRules()...)
	rules = append(rules, crimeActionRules()...)
	rules = append(rules, fantasyRules()...)
	rules = append(rules, thrillerRules()...)
	rules = append(rules, dramaRules()...)
	rules = append(rules, adventureRules()...)
	rules = append(rules, documentaryRules()...)
	rules = append(rules, romanceComedyRules()...)
	rules = append(rules, musicRules()...)
	rules = append(rules, mysteryRules()...)
	rules = append(rules, settingRules()...)
	return rules
}

func horrorRules() []Rule {
	return []Rule{
		{Family: "horror", Signal: "vampire", Patterns: []string{`vampir(?:e|ic|ism|es)`}},
		{Family: "horror", Signal: "werewolf", Patterns: []string{`werewolf|lycan(?:thrope|thropy)`}},
		{Family: "horror", Signal: "zombie", Patterns: []string{`zombies?|undead|walker`}, Exact: []string{"the walking dead"}},
		{Family: "horror", Signal: "haunted house", Patterns: []string{`haunted house|haunted hotel|haunted (?:mansion|manor)`}},
		{Family: "horror", Signal: "ghost", Patterns: []string{`ghosts?|poltergeist|specter|spirit`}},
		{Family: "horror", Signal: "possession", Patterns: []string{`possession|possessed`}},
		{Family: "horror", Signal: "exorcism", Patterns: []string{`exorcis(?:m|t|ts)`}},
		{Family: "horror", Signal: "witch", Patterns: []string{`witch(?:es)?`}},
		{Family: "horror", Signal: "witchcraft", Patterns: []string{`witchcraft|coven`}},
		{Family: "horror", Signal: "demon", Patterns: []string{`demons?|demonic|hellspawn|devil worship`}},
		{Family: "horror", Signal: "monster", Patterns: []string{`monsters?|creature|beast|abomination`}},
		{Family: "horror", Signal: "slasher", Patterns: []string{`slasher|mask(?:ed)? killer|final girl`}},
		{Family: "horror", Signal: "serial killer", Patterns: []string{`serial killer|serial-killer|profil(?:e|ing)`}},
		{Family: "horror", Signal: "found footage", Patterns: []string{`found footage|camcorder|handheld tape`}},
		{Family: "horror", Signal: "occult", Patterns: []string{`occult|arcana|ritual|summoning`}},
		{Family: "horror", Signal: "satanic", Patterns: []string{`satanic|satanism`}},
		{Family: "horror", Signal: "curse", Patterns: []string{`curse|cursed`}},
		{Family: "horror", Signal: "final girl", Patterns: []string{`final girl`}},
		{Family: "horror", Signal: "body horror", Patterns: []string{`body horror|mutation|gore|parasit(?:e|ic)`}},
		{Family: "horror", Signal: "mutation", Patterns: []string{`mutations?|mutants?|mutated`}},
		{Family: "horror", Signal: "folk horror", Patterns: []string{`folk horror|pagan rite|harvest ritual`}},
	}
}

func scifiRules() []Rule {
	return []Rule{
		{Family: "scifi", Signal: "cyberpunk", Patterns: []string{`cyberpunk|neon city|megacorp`}},
		{Family: "scifi", Signal: "time travel", Patterns: []string{`time travel|temporal (?:loop|paradox)|timeline`}},
		{Family: "scifi", Signal: "time loop", Patterns: []string{`time loop|groundhog day`}},
		{Family: "scifi", Signal: "parallel universe", Patterns: []string{`parallel universe|alternate timeline`}},
		{Family: "scifi", Signal: "multiverse", Patterns: []string{`multiverse`}},
		{Family: "scifi", Signal: "space opera", Patterns: []string{`space opera|galactic war|hyperspace`}},
		{Family: "scifi", Signal: "spaceship", Patterns: []string{`spaceship|starship|spacecraft`}},
		{Family: "scifi", Signal: "alien invasion", Patterns: []string{`alien invasion|first contact|mothership`}},
		{Family: "scifi", Signal: "robot", Patterns: []string{`robots?|automat(?:a|on)`}},
		{Family: "scifi", Signal: "android", Patterns: []string{`android|replicant`}},
		{Family: "scifi", Signal: "cyborg", Patterns: []string{`cyborg`}},
		{Family: "scifi", Signal: "artificial intelligence", Patterns: []string{`artificial intelligence|sentient ai|supercomputer|ai rebellion`}, Exact: []string{"skynet", "hal 9000"}},
		{Family: "scifi", Signal: "clone", Patterns: []string{`clone|cloning`}},
		{Family: "scifi", Signal: "kaiju", Patterns: []string{`kaiju|giant monster`}},
		{Family: "scifi", Signal: "dystopia", Patterns: []string{`dystopia|dystopian|police state|surveillance state`}},
		{Family: "scifi", Signal: "post-apocalyptic", Patterns: []string{`post[- ]?apocalyptic|wasteland|nuclear winter`}},
		{Family: "scifi", Signal: "black hole", Patterns: []string{`black hole`}},
		{Family: "scifi", Signal: "wormhole", Patterns: []string{`wormhole`}},
		{Family: "scifi", Signal: "hyperspace", Patterns: []string{`hyperspace`}},
		{Family: "scifi", Signal: "mecha", Patterns: []string{`mecha|giant robot suit|pilot suit`}},
		{Family: "scifi", Signal: "steampunk", Patterns: []string{`steampunk|clockwork`}},
		{Family: "scifi", Signal: "virtual reality", Patterns: []string{`virtual reality|vr|simulated world|metaverse`}},
	}
}

func crimeActionRules() []Rule {
	return []Rule{
		{Family: "crime_action", Signal: "heist", Patterns: []string{`heist|vault job|bank job`}},
		{Family: "crime_action", Signal: "robbery", Patterns: []string{`robbery|armed robbery|bank robber`}},
		{Family: "crime_action", Signal: "mafia", Patterns: []string{`mafia|capo|cosa nostra`}},
		{Family: "crime_action", Signal: "gangster", Patterns: []string{`gangsters?|gangland`}},
		{Family: "crime_action", Signal: "yakuza", Patterns: []string{`yakuza`}},
		{Family: "crime_action", Signal: "triad", Patterns: []string{`triad`}},
		{Family: "crime_action", Signal: "cartel", Patterns: []string{`cartel`}},
		{Family: "crime_action", Signal: "hitman", Patterns: []string{`hitman|hit man|contract killer`}},
		{Family: "crime_action", Signal: "assassin", Patterns: []string{`assassins?|assassination`}},
		{Family: "crime_action", Signal: "vigilante", Patterns: []string{`vigilante|vigilantism|takes the law`}},
		{Family: "crime_action", Signal: "undercover", Patterns: []string{`undercover|deep cover`}},
		{Family: "crime_action", Signal: "cia", Patterns: []string{`cia`}},
		{Family: "crime_action", Signal: "mi6", Patterns: []string{`mi6`}},
		{Family: "crime_action", Signal: "spy", Patterns: []string{`spy|spies|spymaster|dead drop|handler`}},
		{Family: "crime_action", Signal: "espionage", Patterns: []string{`espionage`}},
		{Family: "crime_action", Signal: "hostage", Patterns: []string{`hostage|hostage rescue`}},
		{Family: "crime_action", Signal: "car chase", Patterns: []string{`car chase|street race|pursuit`}},
		{Family: "crime_action", Signal: "gun fu", Patterns: []string{`gun fu|gun kata|balletic violence|double pistols`}},
		{Family: "crime_action", Signal: "police", Patterns: []string{`police|precinct|patrol|beat cop`}},
		{Family: "crime_action", Signal: "homicide", Patterns: []string{`homicide|major crimes`}},
		{Family: "crime_action", Signal: "forensics", Patterns: []string{`forensics?|lab tech`}},
		{Family: "crime_action", Signal: "interrogation", Patterns: []string{`interrogation|interrogation room`}},
		{Family: "crime_action", Signal: "bounty hunter", Patterns: []string{`bounty hunter`}},
		{Family: "crime_action", Signal: "stunt driver", Patterns: []string{`stunt driver|wheelman|getaway driver`}},
		{Family: "crime_action", Signal: "one-man army", Patterns: []string{`one[- ]?man army|single operative|lone wolf`}},
	}
}

func fantasyRules() []Rule {
	return []Rule{
		{Family: "fantasy", Signal: "wizard", Patterns: []string{`wizards?|warlock|mage|magus`}},
		{Family: "fantasy", Signal: "sorcerer", Patterns: []string{`sorcerer|sorceress`}},
		{Family: "fantasy", Signal: "dragon", Patterns: []string{`dragons?|wyrm`}},
		{Family: "fantasy", Signal: "elf", Patterns: []string{`elf|elves|elven`}},
		{Family: "fantasy", Signal: "dwarf", Patterns: []string{`dwarf|dwarves|dwarven`}},
		{Family: "fantasy", Signal: "orc", Patterns: []string{`orcs?`}},
		{Family: "fantasy", Signal: "prophecy", Patterns: []string{`prophecy|prophetic`}},
		{Family: "fantasy", Signal: "chosen one", Patterns: []string{`chosen one`}},
		{Family: "fantasy", Signal: "magic", Patterns: []string{`magic|magical|sorcery|wizardry`}},
		{Family: "fantasy", Signal: "spell", Patterns: []string{`spell|incantation`}},
		{Family: "fantasy", Signal: "mythology", Patterns: []string{`mythology|mythic|pantheon|deity`}},
		{Family: "fantasy", Signal: "pantheon", Patterns: []string{`pantheon`}},
		{Family: "fantasy", Signal: "sword", Patterns: []string{`swords?|blade|katana`}},
		{Family: "fantasy", Signal: "barbarian", Patterns: []string{`barbarian`}},
		{Family: "fantasy", Signal: "fae", Patterns: []string{`fae`}},
		{Family: "fantasy", Signal: "faerie", Patterns: []string{`faerie|fairy|fairies`}},
		{Family: "fantasy", Signal: "goblin", Patterns: []string{`goblins?`}},
		{Family: "fantasy", Signal: "wuxia", Patterns: []string{`wuxia|jianghu`}},
		{Family: "fantasy", Signal: "samurai", Patterns: []string{`samurai|ronin|bushido|shogun`}},
		{Family: "fantasy", Signal: "sword & sandal", Patterns: []string{`sword (?:&|and) sandal|gladiators?|colosseum|arena combat|legion|centurion`}},
		{Family: "fantasy", Signal: "sword & sorcery", Patterns: []string{`sword (?:&|and) sorcery`}},
	}
}

func thrillerRules() []Rule {
	return []Rule{
		{Family: "thriller", Signal: "conspiracy", Patterns: []string{`conspiracy|cover-up|coverup`}},
		{Family: "thriller", Signal: "cover-up", Patterns: []string{`cover-up|coverup`}},
		{Family: "thriller", Signal: "whistleblower", Patterns: []string{`whistleblower`}},
		{Family: "thriller", Signal: "amnesia", Patterns: []string{`amnesia|amnesiac`}},
		{Family: "thriller", Signal: "gaslighting", Patterns: []string{`gaslighting|gaslight`}},
		{Family: "thriller", Signal: "identity", Patterns: []string{`identity|double life`}},
		{Family: "thriller", Signal: "stalker", Patterns: []string{`stalker|stalking`}},
		{Family: "thriller", Signal: "ticking clock", Patterns: []string{`ticking clock|race against time`}},
		{Family: "thriller", Signal: "siege", Patterns: []string{`siege|barricade`}},
		{Family: "thriller", Signal: "bomb", Patterns: []string{`bomb|time bomb|explosive device`}},
		{Family: "thriller", Signal: "ransom", Patterns: []string{`ransom|ransom note|ransomware`}},
		{Family: "thriller", Signal: "kidnapping", Patterns: []string{`kidnap|kidnapping|abduction`}},
		{Family: "thriller", Signal: "erotic", Patterns: []string{`erotic|seduction|fatal attraction`}},
	}
}

func dramaRules() []Rule {
	return []Rule{
		{Family: "drama_themes", Signal: "biopic", Patterns: []string{`biopic|biographical film|biography`}},
		{Family: "drama_themes", Signal: "biography", Patterns: []string{`biography|biographical|memoir|life story`}},
		{Family: "drama_themes", Signal: "based on true story", Patterns: []string{`based on (?:a )?true story|true story`}},
		{Family: "drama_themes", Signal: "courtroom", Patterns: []string{`courtroom|trial|jury|prosecution|defense attorney`}},
		{Family: "drama_themes", Signal: "ptsd", Patterns: []string{`ptsd|shell shock`}},
		{Family: "drama_themes", Signal: "addiction", Patterns: []string{`addiction|alcoholism|self-destruction|drug addict`}},
		{Family: "drama_themes", Signal: "grief", Patterns: []string{`grief|mourning|widow|widower|bereaved`}},
		{Family: "drama_themes", Signal: "workplace", Patterns: []string{`workplace|office politics|downsizing|promotion`}},
		{Family: "drama_themes", Signal: "coming-of-age", Patterns: []string{`coming[- ]of[- ]age|rite of passage`}},
		{Family: "drama_themes", Signal: "financial crisis", Patterns: []string{`financial crisis|stock market crash|short squeeze|wall street`}},
		{Family: "drama_themes", Signal: "prison", Patterns: []string{`prison|incarceration|parole|warden`}},
		{Family: "drama_themes", Signal: "political scandal", Patterns: []string{`scandal|corruption|lobbyist`}},
	}
}

func adventureRules() []Rule {
	return []Rule{
		{Family: "adventure", Signal: "treasure map", Patterns: []string{`treasure map`}},
		{Family: "adventure", Signal: "lost city", Patterns: []string{`lost city|el dorado|atlantis`}},
		{Family: "adventure", Signal: "expedition", Patterns: []string{`expedition|explor(?:er|ation)`}},
		{Family: "adventure", Signal: "jungle", Patterns: []string{`jungle|rainforest`}},
		{Family: "adventure", Signal: "desert", Patterns: []string{`desert|oasis|dune|caravan`}},
		{Family: "adventure", Signal: "mountain", Patterns: []string{`mountains?|summit|alpine|avalanche`}},
		{Family: "adventure", Signal: "pirate", Patterns: []string{`pirates?|buccaneer|privateer`}},
		{Family: "adventure", Signal: "sea voyage", Patterns: []string{`sea voyage|voyage at sea|ocean crossing`}},
		{Family: "adventure", Signal: "mutiny", Patterns: []string{`mutiny`}},
		{Family: "adventure", Signal: "artifact", Patterns: []string{`artifact|relic`}},
		{Family: "adventure", Signal: "road trip", Patterns: []string{`road trip|road movie|cross[- ]country`}},
		{Family: "adventure", Signal: "quest", Patterns: []string{`quest|chosen one|prophecy`}},
		{Family: "adventure", Signal: "globe-trotting", Patterns: []string{`globe[- ]trott(?:er|ing)`}},
		{Family: "adventure", Signal: "swashbuckler", Patterns: []string{`swashbuckler|rapier duel`}},
	}
}

func documentaryRules() []Rule {
	return []Rule{
		{Family: "documentary", Signal: "true crime", Patterns: []string{`true crime|crime documentary`}},
		{Family: "documentary", Signal: "interview", Patterns: []string{`interviews?|sit-down interview|talking heads`}},
		{Family: "documentary", Signal: "archival footage", Patterns: []string{`archival footage|archive footage`}},
		{Family: "documentary", Signal: "docuseries", Patterns: []string{`docuseries`}},
		{Family: "documentary", Signal: "investigation", Patterns: []string{`investigation|investigative report|investigative journalism`}},
		{Family: "documentary", Signal: "narration", Patterns: []string{`narration|voice-over|voiceover`}},
		{Family: "documentary", Signal: "oral history", Patterns: []string{`oral history`}},
	}
}

func romanceComedyRules() []Rule {
	return []Rule{
		{Family: "romance_comedy", Signal: "meet-cute", Patterns: []string{`meet[- ]cute`}},
		{Family: "romance_comedy", Signal: "enemies to lovers", Patterns: []string{`enemies to lovers`}},
		{Family: "romance_comedy", Signal: "fake dating", Patterns: []string{`fake dating|pretend dating|fake relationship`}},
		{Family: "romance_comedy", Signal: "friends to lovers", Patterns: []string{`friends to lovers`}},
		{Family: "romance_comedy", Signal: "holiday romance", Patterns: []string{`holiday romance|christmas romance|seasonal romance`}},
		{Family: "romance_comedy", Signal: "steamy", Patterns: []string{`steamy|spicy`}},
		{Family: "romance_comedy", Signal: "teen romance", Patterns: []string{`teen romance|high school romance`}},
		{Family: "romance_comedy", Signal: "rom-com", Patterns: []string{`rom[- ]?com|romantic comedy`}},
		{Family: "romance_comedy", Signal: "screwball", Patterns: []string{`screwball`}},
		{Family: "romance_comedy", Signal: "parody", Patterns: []string{`parody|spoof`}},
		{Family: "romance_comedy", Signal: "spoof", Patterns: []string{`spoof`}},
		{Family: "romance_comedy", Signal: "mockumentary", Patterns: []string{`mockumentary|fake documentary`}},
		{Family: "romance_comedy", Signal: "satire", Patterns: []string{`satire|satirical`}},
		{Family: "romance_comedy", Signal: "farce", Patterns: []string{`farce|bedroom farce|doors slamming`}},
		{Family: "romance_comedy", Signal: "raunchy", Patterns: []string{`raunchy|gross-out|sex comedy`}},
		{Family: "romance_comedy", Signal: "stoner", Patterns: []string{`stoner|weed comedy|cannabis`}},
		{Family: "romance_comedy", Signal: "sketch", Patterns: []string{`sketch comedy|sketches`}},
		{Family: "romance_comedy", Signal: "stand-up", Patterns: []string{`stand[- ]?up comedy|stand[- ]?up comedian`}},
		{Family: "romance_comedy", Signal: "buddy comedy", Patterns: []string{`buddy comedy`}},
		{Family: "romance_comedy", Signal: "buddy cop", Patterns: []string{`buddy cop`}},
		{Family: "romance_comedy", Signal: "quirky", Patterns: []string{`quirky|offbeat|deadpan`}},
		{Family: "romance_comedy", Signal: "high-concept", Patterns: []string{`high[- ]concept`}},
	}
}

func musicRules() []Rule {
	return []Rule{
		{Family: "music_musical", Signal: "musical", Patterns: []string{`musical|song[- ]and[- ]dance|show tune`}},
		{Family: "music_musical", Signal: "jukebox musical", Patterns: []string{`jukebox musical|catalog songs`}},
		{Family: "music_musical", Signal: "studio session", Patterns: []string{`studio session|recording studio`}},
		{Family: "music_musical", Signal: "tour", Patterns: []string{`tour|world tour|concert tour`}},
		{Family: "music_musical", Signal: "concert", Patterns: []string{`concert|live performance`}},
		{Family: "music_musical", Signal: "audition", Patterns: []string{`auditions?`}},
		{Family: "music_musical", Signal: "composer", Patterns: []string{`composer|composition`}},
	}
}

func mysteryRules() []Rule {
	return []Rule{
		{Family: "mystery_detective", Signal: "whodunnit", Patterns: []string{`whodunn?it|who dunnit|who done it`}},
		{Family: "mystery_detective", Signal: "closed circle", Patterns: []string{`closed circle`}},
		{Family: "mystery_detective", Signal: "country manor", Patterns: []string{`country manor|country house`}},
		{Family: "mystery_detective", Signal: "cozy mystery", Patterns: []string{`cozy mystery`}},
		{Family: "mystery_detective", Signal: "amateur sleuth", Patterns: []string{`amateur sleuth|amateur detective`}},
		{Family: "mystery_detective", Signal: "private eye", Patterns: []string{`private eye|private investigator|private detective`}},
		{Family: "mystery_detective", Signal: "gumshoe", Patterns: []string{`gumshoe`}},
		{Family: "mystery_detective", Signal: "hard-boiled", Patterns: []string{`hard[- ]boiled`}},
	}
}

func settingRules() []Rule {
	return []Rule{
		{Family: "setting_tokens", Signal: "space", Patterns: []string{`space|outer space`, `spaceship|starship|spacecraft`}},
		{Family: "setting_tokens", Signal: "sea", Patterns: []string{`sea|ocean|naval|pirates?|privateer`}},
		{Family: "setting_tokens", Signal: "rural", Patterns: []string{`rural|countryside|farm town|small town`}},
		{Family: "setting_tokens", Signal: "urban", Patterns: []string{`urban|inner city|downtown`}},
		{Family: "setting_tokens", Signal: "ancient world", Patterns: []string{`ancient world|ancient rome|ancient greece|pharaoh|sparta|pyramids`}},
		{Family: "setting_tokens", Signal: "futuristic city", Patterns: []string{`futuristic city|arcology|neon city`}},
		{Family: "setting_tokens", Signal: "war zone", Patterns: []string{`war zone|front line|occupied city`}},
		{Family: "setting_tokens", Signal: "fantasy world", Patterns: []string{`fantasy world|fae realm|otherworldly kingdom`}},
	}
}

// DefaultHeuristics returns the coarse catch-all rules applied to otherwise unmatched keywords.
// Their signals only raise coverage; no flavor rule depends on them.
func DefaultHeuristics() []HeuristicRule {
	return []HeuristicRule{
		{Signal: "firepower", Pattern: `guns?|gunfight|gunfire|rifles?|pistols?|shotgun|revolver|machine gun|sniper`},
		{Signal: "vehicle", Pattern: `cars?|trucks?|motorcycles?|trains?|airplanes?|helicopters?|boats?|bus`},
		{Signal: "animal", Pattern: `animals?|dogs?|cats?|horses?|birds?|wolf|wolves|bears?|sharks?|lions?`},
		{Signal: "holiday", Pattern: `christmas|halloween|thanksgiving|new year's eve|easter`},
		{Signal: "sport", Pattern: `football|baseball|basketball|boxing|soccer|hockey|wrestling|olympics`},
		{Signal: "school", Pattern: `school|college|university|teacher|students?`},
		{Signal: "family ties", Pattern: `father|mother|daughter|son|brother|sister|twins|parenting`},
		{Signal: "food", Pattern: `food|cooking|chef|restaurant|baking`},
		{Signal: "instrument", Pattern: `guitar|piano|violin|drums|band`},
		{Signal: "weather", Pattern: `storm|hurricane|tornado|blizzard|snow|rain`},
	}
}

// stopwords are folded corpus names too generic to carry a signal.
//
//nolint:gochecknoglobals // Static lookup table
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"new york": {}, "los angeles": {}, "london": {}, "paris": {}, "tokyo": {}, "berlin": {}, "rome": {},
	"washington": {}, "california": {}, "texas": {}, "florida": {}, "ohio": {}, "toronto": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {}, "friday": {}, "saturday": {}, "sunday": {},
	"red": {}, "blue": {}, "green": {}, "yellow": {}, "black": {}, "white": {},
	"man": {}, "woman": {}, "boy": {}, "girl": {}, "people": {}, "person": {},
}
