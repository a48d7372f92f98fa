package puzzles

import "duel-service/domain"

const (
	easy   = domain.DifficultyEasy
	medium = domain.DifficultyMedium
	hard   = domain.DifficultyHard
)

var catalog = []Entry{
	{Symbols: "🎵 + 🏠", Answer: "music house", Alternatives: []string{"house music"}, Difficulty: easy},
	{Symbols: "☀️ + 🌊", Answer: "sun water", Alternatives: []string{"solar water"}, Difficulty: easy},
	{Symbols: "🚗 + 🏠", Answer: "car house", Alternatives: []string{"garage"}, Difficulty: easy},
	{Symbols: "🍕📦", Answer: "pizza box", Difficulty: easy},
	{Symbols: "🐱🐶", Answer: "cat dog", Alternatives: []string{"pets"}, Difficulty: easy},
	{Symbols: "🍔🍟", Answer: "burger fries", Alternatives: []string{"fast food"}, Difficulty: easy},
	{Symbols: "☕🍰", Answer: "coffee cake", Alternatives: []string{"coffee and cake"}, Difficulty: easy},
	{Symbols: "🎨🖌️", Answer: "paint brush", Alternatives: []string{"painting"}, Difficulty: easy},
	{Symbols: "🌍🇫🇷", Answer: "france", Alternatives: []string{"french", "paris"}, Difficulty: easy},
	{Symbols: "🌍🇯🇵", Answer: "japan", Alternatives: []string{"japanese", "tokyo"}, Difficulty: easy},

	{Symbols: "🐸👑", Answer: "frog prince", Alternatives: []string{"prince frog"}, Difficulty: medium},
	{Symbols: "🦁👑", Answer: "lion king", Alternatives: []string{"king lion"}, Difficulty: medium},
	{Symbols: "🐻🍯", Answer: "bear honey", Alternatives: []string{"honey bear"}, Difficulty: medium},
	{Symbols: "🌙👨‍🚀", Answer: "moon walker", Alternatives: []string{"astronaut"}, Difficulty: medium},
	{Symbols: "🏠🔥", Answer: "house fire", Alternatives: []string{"burning house"}, Difficulty: medium},
	{Symbols: "🎵🎼", Answer: "sheet music", Alternatives: []string{"music sheet", "notation"}, Difficulty: medium},
	{Symbols: "🌍🇬🇧", Answer: "united kingdom", Alternatives: []string{"uk", "britain", "england"}, Difficulty: medium},
	{Symbols: "🔴🟡🔵", Answer: "primary colors", Alternatives: []string{"red yellow blue", "rgb"}, Difficulty: medium},
	{Symbols: "⚔️🛡️", Answer: "warrior knight", Alternatives: []string{"knight warrior", "battle"}, Difficulty: medium},

	{Symbols: "🏛️🏺", Answer: "ancient greece", Alternatives: []string{"greek history", "athens"}, Difficulty: hard},
	{Symbols: "🏛️🦅", Answer: "ancient rome", Alternatives: []string{"roman empire", "rome"}, Difficulty: hard},
	{Symbols: "👑🏰", Answer: "medieval castle", Alternatives: []string{"knights"}, Difficulty: hard},
	{Symbols: "🍓🍰", Answer: "strawberry shortcake", Alternatives: []string{"strawberry cake", "berry cake"}, Difficulty: hard},
	{Symbols: "📜✍️", Answer: "ancient writing", Alternatives: []string{"historical document", "manuscript"}, Difficulty: hard},
	{Symbols: "🌋🏔️", Answer: "volcano mountain", Alternatives: []string{"volcanic peak", "eruption"}, Difficulty: hard},
	{Symbols: "⚡🌩️", Answer: "lightning thunder", Alternatives: []string{"thunder lightning", "storm"}, Difficulty: hard},
}
