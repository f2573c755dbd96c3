package domain

// SeedGames catalog loaded into an empty games table
var SeedGames = []Game{
	{ID: "elden-ring", Name: "Elden Ring", Image: "/images/games/elden-ring.jpg", Genre: "RPG", ActiveServers: 1240, OnlinePlayers: 182000, Trending: true, PopularChannels: []string{"general", "builds", "co-op"}},
	{ID: "valorant", Name: "Valorant", Image: "/images/games/valorant.jpg", Genre: "FPS", ActiveServers: 3100, OnlinePlayers: 540000, Trending: true, PopularChannels: []string{"general", "ranked", "lfg"}},
	{ID: "league-of-legends", Name: "League of Legends", Image: "/images/games/league-of-legends.jpg", Genre: "MOBA", ActiveServers: 5200, OnlinePlayers: 1100000, Trending: true, PopularChannels: []string{"general", "champions", "esports"}},
	{ID: "world-of-warcraft", Name: "World of Warcraft", Image: "/images/games/world-of-warcraft.jpg", Genre: "MMO", ActiveServers: 860, OnlinePlayers: 240000, PopularChannels: []string{"general", "raids", "guilds"}},
	{ID: "fortnite", Name: "Fortnite", Image: "/images/games/fortnite.jpg", Genre: "Battle Royale", ActiveServers: 4100, OnlinePlayers: 870000, Trending: true, PopularChannels: []string{"general", "creative", "squads"}},
	{ID: "minecraft", Name: "Minecraft", Image: "/images/games/minecraft.jpg", Genre: "Sandbox", ActiveServers: 9800, OnlinePlayers: 620000, PopularChannels: []string{"general", "redstone", "servers"}},
	{ID: "civilization-vi", Name: "Civilization VI", Image: "/images/games/civilization-vi.jpg", Genre: "Strategy", ActiveServers: 310, OnlinePlayers: 41000, PopularChannels: []string{"general", "multiplayer", "mods"}},
	{ID: "ea-sports-fc", Name: "EA Sports FC", Image: "/images/games/ea-sports-fc.jpg", Genre: "Sports", ActiveServers: 1500, OnlinePlayers: 210000, PopularChannels: []string{"general", "ultimate-team"}},
	{ID: "forza-horizon-5", Name: "Forza Horizon 5", Image: "/images/games/forza-horizon-5.jpg", Genre: "Racing", ActiveServers: 640, OnlinePlayers: 76000, PopularChannels: []string{"general", "tunes", "convoys"}},
	{ID: "counter-strike-2", Name: "Counter-Strike 2", Image: "/images/games/counter-strike-2.jpg", Genre: "FPS", ActiveServers: 4700, OnlinePlayers: 910000, Trending: true, PopularChannels: []string{"general", "competitive", "skins"}},
	{ID: "baldurs-gate-3", Name: "Baldur's Gate 3", Image: "/images/games/baldurs-gate-3.jpg", Genre: "RPG", ActiveServers: 420, OnlinePlayers: 88000, PopularChannels: []string{"general", "builds", "lore"}},
	{ID: "dota-2", Name: "Dota 2", Image: "/images/games/dota-2.jpg", Genre: "MOBA", ActiveServers: 2900, OnlinePlayers: 450000, PopularChannels: []string{"general", "heroes", "esports"}},
}
