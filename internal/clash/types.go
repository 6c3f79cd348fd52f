package clash

// Badge is a player achievement badge. Mastery badges carry a card name
// after the "Mastery" prefix, e.g. MasteryMiner.
type Badge struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"maxLevel,omitempty"`
	Progress int    `json:"progress,omitempty"`
}

type Arena struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PlayerStats is one snapshot of a player record from the stats API.
type PlayerStats struct {
	Tag               string  `json:"tag"`
	Name              string  `json:"name"`
	ExpLevel          int     `json:"expLevel"`
	Trophies          int     `json:"trophies"`
	BestTrophies      int     `json:"bestTrophies"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	BattleCount       int     `json:"battleCount"`
	ThreeCrownWins    int     `json:"threeCrownWins"`
	ChallengeMaxWins  int     `json:"challengeMaxWins"`
	ChallengeCardsWon int     `json:"challengeCardsWon"`
	WarDayWins        int     `json:"warDayWins"`
	TotalDonations    int     `json:"totalDonations"`
	Arena             Arena   `json:"arena"`
	Badges            []Badge `json:"badges"`
}

type IconURLs struct {
	Medium string `json:"medium"`
}

// Card is a catalog entry. Names are unique ignoring case.
type Card struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	ElixirCost int      `json:"elixirCost"`
	Rarity     string   `json:"rarity"`
	IconURLs   IconURLs `json:"iconUrls"`
}
