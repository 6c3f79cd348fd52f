// Package analysis derives a categorical playstyle profile from raw player statistics.
package analysis

import (
	"strings"

	"clash-deck-builder/internal/clash"
)

const (
	PlaystyleAggressive = "aggressive"
	PlaystyleControl    = "control"
	PlaystyleBalanced   = "balanced"

	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
	SkillExpert       = "expert"
)

// challengeMaxTracked is the most challenge wins the stats API tracks.
const challengeMaxTracked = 12

const masteryPrefix = "Mastery"

// masteryArchetypes is checked in order; a badge above masteryLevelThreshold
// adds its archetype label.
var masteryArchetypes = []struct {
	badge     string
	archetype string
}{
	{badge: "MasteryLavaHound", archetype: "LavaLoon"},
	{badge: "MasteryMiner", archetype: "Miner Control"},
	{badge: "MasteryTombstone", archetype: "Graveyard"},
}

const masteryLevelThreshold = 5

type PlayerAnalysis struct {
	Playstyle           string   `json:"playstyle"`
	SkillLevel          string   `json:"skill_level"`
	PreferredArchetypes []string `json:"preferred_archetypes"`
	StrengthAreas       []string `json:"strength_areas"`
	WeaknessAreas       []string `json:"weakness_areas"`
}

// Ratios are the derived percentages the classification is based on.
// A zero denominator yields 0.
type Ratios struct {
	WinRate          float64 `json:"win_rate"`
	ThreeCrownRate   float64 `json:"three_crown_rate"`
	ChallengeWinRate float64 `json:"challenge_win_rate"`
}

func ComputeRatios(stats clash.PlayerStats) Ratios {
	return Ratios{
		WinRate:          percent(stats.Wins, stats.Wins+stats.Losses),
		ThreeCrownRate:   percent(stats.ThreeCrownWins, stats.Wins),
		ChallengeWinRate: float64(stats.ChallengeMaxWins) / challengeMaxTracked,
	}
}

// Analyze never fails and has no side effects.
func Analyze(stats clash.PlayerStats) PlayerAnalysis {
	r := ComputeRatios(stats)
	return PlayerAnalysis{
		Playstyle:           classifyPlaystyle(r),
		SkillLevel:          classifySkill(stats.Trophies),
		PreferredArchetypes: archetypes(stats.Badges),
		StrengthAreas:       strengths(stats, r),
		WeaknessAreas:       weaknesses(r),
	}
}

func percent(num, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom) * 100
}

func classifySkill(trophies int) string {
	switch {
	case trophies > 7000:
		return SkillExpert
	case trophies > 6000:
		return SkillAdvanced
	case trophies < 4000:
		return SkillBeginner
	default:
		return SkillIntermediate
	}
}

func classifyPlaystyle(r Ratios) string {
	switch {
	case r.ThreeCrownRate > 40:
		return PlaystyleAggressive
	case r.WinRate > 55 && r.ThreeCrownRate < 30:
		return PlaystyleControl
	default:
		return PlaystyleBalanced
	}
}

func archetypes(badges []clash.Badge) []string {
	mastery := make([]clash.Badge, 0, len(badges))
	for _, b := range badges {
		if strings.HasPrefix(b.Name, masteryPrefix) {
			mastery = append(mastery, b)
		}
	}
	out := []string{}
	for _, m := range masteryArchetypes {
		for _, b := range mastery {
			if b.Name == m.badge && b.Level > masteryLevelThreshold {
				out = append(out, m.archetype)
				break
			}
		}
	}
	return out
}

func strengths(stats clash.PlayerStats, r Ratios) []string {
	out := []string{}
	if stats.ChallengeMaxWins >= 15 {
		out = append(out, "tournament")
	}
	if r.WinRate > 55 {
		out = append(out, "ladder")
	}
	if r.ThreeCrownRate > 40 {
		out = append(out, "beatdown")
	}
	if stats.WarDayWins > 200 {
		out = append(out, "war")
	}
	return out
}

func weaknesses(r Ratios) []string {
	out := []string{}
	if r.ChallengeWinRate < 0.5 {
		out = append(out, "challenges")
	}
	if r.WinRate < 50 {
		out = append(out, "consistency")
	}
	if r.ThreeCrownRate < 20 {
		out = append(out, "closing games")
	}
	return out
}
