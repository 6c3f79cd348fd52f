package prompt

import (
	"fmt"
	"strings"

	"clash-deck-builder/internal/analysis"
	"clash-deck-builder/internal/clash"
)

// System is the system message paired with Build for one deck style.
func System(style string) string {
	return fmt.Sprintf("You are a Clash Royale expert deck builder. Provide %s deck recommendations.", style)
}

// Build renders the user prompt for one deck style. The card list is the full
// catalog; an empty catalog still yields a well-formed prompt.
func Build(a analysis.PlayerAnalysis, catalog []clash.Card, style string) string {
	names := make([]string, 0, len(catalog))
	for _, c := range catalog {
		names = append(names, c.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "As a Clash Royale expert, generate a %s deck based on this player profile:\n\n", style)
	b.WriteString("Player Analysis:\n")
	fmt.Fprintf(&b, "- Playstyle: %s\n", a.Playstyle)
	fmt.Fprintf(&b, "- Skill Level: %s\n", a.SkillLevel)
	fmt.Fprintf(&b, "- Preferred Archetypes: %s\n", strings.Join(a.PreferredArchetypes, ", "))
	fmt.Fprintf(&b, "- Strengths: %s\n", strings.Join(a.StrengthAreas, ", "))
	fmt.Fprintf(&b, "- Weaknesses: %s\n\n", strings.Join(a.WeaknessAreas, ", "))
	b.WriteString("Rules for deck building:\n")
	for i, rule := range rules(style) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}
	b.WriteString("\nAvailable cards:\n")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString("\n")
	return b.String()
}

func rules(style string) []string {
	return []string{
		"Include at least 1 win condition",
		"Include at least 2 spells (one small, one big)",
		"Include at least 1 building",
		"Average elixir cost should be between 3.5-4.3",
		"Must have cards that synergize well together",
		"Consider player's skill level",
		fmt.Sprintf("Optimize for %s playstyle", style),
		"Response format: Return only the card names separated by commas",
	}
}
