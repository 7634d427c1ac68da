package formatter

import (
	"github.com/yildizm/go-termfmt"
	"github.com/yildizm/heroboard/internal/emoji"
	"github.com/yildizm/heroboard/internal/hero"
)

// symbol returns the emoji for key unless the formatter or the global setting turned emoji off
func symbol(key string, opts *termfmt.TerminalOptions) string {
	return emoji.Symbol(key, opts.Emoji && !emoji.IsEmojiDisabled())
}

// abilityLabel prefixes an ability with its emoji when one is mapped and emoji are on
func abilityLabel(name string, opts *termfmt.TerminalOptions) string {
	if !emoji.Has(name) || !opts.Emoji || emoji.IsEmojiDisabled() {
		return name
	}
	return symbol(name, opts) + " " + name
}

// createAbilityBar renders points as a share of the hero's total using go-termfmt
func createAbilityBar(points int, p hero.Profile, opts *termfmt.TerminalOptions) string {
	total := p.Total()
	share := 0.0
	if total > 0 {
		share = float64(points) / float64(total)
	}
	return termfmt.CreateConfidenceBar(share, opts)
}
