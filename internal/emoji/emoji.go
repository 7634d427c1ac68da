package emoji

import "sync/atomic"

// [emoji, fallback]
var emojiMap = map[string][2]string{
	"error":    {"❌", "[ERR]"},
	"warning":  {"⚠️", "[WRN]"},
	"info":     {"ℹ️", "[INF]"},
	"success":  {"✅", "[OK]"},
	"hero":     {"🦸", "[HERO]"},
	"list":     {"📋", "[LIST]"},
	"profile":  {"📊", "[PROF]"},
	"loading":  {"⏳", "[...]"},
	"selected": {"👉", ">"},
	"points":   {"🔢", "[#]"},
	"save":     {"💾", "[SAVE]"},
	"back":     {"🔙", "[BACK]"},
	"help":     {"❓", "[?]"},
	"door":     {"🚪", "[EXIT]"},
	"str":      {"💪", "STR"},
	"int":      {"🧠", "INT"},
	"agi":      {"🏃", "AGI"},
	"luk":      {"🍀", "LUK"},
}

var emojiDisabled atomic.Bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled.Store(disabled)
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled.Load()
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	return Symbol(key, !emojiDisabled.Load())
}

// Symbol returns the emoji for key, or its fallback when useEmoji is false
func Symbol(key string, useEmoji bool) string {
	mapping, exists := emojiMap[key]
	if !exists {
		return "[?]"
	}
	if useEmoji {
		return mapping[0]
	}
	return mapping[1]
}

// Has reports whether key has a mapping
func Has(key string) bool {
	_, ok := emojiMap[key]
	return ok
}
