package model

import "strings"

// DefaultIcon is used when no keyword matches an item's name.
const DefaultIcon = "📦"

type iconKeyword struct {
	keyword string
	icon    string
}

// iconKeywords maps name keywords to icons. Order matters: the first
// case-insensitive substring match wins, so overlapping keywords (e.g.
// "glasses" and "sunglasses") resolve to the earlier entry.
var iconKeywords = []iconKeyword{
	{"keys", "🔑"}, {"key", "🔑"},
	{"wallet", "👛"}, {"purse", "👜"},
	{"phone", "📱"}, {"headphones", "🎧"},
	{"glasses", "👓"}, {"sunglasses", "🕶️"},
	{"charger", "🔌"}, {"cable", "🔌"},
	{"water bottle", "🥤"}, {"bottle", "🍼"},
	{"badge", "🪪"}, {"id", "🪪"},
	{"laptop", "💻"}, {"computer", "💻"},
	{"watch", "⌚"}, {"ring", "💍"},
	{"umbrella", "☂️"}, {"jacket", "🧥"},
	{"bag", "👜"}, {"backpack", "🎒"},
	{"remote", "📺"}, {"book", "📖"},
	{"medicine", "💊"}, {"inhaler", "💨"},
}

// IconFor derives an icon for an item name.
func IconFor(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range iconKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.icon
		}
	}
	return DefaultIcon
}
