package model

import "time"

// DemoItems returns the starter dataset a brand-new collection is seeded
// with, timestamped relative to now. Every item carries a non-empty history
// whose head matches its current location.
func DemoItems(now time.Time) []Item {
	ms := now.UnixMilli()
	minutes := func(n int64) int64 { return ms - n*60*1000 }
	hours := func(n int64) int64 { return ms - n*60*60*1000 }

	return []Item{
		{
			ID: 1, Name: "Keys", Icon: "🔑", Location: "Front door hook", UpdatedAt: minutes(12),
			History: []HistoryEntry{
				{Location: "Front door hook", Timestamp: minutes(12)},
				{Location: "Kitchen counter", Timestamp: hours(26)},
			},
		},
		{
			ID: 2, Name: "Wallet", Icon: "👛", Location: "Purse", UpdatedAt: minutes(45),
			History: []HistoryEntry{
				{Location: "Purse", Timestamp: minutes(45)},
			},
		},
		{
			ID: 3, Name: "Headphones", Icon: "🎧", Location: "Nightstand", UpdatedAt: hours(3),
			History: []HistoryEntry{
				{Location: "Nightstand", Timestamp: hours(3)},
				{Location: "Desk", Timestamp: hours(8)},
				{Location: "Couch", Timestamp: hours(30)},
			},
		},
		{
			ID: 4, Name: "Glasses", Icon: "👓", Location: "Bathroom", UpdatedAt: hours(5),
			History: []HistoryEntry{
				{Location: "Bathroom", Timestamp: hours(5)},
				{Location: "Nightstand", Timestamp: hours(18)},
			},
		},
		{
			ID: 5, Name: "Charger", Icon: "🔌", Location: "Desk", UpdatedAt: hours(7),
			History: []HistoryEntry{
				{Location: "Desk", Timestamp: hours(7)},
			},
		},
		{
			ID: 6, Name: "Water bottle", Icon: "🥤", Location: "Car", UpdatedAt: hours(24),
			History: []HistoryEntry{
				{Location: "Car", Timestamp: hours(24)},
				{Location: "Kitchen counter", Timestamp: hours(48)},
			},
		},
	}
}

// Suggestion pairs a common item name with its icon, offered when adding.
type Suggestion struct {
	Name string
	Icon string
}

// SuggestedItems are common things people track.
var SuggestedItems = []Suggestion{
	{"Keys", "🔑"},
	{"Wallet", "👛"},
	{"Phone", "📱"},
	{"Glasses", "👓"},
	{"Headphones", "🎧"},
	{"Charger", "🔌"},
	{"Water bottle", "🥤"},
	{"Badge", "🪪"},
}

// SuggestedLocations are common places items end up.
var SuggestedLocations = []string{
	"Kitchen counter", "Nightstand", "Couch", "Front door hook",
	"Purse", "Car", "Desk", "Bathroom",
}
