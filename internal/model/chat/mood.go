package chat

// MoodEntry records one per-day mood check-in (0 = worst, 10 = best).
type MoodEntry struct {
	Date string `json:"date"`
	Mood int    `json:"mood"`
	Note string `json:"note,omitempty"`
}
