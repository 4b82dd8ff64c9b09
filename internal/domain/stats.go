package domain

import "time"

// DailyAggregatePoint is one chart-ready record derived from a closed
// sleep session. Recomputed fresh on every request, never persisted.
// @Description One bar of the sleep chart: offsets are hours since 18:00.
type DailyAggregatePoint struct {
	// Short weekday name of the night the sleep began
	DayLabel string `json:"day_label" example:"Mon"`
	// Calendar date the session started
	Date time.Time `json:"date" example:"2024-01-15T00:00:00Z"`
	// Sleep start, hours after 18:00
	StartOffset float64 `json:"start_offset" example:"4.0"`
	// Sleep end, hours after 18:00
	EndOffset float64 `json:"end_offset" example:"13.0"`
	// Raw session length in seconds
	DurationSeconds float64 `json:"duration_seconds" example:"32400"`
}

// SleepScores are the 0-100 scores derived from the chart points.
// @Description Sleep quality scores. All default to 0 when data or targets are missing.
type SleepScores struct {
	// How tightly clustered bedtimes are (20 points lost per hour of stddev)
	SleepConsistency int `json:"sleep_consistency" example:"84"`
	// How tightly clustered wake times are
	WakeConsistency int `json:"wake_consistency" example:"78"`
	// Closeness to the configured targets (10 points lost per hour of avg deviation)
	Accuracy int `json:"accuracy" example:"90"`
}

// SleepStatsResponse is the response body for the sleep stats endpoint.
type SleepStatsResponse struct {
	Points             []DailyAggregatePoint `json:"points"`
	Scores             SleepScores           `json:"scores"`
	AvgDurationSeconds float64               `json:"avg_duration_seconds" example:"28800"`
	AvgDurationText    string                `json:"avg_duration_text" example:"8h 0m"`
	Window             struct {
		From time.Time `json:"from"`
		To   time.Time `json:"to"`
	} `json:"window"`
}

// HeatmapDay is one cell of the habit heat-map.
// @Description One day of the trailing heat-map window.
type HeatmapDay struct {
	Date time.Time `json:"date"`
	// Total blocked hours overlapping this calendar day
	TotalHours float64 `json:"total_hours" example:"2.5"`
	// Intensity band 0-4
	Level int `json:"level" example:"2"`
}

// HeatmapResponse is the response body for the heat-map endpoint.
type HeatmapResponse struct {
	WindowDays int          `json:"window_days" example:"28"`
	Days       []HeatmapDay `json:"days"`
}

/// DaySessionItem is one session as it appears in a calendar day detail:
// the full session plus how much of it fell on the queried day.
type DaySessionItem struct {
	Session SessionResponse `json:"session"`
	// Seconds of this session overlapping the queried day
	OverlapSeconds float64 `json:"overlap_seconds" example:"7200"`
	// True when the session spans more than one calendar day
	MultiDay bool `json:"multi_day"`
}

// DaySessionsResponse is the response body for the day detail endpoint.
// Sessions are sorted by total duration, longest first.
type DaySessionsResponse struct {
	Date     time.Time        `json:"date"`
	Sessions []DaySessionItem `json:"sessions"`
}
