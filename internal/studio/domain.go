package studio

import "time"

// CameraType identifies a studio camera position.
type CameraType string

const (
	CameraAnchor   CameraType = "ANCHOR"
	CameraWide     CameraType = "WIDE"
	CameraGuest    CameraType = "GUEST"
	CameraOverhead CameraType = "OVERHEAD"
)

// Camera is one studio feed. Exactly one camera is active at a time.
type Camera struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     CameraType `json:"type"`
	IsActive bool       `json:"is_active"`
}

// LowerThirdType classifies the on-screen caption.
type LowerThirdType string

const (
	LowerThirdAnchor   LowerThirdType = "ANCHOR"
	LowerThirdGuest    LowerThirdType = "GUEST"
	LowerThirdLocation LowerThirdType = "LOCATION"
	LowerThirdTopic    LowerThirdType = "TOPIC"
)

// LowerThird is the on-screen caption strip.
type LowerThird struct {
	ID      string         `json:"id"`
	Text    string         `json:"text"`
	Subtext string         `json:"subtext,omitempty"`
	Type    LowerThirdType `json:"type"`
	Visible bool           `json:"visible"`
}

// BreakingNews is an active breaking banner with its attribution.
type BreakingNews struct {
	ID          string    `json:"id"`
	Headline    string    `json:"headline"`
	Content     string    `json:"content"`
	TriggeredAt time.Time `json:"triggered_at"`
	TriggeredBy string    `json:"triggered_by"`
}

// TickerSpeed controls the crawl rate.
type TickerSpeed string

const (
	TickerSlow   TickerSpeed = "SLOW"
	TickerNormal TickerSpeed = "NORMAL"
	TickerFast   TickerSpeed = "FAST"
)

// Ticker is the bottom-of-screen crawl.
type Ticker struct {
	Items     []string    `json:"items"`
	IsRunning bool        `json:"is_running"`
	Speed     TickerSpeed `json:"speed"`
}

// SegmentType classifies a rundown segment.
type SegmentType string

const (
	SegmentNews      SegmentType = "NEWS"
	SegmentInterview SegmentType = "INTERVIEW"
	SegmentReport    SegmentType = "REPORT"
	SegmentWeather   SegmentType = "WEATHER"
	SegmentSports    SegmentType = "SPORTS"
)

// Segment is one rundown entry.
type Segment struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Type     SegmentType   `json:"type"`
	Duration time.Duration `json:"duration"`
	AnchorID string        `json:"anchor_id,omitempty"`
	Guest    string        `json:"guest,omitempty"`
}

// State is the full control-panel snapshot.
type State struct {
	IsLive       bool          `json:"is_live"`
	StreamKey    string        `json:"stream_key,omitempty"`
	Segment      *Segment      `json:"segment,omitempty"`
	LowerThird   *LowerThird   `json:"lower_third,omitempty"`
	BreakingNews *BreakingNews `json:"breaking_news,omitempty"`
	Ticker       Ticker        `json:"ticker"`
	Cameras      []Camera      `json:"cameras"`
	ActiveCamera string        `json:"active_camera"`
}

// DefaultCameras is the standard four-feed studio setup.
func DefaultCameras() []Camera {
	return []Camera{
		{ID: "cam-1", Name: "Anchor Desk", Type: CameraAnchor, IsActive: true},
		{ID: "cam-2", Name: "Wide Shot", Type: CameraWide},
		{ID: "cam-3", Name: "Guest Position", Type: CameraGuest},
		{ID: "cam-4", Name: "Overhead", Type: CameraOverhead},
	}
}
