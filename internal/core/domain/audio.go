package domain

// AudioSink is an audio output device as listed by the audio-control tool.
type AudioSink struct {
	ID          uint32
	Name        string
	Description string
	// Volume is nil when the report carries no parsable volume.
	Volume    *float64
	IsDefault bool
}

// Notification is a desktop notification request.
type Notification struct {
	Title   string
	Message string
	Icon    string
	Urgency string
}

// Notification urgencies understood by notify-send.
const (
	UrgencyLow      = "low"
	UrgencyNormal   = "normal"
	UrgencyCritical = "critical"
)
