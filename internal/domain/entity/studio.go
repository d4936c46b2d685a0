package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudioPhase is the state of a session's redesign workflow.
type StudioPhase string

const (
	// StudioIdle means no source image has been selected.
	StudioIdle StudioPhase = "idle"
	// StudioPreviewing means a source image is loaded and awaiting options.
	StudioPreviewing StudioPhase = "previewing"
	// StudioGenerating means a generation call is in flight.
	StudioGenerating StudioPhase = "generating"
)

// GenerationMode selects how the model treats the source room.
type GenerationMode string

const (
	ModeRedesign GenerationMode = "redesign"
	ModeStaging  GenerationMode = "staging"
)

// IsValid checks if the GenerationMode is a valid value.
func (m GenerationMode) IsValid() bool {
	return m == ModeRedesign || m == ModeStaging
}

// StudioState carries the per-session redesign workflow: the source and
// result images as data URLs, the selected options, and the tier flags.
type StudioState struct {
	Phase        StudioPhase    `json:"phase"`
	BeforeImage  string         `json:"beforeImage,omitempty"`
	AfterImage   string         `json:"afterImage,omitempty"`
	RoomType     string         `json:"roomType"`
	Style        string         `json:"style"`
	Mode         GenerationMode `json:"mode"`
	CustomPrompt string         `json:"customPrompt,omitempty"`
	ProMode      bool           `json:"proMode"`
	HasKey       bool           `json:"hasKey"`
}

// DefaultStudioState mirrors the studio's initial control values.
func DefaultStudioState() StudioState {
	return StudioState{
		Phase:    StudioIdle,
		RoomType: "living_room",
		Style:    "modern",
		Mode:     ModeRedesign,
	}
}

// Generation is one completed redesign, kept in the session's history.
// History is append-only and ordered newest first.
type Generation struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"sessionId"`
	BeforeImage string    `json:"beforeImage"`
	AfterImage  string    `json:"afterImage"`
	Style       string    `json:"style"`
	Prompt      string    `json:"prompt"`
	// CustomPrompt keeps the user's own instructions separate from the
	// assembled Prompt so a restore can put them back in the controls.
	CustomPrompt string    `json:"customPrompt,omitempty"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"createdAt"`
}
