package usecase

import (
	"context"

	"turriva/internal/domain/entity"

	"github.com/google/uuid"
)

// StudioOptionsInput carries the generation controls a visitor can set before
// generating. Empty fields leave the current value untouched.
type StudioOptionsInput struct {
	SessionID    uuid.UUID
	RoomType     string
	Style        string
	Mode         string
	CustomPrompt string
}

// GenerateOutput returns the updated studio state and the history entry
// recorded for a successful generation.
type GenerateOutput struct {
	Studio     entity.StudioState
	Generation *entity.Generation
}

// StudioUsecase defines the room redesign workflow: source image upload,
// option selection, generation against the image service, and the
// session-scoped history.
type StudioUsecase interface {
	// UploadImage loads a source image into the studio and clears any
	// previous result.
	UploadImage(ctx context.Context, sessionID uuid.UUID, imageDataURL string) (*entity.Session, error)

	// ClearImage resets the studio back to its initial state.
	ClearImage(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)

	// SetOptions updates the generation controls.
	SetOptions(ctx context.Context, input StudioOptionsInput) (*entity.Session, error)

	// Generate runs one redesign against the image service. At most one
	// generation per session runs at a time.
	Generate(ctx context.Context, sessionID uuid.UUID) (*GenerateOutput, error)

	// History returns the session's completed generations, newest first.
	History(ctx context.Context, sessionID uuid.UUID) ([]*entity.Generation, error)

	// RestoreFromHistory loads a past generation back into the studio.
	RestoreFromHistory(ctx context.Context, sessionID uuid.UUID, generationID uuid.UUID) (*entity.Session, error)

	// ToggleProMode switches the generation tier. Enabling the pro tier
	// requires a selected API key; without one the session stays free.
	ToggleProMode(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)
}
