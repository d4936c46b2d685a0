package impl

import (
	"context"
	"encoding/base64"
	"strings"
	"sync"
	"testing"
	"time"

	"turriva/config"
	"turriva/internal/domain/entity"
	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/domain/service"
	"turriva/internal/infra/memstore"
	"turriva/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleImageDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x01, 0x02, 0x03})
}

func succeedingGenerator() *fakeGenerator {
	return &fakeGenerator{fn: func(_ context.Context, _ *service.GenerateImageInput) (*service.GenerateImageOutput, error) {
		return &service.GenerateImageOutput{
			ImageData: []byte{0x09, 0x08},
			MimeType:  "image/png",
		}, nil
	}}
}

func newStudioService(t *testing.T, generator service.ImageGenerator, keyProvider service.KeyProvider) (usecase.StudioUsecase, usecase.SessionUsecase) {
	t.Helper()

	store := newSeededStore(t)
	sessionRepo := memstore.NewSessionRepository(store)

	sessions := NewSessionService(SessionServiceParams{
		SessionRepo:  sessionRepo,
		UserRepo:     memstore.NewUserRepository(store),
		StoreRepo:    memstore.NewStoreRepository(store),
		Hasher:       stubHasher{},
		TokenService: stubTokenService{},
		Logger:       testLogger(),
	})

	studio := NewStudioService(StudioServiceParams{
		SessionRepo:    sessionRepo,
		GenerationRepo: memstore.NewGenerationRepository(store),
		Generator:      generator,
		KeyProvider:    keyProvider,
		Config: &config.Config{
			Studio: &config.StudioConfig{
				FreeModel:         "free-model",
				ProModel:          "pro-model",
				GenerationTimeout: time.Second,
			},
		},
		Logger: testLogger(),
	})

	return studio, sessions
}

func TestUploadImage_MovesToPreviewing(t *testing.T) {
	studio, sessions := newStudioService(t, succeedingGenerator(), nil)
	ctx := context.Background()
	session := startSession(t, sessions)

	updated, err := studio.UploadImage(ctx, session.ID, sampleImageDataURL())
	require.NoError(t, err)
	assert.Equal(t, entity.StudioPreviewing, updated.Studio.Phase)
	assert.NotEmpty(t, updated.Studio.BeforeImage)
	assert.Empty(t, updated.Studio.AfterImage)
}

func TestUploadImage_RejectsNonDataURL(t *testing.T) {
	studio, sessions := newStudioService(t, succeedingGenerator(), nil)
	ctx := context.Background()
	session := startSession(t, sessions)

	_, err := studio.UploadImage(ctx, session.ID, "https://example.com/room.png")
	assert.Error(t, err)

	_, err = studio.UploadImage(ctx, session.ID, "data:text/plain;base64,aGk=")
	assert.Error(t, err)
}

func TestGenerate_WithoutImage(t *testing.T) {
	studio, sessions := newStudioService(t, succeedingGenerator(), nil)
	ctx := context.Background()
	session := startSession(t, sessions)

	_, err := studio.Generate(ctx, session.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNoImageSelected)

	history, err := studio.History(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGenerate_Success(t *testing.T) {
	var captured *service.GenerateImageInput
	generator := &fakeGenerator{fn: func(_ context.Context, input *service.GenerateImageInput) (*service.GenerateImageOutput, error) {
		captured = input
		return &service.GenerateImageOutput{ImageData: []byte{0x09}, MimeType: "image/png"}, nil
	}}

	studio, sessions := newStudioService(t, generator, nil)
	ctx := context.Background()
	session := startSession(t, sessions)

	_, err := studio.UploadImage(ctx, session.ID, sampleImageDataURL())
	require.NoError(t, err)
	_, err = studio.SetOptions(ctx, usecase.StudioOptionsInput{
		SessionID:    session.ID,
		RoomType:     "living_room",
		Style:        "bohemian",
		Mode:         "staging",
		CustomPrompt: "add plants",
	})
	require.NoError(t, err)

	output, err := studio.Generate(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StudioPreviewing, output.Studio.Phase)
	assert.True(t, strings.HasPrefix(output.Studio.AfterImage, "data:image/png;base64,"))

	require.NotNil(t, captured)
	assert.Equal(t, "free-model", captured.Model)
	assert.Equal(t, "image/png", captured.MimeType)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, captured.ImageData)
	assert.Contains(t, captured.Prompt, "Room Type: living room.")
	assert.Contains(t, captured.Prompt, "Style: bohemian.")
	assert.Contains(t, captured.Prompt, "Mode: staging.")
	assert.Contains(t, captured.Prompt, "Additional Instructions: add plants.")
	assert.Contains(t, captured.Prompt, "Maintain structural integrity")

	history, err := studio.History(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "bohemian", history[0].Style)
	assert.Equal(t, output.Generation.ID, history[0].ID)
}

func TestGenerate_HistoryNewestFirst(t *testing.T) {
	studio, sessions := newStudioService(t, succeedingGenerator(), nil)
	ctx := context.Background()
	session := startSession(t, sessions)

	_, err := studio.UploadImage(ctx, session.ID, sampleImageDataURL())
	require.NoError(t, err)

	_, err = studio.SetOptions(ctx, usecase.StudioOptionsInput{SessionID: session.ID, Style: "modern"})
	require.NoError(t, err)
	first, err := studio.Generate(ctx, session.ID)
	require.NoError(t, err)

	_, err = studio.SetOptions(ctx, usecase.StudioOptionsInput{SessionID: session.ID, Style: "industrial"})
	require.NoError(t, err)
	second, err := studio.Generate(ctx, session.ID)
	require.NoError(t, err)

	history, err := studio.History(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.Generation.ID, history[0].ID)
	assert.Equal(t, first.Generation.ID, history[1].ID)
}

func TestGenerate_MutualExclusion(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	generator := &fakeGenerator{fn: func(_ context.Context, _ *service.GenerateImageInput) (*service.GenerateImageOutput, error) {
		close(started)
		<-release
		return &service.GenerateImageOutput{ImageData: []byte{0x09}, MimeType: "image/png"}, nil
	}}

	studio, sessions := newStudioService(t, generator, nil)
	ctx := context.Background()
	session := startSession(t, sessions)

	_, err := studio.UploadImage(ctx, session.ID, sampleImageDataURL())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := studio.Generate(ctx, session.ID)
		assert.NoError(t, err)
	}()

	<-started
	_, err = studio.Generate(ctx, session.ID)
	assert.ErrorIs(t, err, domainerrors.ErrGenerationInFlight)

	close(release)
	wg.Wait()

	history, err := studio.History(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestGenerate_PermissionDeniedResetsProMode(t *testing.T) {
	generator := &fakeGenerator{fn: func(_ context.Context, _ *service.GenerateImageInput) (*service.GenerateImageOutput, error) {
		return nil, domainerrors.NewGenerationError(domainerrors.GenerationPermissionDenied, errors.New("key not valid"))
	}}

	studio, sessions := newStudioService(t, generator, &fakeKeyProvider{selects: true})
	ctx := context.Background()
	session := startSession(t, sessions)

	_, err := studio.UploadImage(ctx, session.ID, sampleImageDataURL())
	require.NoError(t, err)

	upgraded, err := studio.ToggleProMode(ctx, session.ID)
	require.NoError(t, err)
	require.True(t, upgraded.Studio.ProMode)

	_, err = studio.Generate(ctx, session.ID)
	require.Error(t, err)
	assert.Equal(t, domainerrors.GenerationPermissionDenied, domainerrors.GenerationKindOf(err))

	after, err := sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, after.Studio.ProMode)
	assert.Equal(t, entity.StudioPreviewing, after.Studio.Phase)
}

func TestGenerate_ProModeSelectsProModel(t *testing.T) {
	var captured *service.GenerateImageInput
	generator := &fakeGenerator{fn: func(_ context.Context, input *service.GenerateImageInput) (*service.GenerateImageOutput, error) {
		captured = input
		return &service.GenerateImageOutput{ImageData: []byte{0x09}, MimeType: "image/png"}, nil
	}}

	studio, sessions := newStudioService(t, generator, &fakeKeyProvider{hasKey: true})
	ctx := context.Background()
	session := startSession(t, sessions)

	_, err := studio.UploadImage(ctx, session.ID, sampleImageDataURL())
	require.NoError(t, err)
	_, err = studio.ToggleProMode(ctx, session.ID)
	require.NoError(t, err)

	_, err = studio.Generate(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "pro-model", captured.Model)
}

func TestToggleProMode_WithoutProviderStaysFree(t *testing.T) {
	studio, sessions := newStudioService(t, succeedingGenerator(), nil)
	ctx := context.Background()
	session := startSession(t, sessions)

	updated, err := studio.ToggleProMode(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, updated.Studio.ProMode)
	assert.False(t, updated.Studio.HasKey)
}

func TestToggleProMode_DeclinedSelectionStaysFree(t *testing.T) {
	studio, sessions := newStudioService(t, succeedingGenerator(), &fakeKeyProvider{selects: false})
	ctx := context.Background()
	session := startSession(t, sessions)

	updated, err := studio.ToggleProMode(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, updated.Studio.ProMode)
}

func TestToggleProMode_OffIsAlwaysAllowed(t *testing.T) {
	studio, sessions := newStudioService(t, succeedingGenerator(), &fakeKeyProvider{selects: true})
	ctx := context.Background()
	session := startSession(t, sessions)

	on, err := studio.ToggleProMode(ctx, session.ID)
	require.NoError(t, err)
	require.True(t, on.Studio.ProMode)

	off, err := studio.ToggleProMode(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, off.Studio.ProMode)
	assert.True(t, off.Studio.HasKey, "key selection survives toggling off")
}

func TestRestoreFromHistory(t *testing.T) {
	studio, sessions := newStudioService(t, succeedingGenerator(), nil)
	ctx := context.Background()
	session := startSession(t, sessions)

	_, err := studio.UploadImage(ctx, session.ID, sampleImageDataURL())
	require.NoError(t, err)
	_, err = studio.SetOptions(ctx, usecase.StudioOptionsInput{
		SessionID:    session.ID,
		Style:        "neoclassic",
		CustomPrompt: "add a marble fireplace",
	})
	require.NoError(t, err)
	output, err := studio.Generate(ctx, session.ID)
	require.NoError(t, err)

	cleared, err := studio.ClearImage(ctx, session.ID)
	require.NoError(t, err)
	require.Empty(t, cleared.Studio.CustomPrompt)

	restored, err := studio.RestoreFromHistory(ctx, session.ID, output.Generation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StudioPreviewing, restored.Studio.Phase)
	assert.Equal(t, output.Generation.BeforeImage, restored.Studio.BeforeImage)
	assert.Equal(t, output.Generation.AfterImage, restored.Studio.AfterImage)
	assert.Equal(t, "neoclassic", restored.Studio.Style)
	assert.Equal(t, "add a marble fireplace", restored.Studio.CustomPrompt)
}

func TestRestoreFromHistory_OtherSession(t *testing.T) {
	studio, sessions := newStudioService(t, succeedingGenerator(), nil)
	ctx := context.Background()

	owner := startSession(t, sessions)
	_, err := studio.UploadImage(ctx, owner.ID, sampleImageDataURL())
	require.NoError(t, err)
	output, err := studio.Generate(ctx, owner.ID)
	require.NoError(t, err)

	intruder := startSession(t, sessions)
	_, err = studio.RestoreFromHistory(ctx, intruder.ID, output.Generation.ID)
	assert.Error(t, err)

	_, err = studio.RestoreFromHistory(ctx, owner.ID, uuid.New())
	assert.Error(t, err)
}
