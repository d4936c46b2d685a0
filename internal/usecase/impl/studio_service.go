package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"time"

	"turriva/config"
	deliverycontext "turriva/internal/delivery/context"
	"turriva/internal/domain/entity"
	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/domain/repository"
	"turriva/internal/domain/service"
	"turriva/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultGenerationTimeout = 90 * time.Second

// studioService implements the StudioUsecase interface.
type studioService struct {
	sessionRepo       repository.SessionRepository
	generationRepo    repository.GenerationRepository
	generator         service.ImageGenerator
	keyProvider       service.KeyProvider
	freeModel         string
	proModel          string
	generationTimeout time.Duration
	inflight          *inflightGuard
	logger            *slog.Logger
}

// StudioServiceParams holds dependencies for studioService, injected by Fx.
// KeyProvider is optional; without one, sessions stay on the free tier.
type StudioServiceParams struct {
	fx.In

	SessionRepo    repository.SessionRepository
	GenerationRepo repository.GenerationRepository
	Generator      service.ImageGenerator
	KeyProvider    service.KeyProvider `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewStudioService is the constructor for studioService.
func NewStudioService(params StudioServiceParams) usecase.StudioUsecase {
	srv := &studioService{
		sessionRepo:       params.SessionRepo,
		generationRepo:    params.GenerationRepo,
		generator:         params.Generator,
		keyProvider:       params.KeyProvider,
		generationTimeout: defaultGenerationTimeout,
		inflight:          newInflightGuard(),
		logger:            params.Logger,
	}

	if params.Config != nil && params.Config.Studio != nil {
		srv.freeModel = params.Config.Studio.FreeModel
		srv.proModel = params.Config.Studio.ProModel
		if params.Config.Studio.GenerationTimeout > 0 {
			srv.generationTimeout = params.Config.Studio.GenerationTimeout
		}
	}

	return srv
}

func (srv *studioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *studioService) UploadImage(ctx context.Context, sessionID uuid.UUID, imageDataURL string) (*entity.Session, error) {
	if _, _, err := parseImageDataURL(imageDataURL); err != nil {
		return nil, err
	}

	return srv.update(ctx, sessionID, func(session *entity.Session) error {
		session.Studio.BeforeImage = imageDataURL
		session.Studio.AfterImage = ""
		session.Studio.Phase = entity.StudioPreviewing

		return nil
	})
}

func (srv *studioService) ClearImage(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	return srv.update(ctx, sessionID, func(session *entity.Session) error {
		preserved := session.Studio
		session.Studio = entity.DefaultStudioState()
		session.Studio.ProMode = preserved.ProMode
		session.Studio.HasKey = preserved.HasKey

		return nil
	})
}

func (srv *studioService) SetOptions(ctx context.Context, input usecase.StudioOptionsInput) (*entity.Session, error) {
	var mode entity.GenerationMode
	if input.Mode != "" {
		mode = entity.GenerationMode(input.Mode)
		if !mode.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown generation mode")
		}
	}

	return srv.update(ctx, input.SessionID, func(session *entity.Session) error {
		if input.RoomType != "" {
			session.Studio.RoomType = input.RoomType
		}
		if input.Style != "" {
			session.Studio.Style = input.Style
		}
		if mode != "" {
			session.Studio.Mode = mode
		}
		session.Studio.CustomPrompt = input.CustomPrompt

		return nil
	})
}

func (srv *studioService) Generate(ctx context.Context, sessionID uuid.UUID) (*usecase.GenerateOutput, error) {
	session, err := srv.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Studio.BeforeImage == "" {
		return nil, domainerrors.ErrNoImageSelected
	}

	if !srv.inflight.acquire(sessionID) {
		return nil, domainerrors.ErrGenerationInFlight
	}
	defer srv.inflight.release(sessionID)

	mimeType, imageData, err := parseImageDataURL(session.Studio.BeforeImage)
	if err != nil {
		return nil, err
	}

	session.Studio.Phase = entity.StudioGenerating
	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}

	model := srv.freeModel
	if session.Studio.ProMode {
		model = srv.proModel
	}
	prompt := buildRedesignPrompt(session.Studio)

	srv.log(ctx).Info("Starting generation",
		slog.String("sessionID", sessionID.String()),
		slog.String("model", model),
		slog.String("style", session.Studio.Style),
	)

	genCtx, cancel := context.WithTimeout(ctx, srv.generationTimeout)
	defer cancel()

	output, genErr := srv.generator.GenerateImage(genCtx, &service.GenerateImageInput{
		ImageData: imageData,
		MimeType:  mimeType,
		Prompt:    prompt,
		Model:     model,
	})

	// Regardless of outcome the studio leaves the generating phase.
	session.Studio.Phase = entity.StudioPreviewing

	if genErr != nil {
		// A rejected credential drops the session back to the free tier so
		// the next attempt can succeed.
		if domainerrors.GenerationKindOf(genErr) == domainerrors.GenerationPermissionDenied {
			session.Studio.ProMode = false
		}

		if err := srv.sessionRepo.Save(ctx, session); err != nil {
			return nil, errors.Wrap(err, "save session")
		}

		srv.log(ctx).Error("Generation failed",
			slog.String("sessionID", sessionID.String()),
			slog.String("kind", string(domainerrors.GenerationKindOf(genErr))),
			slog.Any("error", genErr),
		)

		return nil, genErr
	}

	session.Studio.AfterImage = buildImageDataURL(output.MimeType, output.ImageData)
	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}

	generation := &entity.Generation{
		ID:           uuid.New(),
		SessionID:    sessionID,
		BeforeImage:  session.Studio.BeforeImage,
		AfterImage:   session.Studio.AfterImage,
		Style:        session.Studio.Style,
		Prompt:       prompt,
		CustomPrompt: session.Studio.CustomPrompt,
		Model:        model,
		CreatedAt:    time.Now(),
	}
	if err := srv.generationRepo.Add(ctx, generation); err != nil {
		return nil, errors.Wrap(err, "record generation")
	}

	return &usecase.GenerateOutput{
		Studio:     session.Studio,
		Generation: generation,
	}, nil
}

func (srv *studioService) History(ctx context.Context, sessionID uuid.UUID) ([]*entity.Generation, error) {
	if _, err := srv.getSession(ctx, sessionID); err != nil {
		return nil, err
	}

	history, err := srv.generationRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "list generations")
	}

	return history, nil
}

func (srv *studioService) RestoreFromHistory(ctx context.Context, sessionID uuid.UUID, generationID uuid.UUID) (*entity.Session, error) {
	generation, err := srv.generationRepo.FindByID(ctx, generationID)
	if errors.Is(err, repository.ErrGenerationNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find generation")
	}
	if generation.SessionID != sessionID {
		return nil, domainerrors.ErrNotFound
	}

	return srv.update(ctx, sessionID, func(session *entity.Session) error {
		session.Studio.BeforeImage = generation.BeforeImage
		session.Studio.AfterImage = generation.AfterImage
		session.Studio.Style = generation.Style
		session.Studio.CustomPrompt = generation.CustomPrompt
		session.Studio.Phase = entity.StudioPreviewing

		return nil
	})
}

func (srv *studioService) ToggleProMode(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := srv.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Studio.ProMode {
		session.Studio.ProMode = false

		if err := srv.sessionRepo.Save(ctx, session); err != nil {
			return nil, errors.Wrap(err, "save session")
		}

		return session, nil
	}

	if !session.Studio.HasKey {
		selected, err := srv.selectKey(ctx)
		if err != nil {
			return nil, err
		}
		if !selected {
			srv.log(ctx).Debug("Pro tier declined, no key selected",
				slog.String("sessionID", sessionID.String()))

			return session, nil
		}
		session.Studio.HasKey = true
	}

	session.Studio.ProMode = true
	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}

	return session, nil
}

// selectKey walks the key selection flow. Without a provider there is no key
// to select, so the answer is simply no.
func (srv *studioService) selectKey(ctx context.Context) (bool, error) {
	if srv.keyProvider == nil {
		return false, nil
	}

	has, err := srv.keyProvider.HasSelectedKey(ctx)
	if err != nil {
		return false, errors.Wrap(err, "check selected key")
	}
	if has {
		return true, nil
	}

	selected, err := srv.keyProvider.OpenKeySelection(ctx)
	if err != nil {
		return false, errors.Wrap(err, "open key selection")
	}

	return selected, nil
}

func (srv *studioService) getSession(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	session, err := srv.sessionRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find session")
	}

	return session, nil
}

func (srv *studioService) update(ctx context.Context, id uuid.UUID, mutate func(*entity.Session) error) (*entity.Session, error) {
	session, err := srv.getSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mutate(session); err != nil {
		return nil, err
	}

	if err := srv.sessionRepo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "save session")
	}

	return session, nil
}

// buildRedesignPrompt assembles the instruction sent to the image service
// from the studio controls.
func buildRedesignPrompt(studio entity.StudioState) string {
	var sb strings.Builder
	sb.WriteString("Professional interior design. Redesign this room.\n")
	sb.WriteString("Room Type: " + strings.ReplaceAll(studio.RoomType, "_", " ") + ".\n")
	sb.WriteString("Style: " + studio.Style + ".\n")
	sb.WriteString("Mode: " + string(studio.Mode) + ".\n")
	if studio.CustomPrompt != "" {
		sb.WriteString("Additional Instructions: " + studio.CustomPrompt + ".\n")
	}
	sb.WriteString("Requirements: High photorealism, architectural detail, 8k resolution, cinematic lighting. ")
	sb.WriteString("Maintain structural integrity of walls/windows. Replace furniture and decor to match style exactly.")

	return sb.String()
}

// parseImageDataURL splits a data URL into its MIME type and decoded bytes.
func parseImageDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, domainerrors.ErrValidationFailed.WrapMessage("image must be a data URL")
	}

	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, domainerrors.ErrValidationFailed.WrapMessage("malformed image data URL")
	}

	mimeType, _ := strings.CutSuffix(meta, ";base64")
	if !strings.HasPrefix(mimeType, "image/") {
		return "", nil, domainerrors.ErrValidationFailed.WrapMessage("data URL is not an image")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, domainerrors.ErrValidationFailed.WrapMessage("image data is not valid base64")
	}

	return mimeType, data, nil
}

func buildImageDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
