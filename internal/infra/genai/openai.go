package genai

import (
	"bytes"
	"context"
	"encoding/base64"

	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/domain/service"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGenerator implements ImageGenerator using the OpenAI image edit API.
type OpenAIGenerator struct {
	client *openai.Client
	model  string
}

// NewOpenAIGenerator creates a new OpenAI image generator.
func NewOpenAIGenerator(apiKey string, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateImage edits the source image according to the prompt and returns
// the result decoded from base64.
func (g *OpenAIGenerator) GenerateImage(ctx context.Context, input *service.GenerateImageInput) (*service.GenerateImageOutput, error) {
	model := input.Model
	if model == "" {
		model = g.model
	}

	resp, err := g.client.CreateEditImage(ctx, openai.ImageEditRequest{
		Image:          openai.WrapReader(bytes.NewReader(input.ImageData), "room.png", input.MimeType),
		Prompt:         input.Prompt,
		Model:          model,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, domainerrors.NewGenerationError(classifyOpenAIError(ctx, err), err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, domainerrors.NewGenerationError(domainerrors.GenerationInvalidResponse,
			errors.New("no image in openai response"))
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, domainerrors.NewGenerationError(domainerrors.GenerationInvalidResponse,
			errors.Wrap(err, "decode generated image"))
	}

	return &service.GenerateImageOutput{
		ImageData: data,
		MimeType:  "image/png",
	}, nil
}

// classifyOpenAIError maps SDK errors to generation kinds.
func classifyOpenAIError(ctx context.Context, err error) domainerrors.GenerationKind {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if kind, ok := classifyStatusCode(apiErr.HTTPStatusCode); ok {
			return kind
		}

		return domainerrors.GenerationUnknown
	}

	return classifyTransportError(ctx, err)
}
