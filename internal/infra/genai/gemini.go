package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/domain/service"

	"github.com/pkg/errors"
)

const geminiAPIBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiGenerator implements ImageGenerator using the Google Gemini API via direct HTTP.
type GeminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiGenerator creates a new Gemini image generator.
func NewGeminiGenerator(apiKey string, model string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiAPIBaseURL,
		client:  &http.Client{},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // Base64-encoded image bytes.
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Error      *geminiError      `json:"error,omitempty"`
}

type geminiCandidate struct {
	Content      *geminiContent `json:"content"`
	FinishReason string         `json:"finishReason"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateImage sends the source image and prompt as inlineData + text parts
// and returns the first inlineData part of the first candidate.
func (g *GeminiGenerator) GenerateImage(ctx context.Context, input *service.GenerateImageInput) (*service.GenerateImageOutput, error) {
	model := input.Model
	if model == "" {
		model = g.model
	}

	apiReq := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{
					MimeType: input.MimeType,
					Data:     base64.StdEncoding.EncodeToString(input.ImageData),
				}},
				{Text: input.Prompt},
			},
		}},
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, domainerrors.NewGenerationError(domainerrors.GenerationUnknown,
			errors.Wrap(err, "marshal gemini request"))
	}

	url := g.baseURL + "/" + model + ":generateContent?key=" + g.apiKey
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, domainerrors.NewGenerationError(domainerrors.GenerationUnknown,
			errors.Wrap(err, "create gemini request"))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, domainerrors.NewGenerationError(classifyTransportError(ctx, err), err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, domainerrors.NewGenerationError(classifyTransportError(ctx, err), err)
	}

	if kind, ok := classifyStatusCode(httpResp.StatusCode); ok {
		return nil, domainerrors.NewGenerationError(kind,
			errors.Errorf("gemini returned status %d: %s", httpResp.StatusCode, string(respBody)))
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, domainerrors.NewGenerationError(domainerrors.GenerationInvalidResponse,
			errors.Wrap(err, "unmarshal gemini response"))
	}

	if apiResp.Error != nil {
		kind := domainerrors.GenerationUnknown
		if k, ok := classifyStatusCode(apiResp.Error.Code); ok {
			kind = k
		}

		return nil, domainerrors.NewGenerationError(kind,
			errors.Errorf("gemini error %d (%s): %s", apiResp.Error.Code, apiResp.Error.Status, apiResp.Error.Message))
	}

	for _, candidate := range apiResp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil {
				continue
			}

			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, domainerrors.NewGenerationError(domainerrors.GenerationInvalidResponse,
					errors.Wrap(err, "decode generated image"))
			}

			return &service.GenerateImageOutput{
				ImageData: data,
				MimeType:  part.InlineData.MimeType,
			}, nil
		}
	}

	return nil, domainerrors.NewGenerationError(domainerrors.GenerationInvalidResponse,
		errors.New("no image in gemini response"))
}
