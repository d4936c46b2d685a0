package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "turriva/internal/domain/errors"
	"turriva/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiGenerator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gen := NewGeminiGenerator("test-key", "test-model")
	gen.baseURL = server.URL

	return gen
}

func TestGeminiGenerator_GenerateImage_Success(t *testing.T) {
	source := []byte{0x01, 0x02, 0x03}
	generated := []byte{0x09, 0x08, 0x07}

	gen := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 2)
		require.NotNil(t, req.Contents[0].Parts[0].InlineData)
		assert.Equal(t, "image/jpeg", req.Contents[0].Parts[0].InlineData.MimeType)
		assert.Equal(t, base64.StdEncoding.EncodeToString(source), req.Contents[0].Parts[0].InlineData.Data)
		assert.Equal(t, "redesign this room", req.Contents[0].Parts[1].Text)

		resp := geminiResponse{
			Candidates: []geminiCandidate{{
				Content: &geminiContent{Parts: []geminiPart{
					{Text: "Here is the redesigned room."},
					{InlineData: &geminiInlineData{
						MimeType: "image/png",
						Data:     base64.StdEncoding.EncodeToString(generated),
					}},
				}},
			}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	output, err := gen.GenerateImage(context.Background(), &service.GenerateImageInput{
		ImageData: source,
		MimeType:  "image/jpeg",
		Prompt:    "redesign this room",
	})

	require.NoError(t, err)
	assert.Equal(t, generated, output.ImageData)
	assert.Equal(t, "image/png", output.MimeType)
}

func TestGeminiGenerator_GenerateImage_ModelOverride(t *testing.T) {
	var requestedPath string
	gen := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{{
				Content: &geminiContent{Parts: []geminiPart{
					{InlineData: &geminiInlineData{MimeType: "image/png", Data: ""}},
				}},
			}},
		})
	})

	_, err := gen.GenerateImage(context.Background(), &service.GenerateImageInput{
		ImageData: []byte{0x01},
		MimeType:  "image/png",
		Prompt:    "p",
		Model:     "pro-model",
	})

	require.NoError(t, err)
	assert.Equal(t, "/pro-model:generateContent", requestedPath)
}

func TestGeminiGenerator_GenerateImage_PermissionDenied(t *testing.T) {
	gen := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"key not valid","status":"PERMISSION_DENIED"}}`))
	})

	_, err := gen.GenerateImage(context.Background(), &service.GenerateImageInput{
		ImageData: []byte{0x01},
		MimeType:  "image/png",
		Prompt:    "p",
	})

	require.Error(t, err)
	assert.Equal(t, domainerrors.GenerationPermissionDenied, domainerrors.GenerationKindOf(err))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestGeminiGenerator_GenerateImage_NoImage(t *testing.T) {
	gen := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{{
				Content: &geminiContent{Parts: []geminiPart{{Text: "cannot comply"}}},
			}},
		})
	})

	_, err := gen.GenerateImage(context.Background(), &service.GenerateImageInput{
		ImageData: []byte{0x01},
		MimeType:  "image/png",
		Prompt:    "p",
	})

	require.Error(t, err)
	assert.Equal(t, domainerrors.GenerationInvalidResponse, domainerrors.GenerationKindOf(err))
}

func TestGeminiGenerator_GenerateImage_Timeout(t *testing.T) {
	gen := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := gen.GenerateImage(ctx, &service.GenerateImageInput{
		ImageData: []byte{0x01},
		MimeType:  "image/png",
		Prompt:    "p",
	})

	require.Error(t, err)
	assert.Equal(t, domainerrors.GenerationTimeout, domainerrors.GenerationKindOf(err))
}

func TestGeminiGenerator_GenerateImage_Network(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	gen := NewGeminiGenerator("test-key", "test-model")
	gen.baseURL = server.URL
	server.Close() // Connections now refuse.

	_, err := gen.GenerateImage(context.Background(), &service.GenerateImageInput{
		ImageData: []byte{0x01},
		MimeType:  "image/png",
		Prompt:    "p",
	})

	require.Error(t, err)
	assert.Equal(t, domainerrors.GenerationNetwork, domainerrors.GenerationKindOf(err))
}
