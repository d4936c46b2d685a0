package service

import "context"

// GenerateImageInput carries the source image and the prompt for one
// image-to-image generation call.
type GenerateImageInput struct {
	ImageData []byte // Raw bytes of the source image.
	MimeType  string // MIME type of the source image, e.g. "image/jpeg".
	Prompt    string
	Model     string
}

// GenerateImageOutput is the generated image returned by a provider.
type GenerateImageOutput struct {
	ImageData []byte
	MimeType  string
}

// ImageGenerator defines the interface to a generative image service.
// Implementations classify failures into domain generation error kinds so
// callers never inspect provider-specific error text.
type ImageGenerator interface {
	// GenerateImage transforms the source image according to the prompt.
	// The context deadline bounds the call.
	GenerateImage(ctx context.Context, input *GenerateImageInput) (*GenerateImageOutput, error)
}
