package review

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model asked for reviews.
const DefaultModel = "gemini-2.5-flash"

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a client for apiKey. model defaults to DefaultModel.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: empty API key")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends prompt as a single user turn and returns the response text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}

// New returns the Reviewer for apiKey: Offline without a key, otherwise a
// ModelReviewer backed by Gemini. A client that cannot be built degrades to
// a reviewer that always reports a request failure.
func New(ctx context.Context, apiKey, model string) Reviewer {
	if apiKey == "" {
		logrus.Warn("review: no API key found, critic stays offline")
		return Offline{}
	}
	gen, err := NewGeminiGenerator(ctx, apiKey, model)
	if err != nil {
		logrus.Warnf("review: %v", err)
		return NewModelReviewer(failingGenerator{err: err})
	}
	return NewModelReviewer(gen)
}

type failingGenerator struct {
	err error
}

func (f failingGenerator) Generate(context.Context, string) (string, error) {
	return "", f.err
}
