package ai

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"mutawazi_proposals/internal/usecase/interfaces"
)

var ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
var ErrEmptyGeminiResponse = errors.New("gemini returned no text")

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiGenerator produces text through the Gemini API. A fresh client is
// created per call because the SDK client holds a connection that should not
// outlive the request.
type GeminiGenerator struct {
	apiKey string
	model  string
}

var _ interfaces.ITextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator builds a generator from the given API key. Model name
// can be overridden through GEMINI_MODEL.
func NewGeminiGenerator(apiKey string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[justification][gateway] missing GEMINI_API_KEY")
		return nil, ErrMissingGeminiAPIKey
	}

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = defaultGeminiModel
	}

	log.Printf("[justification][gateway] Gemini client configured model=%s", model)
	return &GeminiGenerator{apiKey: apiKey, model: model}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		log.Printf("[justification][gateway] client init failed err=%v", err)
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("[justification][gateway] generate failed err=%v", err)
		return "", err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok && strings.TrimSpace(string(txt)) != "" {
				return string(txt), nil
			}
		}
	}

	log.Printf("[justification][gateway] empty response")
	return "", ErrEmptyGeminiResponse
}
