package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adlaunch/backend/internal/models"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Generator produces ad-copy variants for a product description and
// campaign objective.
type Generator interface {
	Generate(ctx context.Context, productDescription, objective string) ([]string, error)
}

// GeminiGenerator asks the Gemini API for three ad-copy variants as
// strictly-shaped JSON.
type GeminiGenerator struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, log *zap.Logger) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model, log: log}, nil
}

func objectivePrompt(objective string) string {
	switch objective {
	case models.ObjectiveAwareness:
		return "brand awareness and visibility"
	case models.ObjectiveTraffic:
		return "driving website traffic and clicks"
	case models.ObjectiveSales:
		return "sales conversions and purchases"
	default:
		return "general marketing"
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context, productDescription, objective string) ([]string, error) {
	prompt := fmt.Sprintf(`Create 3 compelling, concise ad copy variations for %s based on this product description: "%s".

Requirements:
- Each copy should be under 100 characters
- Include relevant emojis
- Focus on benefits and call-to-action
- Make them catchy and conversion-focused
- Suitable for Indian SMB audience

Return the response as JSON in this exact format:
{
  "adCopies": [
    "Copy variation 1",
    "Copy variation 2",
    "Copy variation 3"
  ]
}`, objectivePrompt(objective), productDescription)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"adCopies": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"adCopies"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	var result struct {
		AdCopies []string `json:"adCopies"`
	}
	if err := json.Unmarshal([]byte(resp.Text()), &result); err != nil {
		return nil, fmt.Errorf("gemini returned malformed response: %w", err)
	}
	if result.AdCopies == nil {
		return []string{}, nil
	}
	return result.AdCopies, nil
}

// AdCopyService fronts the generator for handlers and the wizard.
type AdCopyService struct {
	generator Generator
	log       *zap.Logger
}

func NewAdCopyService(generator Generator, log *zap.Logger) *AdCopyService {
	return &AdCopyService{generator: generator, log: log}
}

func (s *AdCopyService) Suggest(ctx context.Context, productDescription, objective string) ([]string, error) {
	copies, err := s.generator.Generate(ctx, productDescription, objective)
	if err != nil {
		s.log.Warn("ad copy generation failed", zap.Error(err))
		return nil, err
	}
	return copies, nil
}

// FallbackAdCopies synthesizes three templated variants from the first
// three words of the product description. Deterministic, never fails; used
// when the Gemini path is unavailable.
func FallbackAdCopies(productDescription, objective string) []string {
	productName := strings.Join(firstWords(productDescription, 3), " ")
	if productName == "" {
		productName = "Your Product"
	}

	switch objective {
	case models.ObjectiveAwareness:
		return []string{
			fmt.Sprintf("🌟 Discover %s! Quality you can trust. Learn more today!", productName),
			fmt.Sprintf("✨ Introducing %s - Experience the difference!", productName),
			fmt.Sprintf("🎯 %s - Now available! See what makes us special.", productName),
		}
	case models.ObjectiveTraffic:
		return []string{
			fmt.Sprintf("🔥 %s awaits! Visit our website for exclusive details.", productName),
			fmt.Sprintf("💫 Explore %s on our website. Click to discover more!", productName),
			fmt.Sprintf("🚀 %s - Visit us online for the full experience!", productName),
		}
	case models.ObjectiveSales:
		return []string{
			fmt.Sprintf("🛒 Shop %s now! Limited time offer - Order today!", productName),
			fmt.Sprintf("💰 %s - Special deals available! Buy now and save!", productName),
			fmt.Sprintf("⚡ Get %s today! Fast delivery, great prices!", productName),
		}
	default:
		return []string{
			fmt.Sprintf("✨ %s - Quality and value combined!", productName),
			fmt.Sprintf("🌟 Experience %s - Made for you!", productName),
			fmt.Sprintf("🎯 %s - Your perfect choice awaits!", productName),
		}
	}
}

func firstWords(s string, n int) []string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return fields
}
