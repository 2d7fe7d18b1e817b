package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"cambiazo/internal/domain/search"
	"cambiazo/pkg/errors"
)

type geminiTextService struct {
	client *genai.Client
	model  string
}

// NewGeminiTextService builds a TextService backed by the Gemini API.
func NewGeminiTextService(ctx context.Context, apiKey, model string) (TextService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiTextService{
		client: client,
		model:  model,
	}, nil
}

// filterSchema constrains the model to the exact shape the filter engine
// consumes. City and category values still get revalidated locally.
var filterSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"keywords":  {Type: genai.TypeString},
		"city":      {Type: genai.TypeString},
		"category":  {Type: genai.TypeString},
		"minPrice":  {Type: genai.TypeNumber, Nullable: genai.Ptr(true)},
		"maxPrice":  {Type: genai.TypeNumber, Nullable: genai.Ptr(true)},
		"condition": {Type: genai.TypeString},
	},
	PropertyOrdering: []string{"keywords", "city", "category", "minPrice", "maxPrice", "condition"},
}

func (s *geminiTextService) ExtractSearchFilters(ctx context.Context, query string) (search.ExtractedFilters, error) {
	prompt := fmt.Sprintf(`Analyze the following product search query for a marketplace in Nicaragua. Extract the keywords, the city (only if it appears in the city list), the category (only if it appears in the category list), the minimum price, the maximum price and the condition (New or Used). Leave unspecified fields as an empty string for strings or null for numbers.

City list: %s
Category list: %s

Query: %q

Make sure city and category values match the provided lists exactly.`,
		strings.Join(search.Cities, ", "),
		strings.Join(search.Categories, ", "),
		query,
	)

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   filterSchema,
	})
	if err != nil {
		return search.ExtractedFilters{}, errors.Unavailable("Smart search is unavailable", err)
	}

	raw := result.Text()
	if raw == "" {
		return search.ExtractedFilters{}, errors.Unavailable("Smart search returned no candidates", nil)
	}

	var filters search.ExtractedFilters
	if err := json.Unmarshal([]byte(raw), &filters); err != nil {
		return search.ExtractedFilters{}, errors.Unavailable("Smart search returned malformed output", err)
	}

	return filters, nil
}

func (s *geminiTextService) GenerateListingDescription(ctx context.Context, name, category, condition string) (string, error) {
	prompt := fmt.Sprintf(`Write an attractive, detailed product description for an online marketplace in Nicaragua. Include relevant details, benefits for the buyer and a friendly tone. The product is a %q in the %q category, in %q condition. The description should be between 50 and 150 words, aimed at Nicaraguan buyers.`,
		name, category, condition)

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Unavailable("Description generation is unavailable", err)
	}

	description := strings.TrimSpace(result.Text())
	if description == "" {
		return "", errors.Unavailable("Description generation returned no candidates", nil)
	}

	return description, nil
}
