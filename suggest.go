package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/charmbracelet/log"
	"github.com/rshep3087/ledgerly/api"
)

// ErrSuggestionsDisabled is returned when no AI provider is configured.
var ErrSuggestionsDisabled = errors.New("category suggestions are disabled (set ANTHROPIC_API_KEY)")

// AIProvider defines the interface for AI-powered category recommendations.
type AIProvider interface {
	// RecommendCategory returns the best matching category from categories
	// for the given transaction.
	RecommendCategory(
		ctx context.Context,
		transaction api.TransactionInput,
		categories []string,
	) (*CategoryRecommendation, error)
}

// CategoryRecommendation represents an AI recommendation for a transaction category.
type CategoryRecommendation struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"` // 0-100 confidence score
	Reasoning  string  `json:"reasoning"`
}

// AIRecommender manages AI-powered category recommendations.
type AIRecommender struct {
	provider AIProvider
}

// NewAIRecommender creates a new AI recommender with the given provider.
// A nil provider yields a disabled recommender.
func NewAIRecommender(provider AIProvider) *AIRecommender {
	return &AIRecommender{provider: provider}
}

// IsEnabled returns true if AI recommendations are available.
func (r *AIRecommender) IsEnabled() bool {
	return r != nil && r.provider != nil
}

// Recommend asks the provider for a category, bounded by aiRecommendationTimeout.
func (r *AIRecommender) Recommend(
	ctx context.Context,
	transaction api.TransactionInput,
	categories []string,
) (*CategoryRecommendation, error) {
	if !r.IsEnabled() {
		return nil, ErrSuggestionsDisabled
	}
	if len(categories) == 0 {
		return nil, errors.New("no categories to choose from")
	}

	ctx, cancel := context.WithTimeout(ctx, aiRecommendationTimeout)
	defer cancel()

	rec, err := r.provider.RecommendCategory(ctx, transaction, categories)
	if err != nil {
		log.Error("category recommendation failed", "error", err)
		return nil, err
	}

	log.Debug("category recommendation succeeded",
		"category", rec.Category,
		"confidence", rec.Confidence)
	return rec, nil
}

// formatTransactionForAI formats transaction data for AI analysis.
func formatTransactionForAI(transaction api.TransactionInput) string {
	return fmt.Sprintf(`Transaction Details:
- Type: %s
- Amount: %.2f
- Description: %s`,
		transaction.Type,
		transaction.Amount,
		transaction.Description,
	)
}

// formatCategoriesForAI formats available categories for AI analysis.
func formatCategoriesForAI(categories []string) string {
	var sb strings.Builder
	sb.WriteString("Available Categories:\n")
	for _, c := range categories {
		fmt.Fprintf(&sb, "- %s\n", c)
	}
	return sb.String()
}

// AnthropicProvider implements AIProvider for Anthropic's Claude API.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider creates a new Anthropic AI provider.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &AnthropicProvider{
		client: &client,
	}
}

// RecommendCategory implements AIProvider interface.
func (p *AnthropicProvider) RecommendCategory(
	ctx context.Context,
	transaction api.TransactionInput,
	categories []string,
) (*CategoryRecommendation, error) {
	prompt := buildPrompt(transaction, categories)

	log.Debug("sending categorization request to Anthropic", "description", transaction.Description)

	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     "claude-3-haiku-20240307",
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	var responseText string
	if len(response.Content) > 0 {
		responseText = response.Content[0].Text
	}

	if responseText == "" {
		return nil, errors.New("empty response from Anthropic API")
	}

	recommendation, err := parseRecommendation(responseText, categories)
	if err != nil {
		log.Error("failed to parse Anthropic response", "error", err, "response", responseText)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return recommendation, nil
}

// buildPrompt constructs the prompt for category recommendation.
func buildPrompt(transaction api.TransactionInput, categories []string) string {
	return fmt.Sprintf(`You are a financial transaction categorization expert.
Please analyze the following transaction and recommend the most appropriate category from the available options.

%s

%s

Please respond with ONLY a JSON object in this exact format:
{
  "category": "<one of the available categories>",
  "confidence": <number between 0-100>,
  "reasoning": "<brief explanation>"
}

Guidelines:
- Choose the category that best matches the transaction based on its type, amount and description
- Confidence should reflect how certain you are (100 = very certain, 50 = moderate, 0 = just guessing)
- Keep reasoning brief (1-2 sentences max)
- If no category seems appropriate, choose the closest match and set confidence low`,
		formatTransactionForAI(transaction), formatCategoriesForAI(categories))
}

// parseRecommendation extracts the JSON object from a model response and
// matches its category against the available ones.
func parseRecommendation(response string, categories []string) (*CategoryRecommendation, error) {
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end < start {
		return nil, fmt.Errorf("no JSON found in response: %s", response)
	}

	var result CategoryRecommendation
	if err := json.Unmarshal([]byte(response[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	var category string
	for _, c := range categories {
		if strings.EqualFold(c, strings.TrimSpace(result.Category)) {
			category = c
			break
		}
	}
	if category == "" {
		return nil, fmt.Errorf("recommended category %q not found in available categories", result.Category)
	}

	result.Category = category
	result.Confidence = max(0, min(result.Confidence, maxConfidenceScore))

	return &result, nil
}
