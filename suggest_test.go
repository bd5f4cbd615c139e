package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/rshep3087/ledgerly/api"
)

type fakeProvider struct {
	rec        *CategoryRecommendation
	err        error
	categories []string
}

func (f *fakeProvider) RecommendCategory(
	_ context.Context,
	_ api.TransactionInput,
	categories []string,
) (*CategoryRecommendation, error) {
	f.categories = categories
	return f.rec, f.err
}

func TestParseRecommendation(t *testing.T) {
	categories := []string{"Food", "Rent", "Salary"}

	tests := []struct {
		name       string
		response   string
		category   string
		confidence float64
		wantErr    bool
	}{
		{
			name:       "plain json",
			response:   `{"category": "Food", "confidence": 80, "reasoning": "groceries"}`,
			category:   "Food",
			confidence: 80,
		},
		{
			name:       "wrapped in prose and case mismatch",
			response:   "Sure!\n```json\n{\"category\": \"rent\", \"confidence\": 55}\n```",
			category:   "Rent",
			confidence: 55,
		},
		{
			name:       "confidence clamped high",
			response:   `{"category": "Salary", "confidence": 150}`,
			category:   "Salary",
			confidence: 100,
		},
		{
			name:       "confidence clamped low",
			response:   `{"category": "Salary", "confidence": -3}`,
			category:   "Salary",
			confidence: 0,
		},
		{name: "no json", response: "I think Food", wantErr: true},
		{name: "bad json", response: `{"category": }`, wantErr: true},
		{name: "unknown category", response: `{"category": "Travel", "confidence": 90}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := parseRecommendation(tt.response, categories)
			if tt.wantErr {
				be.Nonzero(t, err)
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.category, rec.Category)
			be.Equal(t, tt.confidence, rec.Confidence)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt(api.TransactionInput{
		Type:        "expense",
		Amount:      12.5,
		Description: "Corner shop",
	}, []string{"Food", "Rent"})

	be.True(t, strings.Contains(prompt, "- Type: expense"))
	be.True(t, strings.Contains(prompt, "- Amount: 12.50"))
	be.True(t, strings.Contains(prompt, "- Description: Corner shop"))
	be.True(t, strings.Contains(prompt, "- Food\n- Rent\n"))
}

func TestAIRecommender(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r := NewAIRecommender(nil)
		be.False(t, r.IsEnabled())
		_, err := r.Recommend(context.Background(), api.TransactionInput{}, []string{"Food"})
		be.True(t, errors.Is(err, ErrSuggestionsDisabled))
	})

	t.Run("no categories", func(t *testing.T) {
		r := NewAIRecommender(&fakeProvider{})
		_, err := r.Recommend(context.Background(), api.TransactionInput{}, nil)
		be.Nonzero(t, err)
	})

	t.Run("provider result", func(t *testing.T) {
		p := &fakeProvider{rec: &CategoryRecommendation{Category: "Food", Confidence: 70}}
		r := NewAIRecommender(p)
		be.True(t, r.IsEnabled())

		rec, err := r.Recommend(context.Background(), api.TransactionInput{}, []string{"Food"})
		be.NilErr(t, err)
		be.Equal(t, "Food", rec.Category)
		be.Equal(t, 1, len(p.categories))
		be.Equal(t, "Food", p.categories[0])
	})

	t.Run("provider error", func(t *testing.T) {
		boom := errors.New("boom")
		r := NewAIRecommender(&fakeProvider{err: boom})
		_, err := r.Recommend(context.Background(), api.TransactionInput{}, []string{"Food"})
		be.True(t, errors.Is(err, boom))
	})
}
