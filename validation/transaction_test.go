package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestValidateTransactionForm(t *testing.T) {
	tests := []struct {
		name     string
		data     Fields
		expected map[string]string
	}{
		{
			name: "valid expense",
			data: Fields{"type": "expense", "amount": "12.50", "category": "food", "description": "lunch"},
		},
		{
			name: "valid income without description",
			data: Fields{"type": "income", "amount": "100", "category": "salary"},
		},
		{
			name: "empty form",
			data: Fields{},
			expected: map[string]string{
				FieldType:     Required(FieldType),
				FieldAmount:   Required(FieldAmount),
				FieldCategory: Required(FieldCategory),
			},
		},
		{
			name:     "missing category only",
			data:     Fields{"type": "expense", "amount": "5"},
			expected: map[string]string{FieldCategory: Required(FieldCategory)},
		},
		{
			name:     "unknown type",
			data:     Fields{"type": "transfer", "amount": "5", "category": "bank"},
			expected: map[string]string{FieldType: InvalidTransactionType},
		},
		{
			name:     "empty type is missing not invalid",
			data:     Fields{"type": "", "amount": "5", "category": "bank"},
			expected: map[string]string{FieldType: Required(FieldType)},
		},
		{
			name:     "nil type is missing not invalid",
			data:     Fields{"type": nil, "amount": "5", "category": "bank"},
			expected: map[string]string{FieldType: Required(FieldType)},
		},
		{
			name:     "amount below minimum",
			data:     Fields{"type": "expense", "amount": "0.04", "category": "food"},
			expected: map[string]string{FieldAmount: InvalidAmount},
		},
		{
			name: "amount at minimum",
			data: Fields{"type": "expense", "amount": "0.05", "category": "food"},
		},
		{
			name:     "string zero is an invalid amount",
			data:     Fields{"type": "expense", "amount": "0", "category": "food"},
			expected: map[string]string{FieldAmount: InvalidAmount},
		},
		{
			name:     "numeric zero is a missing amount",
			data:     Fields{"type": "expense", "amount": 0, "category": "food"},
			expected: map[string]string{FieldAmount: Required(FieldAmount)},
		},
		{
			name:     "negative number",
			data:     Fields{"type": "expense", "amount": -1, "category": "food"},
			expected: map[string]string{FieldAmount: InvalidAmount},
		},
		{
			name:     "not a number",
			data:     Fields{"type": "expense", "amount": "abc", "category": "food"},
			expected: map[string]string{FieldAmount: InvalidAmount},
		},
		{
			name: "numeric prefix is read",
			data: Fields{"type": "expense", "amount": "12abc", "category": "food"},
		},
		{
			name:     "description too long",
			data:     Fields{"type": "income", "amount": "1", "category": "gift", "description": strings.Repeat("x", 91)},
			expected: map[string]string{FieldDescription: DescriptionTooLong(MaxDescriptionLength)},
		},
		{
			name: "padded description within limit",
			data: Fields{"type": "income", "amount": "1", "category": "gift", "description": "   " + strings.Repeat("x", 90) + "\t\n"},
		},
		{
			name: "amount and description both rejected",
			data: Fields{"type": "expense", "amount": "0.04", "category": "food", "description": strings.Repeat("x", 95)},
			expected: map[string]string{
				FieldAmount:      InvalidAmount,
				FieldDescription: DescriptionTooLong(MaxDescriptionLength),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateTransactionForm(tt.data)

			be.Equal(t, len(tt.expected) == 0, result.IsValid())
			be.Equal(t, len(tt.expected), len(result.Errors))
			for field, msg := range tt.expected {
				be.Equal(t, msg, result.Error(field))
			}
		})
	}
}

func TestValidateTransactionFormExample(t *testing.T) {
	result := ValidateTransactionForm(Fields{
		"type":        "expense",
		"amount":      "0.04",
		"description": strings.Repeat("x", 95),
		"category":    "food",
	})

	be.False(t, result.IsValid())
	be.Equal(t, InvalidAmount, result.Error(FieldAmount))
	be.True(t, strings.Contains(result.Error(FieldDescription), "90"))
	be.Equal(t, "", result.Error(FieldType))
	be.Equal(t, "", result.Error(FieldCategory))
}

func TestValidateTransactionFormMissingFieldsIndependentOfOthers(t *testing.T) {
	descriptions := []any{nil, "ok", strings.Repeat("y", 200)}

	for _, d := range descriptions {
		result := ValidateTransactionForm(Fields{"description": d})
		be.False(t, result.IsValid())
		be.Equal(t, Required(FieldType), result.Error(FieldType))
		be.Equal(t, Required(FieldAmount), result.Error(FieldAmount))
		be.Equal(t, Required(FieldCategory), result.Error(FieldCategory))
		be.Equal(t, MissingFields([]string{FieldType, FieldAmount, FieldCategory}), result.Summary())
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   any
		expected string
	}{
		{name: "empty string", amount: "", expected: Required(FieldAmount)},
		{name: "nil", amount: nil, expected: Required(FieldAmount)},
		{name: "string zero", amount: "0", expected: InvalidAmount},
		{name: "numeric zero", amount: 0, expected: Required(FieldAmount)},
		{name: "letters", amount: "abc", expected: InvalidAmount},
		{name: "minimum", amount: "0.05", expected: ""},
		{name: "hundred", amount: "100", expected: ""},
		{name: "negative int", amount: -1, expected: InvalidAmount},
		{name: "float", amount: 12.5, expected: ""},
		{name: "leading whitespace", amount: "  7", expected: ""},
		{name: "exponent", amount: "5e-3", expected: InvalidAmount},
		{name: "infinity", amount: "Infinity", expected: ""},
		{name: "lone dot", amount: ".", expected: InvalidAmount},
		{name: "NaN float", amount: math.NaN(), expected: Required(FieldAmount)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateAmount(tt.amount)
			be.Equal(t, tt.expected, result.Error)
			be.Equal(t, tt.expected == "", result.IsValid())
		})
	}
}

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name        string
		description any
		valid       bool
	}{
		{name: "absent", description: nil, valid: true},
		{name: "empty", description: "", valid: true},
		{name: "at limit", description: strings.Repeat("a", 90), valid: true},
		{name: "over limit", description: strings.Repeat("a", 91), valid: false},
		{name: "padded at limit", description: "  " + strings.Repeat("a", 90) + "  ", valid: true},
		{name: "multibyte at limit", description: strings.Repeat("é", 90), valid: true},
		{name: "whitespace only", description: strings.Repeat(" ", 200), valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateDescription(tt.description)
			be.Equal(t, tt.valid, result.IsValid())
			if !tt.valid {
				be.True(t, strings.Contains(result.Error, "90"))
			}
		})
	}
}

func TestSingleFieldValidatorsAgreeWithForm(t *testing.T) {
	amounts := []any{"", "0", "abc", "0.05", "100", -1, 0, 0.049, "1e2", " 3", nil, true, "-0"}
	for _, amount := range amounts {
		form := ValidateTransactionForm(Fields{"type": "income", "amount": amount, "category": "x"})
		be.Equal(t, form.Error(FieldAmount), ValidateAmount(amount).Error)
	}

	categories := []any{nil, "", " ", "Food", 0, 7}
	for _, c := range categories {
		form := ValidateTransactionForm(Fields{"type": "income", "amount": "1", "category": c})
		be.Equal(t, form.Error(FieldCategory), ValidateCategory(c).Error)
	}

	descriptions := []any{nil, "", "short", strings.Repeat("z", 90), strings.Repeat("z", 91), 12345}
	for _, d := range descriptions {
		form := ValidateTransactionForm(Fields{"type": "income", "amount": "1", "category": "x", "description": d})
		be.Equal(t, form.Error(FieldDescription), ValidateDescription(d).Error)
	}
}

func FuzzAmountAgreement(f *testing.F) {
	for _, seed := range []string{"", "0", "abc", "0.05", "100", "-1", "0.0499", "  12", "1e-9", "Infinity"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, amount string) {
		form := ValidateTransactionForm(Fields{"type": "expense", "amount": amount, "category": "food"})
		field := ValidateAmount(amount)
		if form.Error(FieldAmount) != field.Error {
			t.Fatalf("amount %q: form %q, field %q", amount, form.Error(FieldAmount), field.Error)
		}

		n := parseNumber(amount)
		if amount != "" && !math.IsNaN(n) && n >= MinTransactionAmount && !field.IsValid() {
			t.Fatalf("amount %q parses to %v but was rejected", amount, n)
		}
	})
}

func FuzzDescriptionAgreement(f *testing.F) {
	for _, seed := range []string{"", " ", "hello", strings.Repeat("x", 90), strings.Repeat("x", 91)} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, description string) {
		form := ValidateTransactionForm(Fields{"type": "income", "amount": "1", "category": "x", "description": description})
		field := ValidateDescription(description)
		if form.Error(FieldDescription) != field.Error {
			t.Fatalf("description %q: form %q, field %q", description, form.Error(FieldDescription), field.Error)
		}
		if (trimmedLength(description) > MaxDescriptionLength) == field.IsValid() {
			t.Fatalf("description %q: unexpected verdict %v", description, field.IsValid())
		}
	})
}

func TestTransactionType(t *testing.T) {
	be.True(t, TransactionTypeIncome.IsValid())
	be.True(t, TransactionTypeExpense.IsValid())
	be.False(t, TransactionType("transfer").IsValid())
	be.False(t, TransactionType("").IsValid())
	be.Equal(t, 2, len(TransactionTypes()))

	be.Equal(t, "", ValidateTransactionType("income").Error)
	be.Equal(t, InvalidTransactionType, ValidateTransactionType("Income").Error)
	be.Equal(t, Required(FieldType), ValidateTransactionType("").Error)
}
