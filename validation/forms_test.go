package validation

import (
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestValidateBudgetForm(t *testing.T) {
	tests := []struct {
		name     string
		data     Fields
		expected map[string]string
	}{
		{
			name: "valid",
			data: Fields{"category": "food", "amount": "300"},
		},
		{
			name: "missing everything",
			data: Fields{},
			expected: map[string]string{
				FieldCategory: Required(FieldCategory),
				FieldAmount:   Required(FieldAmount),
			},
		},
		{
			name:     "limit below minimum",
			data:     Fields{"category": "food", "amount": "0.01"},
			expected: map[string]string{FieldAmount: InvalidAmount},
		},
		{
			name:     "title too long",
			data:     Fields{"category": "food", "amount": "10", "title": strings.Repeat("t", 51)},
			expected: map[string]string{FieldTitle: TitleTooLong(MaxBudgetTitleLength)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateBudgetForm(tt.data)
			be.Equal(t, len(tt.expected) == 0, result.IsValid())
			be.Equal(t, len(tt.expected), len(result.Errors))
			for field, msg := range tt.expected {
				be.Equal(t, msg, result.Error(field))
			}
		})
	}

	be.Equal(t, InvalidAmount, ValidateBudgetAmount("abc").Error)
	be.Equal(t, Required(FieldAmount), ValidateBudgetAmount("").Error)
}

func TestValidatePlannedPaymentForm(t *testing.T) {
	valid := func() Fields {
		return Fields{"title": "Rent", "type": "expense", "amount": "950", "category": "housing", "dueDay": "1"}
	}

	tests := []struct {
		name     string
		modify   func(Fields)
		expected map[string]string
	}{
		{name: "valid", modify: func(Fields) {}},
		{
			name:     "due day numeric",
			modify:   func(f Fields) { f["dueDay"] = 31 },
			expected: nil,
		},
		{
			name:     "due day zero is missing",
			modify:   func(f Fields) { f["dueDay"] = 0 },
			expected: map[string]string{FieldDueDay: Required(FieldDueDay)},
		},
		{
			name:     "due day out of range",
			modify:   func(f Fields) { f["dueDay"] = "32" },
			expected: map[string]string{FieldDueDay: InvalidDueDay},
		},
		{
			name:     "due day fractional",
			modify:   func(f Fields) { f["dueDay"] = "2.5" },
			expected: map[string]string{FieldDueDay: InvalidDueDay},
		},
		{
			name:     "bad type",
			modify:   func(f Fields) { f["type"] = "transfer" },
			expected: map[string]string{FieldType: InvalidTransactionType},
		},
		{
			name:     "long title",
			modify:   func(f Fields) { f["title"] = strings.Repeat("r", 51) },
			expected: map[string]string{FieldTitle: TitleTooLong(MaxPlannedPaymentTitleLength)},
		},
		{
			name: "missing title and amount",
			modify: func(f Fields) {
				delete(f, "title")
				f["amount"] = ""
			},
			expected: map[string]string{
				FieldTitle:  Required(FieldTitle),
				FieldAmount: Required(FieldAmount),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid()
			tt.modify(data)

			result := ValidatePlannedPaymentForm(data)
			be.Equal(t, len(tt.expected) == 0, result.IsValid())
			be.Equal(t, len(tt.expected), len(result.Errors))
			for field, msg := range tt.expected {
				be.Equal(t, msg, result.Error(field))
			}
		})
	}

	be.Equal(t, "", ValidateDueDay("15").Error)
	be.Equal(t, InvalidDueDay, ValidateDueDay(-3).Error)
	be.Equal(t, Required(FieldTitle), ValidateTitle("").Error)
	be.Equal(t, "", ValidateTitle("Gym").Error)
}

func TestValidateLoginForm(t *testing.T) {
	be.True(t, ValidateLoginForm(Fields{"email": "a@b.co", "password": "x"}).IsValid())

	result := ValidateLoginForm(Fields{"email": "not-an-email"})
	be.Equal(t, InvalidEmail, result.Error(FieldEmail))
	be.Equal(t, Required(FieldPassword), result.Error(FieldPassword))
	be.Equal(t, MissingFields([]string{FieldPassword}), result.Summary())
}

func TestValidateRegisterForm(t *testing.T) {
	tests := []struct {
		name     string
		data     Fields
		expected map[string]string
	}{
		{
			name: "valid",
			data: Fields{"name": "Ada", "email": "ada@example.com", "password": "secret1"},
		},
		{
			name:     "short password",
			data:     Fields{"name": "Ada", "email": "ada@example.com", "password": "abc"},
			expected: map[string]string{FieldPassword: PasswordTooShort(MinPasswordLength)},
		},
		{
			name:     "long name",
			data:     Fields{"name": strings.Repeat("n", 51), "email": "ada@example.com", "password": "secret1"},
			expected: map[string]string{FieldName: NameTooLong(MaxNameLength)},
		},
		{
			name: "all missing",
			data: Fields{},
			expected: map[string]string{
				FieldName:     Required(FieldName),
				FieldEmail:    Required(FieldEmail),
				FieldPassword: Required(FieldPassword),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateRegisterForm(tt.data)
			be.Equal(t, len(tt.expected) == 0, result.IsValid())
			be.Equal(t, len(tt.expected), len(result.Errors))
			for field, msg := range tt.expected {
				be.Equal(t, msg, result.Error(field))
			}
		})
	}

	be.Equal(t, "", ValidateEmail("me@host.io").Error)
	be.Equal(t, InvalidEmail, ValidateEmail("me@host").Error)
	be.Equal(t, PasswordTooShort(MinPasswordLength), ValidatePassword("12345").Error)
	be.Equal(t, "", ValidatePassword("123456").Error)
}
