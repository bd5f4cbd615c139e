package validation

import (
	"fmt"
	"strings"
)

// Fixed messages.
const (
	InvalidTransactionType = "Please select a valid transaction type (income or expense)"
	InvalidAmount          = "Please enter a valid amount of at least 0.05"
	InvalidEmail           = "Please enter a valid email address"
	InvalidDueDay          = "Due day must be a whole number between 1 and 31"
)

// Field names used as keys in Fields and FormResult.Errors.
const (
	FieldType        = "type"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldTitle       = "title"
	FieldDueDay      = "dueDay"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
)

// Label returns the human-readable name of a form field.
func Label(field string) string {
	switch field {
	case FieldType:
		return "Type"
	case FieldAmount:
		return "Amount"
	case FieldDescription:
		return "Description"
	case FieldCategory:
		return "Category"
	case FieldTitle:
		return "Title"
	case FieldDueDay:
		return "Due day"
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	}
	return field
}

// Required is the message for a missing field.
func Required(field string) string {
	return fmt.Sprintf("%s is required", Label(field))
}

// MissingFields summarises every missing field in one message.
func MissingFields(fields []string) string {
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = Label(f)
	}
	return fmt.Sprintf("Please fill in the required fields: %s", strings.Join(labels, ", "))
}

// DescriptionTooLong is the message for a description over max characters.
func DescriptionTooLong(maxLen int) string {
	return fmt.Sprintf("Description cannot exceed %d characters", maxLen)
}

// TitleTooLong is the message for a title over max characters.
func TitleTooLong(maxLen int) string {
	return fmt.Sprintf("Title cannot exceed %d characters", maxLen)
}

// NameTooLong is the message for a name over max characters.
func NameTooLong(maxLen int) string {
	return fmt.Sprintf("Name cannot exceed %d characters", maxLen)
}

// PasswordTooShort is the message for a password under min characters.
func PasswordTooShort(minLen int) string {
	return fmt.Sprintf("Password must be at least %d characters", minLen)
}
