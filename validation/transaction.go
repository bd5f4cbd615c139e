package validation

// ValidateTransactionForm checks a transaction form. Every check runs; a
// field keeps the message of the last check that rejected it.
//
// Note that a numeric zero amount is reported as missing rather than as an
// invalid amount, because zero counts as not filled in. The string "0" is
// present and is reported as an invalid amount.
func ValidateTransactionForm(data Fields) FormResult {
	v := newFormValidator(data)

	v.require(FieldType, FieldAmount, FieldCategory)
	v.set(FieldType, checkTransactionType(data[FieldType]))
	v.set(FieldAmount, checkAmount(data[FieldAmount], MinTransactionAmount))
	v.set(FieldDescription, checkDescription(data[FieldDescription]))

	return v.result()
}

// ValidateAmount checks a transaction amount on its own, for live feedback
// while the user types. It agrees with ValidateTransactionForm.
func ValidateAmount(amount any) FieldResult {
	return field(FieldAmount, amount, func(v any) string {
		return checkAmount(v, MinTransactionAmount)
	})
}

// ValidateDescription checks an optional transaction description.
func ValidateDescription(description any) FieldResult {
	return optionalField(description, checkDescription)
}

// ValidateCategory checks that a category is filled in. Whitespace counts as
// filled in, same as in ValidateTransactionForm.
func ValidateCategory(category any) FieldResult {
	return field(FieldCategory, category, func(any) string { return "" })
}

// ValidateTransactionType checks a transaction type on its own.
func ValidateTransactionType(t any) FieldResult {
	return field(FieldType, t, checkTransactionType)
}

func checkDescription(v any) string {
	return checkMaxLength(v, MaxDescriptionLength, DescriptionTooLong)
}
