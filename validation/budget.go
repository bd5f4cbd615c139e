package validation

// ValidateBudgetForm checks a budget form: a category and a spending limit
// are required, the title is optional.
func ValidateBudgetForm(data Fields) FormResult {
	v := newFormValidator(data)

	v.require(FieldCategory, FieldAmount)
	v.set(FieldAmount, checkAmount(data[FieldAmount], MinBudgetAmount))
	v.set(FieldTitle, checkBudgetTitle(data[FieldTitle]))

	return v.result()
}

// ValidateBudgetAmount checks a budget limit on its own.
func ValidateBudgetAmount(amount any) FieldResult {
	return field(FieldAmount, amount, func(v any) string {
		return checkAmount(v, MinBudgetAmount)
	})
}

func checkBudgetTitle(v any) string {
	return checkMaxLength(v, MaxBudgetTitleLength, TitleTooLong)
}
