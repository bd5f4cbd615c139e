package validation

// ValidatePlannedPaymentForm checks a planned (recurring) payment form.
func ValidatePlannedPaymentForm(data Fields) FormResult {
	v := newFormValidator(data)

	v.require(FieldTitle, FieldType, FieldAmount, FieldCategory, FieldDueDay)
	v.set(FieldType, checkTransactionType(data[FieldType]))
	v.set(FieldAmount, checkAmount(data[FieldAmount], MinPlannedPaymentAmount))
	v.set(FieldTitle, checkPlannedPaymentTitle(data[FieldTitle]))
	v.set(FieldDueDay, checkDueDay(data[FieldDueDay]))

	return v.result()
}

// ValidateTitle checks a required planned payment title.
func ValidateTitle(title any) FieldResult {
	return field(FieldTitle, title, checkPlannedPaymentTitle)
}

// ValidateDueDay checks a required day of month.
func ValidateDueDay(day any) FieldResult {
	return field(FieldDueDay, day, checkDueDay)
}

func checkPlannedPaymentTitle(v any) string {
	return checkMaxLength(v, MaxPlannedPaymentTitleLength, TitleTooLong)
}
