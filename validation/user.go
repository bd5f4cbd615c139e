package validation

// ValidateLoginForm checks the sign-in form.
func ValidateLoginForm(data Fields) FormResult {
	v := newFormValidator(data)

	v.require(FieldEmail, FieldPassword)
	v.set(FieldEmail, checkEmail(data[FieldEmail]))

	return v.result()
}

// ValidateRegisterForm checks the sign-up form.
func ValidateRegisterForm(data Fields) FormResult {
	v := newFormValidator(data)

	v.require(FieldName, FieldEmail, FieldPassword)
	v.set(FieldEmail, checkEmail(data[FieldEmail]))
	v.set(FieldName, checkName(data[FieldName]))
	v.set(FieldPassword, checkPassword(data[FieldPassword]))

	return v.result()
}

// ValidateEmail checks a required email address.
func ValidateEmail(email any) FieldResult {
	return field(FieldEmail, email, checkEmail)
}

// ValidatePassword checks a required password against the minimum length.
func ValidatePassword(password any) FieldResult {
	return field(FieldPassword, password, checkPassword)
}

func checkName(v any) string {
	return checkMaxLength(v, MaxNameLength, NameTooLong)
}

// Passwords are measured untrimmed.
func checkPassword(v any) string {
	if !present(v) {
		return ""
	}
	if len([]rune(stringOf(v))) < MinPasswordLength {
		return PasswordTooShort(MinPasswordLength)
	}
	return ""
}
