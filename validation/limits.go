// Package validation holds the form rules of the ledgerly client: the limits
// every form is checked against, the closed set of transaction types, the
// user-facing message catalog and the validators that apply them.
//
// Validators never return errors. They report field-level diagnostics through
// FormResult and FieldResult so a UI can render them inline.
package validation

// Transaction limits.
const (
	MinTransactionAmount = 0.05
	MaxDescriptionLength = 90
)

// Budget limits.
const (
	MinBudgetAmount      = 0.05
	MaxBudgetTitleLength = 50
)

// Planned payment limits.
const (
	MinPlannedPaymentAmount      = 0.05
	MaxPlannedPaymentTitleLength = 50
	MinDueDay                    = 1
	MaxDueDay                    = 31
)

// User limits.
const (
	MinPasswordLength = 6
	MaxNameLength     = 50
)

// TransactionLimits bounds the transaction form.
type TransactionLimits struct {
	MinAmount            float64 `json:"minAmount"`
	MaxDescriptionLength int     `json:"maxDescriptionLength"`
}

// BudgetLimits bounds the budget form.
type BudgetLimits struct {
	MinAmount      float64 `json:"minAmount"`
	MaxTitleLength int     `json:"maxTitleLength"`
}

// PlannedPaymentLimits bounds the planned payment form.
type PlannedPaymentLimits struct {
	MinAmount      float64 `json:"minAmount"`
	MaxTitleLength int     `json:"maxTitleLength"`
	MinDueDay      int     `json:"minDueDay"`
	MaxDueDay      int     `json:"maxDueDay"`
}

// UserLimits bounds the login and register forms.
type UserLimits struct {
	MinPasswordLength int `json:"minPasswordLength"`
	MaxNameLength     int `json:"maxNameLength"`
}

// Limits groups the bounds of every form area.
type Limits struct {
	Transaction    TransactionLimits    `json:"transaction"`
	Budget         BudgetLimits         `json:"budget"`
	PlannedPayment PlannedPaymentLimits `json:"plannedPayment"`
	User           UserLimits           `json:"user"`
}

// DefaultLimits returns a copy of the limits the validators enforce.
func DefaultLimits() Limits {
	return Limits{
		Transaction: TransactionLimits{
			MinAmount:            MinTransactionAmount,
			MaxDescriptionLength: MaxDescriptionLength,
		},
		Budget: BudgetLimits{
			MinAmount:      MinBudgetAmount,
			MaxTitleLength: MaxBudgetTitleLength,
		},
		PlannedPayment: PlannedPaymentLimits{
			MinAmount:      MinPlannedPaymentAmount,
			MaxTitleLength: MaxPlannedPaymentTitleLength,
			MinDueDay:      MinDueDay,
			MaxDueDay:      MaxDueDay,
		},
		User: UserLimits{
			MinPasswordLength: MinPasswordLength,
			MaxNameLength:     MaxNameLength,
		},
	}
}

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionTypes returns every valid transaction type.
func TransactionTypes() []TransactionType {
	return []TransactionType{TransactionTypeIncome, TransactionTypeExpense}
}

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	}
	return false
}

func (t TransactionType) String() string {
	return string(t)
}
