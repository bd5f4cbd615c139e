package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// ErrInvalidID is returned when a transaction id would not name a single
// transaction once placed in a URL path.
var ErrInvalidID = errors.New("invalid transaction id")

// dateLayout is the wire format of date-only query parameters.
const dateLayout = "2006-01-02"

// Transaction is a stored income or expense.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TransactionInput is the body of create and update requests.
type TransactionInput struct {
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// TransactionFilters narrows GET /transactions. Zero values are omitted.
type TransactionFilters struct {
	Type      string
	Category  string
	StartDate time.Time
	EndDate   time.Time
	Search    string
	Page      int
	Limit     int
}

// Values encodes the filters as query parameters.
func (f TransactionFilters) Values() url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if !f.StartDate.IsZero() {
		q.Set("startDate", f.StartDate.Format(dateLayout))
	}
	if !f.EndDate.IsZero() {
		q.Set("endDate", f.EndDate.Format(dateLayout))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// TransactionPage is one page of GET /transactions.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	TotalPages   int           `json:"totalPages"`
}

// BudgetCheck is the answer of GET /transactions/check-budget.
type BudgetCheck struct {
	Category    string  `json:"category"`
	HasBudget   bool    `json:"hasBudget"`
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Remaining   float64 `json:"remaining"`
	PercentUsed float64 `json:"percentUsed"`
	WouldExceed bool    `json:"wouldExceed"`
	Message     string  `json:"message,omitempty"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// TransactionService covers the /transactions endpoints.
type TransactionService struct {
	client *Client
}

// NewTransactionService returns a TransactionService using client.
func NewTransactionService(client *Client) *TransactionService {
	return &TransactionService{client: client}
}

// List returns a page of transactions matching filters.
func (s *TransactionService) List(ctx context.Context, filters TransactionFilters) (*TransactionPage, error) {
	var page TransactionPage
	if err := s.client.Get(ctx, "/transactions", filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns one transaction.
func (s *TransactionService) Get(ctx context.Context, id string) (*Transaction, error) {
	path, err := transactionPath(id)
	if err != nil {
		return nil, err
	}
	var t Transaction
	if err := s.client.Get(ctx, path, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create stores a new transaction.
func (s *TransactionService) Create(ctx context.Context, in TransactionInput) (*Transaction, error) {
	var t Transaction
	if err := s.client.Post(ctx, "/transactions", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update replaces a transaction.
func (s *TransactionService) Update(ctx context.Context, id string, in TransactionInput) (*Transaction, error) {
	path, err := transactionPath(id)
	if err != nil {
		return nil, err
	}
	var t Transaction
	if err := s.client.Put(ctx, path, in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a transaction.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	path, err := transactionPath(id)
	if err != nil {
		return err
	}
	return s.client.Delete(ctx, path, nil)
}

// Categories returns the category names known to the backend.
func (s *TransactionService) Categories(ctx context.Context) ([]string, error) {
	var resp categoriesResponse
	if err := s.client.Get(ctx, "/transactions/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// CheckBudget asks whether spending amount in category fits its budget.
func (s *TransactionService) CheckBudget(ctx context.Context, category string, amount float64) (*BudgetCheck, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	var check BudgetCheck
	if err := s.client.Get(ctx, "/transactions/check-budget", q, &check); err != nil {
		return nil, err
	}
	return &check, nil
}

// transactionPath builds the item path. Dot segments are rejected since
// path cleaning would turn them into the collection or its parent.
func transactionPath(id string) (string, error) {
	switch id {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return "/transactions/" + url.PathEscape(id), nil
}
