package backend

import (
	"context"
	"fmt"
)

// TransactionPayload is the create payload shared by incomes and expenses.
// The id is the importer's temporary id; the backend assigns its own.
type TransactionPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Currency    string  `json:"currency"`
	UserID      int     `json:"user_id"`
	AccountID   int     `json:"account_id"`
	CategoryID  int     `json:"category_id"`
	SourceID    *int    `json:"source_id,omitempty"`
	PlaceID     *int    `json:"place_id,omitempty"`
}

// TransactionRecord is a persisted income or expense as returned by the
// backend.
type TransactionRecord struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Currency    string  `json:"currency"`
	UserID      int     `json:"user_id"`
	AccountID   int     `json:"account_id"`
	CategoryID  int     `json:"category_id"`
	SourceID    *int    `json:"source_id,omitempty"`
	PlaceID     *int    `json:"place_id,omitempty"`
}

// Category is an income or expense category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateIncome persists one income candidate.
func (c *Client) CreateIncome(ctx context.Context, p TransactionPayload) (*TransactionRecord, error) {
	var rec TransactionRecord
	if err := c.do(ctx, "POST", "/incomes", p, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateExpense persists one expense candidate.
func (c *Client) CreateExpense(ctx context.Context, p TransactionPayload) (*TransactionRecord, error) {
	var rec TransactionRecord
	if err := c.do(ctx, "POST", "/expenses", p, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetIncomes lists all incomes.
func (c *Client) GetIncomes(ctx context.Context) ([]TransactionRecord, error) {
	var recs []TransactionRecord
	if err := c.do(ctx, "GET", "/incomes", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// GetExpenses lists all expenses.
func (c *Client) GetExpenses(ctx context.Context) ([]TransactionRecord, error) {
	var recs []TransactionRecord
	if err := c.do(ctx, "GET", "/expenses", nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// GetIncome fetches one income by id.
func (c *Client) GetIncome(ctx context.Context, id int64) (*TransactionRecord, error) {
	var rec TransactionRecord
	if err := c.do(ctx, "GET", fmt.Sprintf("/incomes/%d", id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetExpense fetches one expense by id.
func (c *Client) GetExpense(ctx context.Context, id int64) (*TransactionRecord, error) {
	var rec TransactionRecord
	if err := c.do(ctx, "GET", fmt.Sprintf("/expenses/%d", id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateIncome patches an income by id.
func (c *Client) UpdateIncome(ctx context.Context, id int64, p TransactionPayload) (*TransactionRecord, error) {
	var rec TransactionRecord
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/incomes/%d", id), p, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateExpense patches an expense by id.
func (c *Client) UpdateExpense(ctx context.Context, id int64, p TransactionPayload) (*TransactionRecord, error) {
	var rec TransactionRecord
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/expenses/%d", id), p, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteIncome removes an income by id.
func (c *Client) DeleteIncome(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/incomes/%d", id), nil, nil)
}

// DeleteExpense removes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/expenses/%d", id), nil, nil)
}

// ListIncomeCategories returns the income category reference list.
func (c *Client) ListIncomeCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.do(ctx, "GET", "/income_categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// ListExpenseCategories returns the expense category reference list.
func (c *Client) ListExpenseCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.do(ctx, "GET", "/expenses_categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateIncomeCategory creates an income category by name.
func (c *Client) CreateIncomeCategory(ctx context.Context, name string) (*Category, error) {
	var cat Category
	if err := c.do(ctx, "POST", "/income_categories", Category{Name: name}, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateExpenseCategory creates an expense category by name.
func (c *Client) CreateExpenseCategory(ctx context.Context, name string) (*Category, error) {
	var cat Category
	if err := c.do(ctx, "POST", "/expenses_categories", Category{Name: name}, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}
