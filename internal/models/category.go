package models

// CategoryType separates income categories from expense categories
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Category groups transactions for reporting
type Category struct {
	ID       int64        `json:"id"`
	Name     string       `json:"name"`
	Type     CategoryType `json:"type"`
	Color    string       `json:"color,omitempty"`
	IsActive bool         `json:"is_active"`
}

// CategoryInput is the body sent when creating or updating a category
type CategoryInput struct {
	Name  string       `json:"name,omitempty"`
	Type  CategoryType `json:"type,omitempty"`
	Color string       `json:"color,omitempty"`
}
