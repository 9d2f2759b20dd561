package models

// Bank is a financial institution that issues accounts and cards
type Bank struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Country  string `json:"country,omitempty"`
	IsActive bool   `json:"is_active"`
}

// BankInput is the body sent when creating or updating a bank
type BankInput struct {
	Name    string `json:"name,omitempty"`
	Country string `json:"country,omitempty"`
}
