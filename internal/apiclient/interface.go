package apiclient

import (
	"context"

	"fjacquet/finance-cli/internal/models"
)

// StatementAPI covers statement reads and writes
type StatementAPI interface {
	GetStatementDetail(ctx context.Context, id int64) (*models.Statement, error)
	ListStatements(ctx context.Context, cardID int64) ([]models.Statement, error)
	CreateStatement(ctx context.Context, in models.StatementInput) (*models.Statement, error)
	UpdateStatement(ctx context.Context, id int64, in models.StatementInput) (*models.Statement, error)
	MarkStatementPaid(ctx context.Context, id int64) error
	DeleteStatement(ctx context.Context, id int64) error
}

// CardAPI covers credit card operations
type CardAPI interface {
	GetCard(ctx context.Context, id int64) (*models.CreditCard, error)
	ListCards(ctx context.Context) ([]models.CreditCard, error)
	CreateCard(ctx context.Context, in models.CreditCardInput) (*models.CreditCard, error)
	UpdateCard(ctx context.Context, id int64, in models.CreditCardInput) (*models.CreditCard, error)
	DeleteCard(ctx context.Context, id int64) error
	RestoreCard(ctx context.Context, id int64) error
}

// TransactionAPI covers transaction operations
type TransactionAPI interface {
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListStatementTransactions(ctx context.Context, statementID int64) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, in models.TransactionInput) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, in models.TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

// InstallmentAPI covers installment operations
type InstallmentAPI interface {
	ListStatementInstallments(ctx context.Context, statementID int64) ([]models.Installment, error)
	MarkInstallmentPaid(ctx context.Context, id int64) error
}

// BankAPI covers bank operations
type BankAPI interface {
	ListBanks(ctx context.Context) ([]models.Bank, error)
	CreateBank(ctx context.Context, in models.BankInput) (*models.Bank, error)
	UpdateBank(ctx context.Context, id int64, in models.BankInput) (*models.Bank, error)
	DeleteBank(ctx context.Context, id int64) error
	RestoreBank(ctx context.Context, id int64) error
}

// CategoryAPI covers category operations
type CategoryAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	RestoreCategory(ctx context.Context, id int64) error
}

// AccountAPI covers account reads
type AccountAPI interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
}

// API is the full surface of the finance REST API used by the CLI
type API interface {
	StatementAPI
	CardAPI
	TransactionAPI
	InstallmentAPI
	BankAPI
	CategoryAPI
	AccountAPI
}
