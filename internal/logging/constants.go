package logging

// Standardized field names for structured logging.
const (
	FieldStatementID   = "statement_id"
	FieldInstallmentID = "installment_id"
	FieldTransactionID = "transaction_id"
	FieldCardID        = "credit_card_id"
	FieldOperation     = "operation"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatusCode    = "status_code"
	FieldRequestID     = "request_id"
	FieldGeneration    = "generation"
	FieldFormat        = "format"
	FieldOutputFile    = "output_file"
)

// Operation names used with FieldOperation.
const (
	OpLoadStatement   = "load_statement"
	OpLoadCard        = "load_card"
	OpLoadTransaction = "load_transactions"
	OpLoadInstallment = "load_installments"
	OpEnrich          = "enrich_installments"
	OpMarkPaid        = "mark_statement_paid"
	OpMarkInstallment = "mark_installment_paid"
	OpRender          = "render"
	OpImport          = "import_transactions"
)
