package application

import "time"

// BankDebitCommand registers or updates a bank-debit mandate and
// schedules a debit. Existing scheduled payments are retained remotely.
type BankDebitCommand struct {
	CustomerRef      string `validate:"required"`
	FirstName        string
	LastName         string `validate:"required"`
	Email            string
	PaymentReference string    `validate:"required"`
	AmountCents      int64     `validate:"required,gt=0"`
	DebitDate        time.Time `validate:"required"`
	AccountName      string    `validate:"required"`
	BSB              string    `validate:"required"`
	AccountNumber    string    `validate:"required"`
}

// CardDebitCommand is the card counterpart of BankDebitCommand.
// CardExpiry is the caller-facing "MM/YY" form.
type CardDebitCommand struct {
	CustomerRef      string `validate:"required"`
	FirstName        string
	LastName         string `validate:"required"`
	Email            string
	PaymentReference string    `validate:"required"`
	AmountCents      int64     `validate:"required,gt=0"`
	DebitDate        time.Time `validate:"required"`
	CardName         string    `validate:"required"`
	CardNumber       string    `validate:"required"`
	CardExpiry       string    `validate:"required"`
}

// PaymentCommand schedules an additional debit against an existing mandate.
type PaymentCommand struct {
	CustomerRef      string    `validate:"required"`
	PaymentReference string    `validate:"required"`
	AmountCents      int64     `validate:"required,gt=0"`
	DebitDate        time.Time `validate:"required"`
}

// EditBankAccountCommand switches a customer to bank-account debits,
// reactivating the customer if their account went inactive.
type EditBankAccountCommand struct {
	CustomerID    string `validate:"required"`
	AccountName   string `validate:"required"`
	BSB           string `validate:"required"`
	AccountNumber string `validate:"required"`
	UpdatedBy     string `validate:"required"`
}

// EditCreditCardCommand is the card counterpart of EditBankAccountCommand.
type EditCreditCardCommand struct {
	CustomerID string `validate:"required"`
	CardName   string `validate:"required"`
	CardNumber string `validate:"required"`
	CardExpiry string `validate:"required"`
	UpdatedBy  string `validate:"required"`
}
