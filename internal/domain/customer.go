package domain

import "time"

// CustomerRef is the caller-side identifier Ezidebit knows a payer by
// (sent as YourSystemReference).
type CustomerRef string

// EzidebitCustomerID is the identifier Ezidebit assigns on its side.
type EzidebitCustomerID string

// Customer carries the payer fields Ezidebit requires on mandate creation.
type Customer struct {
	Reference CustomerRef
	FirstName string
	LastName  string
	Email     string
}

// BankAccount is a bank-debit mandate tuple.
type BankAccount struct {
	AccountName   string
	BSB           string
	AccountNumber string
}

// CreditCard is a card-debit mandate tuple.
type CreditCard struct {
	NameOnCard string
	Number     string
	Expiry     CardExpiry
}

// Payment is a single debit to be scheduled against a mandate. Reference
// is the caller-supplied idempotency token understood by Ezidebit.
type Payment struct {
	Reference   string
	AmountCents int64
	DebitDate   time.Time
}

// CustomerDetails is the remote-side customer record returned by
// GetCustomerDetails, passed through unchanged.
type CustomerDetails struct {
	EziDebitCustomerID      string
	YourSystemReference     string
	YourGeneralReference    string
	FirstName               string
	LastName                string
	Email                   string
	MobilePhoneNumber       string
	DateCreated             string
	StatusCode              string
	StatusDescription       string
	PaymentMethod           string
	TotalPaymentsSuccessful int
	TotalPaymentsFailed     int
}
