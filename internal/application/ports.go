package application

import (
	"context"

	"github.com/paywrap/ezidebit-gateway/internal/domain"
)

// GatewayClient is the outbound port to Ezidebit. The SOAP implementation
// lives in internal/infrastructure/ezidebit.
type GatewayClient interface {
	AddBankDebit(ctx context.Context, customer domain.Customer, payment domain.Payment, account domain.BankAccount) error
	AddCardDebit(ctx context.Context, customer domain.Customer, payment domain.Payment, card domain.CreditCard) error
	AddPayment(ctx context.Context, customer domain.CustomerRef, payment domain.Payment) error
	ClearSchedule(ctx context.Context, customerID domain.EzidebitCustomerID) error
	GetCustomerDetails(ctx context.Context, customerID domain.EzidebitCustomerID) (*domain.CustomerDetails, error)
	EditCustomerBankAccount(ctx context.Context, customerID domain.EzidebitCustomerID, account domain.BankAccount, updatedBy string) error
	EditCustomerCreditCard(ctx context.Context, customerID domain.EzidebitCustomerID, card domain.CreditCard, updatedBy string) error
}
