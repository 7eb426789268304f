package application

import (
	"context"

	"github.com/paywrap/ezidebit-gateway/internal/domain"
)

// MockGatewayClient records calls and delegates to per-method Fn hooks.
type MockGatewayClient struct {
	AddBankDebitFn            func(ctx context.Context, customer domain.Customer, payment domain.Payment, account domain.BankAccount) error
	AddCardDebitFn            func(ctx context.Context, customer domain.Customer, payment domain.Payment, card domain.CreditCard) error
	AddPaymentFn              func(ctx context.Context, customer domain.CustomerRef, payment domain.Payment) error
	ClearScheduleFn           func(ctx context.Context, customerID domain.EzidebitCustomerID) error
	GetCustomerDetailsFn      func(ctx context.Context, customerID domain.EzidebitCustomerID) (*domain.CustomerDetails, error)
	EditCustomerBankAccountFn func(ctx context.Context, customerID domain.EzidebitCustomerID, account domain.BankAccount, updatedBy string) error
	EditCustomerCreditCardFn  func(ctx context.Context, customerID domain.EzidebitCustomerID, card domain.CreditCard, updatedBy string) error

	Calls []string
}

func (m *MockGatewayClient) AddBankDebit(ctx context.Context, customer domain.Customer, payment domain.Payment, account domain.BankAccount) error {
	m.Calls = append(m.Calls, "AddBankDebit")
	if m.AddBankDebitFn != nil {
		return m.AddBankDebitFn(ctx, customer, payment, account)
	}
	return nil
}

func (m *MockGatewayClient) AddCardDebit(ctx context.Context, customer domain.Customer, payment domain.Payment, card domain.CreditCard) error {
	m.Calls = append(m.Calls, "AddCardDebit")
	if m.AddCardDebitFn != nil {
		return m.AddCardDebitFn(ctx, customer, payment, card)
	}
	return nil
}

func (m *MockGatewayClient) AddPayment(ctx context.Context, customer domain.CustomerRef, payment domain.Payment) error {
	m.Calls = append(m.Calls, "AddPayment")
	if m.AddPaymentFn != nil {
		return m.AddPaymentFn(ctx, customer, payment)
	}
	return nil
}

func (m *MockGatewayClient) ClearSchedule(ctx context.Context, customerID domain.EzidebitCustomerID) error {
	m.Calls = append(m.Calls, "ClearSchedule")
	if m.ClearScheduleFn != nil {
		return m.ClearScheduleFn(ctx, customerID)
	}
	return nil
}

func (m *MockGatewayClient) GetCustomerDetails(ctx context.Context, customerID domain.EzidebitCustomerID) (*domain.CustomerDetails, error) {
	m.Calls = append(m.Calls, "GetCustomerDetails")
	if m.GetCustomerDetailsFn != nil {
		return m.GetCustomerDetailsFn(ctx, customerID)
	}
	return &domain.CustomerDetails{}, nil
}

func (m *MockGatewayClient) EditCustomerBankAccount(ctx context.Context, customerID domain.EzidebitCustomerID, account domain.BankAccount, updatedBy string) error {
	m.Calls = append(m.Calls, "EditCustomerBankAccount")
	if m.EditCustomerBankAccountFn != nil {
		return m.EditCustomerBankAccountFn(ctx, customerID, account, updatedBy)
	}
	return nil
}

func (m *MockGatewayClient) EditCustomerCreditCard(ctx context.Context, customerID domain.EzidebitCustomerID, card domain.CreditCard, updatedBy string) error {
	m.Calls = append(m.Calls, "EditCustomerCreditCard")
	if m.EditCustomerCreditCardFn != nil {
		return m.EditCustomerCreditCardFn(ctx, customerID, card, updatedBy)
	}
	return nil
}
