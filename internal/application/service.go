package application

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator"

	"github.com/paywrap/ezidebit-gateway/internal/domain"
)

// PaymentService validates caller input and delegates to the gateway
// client. Every method is a single remote call; failures surface
// immediately, there are no retries.
type PaymentService struct {
	client   GatewayClient
	validate *validator.Validate
	logger   *slog.Logger
}

func NewPaymentService(client GatewayClient, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		client:   client,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *PaymentService) AddBankDebit(ctx context.Context, cmd BankDebitCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.NewValidationError("invalid bank debit request: %v", err)
	}

	customer := domain.Customer{
		Reference: domain.CustomerRef(cmd.CustomerRef),
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
	}
	payment := domain.Payment{
		Reference:   cmd.PaymentReference,
		AmountCents: cmd.AmountCents,
		DebitDate:   cmd.DebitDate,
	}
	account := domain.BankAccount{
		AccountName:   cmd.AccountName,
		BSB:           cmd.BSB,
		AccountNumber: cmd.AccountNumber,
	}

	s.logger.Info("adding bank debit",
		"customer", cmd.CustomerRef,
		"payment_ref", cmd.PaymentReference,
		"amount_cents", cmd.AmountCents,
	)
	return s.client.AddBankDebit(ctx, customer, payment, account)
}

func (s *PaymentService) AddCardDebit(ctx context.Context, cmd CardDebitCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.NewValidationError("invalid card debit request: %v", err)
	}

	expiry, err := domain.ParseCardExpiry(cmd.CardExpiry)
	if err != nil {
		return err
	}

	customer := domain.Customer{
		Reference: domain.CustomerRef(cmd.CustomerRef),
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
	}
	payment := domain.Payment{
		Reference:   cmd.PaymentReference,
		AmountCents: cmd.AmountCents,
		DebitDate:   cmd.DebitDate,
	}
	card := domain.CreditCard{
		NameOnCard: cmd.CardName,
		Number:     cmd.CardNumber,
		Expiry:     expiry,
	}

	s.logger.Info("adding card debit",
		"customer", cmd.CustomerRef,
		"payment_ref", cmd.PaymentReference,
		"amount_cents", cmd.AmountCents,
	)
	return s.client.AddCardDebit(ctx, customer, payment, card)
}

func (s *PaymentService) AddPayment(ctx context.Context, cmd PaymentCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.NewValidationError("invalid payment request: %v", err)
	}

	payment := domain.Payment{
		Reference:   cmd.PaymentReference,
		AmountCents: cmd.AmountCents,
		DebitDate:   cmd.DebitDate,
	}

	s.logger.Info("scheduling payment",
		"customer", cmd.CustomerRef,
		"payment_ref", cmd.PaymentReference,
		"amount_cents", cmd.AmountCents,
	)
	return s.client.AddPayment(ctx, domain.CustomerRef(cmd.CustomerRef), payment)
}

func (s *PaymentService) ClearSchedule(ctx context.Context, customerID string) error {
	if customerID == "" {
		return domain.NewValidationError("customer id is required")
	}

	s.logger.Info("clearing payment schedule", "customer_id", customerID)
	return s.client.ClearSchedule(ctx, domain.EzidebitCustomerID(customerID))
}

func (s *PaymentService) GetCustomerDetails(ctx context.Context, customerID string) (*domain.CustomerDetails, error) {
	if customerID == "" {
		return nil, domain.NewValidationError("customer id is required")
	}

	return s.client.GetCustomerDetails(ctx, domain.EzidebitCustomerID(customerID))
}

func (s *PaymentService) EditBankAccount(ctx context.Context, cmd EditBankAccountCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.NewValidationError("invalid bank account update: %v", err)
	}

	account := domain.BankAccount{
		AccountName:   cmd.AccountName,
		BSB:           cmd.BSB,
		AccountNumber: cmd.AccountNumber,
	}

	s.logger.Info("switching customer to bank account",
		"customer_id", cmd.CustomerID,
		"updated_by", cmd.UpdatedBy,
	)
	return s.client.EditCustomerBankAccount(ctx, domain.EzidebitCustomerID(cmd.CustomerID), account, cmd.UpdatedBy)
}

func (s *PaymentService) EditCreditCard(ctx context.Context, cmd EditCreditCardCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.NewValidationError("invalid credit card update: %v", err)
	}

	expiry, err := domain.ParseCardExpiry(cmd.CardExpiry)
	if err != nil {
		return err
	}

	card := domain.CreditCard{
		NameOnCard: cmd.CardName,
		Number:     cmd.CardNumber,
		Expiry:     expiry,
	}

	s.logger.Info("switching customer to credit card",
		"customer_id", cmd.CustomerID,
		"updated_by", cmd.UpdatedBy,
	)
	return s.client.EditCustomerCreditCard(ctx, domain.EzidebitCustomerID(cmd.CustomerID), card, cmd.UpdatedBy)
}
