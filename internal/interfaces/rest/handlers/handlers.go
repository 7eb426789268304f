package handlers

import (
	"context"
	"log/slog"

	"github.com/paywrap/ezidebit-gateway/internal/application"
	"github.com/paywrap/ezidebit-gateway/internal/domain"
)

// PaymentService is what the HTTP layer needs from the application layer.
type PaymentService interface {
	AddBankDebit(ctx context.Context, cmd application.BankDebitCommand) error
	AddCardDebit(ctx context.Context, cmd application.CardDebitCommand) error
	AddPayment(ctx context.Context, cmd application.PaymentCommand) error
	ClearSchedule(ctx context.Context, customerID string) error
	GetCustomerDetails(ctx context.Context, customerID string) (*domain.CustomerDetails, error)
	EditBankAccount(ctx context.Context, cmd application.EditBankAccountCommand) error
	EditCreditCard(ctx context.Context, cmd application.EditCreditCardCommand) error
}

type Handlers struct {
	service PaymentService
	logger  *slog.Logger
}

func NewHandlers(service PaymentService, logger *slog.Logger) *Handlers {
	return &Handlers{
		service: service,
		logger:  logger,
	}
}
