package ezidebit

import (
	"context"
	"log/slog"
	"time"

	"github.com/hooklift/gowsdl/soap"

	"github.com/paywrap/ezidebit-gateway/internal/application"
	"github.com/paywrap/ezidebit-gateway/internal/config"
	"github.com/paywrap/ezidebit-gateway/internal/domain"
)

const debitDateFormat = "2006-01-02"

// SOAPGatewayClient talks to the two Ezidebit WSDL endpoints: the PCI
// endpoint for operations carrying raw bank/card credentials and the
// non-PCI endpoint for reference-only operations.
type SOAPGatewayClient struct {
	pciEndpoint    string
	nonPCIEndpoint string
	digitalKey     string
	callTimeout    time.Duration
	logger         *slog.Logger
}

func NewGatewayClient(cfg config.EzidebitConfig, logger *slog.Logger) application.GatewayClient {
	return &SOAPGatewayClient{
		pciEndpoint:    cfg.PCIEndpoint,
		nonPCIEndpoint: cfg.NonPCIEndpoint,
		digitalKey:     cfg.DigitalKey,
		callTimeout:    cfg.CallTimeout,
		logger:         logger,
	}
}

func (c *SOAPGatewayClient) AddBankDebit(ctx context.Context, customer domain.Customer, payment domain.Payment, account domain.BankAccount) error {
	req := &addBankDebitRequest{
		DigitalKey:            c.digitalKey,
		YourSystemReference:   string(customer.Reference),
		LastName:              customer.LastName,
		FirstName:             customer.FirstName,
		EmailAddress:          customer.Email,
		PaymentReference:      payment.Reference,
		BankAccountName:       account.AccountName,
		BankAccountBSB:        account.BSB,
		BankAccountNumber:     account.AccountNumber,
		PaymentAmountInCents:  payment.AmountCents,
		DebitDate:             payment.DebitDate.Format(debitDateFormat),
		SmsPaymentReminder:    "NO",
		SmsFailedNotification: "NO",
		SmsExpiredCard:        "NO",
	}

	var resp addBankDebitResponse
	if err := c.call(ctx, c.pciEndpoint, "AddBankDebit", req, &resp); err != nil {
		return err
	}
	return resp.Result.reject()
}

func (c *SOAPGatewayClient) AddCardDebit(ctx context.Context, customer domain.Customer, payment domain.Payment, card domain.CreditCard) error {
	req := &addCardDebitRequest{
		DigitalKey:            c.digitalKey,
		YourSystemReference:   string(customer.Reference),
		LastName:              customer.LastName,
		FirstName:             customer.FirstName,
		EmailAddress:          customer.Email,
		PaymentReference:      payment.Reference,
		NameOnCreditCard:      card.NameOnCard,
		CreditCardNumber:      card.Number,
		CreditCardExpiryYear:  card.Expiry.Year,
		CreditCardExpiryMonth: card.Expiry.Month,
		PaymentAmountInCents:  payment.AmountCents,
		DebitDate:             payment.DebitDate.Format(debitDateFormat),
		SmsPaymentReminder:    "NO",
		SmsFailedNotification: "NO",
		SmsExpiredCard:        "NO",
	}

	var resp addCardDebitResponse
	if err := c.call(ctx, c.pciEndpoint, "AddCardDebit", req, &resp); err != nil {
		return err
	}
	return resp.Result.reject()
}

func (c *SOAPGatewayClient) AddPayment(ctx context.Context, customer domain.CustomerRef, payment domain.Payment) error {
	req := &addPaymentRequest{
		DigitalKey:           c.digitalKey,
		YourSystemReference:  string(customer),
		DebitDate:            payment.DebitDate.Format(debitDateFormat),
		PaymentAmountInCents: payment.AmountCents,
		PaymentReference:     payment.Reference,
	}

	var resp addPaymentResponse
	if err := c.call(ctx, c.nonPCIEndpoint, "AddPayment", req, &resp); err != nil {
		return err
	}
	return resp.Result.reject()
}

func (c *SOAPGatewayClient) ClearSchedule(ctx context.Context, customerID domain.EzidebitCustomerID) error {
	req := &clearScheduleRequest{
		DigitalKey:         c.digitalKey,
		EziDebitCustomerID: string(customerID),
		// Manual payments are never kept. Fixed policy, not caller-selectable.
		KeepManualPayments: "NO",
	}

	var resp clearScheduleResponse
	if err := c.call(ctx, c.nonPCIEndpoint, "ClearSchedule", req, &resp); err != nil {
		return err
	}
	return resp.Result.reject()
}

func (c *SOAPGatewayClient) GetCustomerDetails(ctx context.Context, customerID domain.EzidebitCustomerID) (*domain.CustomerDetails, error) {
	req := &getCustomerDetailsRequest{
		DigitalKey:         c.digitalKey,
		EziDebitCustomerID: string(customerID),
	}

	var resp getCustomerDetailsResponse
	if err := c.call(ctx, c.nonPCIEndpoint, "GetCustomerDetails", req, &resp); err != nil {
		return nil, err
	}

	data := resp.Result.Data
	if data == nil {
		return nil, domain.NewGatewayError(resp.Result.ErrorMessage)
	}

	return &domain.CustomerDetails{
		EziDebitCustomerID:      data.EziDebitCustomerID,
		YourSystemReference:     data.YourSystemReference,
		YourGeneralReference:    data.YourGeneralReference,
		FirstName:               data.FirstName,
		LastName:                data.LastName,
		Email:                   data.EmailAddress,
		MobilePhoneNumber:       data.MobilePhoneNumber,
		DateCreated:             data.DateCreated,
		StatusCode:              data.StatusCode,
		StatusDescription:       data.StatusDescription,
		PaymentMethod:           data.PaymentMethod,
		TotalPaymentsSuccessful: data.TotalPaymentsSuccessful,
		TotalPaymentsFailed:     data.TotalPaymentsFailed,
	}, nil
}

func (c *SOAPGatewayClient) EditCustomerBankAccount(ctx context.Context, customerID domain.EzidebitCustomerID, account domain.BankAccount, updatedBy string) error {
	req := &editCustomerBankAccountRequest{
		DigitalKey:         c.digitalKey,
		EziDebitCustomerID: string(customerID),
		BankAccountName:    account.AccountName,
		BankAccountBSB:     account.BSB,
		BankAccountNumber:  account.AccountNumber,
		Reactivate:         "YES",
		Username:           updatedBy,
	}

	var resp editCustomerBankAccountResponse
	if err := c.call(ctx, c.pciEndpoint, "EditCustomerBankAccount", req, &resp); err != nil {
		return err
	}
	return resp.Result.reject()
}

func (c *SOAPGatewayClient) EditCustomerCreditCard(ctx context.Context, customerID domain.EzidebitCustomerID, card domain.CreditCard, updatedBy string) error {
	req := &editCustomerCreditCardRequest{
		DigitalKey:            c.digitalKey,
		EziDebitCustomerID:    string(customerID),
		NameOnCreditCard:      card.NameOnCard,
		CreditCardNumber:      card.Number,
		CreditCardExpiryMonth: card.Expiry.Month,
		CreditCardExpiryYear:  card.Expiry.Year,
		Reactivate:            "YES",
		Username:              updatedBy,
	}

	var resp editCustomerCreditCardResponse
	if err := c.call(ctx, c.pciEndpoint, "EditCustomerCreditCard", req, &resp); err != nil {
		return err
	}
	return resp.Result.reject()
}

// call builds a fresh SOAP client, issues a single operation against it
// and normalizes transport failures. Any error raised by the transport,
// including SOAP faults, surfaces as a connection error with a fixed
// message; the cause is kept for logs only.
func (c *SOAPGatewayClient) call(ctx context.Context, endpoint, action string, req, resp interface{}) error {
	client := soap.NewClient(endpoint, soap.WithTimeout(c.callTimeout))

	if err := client.CallContext(ctx, Namespace+action, req, resp); err != nil {
		c.logger.Debug("soap call failed", "action", action, "endpoint", endpoint, "error", err)
		return domain.NewConnectionError(err)
	}

	c.logger.Debug("soap call completed", "action", action, "response", resp)
	return nil
}

func (r stringResult) reject() error {
	if r.Data == "" {
		return domain.NewGatewayError(r.ErrorMessage)
	}
	return nil
}
