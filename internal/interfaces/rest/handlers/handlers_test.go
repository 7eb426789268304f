package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paywrap/ezidebit-gateway/internal/application"
	"github.com/paywrap/ezidebit-gateway/internal/domain"
	"github.com/paywrap/ezidebit-gateway/internal/interfaces/rest"
	"github.com/paywrap/ezidebit-gateway/internal/interfaces/rest/handlers"
)

type mockService struct {
	AddBankDebitFn       func(ctx context.Context, cmd application.BankDebitCommand) error
	AddCardDebitFn       func(ctx context.Context, cmd application.CardDebitCommand) error
	AddPaymentFn         func(ctx context.Context, cmd application.PaymentCommand) error
	ClearScheduleFn      func(ctx context.Context, customerID string) error
	GetCustomerDetailsFn func(ctx context.Context, customerID string) (*domain.CustomerDetails, error)
	EditBankAccountFn    func(ctx context.Context, cmd application.EditBankAccountCommand) error
	EditCreditCardFn     func(ctx context.Context, cmd application.EditCreditCardCommand) error
}

func (m *mockService) AddBankDebit(ctx context.Context, cmd application.BankDebitCommand) error {
	if m.AddBankDebitFn != nil {
		return m.AddBankDebitFn(ctx, cmd)
	}
	return nil
}

func (m *mockService) AddCardDebit(ctx context.Context, cmd application.CardDebitCommand) error {
	if m.AddCardDebitFn != nil {
		return m.AddCardDebitFn(ctx, cmd)
	}
	return nil
}

func (m *mockService) AddPayment(ctx context.Context, cmd application.PaymentCommand) error {
	if m.AddPaymentFn != nil {
		return m.AddPaymentFn(ctx, cmd)
	}
	return nil
}

func (m *mockService) ClearSchedule(ctx context.Context, customerID string) error {
	if m.ClearScheduleFn != nil {
		return m.ClearScheduleFn(ctx, customerID)
	}
	return nil
}

func (m *mockService) GetCustomerDetails(ctx context.Context, customerID string) (*domain.CustomerDetails, error) {
	if m.GetCustomerDetailsFn != nil {
		return m.GetCustomerDetailsFn(ctx, customerID)
	}
	return &domain.CustomerDetails{}, nil
}

func (m *mockService) EditBankAccount(ctx context.Context, cmd application.EditBankAccountCommand) error {
	if m.EditBankAccountFn != nil {
		return m.EditBankAccountFn(ctx, cmd)
	}
	return nil
}

func (m *mockService) EditCreditCard(ctx context.Context, cmd application.EditCreditCardCommand) error {
	if m.EditCreditCardFn != nil {
		return m.EditCreditCardFn(ctx, cmd)
	}
	return nil
}

func newTestRouter(svc *mockService) http.Handler {
	h := handlers.NewHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return rest.NewRouter(h)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddBankDebit_Success(t *testing.T) {
	var got application.BankDebitCommand
	svc := &mockService{
		AddBankDebitFn: func(ctx context.Context, cmd application.BankDebitCommand) error {
			got = cmd
			return nil
		},
	}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/debits/bank", `{
		"customer_ref": "user-17",
		"first_name": "Ana",
		"last_name": "Silva",
		"email": "ana@example.com",
		"payment_reference": "INV-2041",
		"amount_cents": 12500,
		"debit_date": "2026-09-14",
		"account_name": "A Silva",
		"bsb": "062-000",
		"account_number": "12345678"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-17", got.CustomerRef)
	assert.Equal(t, int64(12500), got.AmountCents)
	assert.Equal(t, "2026-09-14", got.DebitDate.Format("2006-01-02"))
}

func TestAddBankDebit_BadDate(t *testing.T) {
	router := newTestRouter(&mockService{})

	w := doRequest(t, router, http.MethodPost, "/api/v1/debits/bank", `{
		"customer_ref": "user-17",
		"debit_date": "14/09/2026"
	}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp rest.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.KindValidation), resp.Error.Code)
}

func TestAddCardDebit_GatewayErrorIs422(t *testing.T) {
	svc := &mockService{
		AddCardDebitFn: func(ctx context.Context, cmd application.CardDebitCommand) error {
			return domain.NewGatewayError("Invalid credit card number entered")
		},
	}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/debits/card", `{
		"customer_ref": "user-17",
		"last_name": "Silva",
		"payment_reference": "INV-2041",
		"amount_cents": 12500,
		"debit_date": "2026-09-14",
		"card_name": "ANA SILVA",
		"card_number": "4111111111111111",
		"card_expiry": "04/27"
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp rest.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credit card number entered", resp.Error.Message)
}

func TestAddPayment_ConnectionErrorIs502(t *testing.T) {
	svc := &mockService{
		AddPaymentFn: func(ctx context.Context, cmd application.PaymentCommand) error {
			return domain.NewConnectionError(context.DeadlineExceeded)
		},
	}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodPost, "/api/v1/payments", `{
		"customer_ref": "user-17",
		"payment_reference": "INV-2042",
		"amount_cents": 900,
		"debit_date": "2026-10-01"
	}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp rest.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ConnectionErrorMessage, resp.Error.Message)
}

func TestGetCustomer_ReturnsDetails(t *testing.T) {
	svc := &mockService{
		GetCustomerDetailsFn: func(ctx context.Context, customerID string) (*domain.CustomerDetails, error) {
			assert.Equal(t, "321409", customerID)
			return &domain.CustomerDetails{
				EziDebitCustomerID:  "321409",
				YourSystemReference: "user-17",
				FirstName:           "Ana",
				StatusCode:          "A",
			}, nil
		},
	}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/api/v1/customers/321409", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ezidebit_customer_id":"321409"`)
	assert.Contains(t, w.Body.String(), `"your_system_reference":"user-17"`)
}

func TestClearSchedule_DelegatesCustomerID(t *testing.T) {
	var got string
	svc := &mockService{
		ClearScheduleFn: func(ctx context.Context, customerID string) error {
			got = customerID
			return nil
		},
	}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodDelete, "/api/v1/customers/321409/schedule", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "321409", got)
}

func TestEditCreditCard_DelegatesCommand(t *testing.T) {
	var got application.EditCreditCardCommand
	svc := &mockService{
		EditCreditCardFn: func(ctx context.Context, cmd application.EditCreditCardCommand) error {
			got = cmd
			return nil
		},
	}
	router := newTestRouter(svc)

	w := doRequest(t, router, http.MethodPut, "/api/v1/customers/321409/credit-card", `{
		"card_name": "ANA SILVA",
		"card_number": "4111111111111111",
		"card_expiry": "11/29",
		"updated_by": "admin"
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "321409", got.CustomerID)
	assert.Equal(t, "11/29", got.CardExpiry)
	assert.Equal(t, "admin", got.UpdatedBy)
}
