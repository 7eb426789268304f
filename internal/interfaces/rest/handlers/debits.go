package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/paywrap/ezidebit-gateway/internal/application"
	"github.com/paywrap/ezidebit-gateway/internal/domain"
	"github.com/paywrap/ezidebit-gateway/internal/interfaces/rest"
)

const debitDateFormat = "2006-01-02"

type bankDebitRequest struct {
	CustomerRef      string `json:"customer_ref"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	PaymentReference string `json:"payment_reference"`
	AmountCents      int64  `json:"amount_cents"`
	DebitDate        string `json:"debit_date"`
	AccountName      string `json:"account_name"`
	BSB              string `json:"bsb"`
	AccountNumber    string `json:"account_number"`
}

type cardDebitRequest struct {
	CustomerRef      string `json:"customer_ref"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	PaymentReference string `json:"payment_reference"`
	AmountCents      int64  `json:"amount_cents"`
	DebitDate        string `json:"debit_date"`
	CardName         string `json:"card_name"`
	CardNumber       string `json:"card_number"`
	CardExpiry       string `json:"card_expiry"`
}

type paymentRequest struct {
	CustomerRef      string `json:"customer_ref"`
	PaymentReference string `json:"payment_reference"`
	AmountCents      int64  `json:"amount_cents"`
	DebitDate        string `json:"debit_date"`
}

func (h *Handlers) AddBankDebit(c *gin.Context) {
	var req bankDebitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewValidationError("invalid request body: %v", err))
		return
	}

	debitDate, err := parseDebitDate(req.DebitDate)
	if err != nil {
		writeError(c, err)
		return
	}

	cmd := application.BankDebitCommand{
		CustomerRef:      req.CustomerRef,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PaymentReference: req.PaymentReference,
		AmountCents:      req.AmountCents,
		DebitDate:        debitDate,
		AccountName:      req.AccountName,
		BSB:              req.BSB,
		AccountNumber:    req.AccountNumber,
	}

	if err := h.service.AddBankDebit(c.Request.Context(), cmd); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rest.SuccessResponse{Success: true})
}

func (h *Handlers) AddCardDebit(c *gin.Context) {
	var req cardDebitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewValidationError("invalid request body: %v", err))
		return
	}

	debitDate, err := parseDebitDate(req.DebitDate)
	if err != nil {
		writeError(c, err)
		return
	}

	cmd := application.CardDebitCommand{
		CustomerRef:      req.CustomerRef,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PaymentReference: req.PaymentReference,
		AmountCents:      req.AmountCents,
		DebitDate:        debitDate,
		CardName:         req.CardName,
		CardNumber:       req.CardNumber,
		CardExpiry:       req.CardExpiry,
	}

	if err := h.service.AddCardDebit(c.Request.Context(), cmd); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rest.SuccessResponse{Success: true})
}

func (h *Handlers) AddPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewValidationError("invalid request body: %v", err))
		return
	}

	debitDate, err := parseDebitDate(req.DebitDate)
	if err != nil {
		writeError(c, err)
		return
	}

	cmd := application.PaymentCommand{
		CustomerRef:      req.CustomerRef,
		PaymentReference: req.PaymentReference,
		AmountCents:      req.AmountCents,
		DebitDate:        debitDate,
	}

	if err := h.service.AddPayment(c.Request.Context(), cmd); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rest.SuccessResponse{Success: true})
}

func parseDebitDate(s string) (time.Time, error) {
	d, err := time.Parse(debitDateFormat, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("debit_date %q is not in YYYY-MM-DD format", s)
	}
	return d, nil
}

func writeError(c *gin.Context, err error) {
	status, body := rest.MapError(err)
	c.JSON(status, body)
}
