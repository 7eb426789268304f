package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paywrap/ezidebit-gateway/internal/application"
	"github.com/paywrap/ezidebit-gateway/internal/domain"
	"github.com/paywrap/ezidebit-gateway/internal/interfaces/rest"
)

type editBankAccountRequest struct {
	AccountName   string `json:"account_name"`
	BSB           string `json:"bsb"`
	AccountNumber string `json:"account_number"`
	UpdatedBy     string `json:"updated_by"`
}

type editCreditCardRequest struct {
	CardName   string `json:"card_name"`
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	UpdatedBy  string `json:"updated_by"`
}

type customerDetailsResponse struct {
	EziDebitCustomerID      string `json:"ezidebit_customer_id"`
	YourSystemReference     string `json:"your_system_reference"`
	YourGeneralReference    string `json:"your_general_reference"`
	FirstName               string `json:"first_name"`
	LastName                string `json:"last_name"`
	Email                   string `json:"email"`
	MobilePhoneNumber       string `json:"mobile_phone_number"`
	DateCreated             string `json:"date_created"`
	StatusCode              string `json:"status_code"`
	StatusDescription       string `json:"status_description"`
	PaymentMethod           string `json:"payment_method"`
	TotalPaymentsSuccessful int    `json:"total_payments_successful"`
	TotalPaymentsFailed     int    `json:"total_payments_failed"`
}

func (h *Handlers) GetCustomer(c *gin.Context) {
	details, err := h.service.GetCustomerDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rest.SuccessResponse{
		Success: true,
		Data:    toCustomerDetailsResponse(details),
	})
}

func (h *Handlers) ClearSchedule(c *gin.Context) {
	if err := h.service.ClearSchedule(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rest.SuccessResponse{Success: true})
}

func (h *Handlers) EditBankAccount(c *gin.Context) {
	var req editBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewValidationError("invalid request body: %v", err))
		return
	}

	cmd := application.EditBankAccountCommand{
		CustomerID:    c.Param("id"),
		AccountName:   req.AccountName,
		BSB:           req.BSB,
		AccountNumber: req.AccountNumber,
		UpdatedBy:     req.UpdatedBy,
	}

	if err := h.service.EditBankAccount(c.Request.Context(), cmd); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rest.SuccessResponse{Success: true})
}

func (h *Handlers) EditCreditCard(c *gin.Context) {
	var req editCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.NewValidationError("invalid request body: %v", err))
		return
	}

	cmd := application.EditCreditCardCommand{
		CustomerID: c.Param("id"),
		CardName:   req.CardName,
		CardNumber: req.CardNumber,
		CardExpiry: req.CardExpiry,
		UpdatedBy:  req.UpdatedBy,
	}

	if err := h.service.EditCreditCard(c.Request.Context(), cmd); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rest.SuccessResponse{Success: true})
}

func toCustomerDetailsResponse(d *domain.CustomerDetails) customerDetailsResponse {
	return customerDetailsResponse{
		EziDebitCustomerID:      d.EziDebitCustomerID,
		YourSystemReference:     d.YourSystemReference,
		YourGeneralReference:    d.YourGeneralReference,
		FirstName:               d.FirstName,
		LastName:                d.LastName,
		Email:                   d.Email,
		MobilePhoneNumber:       d.MobilePhoneNumber,
		DateCreated:             d.DateCreated,
		StatusCode:              d.StatusCode,
		StatusDescription:       d.StatusDescription,
		PaymentMethod:           d.PaymentMethod,
		TotalPaymentsSuccessful: d.TotalPaymentsSuccessful,
		TotalPaymentsFailed:     d.TotalPaymentsFailed,
	}
}
