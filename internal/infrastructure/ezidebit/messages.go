package ezidebit

import "encoding/xml"

// Namespace is the Ezidebit WSDL target namespace. Operation and field
// names below are fixed by the remote service and must match it exactly.
const Namespace = "https://px.ezidebit.com.au/"

// Request payloads deliberately carry no omitempty: Ezidebit returns a
// vague error when any expected field is missing from the envelope, so
// empty fields are always transmitted as empty strings.

type addBankDebitRequest struct {
	XMLName               xml.Name `xml:"https://px.ezidebit.com.au/ AddBankDebit"`
	DigitalKey            string   `xml:"DigitalKey"`
	YourSystemReference   string   `xml:"YourSystemReference"`
	YourGeneralReference  string   `xml:"YourGeneralReference"`
	LastName              string   `xml:"LastName"`
	FirstName             string   `xml:"FirstName"`
	EmailAddress          string   `xml:"EmailAddress"`
	MobilePhoneNumber     string   `xml:"MobilePhoneNumber"`
	PaymentReference      string   `xml:"PaymentReference"`
	BankAccountName       string   `xml:"BankAccountName"`
	BankAccountBSB        string   `xml:"BankAccountBSB"`
	BankAccountNumber     string   `xml:"BankAccountNumber"`
	PaymentAmountInCents  int64    `xml:"PaymentAmountInCents"`
	DebitDate             string   `xml:"DebitDate"`
	SmsPaymentReminder    string   `xml:"SmsPaymentReminder"`
	SmsFailedNotification string   `xml:"SmsFailedNotification"`
	SmsExpiredCard        string   `xml:"SmsExpiredCard"`
}

type addBankDebitResponse struct {
	XMLName xml.Name     `xml:"https://px.ezidebit.com.au/ AddBankDebitResponse"`
	Result  stringResult `xml:"AddBankDebitResult"`
}

type addCardDebitRequest struct {
	XMLName               xml.Name `xml:"https://px.ezidebit.com.au/ AddCardDebit"`
	DigitalKey            string   `xml:"DigitalKey"`
	YourSystemReference   string   `xml:"YourSystemReference"`
	YourGeneralReference  string   `xml:"YourGeneralReference"`
	LastName              string   `xml:"LastName"`
	FirstName             string   `xml:"FirstName"`
	EmailAddress          string   `xml:"EmailAddress"`
	MobilePhoneNumber     string   `xml:"MobilePhoneNumber"`
	PaymentReference      string   `xml:"PaymentReference"`
	NameOnCreditCard      string   `xml:"NameOnCreditCard"`
	CreditCardNumber      string   `xml:"CreditCardNumber"`
	CreditCardExpiryYear  int      `xml:"CreditCardExpiryYear"`
	CreditCardExpiryMonth int      `xml:"CreditCardExpiryMonth"`
	PaymentAmountInCents  int64    `xml:"PaymentAmountInCents"`
	DebitDate             string   `xml:"DebitDate"`
	SmsPaymentReminder    string   `xml:"SmsPaymentReminder"`
	SmsFailedNotification string   `xml:"SmsFailedNotification"`
	SmsExpiredCard        string   `xml:"SmsExpiredCard"`
}

type addCardDebitResponse struct {
	XMLName xml.Name     `xml:"https://px.ezidebit.com.au/ AddCardDebitResponse"`
	Result  stringResult `xml:"AddCardDebitResult"`
}

type addPaymentRequest struct {
	XMLName              xml.Name `xml:"https://px.ezidebit.com.au/ AddPayment"`
	DigitalKey           string   `xml:"DigitalKey"`
	EziDebitCustomerID   string   `xml:"EziDebitCustomerID"`
	YourSystemReference  string   `xml:"YourSystemReference"`
	DebitDate            string   `xml:"DebitDate"`
	PaymentAmountInCents int64    `xml:"PaymentAmountInCents"`
	PaymentReference     string   `xml:"PaymentReference"`
}

type addPaymentResponse struct {
	XMLName xml.Name     `xml:"https://px.ezidebit.com.au/ AddPaymentResponse"`
	Result  stringResult `xml:"AddPaymentResult"`
}

type clearScheduleRequest struct {
	XMLName             xml.Name `xml:"https://px.ezidebit.com.au/ ClearSchedule"`
	DigitalKey          string   `xml:"DigitalKey"`
	EziDebitCustomerID  string   `xml:"EziDebitCustomerID"`
	YourSystemReference string   `xml:"YourSystemReference"`
	KeepManualPayments  string   `xml:"KeepManualPayments"`
}

type clearScheduleResponse struct {
	XMLName xml.Name     `xml:"https://px.ezidebit.com.au/ ClearScheduleResponse"`
	Result  stringResult `xml:"ClearScheduleResult"`
}

type getCustomerDetailsRequest struct {
	XMLName             xml.Name `xml:"https://px.ezidebit.com.au/ GetCustomerDetails"`
	DigitalKey          string   `xml:"DigitalKey"`
	EziDebitCustomerID  string   `xml:"EziDebitCustomerID"`
	YourSystemReference string   `xml:"YourSystemReference"`
}

type getCustomerDetailsResponse struct {
	XMLName xml.Name       `xml:"https://px.ezidebit.com.au/ GetCustomerDetailsResponse"`
	Result  customerResult `xml:"GetCustomerDetailsResult"`
}

type editCustomerBankAccountRequest struct {
	XMLName             xml.Name `xml:"https://px.ezidebit.com.au/ EditCustomerBankAccount"`
	DigitalKey          string   `xml:"DigitalKey"`
	EziDebitCustomerID  string   `xml:"EziDebitCustomerID"`
	YourSystemReference string   `xml:"YourSystemReference"`
	BankAccountName     string   `xml:"BankAccountName"`
	BankAccountBSB      string   `xml:"BankAccountBSB"`
	BankAccountNumber   string   `xml:"BankAccountNumber"`
	Reactivate          string   `xml:"Reactivate"`
	Username            string   `xml:"Username"`
}

type editCustomerBankAccountResponse struct {
	XMLName xml.Name     `xml:"https://px.ezidebit.com.au/ EditCustomerBankAccountResponse"`
	Result  stringResult `xml:"EditCustomerBankAccountResult"`
}

type editCustomerCreditCardRequest struct {
	XMLName               xml.Name `xml:"https://px.ezidebit.com.au/ EditCustomerCreditCard"`
	DigitalKey            string   `xml:"DigitalKey"`
	EziDebitCustomerID    string   `xml:"EziDebitCustomerID"`
	YourSystemReference   string   `xml:"YourSystemReference"`
	NameOnCreditCard      string   `xml:"NameOnCreditCard"`
	CreditCardNumber      string   `xml:"CreditCardNumber"`
	CreditCardExpiryMonth int      `xml:"CreditCardExpiryMonth"`
	CreditCardExpiryYear  int      `xml:"CreditCardExpiryYear"`
	Reactivate            string   `xml:"Reactivate"`
	Username              string   `xml:"Username"`
}

type editCustomerCreditCardResponse struct {
	XMLName xml.Name     `xml:"https://px.ezidebit.com.au/ EditCustomerCreditCardResponse"`
	Result  stringResult `xml:"EditCustomerCreditCardResult"`
}

// stringResult is the envelope Ezidebit returns for mutation operations:
// Data holds an opaque receipt value on success and is empty on failure.
type stringResult struct {
	Data         string `xml:"Data"`
	Error        int    `xml:"Error"`
	ErrorMessage string `xml:"ErrorMessage"`
}

// customerResult is the envelope for GetCustomerDetails: Data is absent
// entirely on failure.
type customerResult struct {
	Data         *customerData `xml:"Data"`
	Error        int           `xml:"Error"`
	ErrorMessage string        `xml:"ErrorMessage"`
}

type customerData struct {
	EziDebitCustomerID      string `xml:"EziDebitCustomerID"`
	YourSystemReference     string `xml:"YourSystemReference"`
	YourGeneralReference    string `xml:"YourGeneralReference"`
	FirstName               string `xml:"FirstName"`
	LastName                string `xml:"LastName"`
	EmailAddress            string `xml:"EmailAddress"`
	MobilePhoneNumber       string `xml:"MobilePhoneNumber"`
	DateCreated             string `xml:"DateCreated"`
	StatusCode              string `xml:"StatusCode"`
	StatusDescription       string `xml:"StatusDescription"`
	PaymentMethod           string `xml:"PaymentMethod"`
	TotalPaymentsSuccessful int    `xml:"TotalPaymentsSuccessful"`
	TotalPaymentsFailed     int    `xml:"TotalPaymentsFailed"`
}
