package models

// PaymentIntentRequest asks the processor to prepare a card payment.
// Amount is in the currency's smallest unit, as the processor expects.
type PaymentIntentRequest struct {
	Amount       int64  `json:"amount" binding:"required"`
	Currency     string `json:"currency" binding:"required"`
	ProjectID    string `json:"projectId" binding:"required"`
	IsEscrow     bool   `json:"isEscrow"`
	FreelancerID string `json:"freelancerId"`
	ClientID     string `json:"clientId"`
}

// PaymentIntentResponse carries what the client needs to confirm the payment.
type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type EscrowReleaseRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}

type EscrowReleaseResponse struct {
	Success         bool   `json:"success"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// CryptoCheckRequest identifies an on-chain transaction to verify.
type CryptoCheckRequest struct {
	TxHash   string `json:"txHash"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type CryptoCheckResult struct {
	TransactionID string `json:"transactionId"`
	Confirmed     bool   `json:"confirmed"`
	Confirmations int    `json:"confirmations"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

type WalletBalanceRequest struct {
	Address string `json:"address" binding:"required"`
	Network string `json:"network" binding:"required"`
}

type WalletBalanceResponse struct {
	Balance string `json:"balance"`
}

type ContractTemplateRequest struct {
	ContractType string `json:"contractType" binding:"required"`
}

type ContractTemplateResponse struct {
	ContractCode string `json:"contractCode"`
	Instructions string `json:"instructions"`
}
