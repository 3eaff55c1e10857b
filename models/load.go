package models

import "time"

// FeeBreakdown is the result of running an amount through the fee engine.
type FeeBreakdown struct {
	Total float64 `json:"total_fee"`
	Payer float64 `json:"sender_fee"`
	Payee float64 `json:"recipient_fee"`
}

// LoadRequest is the payload for the send and request load endpoints.
type LoadRequest struct {
	SenderID    string  `json:"sender_id" binding:"required"`
	RecipientID string  `json:"recipient_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

// SwapRequest is the payload for the swap-funds endpoint.
type SwapRequest struct {
	SourceID      string  `json:"source_id" binding:"required"`
	DestinationID string  `json:"destination_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
}

// LoadResponse is returned by all three money-movement endpoints.
type LoadResponse struct {
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status"`
	SenderFee     float64 `json:"sender_fee"`
	RecipientFee  float64 `json:"recipient_fee"`
	TotalFee      float64 `json:"total_fee"`
	NetAmount     float64 `json:"net_amount"`
	Message       string  `json:"message"`
	InviteToken   string  `json:"invite_token,omitempty"`
}

// TransactionIntent is the immutable audit record of one money-movement
// request, recorded whether settlement succeeded or failed.
type TransactionIntent struct {
	ID            string       `json:"id"`
	Type          string       `json:"type"` // send, request or swap
	Amount        float64      `json:"amount"`
	SourceID      string       `json:"source_id"`
	DestinationID string       `json:"destination_id"`
	Fees          FeeBreakdown `json:"fees"`
	Status        string       `json:"status"` // pending, completed or failed
	CreatedAt     time.Time    `json:"created_at"`
}

// AstraRoutine is the settlement result reported by the Astra payment
// provider. Its status is recorded verbatim on the transaction intent.
type AstraRoutine struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
