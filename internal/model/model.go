// Package model contains the domain entities of the michango service.
package model

import "time"

// User represents a registered contributor. Balance is kept in whole TZS.
type User struct {
	ID        string    `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Balance   int64     `json:"balance"`
}

// TransactionType describes the direction of a transaction.
type TransactionType string

const (
	TypeContribution TransactionType = "contribution"
	TypeWithdrawal   TransactionType = "withdrawal"
)

// TransactionStatus describes the settlement state of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Terminal reports whether the status may no longer change.
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Network identifies the mobile-money carrier channel of a payment.
// It is a label only and has no effect on the settlement outcome.
type Network string

const (
	NetworkMPesa       Network = "mpesa"
	NetworkTigoPesa    Network = "tigopesa"
	NetworkAirtelMoney Network = "airtelmoney"
	NetworkHaloPesa    Network = "halopesa"
	NetworkEzyPesa     Network = "ezypesa"
)

var networkNames = map[Network]string{
	NetworkMPesa:       "M-Pesa",
	NetworkTigoPesa:    "Tigo Pesa",
	NetworkAirtelMoney: "Airtel Money",
	NetworkHaloPesa:    "Halo Pesa",
	NetworkEzyPesa:     "Ezy Pesa",
}

// Valid reports whether the network is a known carrier channel.
func (n Network) Valid() bool {
	_, ok := networkNames[n]
	return ok
}

// DisplayName returns the human-readable carrier name.
func (n Network) DisplayName() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return "Mobile Money"
}

// Transaction describes a single simulated mobile-money payment.
// Amount and Date are fixed at creation; Status transitions exactly once
// from pending to a terminal state.
type Transaction struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Amount    int64             `json:"amount"`
	Type      TransactionType   `json:"type"`
	Status    TransactionStatus `json:"status"`
	Date      time.Time         `json:"date"`
	Reference string            `json:"reference"`
	Network   Network           `json:"network,omitempty"`
}

// Stats summarizes a user's transaction history.
type Stats struct {
	TotalContributions int64 `json:"totalContributions"`
	SuccessfulPayments int   `json:"successfulPayments"`
	FailedPayments     int   `json:"failedPayments"`
}

// ReportRow is one transaction rendered for the contribution report.
type ReportRow struct {
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
	Network   string `json:"network"`
	Status    string `json:"status"`
	Date      string `json:"date"`
}

// Report is the contribution report document. Rendering to PDF is out of
// scope; this structure is what would be handed to the renderer.
type Report struct {
	UserName    string      `json:"userName"`
	UserPhone   string      `json:"userPhone"`
	Balance     string      `json:"balance"`
	Stats       Stats       `json:"stats"`
	Rows        []ReportRow `json:"rows"`
	GeneratedAt time.Time   `json:"generatedAt"`
}
