package api

import "time"

// Address represents a receiving address managed by the service.
type Address struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Address   string    `json:"address"`
	Asset     string    `json:"asset"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
}

// Balance represents confirmed and pending balances in base units.
type Balance struct {
	Asset     string `json:"asset"`
	Confirmed int64  `json:"confirmed"`
	Pending   int64  `json:"pending"`
}

// Transaction represents a payment transaction.
type Transaction struct {
	ID            string    `json:"id"`
	TxHash        string    `json:"txHash"`
	Status        string    `json:"status"`
	Asset         string    `json:"asset"`
	Amount        int64     `json:"amount"`
	Fee           int64     `json:"fee"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Confirmations int       `json:"confirmations"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UTXO represents an unspent transaction output.
type UTXO struct {
	TxHash        string `json:"txHash"`
	Vout          int    `json:"vout"`
	Address       string `json:"address"`
	Asset         string `json:"asset"`
	Value         int64  `json:"value"`
	Confirmations int    `json:"confirmations"`
}

// FeeEstimate represents the current network fee estimate for an asset,
// in base units per kilobyte.
type FeeEstimate struct {
	Asset    string `json:"asset"`
	FeePerKB int64  `json:"feePerKb"`
	Blocks   int    `json:"blocks"`
}

// Signer represents a co-signer of a multisig wallet.
type Signer struct {
	Name      string `json:"name"`
	PublicKey string `json:"publicKey"`
}

// MultisigWallet represents an m-of-n multisig wallet.
type MultisigWallet struct {
	ID              string    `json:"id"`
	Label           string    `json:"label"`
	Asset           string    `json:"asset"`
	RequiredSigners int       `json:"requiredSigners"`
	Signers         []Signer  `json:"signers"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AccountInfo represents the account owning the API token.
type AccountInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
