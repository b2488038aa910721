package stratapay

import (
	"context"
	"errors"
	"time"

	"github.com/stratapay/client-go/internal/api"
)

// Transaction represents a payment transaction.
type Transaction struct {
	ID            string
	TxHash        string
	Status        string
	Asset         string
	Amount        Amount
	Fee           Amount
	From          string
	To            string
	Confirmations int
	CreatedAt     time.Time
}

// UTXO represents an unspent transaction output held by an address.
type UTXO struct {
	TxHash        string
	Vout          int
	Address       string
	Asset         string
	Value         Amount
	Confirmations int
}

// FeeEstimate represents the current network fee estimate for an asset.
type FeeEstimate struct {
	Asset    string
	FeePerKB Amount
	Blocks   int
}

// TxFilter narrows a transaction listing.
type TxFilter struct {
	// Addresses limits results to transactions touching these addresses.
	Addresses []string
	// Before returns only transactions created before this transaction ID.
	Before string
	// Limit caps the number of results; 0 means the server default.
	Limit int
}

// SendFunds sends an amount of asset from one address to another.
func (c *Client) SendFunds(ctx context.Context, from, to string, amount Amount, asset string) (*Transaction, error) {
	tx, err := c.apiClient.SendFunds(ctx, from, to, amount.BaseUnits(), asset)
	if err != nil {
		return nil, wrapError(err)
	}
	return transactionFromAPI(tx), nil
}

// TransferFunds sends an amount of asset and treats an insufficient-funds
// decline as a non-fatal outcome: it returns (nil, false, nil) when the
// service declines with ERR_INSUFFICIENT_FUNDS, and propagates every other
// failure unchanged.
func (c *Client) TransferFunds(ctx context.Context, from, to string, amount Amount, asset string) (*Transaction, bool, error) {
	tx, err := c.SendFunds(ctx, from, to, amount, asset)
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return tx, true, nil
}

// SweepFunds moves the entire balance of an address to another, leaving the
// source empty.
func (c *Client) SweepFunds(ctx context.Context, from, to string) (*Transaction, error) {
	tx, err := c.apiClient.SweepFunds(ctx, from, to)
	if err != nil {
		return nil, wrapError(err)
	}
	return transactionFromAPI(tx), nil
}

// ListTransactions lists transactions matching the filter. A nil filter
// lists everything.
func (c *Client) ListTransactions(ctx context.Context, filter *TxFilter) ([]*Transaction, error) {
	if filter == nil {
		filter = &TxFilter{}
	}
	txs, err := c.apiClient.ListTransactions(ctx, filter.Addresses, filter.Before, filter.Limit)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]*Transaction, len(txs))
	for i := range txs {
		out[i] = transactionFromAPI(&txs[i])
	}
	return out, nil
}

// GetTransaction retrieves a single transaction by ID.
func (c *Client) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	tx, err := c.apiClient.GetTransaction(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return transactionFromAPI(tx), nil
}

// EstimateFee retrieves the current network fee estimate for an asset.
func (c *Client) EstimateFee(ctx context.Context, asset string) (*FeeEstimate, error) {
	fee, err := c.apiClient.EstimateFee(ctx, asset)
	if err != nil {
		return nil, wrapError(err)
	}
	return &FeeEstimate{
		Asset:    fee.Asset,
		FeePerKB: Amount(fee.FeePerKB),
		Blocks:   fee.Blocks,
	}, nil
}

// PrimeUTXOs pre-splits the funds of an address into count outputs of the
// given size, so later sends can spend a ready-made output instead of
// splitting first.
func (c *Client) PrimeUTXOs(ctx context.Context, address string, size Amount, count int) ([]UTXO, error) {
	utxos, err := c.apiClient.PrimeUTXOs(ctx, address, size.BaseUnits(), count)
	if err != nil {
		return nil, wrapError(err)
	}
	return utxosFromAPI(utxos), nil
}

// ListUTXOs lists the unspent outputs held by an address.
func (c *Client) ListUTXOs(ctx context.Context, address string) ([]UTXO, error) {
	utxos, err := c.apiClient.ListUTXOs(ctx, address)
	if err != nil {
		return nil, wrapError(err)
	}
	return utxosFromAPI(utxos), nil
}

func transactionFromAPI(tx *api.Transaction) *Transaction {
	return &Transaction{
		ID:            tx.ID,
		TxHash:        tx.TxHash,
		Status:        tx.Status,
		Asset:         tx.Asset,
		Amount:        Amount(tx.Amount),
		Fee:           Amount(tx.Fee),
		From:          tx.From,
		To:            tx.To,
		Confirmations: tx.Confirmations,
		CreatedAt:     tx.CreatedAt,
	}
}

func utxosFromAPI(utxos []api.UTXO) []UTXO {
	out := make([]UTXO, len(utxos))
	for i, u := range utxos {
		out[i] = UTXO{
			TxHash:        u.TxHash,
			Vout:          u.Vout,
			Address:       u.Address,
			Asset:         u.Asset,
			Value:         Amount(u.Value),
			Confirmations: u.Confirmations,
		}
	}
	return out
}
