package stratapay

import (
	"context"
	"time"

	"github.com/stratapay/client-go/internal/api"
)

// Signer represents a co-signer of a multisig wallet.
type Signer struct {
	Name      string
	PublicKey string
}

// MultisigWallet represents an m-of-n multisig wallet. Spends require
// RequiredSigners signatures collected out of band and submitted with
// SubmitMultisigTransaction.
type MultisigWallet struct {
	ID              string
	Label           string
	Asset           string
	RequiredSigners int
	Signers         []Signer
	CreatedAt       time.Time
}

// CreateMultisigWallet creates a multisig wallet requiring required
// signatures out of the given co-signers.
func (c *Client) CreateMultisigWallet(ctx context.Context, label, asset string, signers []Signer, required int) (*MultisigWallet, error) {
	apiSigners := make([]api.Signer, len(signers))
	for i, s := range signers {
		apiSigners[i] = api.Signer{Name: s.Name, PublicKey: s.PublicKey}
	}

	w, err := c.apiClient.CreateMultisigWallet(ctx, label, asset, apiSigners, required)
	if err != nil {
		return nil, wrapError(err)
	}
	return multisigFromAPI(w), nil
}

// GetMultisigWallet retrieves a multisig wallet by ID.
func (c *Client) GetMultisigWallet(ctx context.Context, id string) (*MultisigWallet, error) {
	w, err := c.apiClient.GetMultisigWallet(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return multisigFromAPI(w), nil
}

// ListMultisigSigners lists the co-signers registered on a multisig wallet.
func (c *Client) ListMultisigSigners(ctx context.Context, walletID string) ([]Signer, error) {
	apiSigners, err := c.apiClient.ListMultisigSigners(ctx, walletID)
	if err != nil {
		return nil, wrapError(err)
	}
	signers := make([]Signer, len(apiSigners))
	for i, s := range apiSigners {
		signers[i] = Signer{Name: s.Name, PublicKey: s.PublicKey}
	}
	return signers, nil
}

// SubmitMultisigTransaction submits a spend from a multisig wallet along
// with the collected co-signer signatures.
func (c *Client) SubmitMultisigTransaction(ctx context.Context, walletID, to string, amount Amount, signatures []string) (*Transaction, error) {
	tx, err := c.apiClient.SubmitMultisigTransaction(ctx, walletID, to, amount.BaseUnits(), signatures)
	if err != nil {
		return nil, wrapError(err)
	}
	return transactionFromAPI(tx), nil
}

func multisigFromAPI(w *api.MultisigWallet) *MultisigWallet {
	signers := make([]Signer, len(w.Signers))
	for i, s := range w.Signers {
		signers[i] = Signer{Name: s.Name, PublicKey: s.PublicKey}
	}
	return &MultisigWallet{
		ID:              w.ID,
		Label:           w.Label,
		Asset:           w.Asset,
		RequiredSigners: w.RequiredSigners,
		Signers:         signers,
		CreatedAt:       w.CreatedAt,
	}
}
