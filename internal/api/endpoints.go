package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CreateAddress creates a new receiving address.
func (c *Client) CreateAddress(ctx context.Context, label, asset string) (*Address, error) {
	params := Params{P("label", label), P("asset", asset)}
	var result Address
	if err := c.Do(ctx, http.MethodPost, "/addresses", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListAddresses lists all addresses, including archived ones when
// includeArchived is set.
func (c *Client) ListAddresses(ctx context.Context, includeArchived bool) ([]Address, error) {
	var params Params
	if includeArchived {
		params = Params{P("archived", true)}
	}
	var result []Address
	if err := c.Do(ctx, http.MethodGet, "/addresses", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAddress retrieves a single address by label.
func (c *Client) GetAddress(ctx context.Context, label string) (*Address, error) {
	path := fmt.Sprintf("/addresses/%s", url.PathEscape(label))
	var result Address
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAddressBalance retrieves the balance of a single address.
func (c *Client) GetAddressBalance(ctx context.Context, label string) (*Balance, error) {
	path := fmt.Sprintf("/addresses/%s/balance", url.PathEscape(label))
	var result Balance
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ArchiveAddress archives an address. Archived addresses keep their funds
// but are excluded from default listings.
func (c *Client) ArchiveAddress(ctx context.Context, label string) error {
	path := fmt.Sprintf("/addresses/%s", url.PathEscape(label))
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// SendFunds sends amount base units of asset from one address to another.
func (c *Client) SendFunds(ctx context.Context, from, to string, amount int64, asset string) (*Transaction, error) {
	params := Params{
		P("from", from),
		P("to", to),
		P("amount", amount),
		P("asset", asset),
	}
	var result Transaction
	if err := c.Do(ctx, http.MethodPost, "/transactions/send", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SweepFunds moves the entire balance of an address to another.
func (c *Client) SweepFunds(ctx context.Context, from, to string) (*Transaction, error) {
	params := Params{P("from", from), P("to", to)}
	var result Transaction
	if err := c.Do(ctx, http.MethodPost, "/transactions/sweep", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTransactions lists transactions, optionally filtered by addresses and
// paginated with before/limit.
func (c *Client) ListTransactions(ctx context.Context, addresses []string, before string, limit int) ([]Transaction, error) {
	var params Params
	if len(addresses) > 0 {
		params = append(params, P("addresses", addresses))
	}
	if before != "" {
		params = append(params, P("before", before))
	}
	if limit > 0 {
		params = append(params, P("limit", strconv.Itoa(limit)))
	}
	var result []Transaction
	if err := c.Do(ctx, http.MethodGet, "/transactions", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetTransaction retrieves a single transaction by ID.
func (c *Client) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	path := fmt.Sprintf("/transactions/%s", url.PathEscape(id))
	var result Transaction
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EstimateFee retrieves the current network fee estimate for an asset.
func (c *Client) EstimateFee(ctx context.Context, asset string) (*FeeEstimate, error) {
	params := Params{P("asset", asset)}
	var result FeeEstimate
	if err := c.Do(ctx, http.MethodGet, "/network/fee", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PrimeUTXOs pre-splits the funds of an address into count outputs of size
// base units each, to speed up later sends.
func (c *Client) PrimeUTXOs(ctx context.Context, address string, size int64, count int) ([]UTXO, error) {
	params := Params{
		P("address", address),
		P("size", size),
		P("count", count),
	}
	var result []UTXO
	if err := c.Do(ctx, http.MethodPost, "/utxos/prime", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListUTXOs lists the unspent outputs held by an address.
func (c *Client) ListUTXOs(ctx context.Context, address string) ([]UTXO, error) {
	params := Params{P("address", address)}
	var result []UTXO
	if err := c.Do(ctx, http.MethodGet, "/utxos", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateMultisigWallet creates an m-of-n multisig wallet from the given
// co-signer public keys.
func (c *Client) CreateMultisigWallet(ctx context.Context, label, asset string, signers []Signer, required int) (*MultisigWallet, error) {
	params := Params{
		P("label", label),
		P("asset", asset),
		P("signers", signers),
		P("requiredSigners", required),
	}
	var result MultisigWallet
	if err := c.Do(ctx, http.MethodPost, "/multisig", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMultisigWallet retrieves a multisig wallet by ID.
func (c *Client) GetMultisigWallet(ctx context.Context, id string) (*MultisigWallet, error) {
	path := fmt.Sprintf("/multisig/%s", url.PathEscape(id))
	var result MultisigWallet
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListMultisigSigners lists the co-signers registered on a multisig wallet.
func (c *Client) ListMultisigSigners(ctx context.Context, walletID string) ([]Signer, error) {
	path := fmt.Sprintf("/multisig/%s/signers", url.PathEscape(walletID))
	var result []Signer
	if err := c.Do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SubmitMultisigTransaction submits a spend from a multisig wallet along
// with the co-signer signatures collected out of band.
func (c *Client) SubmitMultisigTransaction(ctx context.Context, walletID, to string, amount int64, signatures []string) (*Transaction, error) {
	path := fmt.Sprintf("/multisig/%s/transactions", url.PathEscape(walletID))
	params := Params{
		P("to", to),
		P("amount", amount),
		P("signatures", signatures),
	}
	var result Transaction
	if err := c.Do(ctx, http.MethodPost, path, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAccount retrieves the account that owns the API token.
func (c *Client) GetAccount(ctx context.Context) (*AccountInfo, error) {
	var result AccountInfo
	if err := c.Do(ctx, http.MethodGet, "/account", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateAccount updates account fields. Empty fields are left unchanged.
func (c *Client) UpdateAccount(ctx context.Context, name, email string) (*AccountInfo, error) {
	var params Params
	if name != "" {
		params = append(params, P("name", name))
	}
	if email != "" {
		params = append(params, P("email", email))
	}
	var result AccountInfo
	if err := c.Do(ctx, http.MethodPatch, "/account", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAccountBalance retrieves the aggregate balance per asset across all
// addresses.
func (c *Client) GetAccountBalance(ctx context.Context) ([]Balance, error) {
	var result []Balance
	if err := c.Do(ctx, http.MethodGet, "/account/balance", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
