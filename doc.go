// Package stratapay provides a Go client SDK for the Strata payments API,
// a hosted blockchain-payment service for addresses, transactions, multisig
// wallets, and account management.
//
// Every request is authenticated with an HMAC-SHA-256 signature over the
// outgoing bytes, computed from a shared secret key that never leaves the
// client. Service failures surface as typed errors carrying the HTTP status
// and, where the service supplied one, a machine-readable error name.
//
// Basic usage:
//
//	client, err := stratapay.New(apiToken, secretKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a receiving address
//	addr, err := client.CreateAddress(ctx, "invoice-42", "BTC")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Send funds and handle a declined payment without string matching
//	tx, err := client.SendFunds(ctx, "hot-wallet", addr.Address, amount, "BTC")
//	if errors.Is(err, stratapay.ErrInsufficientFunds) {
//	    // top up the hot wallet
//	}
package stratapay
