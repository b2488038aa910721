package stratapay

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreateMultisigWallet(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/multisig" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body struct {
			Label           string `json:"label"`
			RequiredSigners int    `json:"requiredSigners"`
			Signers         []struct {
				Name      string `json:"name"`
				PublicKey string `json:"publicKey"`
			} `json:"signers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.RequiredSigners != 2 || len(body.Signers) != 3 {
			t.Errorf("body = %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msw_1","label":"treasury","asset":"BTC","requiredSigners":2,` +
			`"signers":[{"name":"ops","publicKey":"pk1"},{"name":"cfo","publicKey":"pk2"},{"name":"ceo","publicKey":"pk3"}]}`))
	}))

	signers := []Signer{
		{Name: "ops", PublicKey: "pk1"},
		{Name: "cfo", PublicKey: "pk2"},
		{Name: "ceo", PublicKey: "pk3"},
	}
	wallet, err := client.CreateMultisigWallet(context.Background(), "treasury", "BTC", signers, 2)
	if err != nil {
		t.Fatalf("CreateMultisigWallet() error = %v", err)
	}
	if wallet.ID != "msw_1" || wallet.RequiredSigners != 2 {
		t.Errorf("wallet = %+v", wallet)
	}
	if len(wallet.Signers) != 3 || wallet.Signers[1].Name != "cfo" {
		t.Errorf("signers = %+v", wallet.Signers)
	}
}

func TestListMultisigSigners(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/api/v1/multisig/msw_1/signers" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"ops","publicKey":"pk1"},{"name":"cfo","publicKey":"pk2"}]`))
	}))

	signers, err := client.ListMultisigSigners(context.Background(), "msw_1")
	if err != nil {
		t.Fatalf("ListMultisigSigners() error = %v", err)
	}
	if len(signers) != 2 {
		t.Fatalf("signers = %+v, want 2", signers)
	}
	if signers[0].Name != "ops" || signers[1].PublicKey != "pk2" {
		t.Errorf("signers = %+v", signers)
	}
}

func TestSubmitMultisigTransaction(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/multisig/msw_1/transactions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body struct {
			Signatures []string `json:"signatures"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Signatures) != 2 {
			t.Errorf("signatures = %v, want 2", body.Signatures)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"tx_3","status":"pending","amount":7000}`))
	}))

	tx, err := client.SubmitMultisigTransaction(context.Background(), "msw_1", "1Boat", 7000, []string{"sig1", "sig2"})
	if err != nil {
		t.Fatalf("SubmitMultisigTransaction() error = %v", err)
	}
	if tx.ID != "tx_3" || tx.Amount != 7000 {
		t.Errorf("tx = %+v", tx)
	}
}
