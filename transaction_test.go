package stratapay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestTransferFunds_Success(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/transactions/send" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["amount"] != float64(5000) {
			t.Errorf("amount = %v, want 5000", body["amount"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"tx_1","status":"pending","amount":5000,"asset":"BTC"}`))
	}))

	tx, ok, err := client.TransferFunds(context.Background(), "hot-wallet", "1Boat", 5000, "BTC")
	if err != nil {
		t.Fatalf("TransferFunds() error = %v", err)
	}
	if !ok {
		t.Error("ok = false, want true")
	}
	if tx == nil || tx.ID != "tx_1" {
		t.Errorf("tx = %+v", tx)
	}
}

func TestTransferFunds_InsufficientFundsIsNotAnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"message":"address holds 100 sats","errorName":"ERR_INSUFFICIENT_FUNDS"}`))
	}))

	tx, ok, err := client.TransferFunds(context.Background(), "hot-wallet", "1Boat", 5000, "BTC")
	if err != nil {
		t.Fatalf("TransferFunds() error = %v, want nil for declined payment", err)
	}
	if ok {
		t.Error("ok = true, want false")
	}
	if tx != nil {
		t.Errorf("tx = %+v, want nil", tx)
	}
}

func TestTransferFunds_OtherErrorsPropagate(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"bad asset","errorName":"ERR_INVALID_ASSET"}`))
	}))

	_, ok, err := client.TransferFunds(context.Background(), "hot-wallet", "1Boat", 5000, "DOGGO")
	if ok {
		t.Error("ok = true, want false")
	}
	if !errors.Is(err, ErrInvalidAsset) {
		t.Errorf("error = %v, want ErrInvalidAsset to propagate", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 400 || apiErr.ErrorName != ErrNameInvalidAsset {
		t.Errorf("apiErr = %+v, status or error name lost", apiErr)
	}
}

func TestSweepFunds(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/transactions/sweep" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["from"] != "old-wallet" || body["to"] != "cold-storage" {
			t.Errorf("body = %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"tx_2","status":"pending","amount":99000,"fee":1000}`))
	}))

	tx, err := client.SweepFunds(context.Background(), "old-wallet", "cold-storage")
	if err != nil {
		t.Fatalf("SweepFunds() error = %v", err)
	}
	if tx.Amount != 99000 || tx.Fee != 1000 {
		t.Errorf("tx = %+v", tx)
	}
}

func TestListTransactions_NilFilter(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"tx_1"},{"id":"tx_2"}]`))
	}))

	txs, err := client.ListTransactions(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(txs) != 2 {
		t.Errorf("len = %d, want 2", len(txs))
	}
}

func TestPrimeUTXOs_Facade(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/utxos/prime" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"txHash":"h","vout":0,"value":10000,"confirmations":1}]`))
	}))

	utxos, err := client.PrimeUTXOs(context.Background(), "hot-wallet", 10000, 1)
	if err != nil {
		t.Fatalf("PrimeUTXOs() error = %v", err)
	}
	if len(utxos) != 1 || utxos[0].Value != 10000 {
		t.Errorf("utxos = %+v", utxos)
	}
}
