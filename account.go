package stratapay

import (
	"time"

	"github.com/stratapay/client-go/internal/api"
)

// Account represents the account owning the API token.
type Account struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Balance represents confirmed and pending balances for one asset.
type Balance struct {
	Asset     string
	Confirmed Amount
	Pending   Amount
}

func accountFromAPI(info *api.AccountInfo) *Account {
	return &Account{
		ID:        info.ID,
		Name:      info.Name,
		Email:     info.Email,
		CreatedAt: info.CreatedAt,
	}
}

func balanceFromAPI(b api.Balance) Balance {
	return Balance{
		Asset:     b.Asset,
		Confirmed: Amount(b.Confirmed),
		Pending:   Amount(b.Pending),
	}
}
