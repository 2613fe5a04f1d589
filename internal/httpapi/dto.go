package httpapi

import (
	"github.com/jmartens/splittab/internal/calculator"
	"github.com/jmartens/splittab/internal/models"
)

type createGroupRequest struct {
	Name               string `json:"name"`
	CurrencyIdentifier string `json:"currency_identifier"`
}

type createAccountRequest struct {
	Type           models.AccountType `json:"type"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	OwningUserID   string             `json:"owning_user_id"`
	ClearingShares models.Shares      `json:"clearing_shares"`
}

type positionRequest struct {
	Name            string        `json:"name"`
	Price           float64       `json:"price"`
	CommunistShares float64       `json:"communist_shares"`
	Usages          models.Shares `json:"usages"`
}

type createTransactionRequest struct {
	Type                   models.TransactionType `json:"type"`
	Name                   string                 `json:"name"`
	Value                  float64                `json:"value"`
	CurrencyConversionRate float64                `json:"currency_conversion_rate"`
	CreditorShares         models.Shares          `json:"creditor_shares"`
	DebitorShares          models.Shares          `json:"debitor_shares"`
	Positions              []positionRequest      `json:"positions"`
}

func (req *createTransactionRequest) toModel() models.Transaction {
	tx := models.Transaction{
		Type:                   req.Type,
		Name:                   req.Name,
		Value:                  req.Value,
		CurrencyConversionRate: req.CurrencyConversionRate,
		CreditorShares:         req.CreditorShares,
		DebitorShares:          req.DebitorShares,
	}
	for _, pos := range req.Positions {
		tx.Positions = append(tx.Positions, models.TransactionPosition{
			Name:            pos.Name,
			Price:           pos.Price,
			CommunistShares: pos.CommunistShares,
			Usages:          pos.Usages,
		})
	}
	return tx
}

type balancesResponse struct {
	Balances models.AccountBalanceMap `json:"balances"`

	// UnresolvedClearingAccounts lists clearing accounts whose balance could
	// not be redistributed because of a reference cycle.
	UnresolvedClearingAccounts []models.AccountID `json:"unresolved_clearing_accounts,omitempty"`
}

type settlementResponse struct {
	Settlement []models.SettlementEntry `json:"settlement"`
}

type previewResponse struct {
	Effect calculator.TransactionEffect `json:"effect"`
}

type convertSharesRequest struct {
	FromMode   calculator.SplitMode `json:"from_mode"`
	ToMode     calculator.SplitMode `json:"to_mode"`
	Shares     models.Shares        `json:"shares"`
	TotalValue float64              `json:"total_value"`
}

type convertSharesResponse struct {
	Mode   calculator.SplitMode `json:"mode"`
	Shares models.Shares        `json:"shares"`
}
