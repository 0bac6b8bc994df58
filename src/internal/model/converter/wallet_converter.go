package converter

import (
	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
)

func WalletToResponse(wallet *entity.Wallet) *model.WalletResponse {
	return &model.WalletResponse{
		ID:               wallet.ID,
		UserID:           wallet.UserID,
		AvailableBalance: wallet.AvailableBalance,
		LedgerBalance:    wallet.LedgerBalance,
		Currency:         wallet.Currency,
		CreatedAt:        wallet.CreatedAt,
	}
}

func TransactionToResponse(tx *entity.Transaction) *model.TransactionResponse {
	return &model.TransactionResponse{
		ID:           tx.ID,
		Amount:       tx.Amount,
		Type:         string(tx.Type),
		Status:       string(tx.Status),
		Date:         tx.CreatedAt,
		Description:  tx.Description,
		Counterparty: tx.Counterparty,
		Reference:    tx.Reference,
	}
}

func TransactionsToResponse(txs []entity.Transaction) []model.TransactionResponse {
	responses := make([]model.TransactionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, *TransactionToResponse(&txs[i]))
	}
	return responses
}
