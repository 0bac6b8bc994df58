package messaging

import (
	kafka "storefront-service/src/pkg/kafka/confluent"
	"storefront-service/src/pkg/log"

	"storefront-service/src/internal/model"
)

// LedgerProducer publishes wallet and point-of-sale events for the
// analytics pipeline. Delivery is best effort; callers log and move on.
type LedgerProducer struct {
	WalletTransactionProducer Producer[*model.WalletTransactionEvent]
	POSSaleProducer           Producer[*model.POSSaleEvent]
}

func NewLedgerProducer(producer kafka.Producer, logger log.Log) *LedgerProducer {
	return &LedgerProducer{
		WalletTransactionProducer: Producer[*model.WalletTransactionEvent]{
			Producer: producer,
			Topic:    "wallet-transactions",
			Log:      logger,
		},
		POSSaleProducer: Producer[*model.POSSaleEvent]{
			Producer: producer,
			Topic:    "pos-sales",
			Log:      logger,
		},
	}
}

func (p *LedgerProducer) SendWalletTransaction(event *model.WalletTransactionEvent) error {
	return p.WalletTransactionProducer.Send(event)
}

func (p *LedgerProducer) SendPOSSale(event *model.POSSaleEvent) error {
	return p.POSSaleProducer.Send(event)
}
