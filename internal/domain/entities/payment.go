package entities

import (
	"encoding/json"
	"time"
)

// Payment is a quote payment processed through Mercado Pago.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// MPPayloadRaw keeps the provider response as received; MPPayload is the parsed
// form for querying.
type Payment struct {
	ID      string
	QuoteID string
	Date    time.Time
	Status  PaymentStatus

	MPPayloadRaw json.RawMessage
	MPPayload    map[string]interface{}
}
