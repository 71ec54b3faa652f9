package entity

import (
	"time"
)

// Email direction
const (
	DirectionOutgoing = "outgoing"
	DirectionIncoming = "incoming"
)

// EmailRecord is one already-ingested, already-deduplicated message tied to
// a company. Records are created by the sync collaborator and never mutated
// here. Date is stored in UTC; a zero Date means the source timestamp could
// not be parsed and the record must be skipped, not classified.
type EmailRecord struct {
	ID        string    `bson:"_id,omitempty"`
	AuditorID string    `bson:"auditorId"`
	CompanyID string    `bson:"companyId"`
	Direction string    `bson:"direction"`
	FromAddr  string    `bson:"fromAddr"`
	ToAddr    string    `bson:"toAddr"`
	Subject   string    `bson:"subject"`
	Date      time.Time `bson:"date"`
	MessageID string    `bson:"messageId"`
}
