package entity

import (
	"time"
)

// Company is one entry on an auditor's contact list. The descriptive fields
// are opaque here and pass straight through to reports.
type Company struct {
	ID        string    `bson:"_id,omitempty"`
	AuditorID string    `bson:"auditorId"`
	UIFRef    string    `bson:"uifRef"`
	TradeName string    `bson:"tradeName"`
	Email     string    `bson:"email"`
	AltEmail  string    `bson:"altEmail"`
	CreatedAt time.Time `bson:"createdAt"`
}
