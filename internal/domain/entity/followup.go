package entity

import (
	"time"
)

// Classification of one company's follow-up position.
type Classification string

const (
	NoContactYet  Classification = "NO_CONTACT_YET"
	AwaitingReply Classification = "AWAITING_REPLY"
	DueSoon       Classification = "DUE_SOON"
	Overdue       Classification = "OVERDUE"
	RepliedOnTime Classification = "REPLIED_ON_TIME"
)

// HighVolumeThreshold marks companies emailed ten or more times without
// resolution as non-compliant. Fixed, unlike the configurable follow-up
// threshold.
const HighVolumeThreshold = 10

// DefaultFollowupDays is the seeded followup_days value. The engine never
// falls back to it silently; a missing setting fails the pass.
const DefaultFollowupDays = 3

// FollowUpState is the derived compliance picture for one company. It is
// recomputed from the email history on every query and holds no state of
// its own.
type FollowUpState struct {
	Classification        Classification
	LastOutgoing          time.Time
	LastQualifyingIn      time.Time
	LastContact           time.Time
	WorkingDaysElapsed    int
	DaysSinceContact      int
	HasContact            bool
	TotalSent             int
	TotalReceived         int
	RepliesSinceLastSent  int
	ZeroReply             bool
	HighVolume            bool
	SkippedRecords        int
}

// Summary is the dashboard stat block for one auditor snapshot.
type Summary struct {
	TotalCompanies int `json:"total_companies"`
	OverdueCount   int `json:"overdue_count"`
	DueSoonCount   int `json:"due_soon_count"`
	ZeroReplyCount int `json:"zero_reply_count"`
	HighVolume     int `json:"high_volume_count"`
	SentToday      int `json:"sent_today_count"`
	SkippedRecords int `json:"skipped_records"`
}

// CompanyDetail is one row of the company activity list.
type CompanyDetail struct {
	CompanyID            string         `json:"company_id"`
	UIFRef               string         `json:"uif_ref"`
	TradeName            string         `json:"trade_name"`
	Email                string         `json:"email"`
	AltEmail             string         `json:"alt_email"`
	Classification       Classification `json:"classification"`
	TotalSent            int            `json:"total_sent"`
	RepliesSinceLastSent int            `json:"replies_since_last_sent"`
	LastContact          string         `json:"last_contact,omitempty"`
	DaysSinceContact     *int           `json:"days_since_contact,omitempty"`
	HighVolume           bool           `json:"high_volume"`
	SkippedRecords       int            `json:"skipped_records,omitempty"`
}

// OverdueRow is one row of the exportable overdue report. DueSoon companies
// are deliberately absent from this report even though the summary counts
// them.
type OverdueRow struct {
	UIFRef           string `json:"uif_ref"`
	TradeName        string `json:"trade_name"`
	Email            string `json:"email"`
	LastSentDate     string `json:"last_sent_date"`
	WorkingDaysSince int    `json:"working_days_since"`
}
