package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/workdays"
)

// Snapshot is one auditor's data read once before a pass. Threshold and Now
// are fixed for the whole pass so every company in a report is classified
// against the same rule.
type Snapshot struct {
	Companies []*entity.Company
	Emails    []*entity.EmailRecord
	Threshold int
	Now       time.Time
}

func (s Snapshot) emailsByCompany() map[string][]*entity.EmailRecord {
	grouped := make(map[string][]*entity.EmailRecord, len(s.Companies))
	for _, rec := range s.Emails {
		grouped[rec.CompanyID] = append(grouped[rec.CompanyID], rec)
	}
	return grouped
}

// Summarize produces the dashboard stat block for one snapshot.
func Summarize(snap Snapshot, cal *workdays.Calendar) entity.Summary {
	summary := entity.Summary{
		TotalCompanies: len(snap.Companies),
	}

	now := snap.Now.UTC()
	today := now.Format(workdays.DateLayout)
	for _, rec := range snap.Emails {
		if rec.Date.IsZero() {
			summary.SkippedRecords++
			continue
		}
		if rec.Direction == entity.DirectionOutgoing && rec.Date.UTC().Format(workdays.DateLayout) == today {
			summary.SentToday++
		}
	}

	grouped := snap.emailsByCompany()
	for _, company := range snap.Companies {
		state := Evaluate(grouped[company.ID], cal, snap.Threshold, now)
		switch state.Classification {
		case entity.Overdue:
			summary.OverdueCount++
		case entity.DueSoon:
			summary.DueSoonCount++
		}
		if state.ZeroReply {
			summary.ZeroReplyCount++
		}
		if state.HighVolume {
			summary.HighVolume++
		}
	}

	return summary
}

// ListCompanies produces the company activity rows, optionally narrowed by
// a case-insensitive substring filter over the identifying fields. Rows
// are ordered by trade name ascending with company id as tie break, so a
// fixed snapshot always yields the same sequence.
func ListCompanies(snap Snapshot, cal *workdays.Calendar, filter string) []entity.CompanyDetail {
	grouped := snap.emailsByCompany()
	needle := strings.ToLower(strings.TrimSpace(filter))

	details := make([]entity.CompanyDetail, 0, len(snap.Companies))
	for _, company := range snap.Companies {
		if needle != "" && !matchesFilter(company, needle) {
			continue
		}

		state := Evaluate(grouped[company.ID], cal, snap.Threshold, snap.Now)
		detail := entity.CompanyDetail{
			CompanyID:            company.ID,
			UIFRef:               company.UIFRef,
			TradeName:            company.TradeName,
			Email:                company.Email,
			AltEmail:             company.AltEmail,
			Classification:       state.Classification,
			TotalSent:            state.TotalSent,
			RepliesSinceLastSent: state.RepliesSinceLastSent,
			HighVolume:           state.HighVolume,
			SkippedRecords:       state.SkippedRecords,
		}
		if state.HasContact {
			detail.LastContact = state.LastContact.Format(workdays.DateLayout)
			days := state.DaysSinceContact
			detail.DaysSinceContact = &days
		}
		details = append(details, detail)
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].TradeName != details[j].TradeName {
			return details[i].TradeName < details[j].TradeName
		}
		return details[i].CompanyID < details[j].CompanyID
	})

	return details
}

// OverdueReport produces the exportable overdue rows. Only Overdue
// companies appear; DueSoon is counted on the dashboard but kept out of
// this report. Ordered by trade name ascending, company id tie break.
func OverdueReport(snap Snapshot, cal *workdays.Calendar) []entity.OverdueRow {
	grouped := snap.emailsByCompany()

	type keyed struct {
		row       entity.OverdueRow
		tradeName string
		companyID string
	}
	var rows []keyed

	for _, company := range snap.Companies {
		state := Evaluate(grouped[company.ID], cal, snap.Threshold, snap.Now)
		if state.Classification != entity.Overdue {
			continue
		}
		rows = append(rows, keyed{
			row: entity.OverdueRow{
				UIFRef:           company.UIFRef,
				TradeName:        company.TradeName,
				Email:            company.Email,
				LastSentDate:     state.LastOutgoing.Format(workdays.DateLayout),
				WorkingDaysSince: state.WorkingDaysElapsed,
			},
			tradeName: company.TradeName,
			companyID: company.ID,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].tradeName != rows[j].tradeName {
			return rows[i].tradeName < rows[j].tradeName
		}
		return rows[i].companyID < rows[j].companyID
	})

	report := make([]entity.OverdueRow, len(rows))
	for i, r := range rows {
		report[i] = r.row
	}
	return report
}

func matchesFilter(company *entity.Company, needle string) bool {
	for _, field := range []string{company.UIFRef, company.TradeName, company.Email, company.AltEmail} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
