package usecase

import (
	"reflect"
	"testing"
	"time"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
)

func company(id, uif, name, email, alt string) *entity.Company {
	return &entity.Company{ID: id, AuditorID: "aud1", UIFRef: uif, TradeName: name, Email: email, AltEmail: alt}
}

func crec(companyID, direction string, ts time.Time) *entity.EmailRecord {
	return &entity.EmailRecord{AuditorID: "aud1", CompanyID: companyID, Direction: direction, Date: ts}
}

// fixtureSnapshot builds four companies in the four headline states:
//
//	a: overdue   (sent Monday, no reply, queried Friday)
//	b: due soon  (sent Tuesday, no reply)
//	c: replied   (sent Monday, reply Wednesday)
//	d: no contact
func fixtureSnapshot() Snapshot {
	mon := at(2025, time.January, 6, 9)
	tue := at(2025, time.January, 7, 9)
	wed := at(2025, time.January, 8, 9)
	fri := at(2025, time.January, 10, 11)

	return Snapshot{
		Companies: []*entity.Company{
			company("a", "UIF123", "Acme Traders", "acme@example.com", ""),
			company("b", "UIF200", "Boland Motors", "info@boland.example", "alt@boland.example"),
			company("c", "UIF300", "Cape Fisheries", "cape@example.com", ""),
			company("d", "UIF400", "Durban Textiles", "durban@example.com", ""),
		},
		Emails: []*entity.EmailRecord{
			crec("a", entity.DirectionOutgoing, mon),
			crec("b", entity.DirectionOutgoing, tue),
			crec("c", entity.DirectionOutgoing, mon),
			crec("c", entity.DirectionIncoming, wed),
			crec("a", entity.DirectionOutgoing, time.Time{}), // invalid, skipped
		},
		Threshold: 3,
		Now:       fri,
	}
}

func TestSummarizeCounts(t *testing.T) {
	cal := testCalendar(t, nil)
	snap := fixtureSnapshot()

	summary := Summarize(snap, cal)

	if summary.TotalCompanies != 4 {
		t.Errorf("TotalCompanies = %d, want 4", summary.TotalCompanies)
	}
	if summary.OverdueCount != 1 {
		t.Errorf("OverdueCount = %d, want 1", summary.OverdueCount)
	}
	if summary.DueSoonCount != 1 {
		t.Errorf("DueSoonCount = %d, want 1", summary.DueSoonCount)
	}
	if summary.ZeroReplyCount != 2 {
		t.Errorf("ZeroReplyCount = %d, want 2 (a and b)", summary.ZeroReplyCount)
	}
	if summary.SkippedRecords != 1 {
		t.Errorf("SkippedRecords = %d, want 1", summary.SkippedRecords)
	}
}

func TestSummarizeSentToday(t *testing.T) {
	cal := testCalendar(t, nil)
	snap := fixtureSnapshot()

	// Two more outgoing on the query date, one incoming the same day.
	today := at(2025, time.January, 10, 8)
	snap.Emails = append(snap.Emails,
		crec("a", entity.DirectionOutgoing, today),
		crec("b", entity.DirectionOutgoing, today.Add(2*time.Hour)),
		crec("c", entity.DirectionIncoming, today),
	)

	summary := Summarize(snap, cal)
	if summary.SentToday != 2 {
		t.Errorf("SentToday = %d, want 2 (incoming never counts)", summary.SentToday)
	}
}

func TestListCompaniesOrderingAndFields(t *testing.T) {
	cal := testCalendar(t, nil)
	snap := fixtureSnapshot()

	details := ListCompanies(snap, cal, "")
	if len(details) != 4 {
		t.Fatalf("len = %d, want 4", len(details))
	}

	var names []string
	for _, d := range details {
		names = append(names, d.TradeName)
	}
	want := []string{"Acme Traders", "Boland Motors", "Cape Fisheries", "Durban Textiles"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}

	acme := details[0]
	if acme.Classification != entity.Overdue {
		t.Errorf("acme classification = %s, want Overdue", acme.Classification)
	}
	if acme.LastContact != "2025-01-06" {
		t.Errorf("acme LastContact = %q, want 2025-01-06", acme.LastContact)
	}
	if acme.DaysSinceContact == nil || *acme.DaysSinceContact != 4 {
		t.Errorf("acme DaysSinceContact = %v, want 4", acme.DaysSinceContact)
	}

	durban := details[3]
	if durban.Classification != entity.NoContactYet {
		t.Errorf("durban classification = %s, want NoContactYet", durban.Classification)
	}
	if durban.LastContact != "" || durban.DaysSinceContact != nil {
		t.Error("durban should have no last contact fields")
	}
}

func TestListCompaniesFilter(t *testing.T) {
	cal := testCalendar(t, nil)
	snap := fixtureSnapshot()

	tests := []struct {
		filter string
		want   []string
	}{
		{"uif123", []string{"Acme Traders"}},
		{"UIF123", []string{"Acme Traders"}},
		{"boland", []string{"Boland Motors"}},
		{"alt@boland", []string{"Boland Motors"}},
		{"example", []string{"Acme Traders", "Boland Motors", "Cape Fisheries", "Durban Textiles"}},
		{"no-such-company", nil},
	}

	for _, tt := range tests {
		details := ListCompanies(snap, cal, tt.filter)
		var names []string
		for _, d := range details {
			names = append(names, d.TradeName)
		}
		if !reflect.DeepEqual(names, tt.want) {
			t.Errorf("filter %q: got %v, want %v", tt.filter, names, tt.want)
		}
	}
}

func TestOverdueReportExcludesDueSoon(t *testing.T) {
	cal := testCalendar(t, nil)
	snap := fixtureSnapshot()

	report := OverdueReport(snap, cal)
	if len(report) != 1 {
		t.Fatalf("len = %d, want 1 (due-soon company b stays out)", len(report))
	}

	row := report[0]
	if row.UIFRef != "UIF123" || row.TradeName != "Acme Traders" {
		t.Errorf("unexpected row: %+v", row)
	}
	if row.LastSentDate != "2025-01-06" {
		t.Errorf("LastSentDate = %q, want 2025-01-06", row.LastSentDate)
	}
	if row.WorkingDaysSince != 4 {
		t.Errorf("WorkingDaysSince = %d, want 4", row.WorkingDaysSince)
	}
}

func TestAggregationIsIdempotent(t *testing.T) {
	cal := testCalendar(t, nil)
	snap := fixtureSnapshot()

	s1 := Summarize(snap, cal)
	s2 := Summarize(snap, cal)
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Summarize not idempotent: %+v vs %+v", s1, s2)
	}

	l1 := ListCompanies(snap, cal, "")
	l2 := ListCompanies(snap, cal, "")
	if !reflect.DeepEqual(l1, l2) {
		t.Error("ListCompanies not idempotent for fixed snapshot")
	}

	r1 := OverdueReport(snap, cal)
	r2 := OverdueReport(snap, cal)
	if !reflect.DeepEqual(r1, r2) {
		t.Error("OverdueReport not idempotent for fixed snapshot")
	}
}

func TestMalformedRecordDoesNotAbortAggregation(t *testing.T) {
	cal := testCalendar(t, nil)
	snap := fixtureSnapshot()

	// Company a carries an invalid record; it must still be classified
	// from its valid history.
	details := ListCompanies(snap, cal, "acme")
	if len(details) != 1 {
		t.Fatalf("len = %d, want 1", len(details))
	}
	if details[0].SkippedRecords != 1 {
		t.Errorf("SkippedRecords = %d, want 1", details[0].SkippedRecords)
	}
	if details[0].Classification != entity.Overdue {
		t.Errorf("classification = %s, want Overdue from remaining records", details[0].Classification)
	}
}
