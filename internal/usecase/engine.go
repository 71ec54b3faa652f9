package usecase

import (
	"time"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
	"github.com/dithetoauditflow-toolset/email-tracker/pkg/workdays"
)

// Evaluate classifies one company's follow-up position from its email
// history. It is a pure function of (history, calendar, threshold, now):
// no hidden state, fully recomputable. All instants are normalized to UTC
// before any comparison; records with a zero timestamp are dropped and
// counted in SkippedRecords.
//
// The decision rule:
//   - no outgoing email ever            -> NoContactYet
//   - any incoming after last outgoing  -> RepliedOnTime
//   - elapsed working days > threshold  -> Overdue
//   - elapsed working days == threshold -> DueSoon
//   - otherwise                         -> AwaitingReply
//
// Only replies after the most recent outgoing message qualify; an old
// reply earlier in history does not resolve the current follow-up.
func Evaluate(emails []*entity.EmailRecord, cal *workdays.Calendar, threshold int, now time.Time) entity.FollowUpState {
	now = now.UTC()

	var state entity.FollowUpState
	var lastOutgoing, lastIncoming time.Time

	for _, rec := range emails {
		if rec.Date.IsZero() {
			state.SkippedRecords++
			continue
		}
		ts := rec.Date.UTC()

		switch rec.Direction {
		case entity.DirectionOutgoing:
			state.TotalSent++
			if ts.After(lastOutgoing) {
				lastOutgoing = ts
			}
		case entity.DirectionIncoming:
			state.TotalReceived++
			if ts.After(lastIncoming) {
				lastIncoming = ts
			}
		default:
			state.SkippedRecords++
		}
	}

	state.ZeroReply = state.TotalSent > 0 && state.TotalReceived == 0
	state.HighVolume = state.TotalSent >= entity.HighVolumeThreshold

	if !lastOutgoing.IsZero() || !lastIncoming.IsZero() {
		state.HasContact = true
		state.LastContact = lastOutgoing
		if lastIncoming.After(state.LastContact) {
			state.LastContact = lastIncoming
		}
		state.DaysSinceContact = cal.WorkingDaysBetween(state.LastContact, now)
	}

	if state.TotalSent == 0 {
		state.Classification = entity.NoContactYet
		return state
	}

	state.LastOutgoing = lastOutgoing

	// Qualifying replies: strictly after the last outgoing message.
	var lastQualifying time.Time
	for _, rec := range emails {
		if rec.Direction != entity.DirectionIncoming || rec.Date.IsZero() {
			continue
		}
		ts := rec.Date.UTC()
		if ts.After(lastOutgoing) {
			state.RepliesSinceLastSent++
			if ts.After(lastQualifying) {
				lastQualifying = ts
			}
		}
	}

	if !lastQualifying.IsZero() {
		state.Classification = entity.RepliedOnTime
		state.LastQualifyingIn = lastQualifying
		// Recorded for reporting only; a reply closes the follow-up no
		// matter how long it took.
		state.WorkingDaysElapsed = cal.WorkingDaysBetween(lastOutgoing, lastQualifying)
		return state
	}

	state.WorkingDaysElapsed = cal.WorkingDaysBetween(lastOutgoing, now)
	switch {
	case state.WorkingDaysElapsed > threshold:
		state.Classification = entity.Overdue
	case state.WorkingDaysElapsed == threshold:
		state.Classification = entity.DueSoon
	default:
		state.Classification = entity.AwaitingReply
	}
	return state
}
