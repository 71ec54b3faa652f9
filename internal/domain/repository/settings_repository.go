package repository

import "context"

// SettingsRepository reads the admin-owned global settings. FollowupDays
// returns entity.ErrMissingSetting when the key is absent; callers fail the
// pass instead of assuming a default.
type SettingsRepository interface {
	FollowupDays(ctx context.Context) (int, error)
	InternalDomains(ctx context.Context) ([]string, error)
}
