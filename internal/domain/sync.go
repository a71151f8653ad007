package domain

import "time"

// SyncStatus classifies one sync attempt for one platform.
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusPartial SyncStatus = "partial"
	SyncStatusFailed  SyncStatus = "failed"
)

// SyncEvent is the append-only audit record of one platform sync attempt.
// Rows are never mutated after creation.
type SyncEvent struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Platform     Platform   `json:"platform"`
	ItemsSynced  int        `json:"items_synced"`
	Status       SyncStatus `json:"status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// PlatformSyncResult is the per-platform outcome embedded in a sync summary.
type PlatformSyncResult struct {
	Platform     Platform `json:"platform"`
	Success      bool     `json:"success"`
	ItemsSynced  int      `json:"items_synced"`
	ItemsSkipped int      `json:"items_skipped,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// SyncSummary is the aggregate answer of one SyncAll call. It always comes
// back with HTTP 200 semantics; individual platform failures live inside
// PerPlatform.
type SyncSummary struct {
	TotalSynced int                  `json:"total_synced"`
	PerPlatform []PlatformSyncResult `json:"per_platform"`
}
