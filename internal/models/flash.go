package models

// Flash kinds surfaced to the renderer.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-time notice queued for the next rendered page.
type Flash struct {
	Kind    string `json:"kind"`    // "success" or "error"
	Message string `json:"message"` // User-visible text
}

// DeletionEvent is the audit record published when a campground and
// its reviews are removed.
type DeletionEvent struct {
	EventID      string `json:"event_id"`      // Unique identifier for the event
	Timestamp    int64  `json:"timestamp"`     // Unix timestamp (seconds) of the deletion
	CampgroundID string `json:"campground_id"` // Deleted campground
	AuthorID     string `json:"author_id"`     // Owner who performed the deletion
	ReviewCount  int64  `json:"review_count"`  // Reviews removed by the cascade
	ImageCount   int    `json:"image_count"`   // Images queued for upstream cleanup
}

// CleanupTask is published to the image-cleanup topic when an
// image-store delete could not be completed in the request path.
type CleanupTask struct {
	TaskID       string `json:"task_id"`       // Unique identifier for the task
	Timestamp    int64  `json:"timestamp"`     // Unix timestamp (seconds) when the failure happened
	StorageKey   string `json:"storage_key"`   // Key to destroy at the image store
	CampgroundID string `json:"campground_id"` // Campground the image belonged to
	Reason       string `json:"reason"`        // Short failure description
}
