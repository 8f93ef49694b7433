package domain

import "time"

// ActivityEntry is an append-only audit record of a state-changing action on
// a complaint. The core only writes these; reads serve the admin detail page.
type ActivityEntry struct {
	ID          int64
	ComplaintID int64
	UserID      int64
	Action      ActivityAction
	Description string
	CreatedAt   time.Time
}
