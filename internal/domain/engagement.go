package domain

import "time"

// Upvote is a citizen's endorsement of a complaint. The (ComplaintID, UserID)
// pair is unique; existence is the only fact that matters.
type Upvote struct {
	ID          int64
	ComplaintID int64
	UserID      int64
}

// Comment is attached to a complaint by a citizen or an admin. IsOfficial is
// fixed at creation from the author's kind; comments are never mutated.
type Comment struct {
	ID          int64
	ComplaintID int64
	UserID      int64
	Text        string
	IsOfficial  bool
	IsPublic    bool
	CreatedAt   time.Time

	// Author display name, populated by read queries.
	UserName string
}
