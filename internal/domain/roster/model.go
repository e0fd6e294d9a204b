package roster

import "time"

// Entry is a show roster membership record. Rows are never deleted;
// moving a wrestler off a show flips IsActive to false so the
// assignment history stays auditable.
type Entry struct {
	ID         int64
	ShowID     int64
	WrestlerID int64
	AssignedAt time.Time
	IsActive   bool
}
