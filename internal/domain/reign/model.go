package reign

import (
	"fmt"
	"time"
)

// ChangeMethod records how a belt changed hands.
type ChangeMethod string

const (
	MethodWon      ChangeMethod = "Won"
	MethodAwarded  ChangeMethod = "Awarded"
	MethodStripped ChangeMethod = "Stripped"
	MethodVacated  ChangeMethod = "Vacated"
)

func ParseChangeMethod(raw string) (ChangeMethod, error) {
	switch ChangeMethod(raw) {
	case MethodWon, MethodAwarded, MethodStripped, MethodVacated:
		return ChangeMethod(raw), nil
	default:
		return "", fmt.Errorf("unknown change method %q", raw)
	}
}

// Reign is one entry in the title holder ledger. HeldUntil is nil
// while the reign is open; a closed reign is immutable history.
type Reign struct {
	ID            int64
	TitleID       int64
	WrestlerID    int64
	HeldSince     time.Time
	HeldUntil     *time.Time
	EventName     string
	EventLocation string
	ChangeMethod  ChangeMethod
}

// Open reports whether this reign is the title's current one.
func (r Reign) Open() bool {
	return r.HeldUntil == nil
}

// DaysHeld is the whole number of days the belt has been held, floor
// rounded. Closed reigns measure to HeldUntil, open reigns to now.
func (r Reign) DaysHeld(now time.Time) int {
	end := now
	if r.HeldUntil != nil {
		end = *r.HeldUntil
	}
	days := int(end.Sub(r.HeldSince).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
