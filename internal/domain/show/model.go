package show

import "fmt"

// Show is a recurring program the promotion runs, e.g. a weekly
// television taping. Each show carries its own roster and titles.
type Show struct {
	ID          int64
	Name        string
	Description string
}

func (s Show) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("show name is required")
	}

	return nil
}
