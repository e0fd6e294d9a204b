package app

import "strings"

// SQL statements attached to spans are collapsed to one line and capped
// so a bulk insert cannot bloat the trace payload.
const tracedQueryLimit = 512

func formatDBQueryForTrace(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return ""
	}

	compact := strings.Join(fields, " ")
	if len(compact) > tracedQueryLimit {
		compact = compact[:tracedQueryLimit] + "..."
	}

	return compact
}
