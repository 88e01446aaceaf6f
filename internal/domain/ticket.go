package domain

import "encoding/json"

// StatusOpen is the JSON value assigned to freshly created tickets.
const StatusOpen = `"Open"`

// CreatedAtLayout renders timestamps as ISO-8601 with millisecond
// precision, always in UTC.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// Ticket is the aggregate for support requests. Status holds the raw JSON
// value supplied by the client: the API stores and echoes any non-empty
// value verbatim, including numbers, with no transition rules. UserID is a
// weak reference resolved only at creation time; deleting the user leaves
// the ticket intact.
type Ticket struct {
	ID          int
	UserID      int
	Description string
	Status      json.RawMessage
	CreatedAt   string
}
