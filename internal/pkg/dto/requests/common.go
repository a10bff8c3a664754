package requests

import "time"

type Pagination struct {
	Page     int
	PageSize int
}

// DateRange is an optional, inclusive time filter parsed from query params.
type DateRange struct {
	From *time.Time
	To   *time.Time
}
