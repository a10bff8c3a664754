package requests

import "time"

type StatisticsSummary struct {
	From     time.Time
	To       time.Time
	BranchID string
}
