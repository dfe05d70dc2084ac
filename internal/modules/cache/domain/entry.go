package domain

import (
	"time"

	articleDomain "github.com/rtcl/newsdesk/internal/modules/article/domain"
)

// Entry is one session cache record: an aggregation result and the moment
// it was produced. Entries are superseded whole, never merged.
type Entry struct {
	Timestamp time.Time                         `json:"ts"`
	Payload   []articleDomain.NormalizedArticle `json:"data"`
}
