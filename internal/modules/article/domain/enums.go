//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// SortMode selects how the grouping engine partitions articles
// ENUM(date,topic,difficulty)
type SortMode string
