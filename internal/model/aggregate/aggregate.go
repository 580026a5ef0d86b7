// Package aggregate derives daily, weekly and monthly views from the flat
// expense list. Every function is pure: the list plus a reference instant
// in, a derived structure out.
package aggregate

import (
	"sort"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

// Line is one display row: expenses sharing the exact category and note
// pair, collapsed into a summed amount.
type Line struct {
	Category string
	Note     string
	Amount   float64
}

// Split partitions expenses into the daily budget and everything else.
// Relative order is preserved in both halves.
func Split(records []expense.Record) (daily, other []expense.Record) {
	daily = make([]expense.Record, 0, len(records))
	other = make([]expense.Record, 0)
	for _, rec := range records {
		if rec.IsDaily() {
			daily = append(daily, rec)
		} else {
			other = append(other, rec)
		}
	}
	return daily, other
}

func Sum(records []expense.Record) float64 {
	total := 0.0
	for _, rec := range records {
		total += rec.Amount
	}
	return total
}

// BucketByDate groups expenses by their calendar day without altering
// per-day relative order.
func BucketByDate(records []expense.Record) map[string][]expense.Record {
	buckets := make(map[string][]expense.Record)
	for _, rec := range records {
		buckets[rec.Date] = append(buckets[rec.Date], rec)
	}
	return buckets
}

// GroupByCategoryNote merges expenses sharing the (category, note) pair
// into single lines, in first-seen order. Grouping an already grouped set
// yields the same lines.
func GroupByCategoryNote(records []expense.Record) []Line {
	type key struct {
		category string
		note     string
	}
	index := make(map[key]int)
	lines := make([]Line, 0, len(records))
	for _, rec := range records {
		k := key{rec.Category, rec.Note}
		if i, ok := index[k]; ok {
			lines[i].Amount += rec.Amount
			continue
		}
		index[k] = len(lines)
		lines = append(lines, Line{Category: rec.Category, Note: rec.Note, Amount: rec.Amount})
	}
	return lines
}

// GroupByCategory sums expenses per display category, largest first.
func GroupByCategory(records []expense.Record) []Line {
	m := make(map[string]float64)
	for _, rec := range records {
		m[rec.Category] += rec.Amount
	}
	lines := make([]Line, 0, len(m))
	for category, amount := range m {
		lines = append(lines, Line{Category: category, Amount: amount})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Amount != lines[j].Amount {
			return lines[i].Amount > lines[j].Amount
		}
		return lines[i].Category < lines[j].Category
	})
	return lines
}

// Dates lists the bucket keys, most recent day first.
func Dates(buckets map[string][]expense.Record) []string {
	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
