// Package journal turns stored entries into the week-by-week view shown on
// the journal page and printed by the CLI.
package journal

import (
	"fmt"
	"sort"
	"time"

	"github.com/lgastler/work-journal/internal/common"
	"github.com/lgastler/work-journal/internal/server/models"
)

// EntryView is an entry with its date rendered as YYYY-MM-DD.
type EntryView struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// Week holds the entries of one Sunday-to-Saturday week, split by category.
type Week struct {
	Start       string      `json:"start"`
	Work        []EntryView `json:"work"`
	Learning    []EntryView `json:"learning"`
	Interesting []EntryView `json:"interesting"`
}

// Label is the week heading, e.g. "Week of Jan 7th".
func (w Week) Label() string {
	return WeekLabel(w.Start)
}

// Empty reports whether no entry of a known category landed in the week.
func (w Week) Empty() bool {
	return len(w.Work) == 0 && len(w.Learning) == 0 && len(w.Interesting) == 0
}

// FormatDate renders the UTC calendar date of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(common.DateFormat)
}

// StartOfWeek returns the Sunday on or before t's calendar date, at midnight
// in t's location.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// View normalises entries for display, keeping their order.
func View(entries []models.Entry) []EntryView {
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, EntryView{
			ID:   e.ID,
			Date: FormatDate(e.Date),
			Type: e.Type,
			Text: e.Text,
		})
	}
	return views
}

// GroupByWeek buckets entries by the Sunday starting their week and returns
// the buckets in ascending order. Inside a bucket entries keep the order they
// were given in. Entries whose type is not a known category are left out of
// every list.
func GroupByWeek(entries []models.Entry) []Week {
	views := View(entries)
	buckets := make(map[string][]EntryView)
	for i, e := range entries {
		key := FormatDate(StartOfWeek(models.DateOnly(e.Date)))
		buckets[key] = append(buckets[key], views[i])
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	weeks := make([]Week, 0, len(keys))
	for _, k := range keys {
		w := Week{
			Start:       k,
			Work:        []EntryView{},
			Learning:    []EntryView{},
			Interesting: []EntryView{},
		}
		for _, v := range buckets[k] {
			switch models.EntryType(v.Type) {
			case models.EntryTypeWork:
				w.Work = append(w.Work, v)
			case models.EntryTypeLearning:
				w.Learning = append(w.Learning, v)
			case models.EntryTypeInteresting:
				w.Interesting = append(w.Interesting, v)
			}
		}
		weeks = append(weeks, w)
	}

	return weeks
}

// WeekLabel formats a YYYY-MM-DD week key as "Week of Jan 7th".
// Keys that do not parse are echoed back.
func WeekLabel(start string) string {
	t, err := time.Parse(common.DateFormat, start)
	if err != nil {
		return "Week of " + start
	}
	return fmt.Sprintf("Week of %s %s", t.Format("Jan"), Ordinal(t.Day()))
}

// Ordinal renders n with its English suffix: 1st, 2nd, 3rd, 4th, 11th, 22nd.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
