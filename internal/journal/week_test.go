package journal

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/lgastler/work-journal/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(id, date, typ, text string) models.Entry {
	return models.Entry{ID: id, Date: day(date), Type: typ, Text: text}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-07", "2024-01-07"}, // Sunday
		{"2024-01-10", "2024-01-07"}, // Wednesday
		{"2024-01-13", "2024-01-07"}, // Saturday
		{"2024-01-14", "2024-01-14"}, // next Sunday
		{"2024-03-01", "2024-02-25"}, // across a month boundary
		{"2025-01-01", "2024-12-29"}, // across a year boundary
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(StartOfWeek(day(tt.in))))
		})
	}
}

func TestFormatDate_StripsTime(t *testing.T) {
	assert.Equal(t, "2024-01-10", FormatDate(time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)))
}

func TestGroupByWeek_WednesdayGoesToPrecedingSunday(t *testing.T) {
	weeks := GroupByWeek([]models.Entry{entry("e1", "2024-01-10", "work", "Shipped feature X")})

	require.Len(t, weeks, 1)
	assert.Equal(t, "2024-01-07", weeks[0].Start)
	require.Len(t, weeks[0].Work, 1)
	assert.Equal(t, EntryView{ID: "e1", Date: "2024-01-10", Type: "work", Text: "Shipped feature X"}, weeks[0].Work[0])
	assert.Empty(t, weeks[0].Learning)
	assert.Empty(t, weeks[0].Interesting)
}

func TestGroupByWeek_SundayAndSaturdayShareBucket(t *testing.T) {
	weeks := GroupByWeek([]models.Entry{
		entry("sun", "2024-01-07", "work", "a"),
		entry("sat", "2024-01-13", "learning", "b"),
	})

	require.Len(t, weeks, 1)
	assert.Equal(t, "2024-01-07", weeks[0].Start)
	assert.Equal(t, "sun", weeks[0].Work[0].ID)
	assert.Equal(t, "sat", weeks[0].Learning[0].ID)
}

func TestGroupByWeek_NextSundayStartsLaterBucket(t *testing.T) {
	weeks := GroupByWeek([]models.Entry{
		entry("next", "2024-01-14", "interesting", "c"),
		entry("sun", "2024-01-07", "work", "a"),
	})

	require.Len(t, weeks, 2)
	assert.Equal(t, "2024-01-07", weeks[0].Start)
	assert.Equal(t, "2024-01-14", weeks[1].Start)
	assert.Equal(t, "next", weeks[1].Interesting[0].ID)
}

func TestGroupByWeek_UnknownTypeIsOmitted(t *testing.T) {
	weeks := GroupByWeek([]models.Entry{entry("e1", "2024-02-01", "unknown-category", "x")})

	require.Len(t, weeks, 1)
	assert.Equal(t, "2024-01-28", weeks[0].Start)
	assert.True(t, weeks[0].Empty())
}

func TestGroupByWeek_TypeMatchIsExact(t *testing.T) {
	weeks := GroupByWeek([]models.Entry{
		entry("a", "2024-01-08", "Work", "x"),
		entry("b", "2024-01-08", " learning", "x"),
		entry("c", "2024-01-08", "interesting", "x"),
	})

	require.Len(t, weeks, 1)
	assert.Empty(t, weeks[0].Work)
	assert.Empty(t, weeks[0].Learning)
	require.Len(t, weeks[0].Interesting, 1)
	assert.Equal(t, "c", weeks[0].Interesting[0].ID)
}

func TestGroupByWeek_PreservesEncounterOrderWithinBucket(t *testing.T) {
	weeks := GroupByWeek([]models.Entry{
		entry("3", "2024-01-12", "work", "third"),
		entry("1", "2024-01-08", "work", "first"),
		entry("2", "2024-01-10", "work", "second"),
	})

	require.Len(t, weeks, 1)
	var ids []string
	for _, v := range weeks[0].Work {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestGroupByWeek_Empty(t *testing.T) {
	assert.Empty(t, GroupByWeek(nil))
}

func TestGroupByWeek_OrderIndependentOfInputOrder(t *testing.T) {
	base := []models.Entry{
		entry("a", "2023-12-31", "work", "a"),
		entry("b", "2024-01-03", "learning", "b"),
		entry("c", "2024-01-10", "interesting", "c"),
		entry("d", "2024-02-29", "work", "d"),
		entry("e", "2024-01-14", "work", "e"),
		entry("f", "2023-06-06", "learning", "f"),
	}

	want := GroupByWeek(base)
	for i := 1; i < len(want); i++ {
		assert.Less(t, want[i-1].Start, want[i].Start)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.Entry(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := GroupByWeek(shuffled)
		require.Len(t, got, len(want))
		for j := range got {
			assert.Equal(t, want[j].Start, got[j].Start)
		}
	}
}

func TestGroupByWeek_SameWeekSameBucket(t *testing.T) {
	var in []models.Entry
	start := day("2024-01-01")
	for i := 0; i < 60; i++ {
		in = append(in, entry("e", FormatDate(start.AddDate(0, 0, i)), "work", "x"))
	}

	for _, w := range GroupByWeek(in) {
		for _, v := range w.Work {
			assert.Equal(t, w.Start, FormatDate(StartOfWeek(day(v.Date))))
		}
	}
}

func TestGroupByWeek_Idempotent(t *testing.T) {
	in := []models.Entry{
		entry("a", "2024-01-10", "work", "x"),
		entry("b", "2024-01-20", "learning", "y"),
	}
	if diff := cmp.Diff(GroupByWeek(in), GroupByWeek(in)); diff != "" {
		t.Fatalf("repeated grouping differs (-first +second):\n%s", diff)
	}
}

func TestWeekLabel(t *testing.T) {
	assert.Equal(t, "Week of Jan 7th", WeekLabel("2024-01-07"))
	assert.Equal(t, "Week of Dec 31st", WeekLabel("2023-12-31"))
	assert.Equal(t, "Week of Mar 3rd", WeekLabel("2024-03-03"))
	assert.Equal(t, "Week of Jun 22nd", WeekLabel("2025-06-22"))
	assert.Equal(t, "Week of garbage", WeekLabel("garbage"))
	assert.Equal(t, "Week of Jan 14th", Week{Start: "2024-01-14"}.Label())
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 30: "30th", 101: "101st", 111: "111th"}
	for n, want := range tests {
		assert.Equal(t, want, Ordinal(n))
	}
}
