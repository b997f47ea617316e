package paper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-03-15 is a Friday.
var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestDateBuckets_Scenarios(t *testing.T) {
	assert.True(t, IsToday(date(2024, 3, 15), fixedNow))
	assert.True(t, IsYesterday(date(2024, 3, 14), fixedNow))
	assert.False(t, IsToday(date(2024, 3, 14), fixedNow))

	feb := date(2024, 2, 1)
	assert.True(t, IsThisYear(feb, fixedNow))
	assert.False(t, IsThisMonth(feb, fixedNow))
}

func TestDateBuckets_Matrix(t *testing.T) {
	type want struct{ today, yesterday, tweek, lweek, month, year bool }
	tests := []struct {
		name string
		date time.Time
		want want
	}{
		{"same day", date(2024, 3, 15), want{true, false, true, false, true, true}},
		{"yesterday", date(2024, 3, 14), want{false, true, true, false, true, true}},
		{"sunday of this week", date(2024, 3, 10), want{false, false, true, false, true, true}},
		{"saturday of last week", date(2024, 3, 9), want{false, false, false, true, true, true}},
		{"sunday of last week", date(2024, 3, 3), want{false, false, false, true, true, true}},
		{"two weeks ago", date(2024, 3, 2), want{false, false, false, false, true, true}},
		{"last month", date(2024, 2, 1), want{false, false, false, false, false, true}},
		{"last year same month", date(2023, 3, 15), want{false, false, false, false, false, false}},
		{"next year", date(2025, 3, 15), want{false, false, false, false, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := want{
				today:     DateToday.Matches(tt.date, fixedNow),
				yesterday: DateYesterday.Matches(tt.date, fixedNow),
				tweek:     DateThisWeek.Matches(tt.date, fixedNow),
				lweek:     DateLastWeek.Matches(tt.date, fixedNow),
				month:     DateThisMonth.Matches(tt.date, fixedNow),
				year:      DateThisYear.Matches(tt.date, fixedNow),
			}
			assert.Equal(t, tt.want, got)
			assert.True(t, DateAll.Matches(tt.date, fixedNow))
		})
	}
}

func TestDateBuckets_TodayImpliesWiderBuckets(t *testing.T) {
	for d := 0; d < 366; d++ {
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		assert.True(t, IsThisWeek(now, now))
		assert.True(t, IsThisMonth(now, now))
		assert.True(t, IsThisYear(now, now))
		assert.False(t, IsYesterday(now, now))
		assert.False(t, IsLastWeek(now, now))
	}
}

func TestDateBuckets_YearBoundary(t *testing.T) {
	// 2025-01-02 is a Thursday; its week started Sunday 2024-12-29.
	now := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)

	assert.True(t, IsThisWeek(date(2024, 12, 30), now))
	assert.True(t, IsLastWeek(date(2024, 12, 24), now))
	assert.False(t, IsLastWeek(date(2025, 12, 24), now))
	assert.True(t, IsYesterday(date(2025, 1, 1), now))
	assert.True(t, IsYesterday(date(2024, 12, 31), time.Date(2025, 1, 1, 0, 5, 0, 0, time.UTC)))
}

func TestDateBuckets_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 3, 15, 1, 0, 0, 0, loc)
	// 23:30 UTC on the 14th is 01:30 on the 15th in now's zone.
	d := time.Date(2024, 3, 14, 23, 30, 0, 0, time.UTC)
	assert.True(t, IsToday(d, now))
	assert.False(t, IsYesterday(d, now))
}

func TestWeekOfYear(t *testing.T) {
	// 2024-01-01 is a Monday, so week 1 runs Dec 31 - Jan 6.
	assert.Equal(t, 1, WeekOfYear(date(2024, 1, 1)))
	assert.Equal(t, 1, WeekOfYear(date(2024, 1, 6)))
	assert.Equal(t, 2, WeekOfYear(date(2024, 1, 7)))
	assert.Equal(t, 11, WeekOfYear(date(2024, 3, 15)))

	// Within a year, the week-number rule and the week-start rule agree.
	for d := 0; d < 365; d++ {
		a := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		for _, off := range []int{-8, -7, -3, -1, 0, 1, 6} {
			b := a.AddDate(0, 0, off)
			if b.Year() != a.Year() {
				continue
			}
			assert.Equal(t, WeekOfYear(a) == WeekOfYear(b), IsThisWeek(b, a), "%s vs %s", a, b)
			assert.Equal(t, WeekOfYear(b) == WeekOfYear(a)-1, IsLastWeek(b, a), "%s vs %s", a, b)
		}
	}
}

func TestRoleFilter(t *testing.T) {
	assert.True(t, RoleAll.Matches(RoleAuthor))
	assert.True(t, RoleAll.Matches(RoleReviewer))
	assert.True(t, RoleAuthors.Matches(RoleAuthor))
	assert.False(t, RoleAuthors.Matches(RoleReviewer))
	assert.True(t, RoleReviewers.Matches(RoleReviewer))
	assert.False(t, RoleReviewers.Matches(Role("owner")))
}

func TestParseFilters(t *testing.T) {
	assert.Equal(t, DateLastWeek, ParseDateBucket("lweek"))
	assert.Equal(t, DateAll, ParseDateBucket("decade"))
	assert.Equal(t, RoleReviewers, ParseRoleFilter("reviewer"))
	assert.Equal(t, RoleAll, ParseRoleFilter("Author"))
	assert.Equal(t, StyleGrid, ParseStyle(" Grid "))
	assert.Equal(t, StyleList, ParseStyle("cards"))
}

func TestFilter_MatchesIsConjunction(t *testing.T) {
	p := Paper{ID: "1", Role: RoleReviewer, Date: date(2024, 3, 14)}
	assert.True(t, Filter{Date: DateYesterday, Role: RoleReviewers}.Matches(p, fixedNow))
	assert.False(t, Filter{Date: DateYesterday, Role: RoleAuthors}.Matches(p, fixedNow))
	assert.False(t, Filter{Date: DateToday, Role: RoleReviewers}.Matches(p, fixedNow))
	assert.True(t, Filter{}.Matches(p, fixedNow))
}
