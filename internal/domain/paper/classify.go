package paper

import "time"

// DateBucket is a recency filter over paper dates.
type DateBucket string

const (
	DateAll       DateBucket = "all"
	DateToday     DateBucket = "today"
	DateYesterday DateBucket = "yesterday"
	DateThisWeek  DateBucket = "tweek"
	DateLastWeek  DateBucket = "lweek"
	DateThisMonth DateBucket = "month"
	DateThisYear  DateBucket = "year"
)

// DateBuckets lists the buckets in display order.
var DateBuckets = []DateBucket{
	DateAll, DateToday, DateYesterday, DateThisWeek, DateLastWeek, DateThisMonth, DateThisYear,
}

// ParseDateBucket returns the bucket named by s, or DateAll for unknown values.
func ParseDateBucket(s string) DateBucket {
	for _, b := range DateBuckets {
		if string(b) == s {
			return b
		}
	}
	return DateAll
}

// RoleFilter restricts the list to one role.
type RoleFilter string

const (
	RoleAll       RoleFilter = "all"
	RoleAuthors   RoleFilter = RoleFilter(RoleAuthor)
	RoleReviewers RoleFilter = RoleFilter(RoleReviewer)
)

// ParseRoleFilter returns the filter named by s, or RoleAll for unknown values.
func ParseRoleFilter(s string) RoleFilter {
	switch RoleFilter(s) {
	case RoleAuthors, RoleReviewers:
		return RoleFilter(s)
	default:
		return RoleAll
	}
}

// Matches reports whether a paper with the given role passes the filter.
func (f RoleFilter) Matches(r Role) bool {
	if f == RoleAll || f == "" {
		return true
	}
	return Role(f) == r
}

// Matches reports whether date falls in the bucket relative to now.
// Dates are compared as calendar days in now's location.
func (b DateBucket) Matches(date, now time.Time) bool {
	switch b {
	case DateToday:
		return IsToday(date, now)
	case DateYesterday:
		return IsYesterday(date, now)
	case DateThisWeek:
		return IsThisWeek(date, now)
	case DateLastWeek:
		return IsLastWeek(date, now)
	case DateThisMonth:
		return IsThisMonth(date, now)
	case DateThisYear:
		return IsThisYear(date, now)
	default:
		return true
	}
}

func day(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether date is on now's calendar day.
func IsToday(date, now time.Time) bool {
	return sameDay(day(date, now.Location()), day(now, now.Location()))
}

// IsYesterday reports whether date is on the calendar day before now.
func IsYesterday(date, now time.Time) bool {
	loc := now.Location()
	return sameDay(day(date, loc), day(now, loc).AddDate(0, 0, -1))
}

// weekStart returns the Sunday that starts t's week.
func weekStart(t time.Time, loc *time.Location) time.Time {
	d := day(t, loc)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeekOfYear returns the 1-indexed Sunday-start week number of t within its
// year. Week 1 is the (possibly partial) week containing January 1st.
func WeekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return (t.YearDay()-1+int(jan1.Weekday()))/7 + 1
}

// IsThisWeek reports whether date is in now's Sunday-start week.
func IsThisWeek(date, now time.Time) bool {
	loc := now.Location()
	return sameDay(weekStart(date, loc), weekStart(now, loc))
}

// IsLastWeek reports whether date is in the Sunday-start week before now's.
// Weeks spanning a year boundary are compared as whole weeks.
func IsLastWeek(date, now time.Time) bool {
	loc := now.Location()
	return sameDay(weekStart(date, loc), weekStart(now, loc).AddDate(0, 0, -7))
}

// IsThisMonth reports whether date is in now's calendar month and year.
func IsThisMonth(date, now time.Time) bool {
	d := date.In(now.Location())
	return d.Year() == now.Year() && d.Month() == now.Month()
}

// IsThisYear reports whether date is in now's calendar year.
func IsThisYear(date, now time.Time) bool {
	return date.In(now.Location()).Year() == now.Year()
}

// Filter is the transient filter state of the list view.
type Filter struct {
	Date DateBucket
	Role RoleFilter
}

// Matches combines the date and role predicates with AND.
func (f Filter) Matches(p Paper, now time.Time) bool {
	return f.Date.Matches(p.Date, now) && f.Role.Matches(p.Role)
}
