package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testToday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func TestClassify_Buckets(t *testing.T) {
	tests := []struct {
		name            string
		next            string
		days            int
		wantStatus      string
		wantDaysOverdue int
	}{
		{
			name:            "a week overdue",
			next:            "2024-06-03",
			days:            7,
			wantStatus:      StatusOverdue,
			wantDaysOverdue: 7,
		},
		{
			name:            "one day overdue",
			next:            "2024-06-09",
			days:            7,
			wantStatus:      StatusOverdue,
			wantDaysOverdue: 1,
		},
		{
			name:            "due today is never overdue",
			next:            "2024-06-10",
			days:            7,
			wantStatus:      StatusDueToday,
			wantDaysOverdue: 0,
		},
		{
			name:            "inside the window",
			next:            "2024-06-12",
			days:            7,
			wantStatus:      StatusDueSoon,
			wantDaysOverdue: -2,
		},
		{
			name:            "window upper bound is inclusive",
			next:            "2024-06-17",
			days:            7,
			wantStatus:      StatusDueSoon,
			wantDaysOverdue: -7,
		},
		{
			name:            "one past the window",
			next:            "2024-06-18",
			days:            7,
			wantStatus:      StatusNotDue,
			wantDaysOverdue: -8,
		},
		{
			name:       "empty date",
			next:       "",
			days:       7,
			wantStatus: StatusNoDate,
		},
		{
			name:       "whitespace-only date",
			next:       "   ",
			days:       7,
			wantStatus: StatusNoDate,
		},
		{
			name:       "malformed date degrades to no_date",
			next:       "next tuesday",
			days:       7,
			wantStatus: StatusNoDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, overdueBy := Classify(tt.next, testToday, tt.days)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDaysOverdue, overdueBy)
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		status, overdueBy := Classify("2024-06-12", testToday, 7)
		assert.Equal(t, StatusDueSoon, status)
		assert.Equal(t, -2, overdueBy)
	}
}

func TestClassify_TimeOfDayIgnored(t *testing.T) {
	lateEvening := time.Date(2024, 6, 10, 23, 45, 12, 0, time.UTC)

	status, _ := Classify("2024-06-10", lateEvening, 7)
	assert.Equal(t, StatusDueToday, status)

	status, _ = Classify("2024-06-17", lateEvening, 7)
	assert.Equal(t, StatusDueSoon, status)
}

func TestClassify_ClampedWindow(t *testing.T) {
	// days=-3 behaves exactly like days=1
	status, _ := Classify("2024-06-11", testToday, -3)
	assert.Equal(t, StatusDueSoon, status)
	status, _ = Classify("2024-06-12", testToday, -3)
	assert.Equal(t, StatusNotDue, status)

	// days=9999 behaves exactly like days=365
	status, _ = Classify(testToday.AddDate(0, 0, 365).Format(DateLayout), testToday, 9999)
	assert.Equal(t, StatusDueSoon, status)
	status, _ = Classify(testToday.AddDate(0, 0, 366).Format(DateLayout), testToday, 9999)
	assert.Equal(t, StatusNotDue, status)
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 1, ClampDays(-3))
	assert.Equal(t, 1, ClampDays(0))
	assert.Equal(t, 7, ClampDays(7))
	assert.Equal(t, 365, ClampDays(9999))

	assert.Equal(t, 1, ClampLimit(0))
	assert.Equal(t, 10, ClampLimit(10))
	assert.Equal(t, 50, ClampLimit(500))

	assert.Equal(t, 0, ClampOffset(-10))
	assert.Equal(t, 30, ClampOffset(30))
}

func TestStatusRank(t *testing.T) {
	assert.Equal(t, 0, StatusRank(StatusOverdue))
	assert.Equal(t, 1, StatusRank(StatusDueToday))
	assert.Equal(t, 2, StatusRank(StatusDueSoon))
	assert.Equal(t, 3, StatusRank(StatusNoDate))
}

func TestValidStatusFilter(t *testing.T) {
	assert.True(t, ValidStatusFilter(StatusOverdue))
	assert.True(t, ValidStatusFilter(StatusNoDate))
	assert.False(t, ValidStatusFilter(StatusNotDue))
	assert.False(t, ValidStatusFilter("broken"))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate(" 2024-06-10 ")
	assert.True(t, ok)
	assert.Equal(t, testToday, d)

	_, ok = ParseDate("2024-13-40")
	assert.False(t, ok)
}
