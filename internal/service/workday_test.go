package service

import (
	"testing"
	"time"
)

func TestArrivedAfter(t *testing.T) {
	cases := []struct {
		name      string
		eventAt   time.Time
		workStart string
		want      bool
	}{
		{
			name:      "strictly later is late",
			eventAt:   time.Date(2024, 5, 15, 9, 15, 0, 0, time.UTC),
			workStart: "09:00:00",
			want:      true,
		},
		{
			name:      "one second later is late",
			eventAt:   time.Date(2024, 5, 15, 9, 0, 1, 0, time.UTC),
			workStart: "09:00:00",
			want:      true,
		},
		{
			name:      "exactly on time is not late",
			eventAt:   time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC),
			workStart: "09:00:00",
			want:      false,
		},
		{
			name:      "earlier is not late",
			eventAt:   time.Date(2024, 5, 15, 8, 59, 59, 0, time.UTC),
			workStart: "09:00:00",
			want:      false,
		},
		{
			name:      "short time format",
			eventAt:   time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC),
			workStart: "10:00",
			want:      true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := arrivedAfter(tc.eventAt, tc.workStart)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("arrivedAfter(%s, %s) = %v, want %v", tc.eventAt, tc.workStart, got, tc.want)
			}
		})
	}
}

func TestArrivedAfterInvalidWorkStart(t *testing.T) {
	if _, err := arrivedAfter(time.Now(), "morning"); err == nil {
		t.Fatal("expected error for malformed work start time")
	}
}

func TestHoursBetween(t *testing.T) {
	day := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) *time.Time {
		v := day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
		return &v
	}

	cases := []struct {
		name       string
		firstEntry *time.Time
		lastExit   *time.Time
		want       float64
	}{
		{name: "no events", firstEntry: nil, lastExit: nil, want: 0},
		{name: "entry without exit", firstEntry: at(9, 0), lastExit: nil, want: 0},
		{name: "exit without entry", firstEntry: nil, lastExit: at(18, 0), want: 0},
		{name: "full day", firstEntry: at(9, 0), lastExit: at(17, 30), want: 8.5},
		{name: "rounded to two decimals", firstEntry: at(9, 0), lastExit: at(16, 20), want: 7.33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hoursBetween(tc.firstEntry, tc.lastExit); got != tc.want {
				t.Fatalf("hoursBetween = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterViolations(t *testing.T) {
	day := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)
	rows := []violationQueryRow{
		{
			EmployeeID:    7,
			FullName:      "Иванов Иван Иванович",
			Position:      "Инженер",
			WorkDate:      day,
			FirstEntry:    day.Add(9*time.Hour + 15*time.Minute),
			WorkStartTime: "09:00:00",
			IsLate:        true,
		},
		{
			EmployeeID:    8,
			FullName:      "Петрова Анна Сергеевна",
			Position:      "Бухгалтер",
			WorkDate:      day,
			FirstEntry:    day.Add(9 * time.Hour),
			WorkStartTime: "10:00:00",
			IsLate:        false,
		},
	}

	violations := filterViolations(rows)

	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	got := violations[0]
	if got.EmployeeID != 7 {
		t.Fatalf("unexpected employee id: %d", got.EmployeeID)
	}
	if got.WorkDate != "2024-05-14" {
		t.Fatalf("unexpected work date: %s", got.WorkDate)
	}
	if got.WorkStartTime != "09:00:00" {
		t.Fatalf("unexpected work start time: %s", got.WorkStartTime)
	}
	if !got.IsLate {
		t.Fatal("violation must be flagged late")
	}
}

func TestFilterViolationsEmpty(t *testing.T) {
	if got := filterViolations(nil); len(got) != 0 {
		t.Fatalf("expected no violations, got %d", len(got))
	}
}
