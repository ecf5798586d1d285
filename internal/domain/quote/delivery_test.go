package quote

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeliveryDate(t *testing.T) {
	// 2026-08-28 is a Friday.
	friday := date(2026, time.August, 28)

	t.Run("friday plus one skips the weekend", func(t *testing.T) {
		got := DeliveryDate(friday, 1)
		want := date(2026, time.August, 31) // Monday
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("friday plus three lands thursday", func(t *testing.T) {
		got := DeliveryDate(friday, 3)
		want := date(2026, time.September, 2) // Wednesday
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("weekend ship date moves to monday first", func(t *testing.T) {
		saturday := date(2026, time.August, 29)
		got := DeliveryDate(saturday, 1)
		want := date(2026, time.September, 1) // ships Monday, delivers Tuesday
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("delivery never lands on a weekend", func(t *testing.T) {
		start := date(2026, time.August, 24) // Monday
		for dayOffset := 0; dayOffset < 14; dayOffset++ {
			for n := 1; n <= 7; n++ {
				got := DeliveryDate(start.AddDate(0, 0, dayOffset), n)
				if !IsBusinessDay(got) {
					t.Fatalf("delivery on %v (%v) for start+%d, n=%d", got, got.Weekday(), dayOffset, n)
				}
			}
		}
	})

	t.Run("five business days spans a full week", func(t *testing.T) {
		monday := date(2026, time.August, 24)
		got := AddBusinessDays(monday, 5)
		want := date(2026, time.August, 31) // next Monday
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})
}
