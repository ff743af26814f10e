package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("2024-13-01")
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestActivity_Validate(t *testing.T) {
	d := day(t, "2024-03-01")
	tests := []struct {
		name    string
		a       Activity
		wantErr error
	}{
		{"valid", Activity{Date: d, Count: 3, Level: Level2}, nil},
		{"zero date", Activity{Count: 1, Level: Level1}, ErrInvalidDate},
		{"year before 1970", Activity{Date: day(t, "0001-06-01"), Count: 1, Level: Level1}, ErrInvalidDate},
		{"first supported year", Activity{Date: day(t, "1970-01-01"), Count: 1, Level: Level1}, nil},
		{"negative count", Activity{Date: d, Count: -1}, ErrNegativeCount},
		{"level too high", Activity{Date: d, Count: 1, Level: 5}, ErrInvalidLevel},
		{"level negative", Activity{Date: d, Count: 1, Level: -1}, ErrInvalidLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPartitionByYear_SumsPerYear(t *testing.T) {
	activities := []Activity{
		{Date: day(t, "2024-01-02"), Count: 12000, Level: Level4},
		{Date: day(t, "2023-12-31"), Count: 5, Level: Level1},
		{Date: day(t, "2024-01-01"), Count: 345, Level: Level2},
	}

	got := PartitionByYear(activities, nil)

	if len(got) != 2 {
		t.Fatalf("expected 2 years, got %d", len(got))
	}
	if got[0].Year != 2023 || got[0].Total != 5 {
		t.Errorf("unexpected 2023 partition: %+v", got[0])
	}
	if got[1].Year != 2024 || got[1].Total != 12345 {
		t.Errorf("unexpected 2024 partition: %+v", got[1])
	}
	if !got[1].Activities[0].Date.Equal(day(t, "2024-01-01")) {
		t.Errorf("expected 2024 activities sorted, first is %s", got[1].Activities[0].Date)
	}
}

func TestPartitionByYear_KeepsEmptyVisibleYears(t *testing.T) {
	activities := []Activity{
		{Date: day(t, "2024-06-01"), Count: 2, Level: Level1},
	}

	got := PartitionByYear(activities, []int{2025, 2023, 2024, 2025})

	want := []int{2023, 2024, 2025}
	years := make([]int, len(got))
	for i, ya := range got {
		years[i] = ya.Year
	}
	if diff := cmp.Diff(want, years); diff != "" {
		t.Fatalf("years mismatch (-want +got):\n%s", diff)
	}
	if got[0].Total != 0 || len(got[0].Activities) != 0 {
		t.Errorf("expected empty 2023, got %+v", got[0])
	}
	if got[2].Total != 0 {
		t.Errorf("expected zero total for 2025, got %d", got[2].Total)
	}
}

func TestPartitionByYear_Empty(t *testing.T) {
	if got := PartitionByYear(nil, nil); len(got) != 0 {
		t.Fatalf("expected no partitions, got %d", len(got))
	}
}

func TestYearRange(t *testing.T) {
	if diff := cmp.Diff([]int{2022, 2023, 2024}, YearRange(2022, 2024)); diff != "" {
		t.Errorf("YearRange mismatch (-want +got):\n%s", diff)
	}
	if got := YearRange(2024, 2022); got != nil {
		t.Errorf("expected nil for inverted range, got %v", got)
	}
}
