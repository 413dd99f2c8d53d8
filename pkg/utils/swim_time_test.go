package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseSwimTime(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "59.87", want: 5987},
		{in: "1:02.34", want: 6234},
		{in: "0:59.87", want: 5987},
		{in: "12:01.02", want: 72102},
		{in: "5.1", want: 510},
		{in: "65", want: 6500},
		{in: " 28.04 ", want: 2804},
		{in: "1:00", want: 6000},
		{in: "", wantErr: true},
		{in: "NT", wantErr: true},
		{in: "1:2.34", wantErr: true},
		{in: "1:60.00", wantErr: true},
		{in: "1.234", wantErr: true},
		{in: "30.", wantErr: true},
		{in: "-1.00", wantErr: true},
		{in: "1:02:03.45", wantErr: true},
		{in: "9999:59.99", want: 59999999},
		{in: "10000:00.00", wantErr: true},
		{in: "2000000000000000:00.00", wantErr: true},
		{in: "99999999999999999:00", wantErr: true},
		{in: "999999", want: 99999900},
		{in: "99999999999999999999.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSwimTime(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTime) {
					t.Errorf("ParseSwimTime(%q) err = %v, want ErrInvalidTime", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSwimTime(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSwimTime(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSwimTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{in: 0, want: "0.00"},
		{in: 5987, want: "59.87"},
		{in: 6000, want: "1:00.00"},
		{in: 6234, want: "1:02.34"},
		{in: 72102, want: "12:01.02"},
		{in: -5, want: "--"},
	}

	for _, tt := range tests {
		if got := FormatSwimTime(tt.in); got != tt.want {
			t.Errorf("FormatSwimTime(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSwimTimeRoundTrip(t *testing.T) {
	for _, h := range []int{1, 99, 100, 2804, 5999, 6000, 6001, 35999, 123456} {
		got, err := ParseSwimTime(FormatSwimTime(h))
		if err != nil {
			t.Fatalf("round trip %d: %v", h, err)
		}
		if got != h {
			t.Errorf("round trip %d = %d", h, got)
		}
	}
}

func TestAgeOn(t *testing.T) {
	d := func(s string) time.Time {
		v, err := time.Parse(DateLayout, s)
		if err != nil {
			t.Fatal(err)
		}
		return v
	}

	tests := []struct {
		birth, on string
		want      int
	}{
		{birth: "2010-06-15", on: "2024-06-14", want: 13},
		{birth: "2010-06-15", on: "2024-06-15", want: 14},
		{birth: "2010-06-15", on: "2024-12-31", want: 14},
		{birth: "2012-02-29", on: "2013-02-28", want: 0},
		{birth: "2012-02-29", on: "2013-03-01", want: 1},
		{birth: "2020-01-01", on: "2019-01-01", want: 0},
	}

	for _, tt := range tests {
		if got := AgeOn(d(tt.birth), d(tt.on)); got != tt.want {
			t.Errorf("AgeOn(%s, %s) = %d, want %d", tt.birth, tt.on, got, tt.want)
		}
	}
	if got := AgeOn(time.Time{}, d("2024-01-01")); got != 0 {
		t.Errorf("AgeOn(zero) = %d, want 0", got)
	}
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)

	if got := FormatDateRange(start, time.Time{}); got != "Mar 8, 2024" {
		t.Errorf("open range = %q", got)
	}
	if got := FormatDateRange(start, start.Add(2*time.Hour)); got != "Mar 8, 2024" {
		t.Errorf("same day = %q", got)
	}
	if got := FormatDateRange(start, start.AddDate(0, 0, 2)); got != "Mar 8-10, 2024" {
		t.Errorf("same month = %q", got)
	}
	if got := FormatDateRange(start, start.AddDate(0, 1, 0)); got != "Mar 8, 2024 - Apr 8, 2024" {
		t.Errorf("cross month = %q", got)
	}
	if FormatDate(time.Time{}) != "" {
		t.Error("zero date should format empty")
	}
}
