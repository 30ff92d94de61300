package validator

import (
	"testing"
	"time"

	apperrors "guaranihost/errors"
)

func TestIsValidBooking(t *testing.T) {
	cases := []struct {
		name string
		in   BookingCheck
		want bool
	}{
		{"valid", BookingCheck{DateSelected: true, Guests: 2, Status: "available", Capacity: 4}, true},
		{"at capacity", BookingCheck{DateSelected: true, Guests: 4, Status: "available", Capacity: 4}, true},
		{"over capacity", BookingCheck{DateSelected: true, Guests: 5, Status: "available", Capacity: 4}, false},
		{"no capacity declared", BookingCheck{DateSelected: true, Guests: 50, Status: "available"}, true},
		{"no date", BookingCheck{Guests: 1, Status: "available", Capacity: 4}, false},
		{"zero guests", BookingCheck{DateSelected: true, Status: "available", Capacity: 4}, false},
		{"sold out", BookingCheck{DateSelected: true, Guests: 1, Status: "sold_out", Capacity: 4}, false},
		{"cancelled", BookingCheck{DateSelected: true, Guests: 1, Status: "cancelled"}, false},
		{"empty status", BookingCheck{DateSelected: true, Guests: 1, Capacity: 4}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidBooking(tc.in); got != tc.want {
				t.Errorf("IsValidBooking(%+v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestComputeTotalPrice(t *testing.T) {
	for guests := 1; guests <= 20; guests++ {
		if got := ComputeTotalPrice(150000, guests); got != 150000*float64(guests) {
			t.Fatalf("guests %d: got %v", guests, got)
		}
	}
}

func TestComputeStayPrice(t *testing.T) {
	if got := ComputeStayPrice(200, 3); got != 600 {
		t.Errorf("got %v", got)
	}
	if got := ComputeStayPrice(200, 0); got != 0 {
		t.Errorf("got %v", got)
	}
}

func TestValidateBookingEdit(t *testing.T) {
	cases := []struct {
		name              string
		checkIn, checkOut string
		guests            int
		code              apperrors.ErrorCode
	}{
		{"equal dates", "2025-06-10", "2025-06-10", 2, apperrors.ErrCodeInvalidDate},
		{"reversed", "2025-06-12", "2025-06-10", 2, apperrors.ErrCodeInvalidDate},
		{"missing checkout", "2025-06-10", "", 2, apperrors.ErrCodeRequiredField},
		{"bad format", "10/06/2025", "2025-06-12", 2, apperrors.ErrCodeInvalidDate},
		{"no guests", "2025-06-10", "2025-06-12", 0, apperrors.ErrCodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBookingEdit(tc.checkIn, tc.checkOut, tc.guests)
			appErr := apperrors.GetAppError(err)
			if appErr == nil {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != tc.code {
				t.Errorf("code = %s, want %s", appErr.Code, tc.code)
			}
			if appErr.Message == "" {
				t.Error("empty message")
			}
		})
	}

	if err := ValidateBookingEdit("2025-06-10", "2025-06-11", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDateRange(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local)
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.Local) }

	if err := ValidateDateRange(day(10), day(11), now); err != nil {
		t.Errorf("today should be accepted: %v", err)
	}
	if err := ValidateDateRange(day(9), day(11), now); err == nil {
		t.Error("yesterday should be rejected")
	}
	if err := ValidateDateRange(day(12), day(12), now); err == nil {
		t.Error("equal dates should be rejected")
	}
}

func TestParseStay(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)
	in, out, err := ParseStay("2025-06-10", "2025-06-13T00:00:00.000Z", now)
	if err != nil {
		t.Fatal(err)
	}
	if n := Nights(in, out); n != 3 {
		t.Errorf("nights = %d", n)
	}
	if _, _, err := ParseStay("2025-06-10", "2025-06-10", now); err == nil {
		t.Error("equal dates should be rejected")
	}
}
