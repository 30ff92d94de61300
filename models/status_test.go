package models

import "testing"

func TestStatusLabelsAndBadges(t *testing.T) {
	if PropertyAvailable.Label() != "Disponible" || PropertyAvailable.BadgeStyle() != BadgeGreen {
		t.Error("property available")
	}
	if TourSoldOut.BadgeStyle() == BadgeGray {
		t.Error("sold out should have a style of its own")
	}
	if BookingCancelled.BadgeStyle() != BadgeRed {
		t.Error("cancelled booking should be red")
	}
	if PaymentPaid.Label() == string(PaymentPaid) {
		t.Error("paid should have a translated label")
	}
}

func TestStatusUnknownPassesThrough(t *testing.T) {
	if got := PropertyStatus("archived").Label(); got != "archived" {
		t.Errorf("property: %q", got)
	}
	if got := TourStatus("draft").Label(); got != "draft" {
		t.Errorf("tour: %q", got)
	}
	if got := BookingStatus("on_hold").Label(); got != "on_hold" {
		t.Errorf("booking: %q", got)
	}
	if got := PaymentStatus("disputed").Label(); got != "disputed" {
		t.Errorf("payment: %q", got)
	}
	for _, style := range []BadgeStyle{
		PropertyStatus("x").BadgeStyle(),
		TourStatus("x").BadgeStyle(),
		BookingStatus("x").BadgeStyle(),
		PaymentStatus("x").BadgeStyle(),
	} {
		if style != BadgeGray {
			t.Errorf("unknown status style = %s", style)
		}
	}
}

func TestBookingStateAllowList(t *testing.T) {
	cases := []struct {
		status BookingStatus
		allow  bool
	}{
		{BookingPending, true},
		{BookingConfirmed, true},
		{BookingCompleted, false},
		{BookingCancelled, false},
		{BookingStatus("weird"), false},
	}
	for _, tc := range cases {
		st := BookingStateFor(tc.status)
		if (st.Edit() == nil) != tc.allow || (st.Cancel() == nil) != tc.allow {
			t.Errorf("%s: edit=%v cancel=%v, want allowed=%v", tc.status, st.Edit(), st.Cancel(), tc.allow)
		}
		if st.Terminal() == tc.allow {
			t.Errorf("%s: terminal=%v", tc.status, st.Terminal())
		}
		if (Booking{Status: tc.status}).CanModify() != tc.allow {
			t.Errorf("%s: CanModify", tc.status)
		}
	}
}
