package builders

import (
	"testing"

	"guaranihost/models"
)

func TestBookingBuilderTour(t *testing.T) {
	p := NewBookingBuilder().
		ForTour(models.Tour{ID: "t1", Price: 120000}).
		WithDates("2025-06-10", "2025-06-11").
		WithGuests(3).
		Build()

	if p.TourPackage != "t1" || p.Property != "" {
		t.Fatalf("resource = %+v", p)
	}
	if p.TotalPrice != 360000 {
		t.Fatalf("total = %v", p.TotalPrice)
	}
}

func TestBookingBuilderProperty(t *testing.T) {
	p := NewBookingBuilder().
		ForProperty(models.Property{ID: "p1", PricePerNight: 200}).
		WithDates("2025-06-10", "2025-06-14").
		WithGuests(2).
		WithPayment("transferencia", []string{"https://img/1.jpg"}).
		Build()

	if p.Property != "p1" || p.TourPackage != "" {
		t.Fatalf("resource = %+v", p)
	}
	if p.TotalPrice != 800 {
		t.Fatalf("total = %v", p.TotalPrice)
	}
	if p.PaymentDetails != "transferencia" || len(p.PaymentImages) != 1 {
		t.Fatalf("payment = %+v", p)
	}
}
