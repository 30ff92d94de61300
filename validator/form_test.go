package validator

import (
	"strings"
	"testing"
)

func validForm() PropertyForm {
	return PropertyForm{
		Title:         "Casa frente al lago",
		Description:   strings.Repeat("a", 50),
		Address:       "Ruta 2 km 48",
		City:          "San Bernardino",
		PricePerNight: "350000",
		MaxGuests:     "6",
	}
}

func TestValidatePropertyFormValid(t *testing.T) {
	res := ValidatePropertyForm(validForm(), ModeCreate, ImageCount{New: 1})
	if !res.IsValid || len(res.Errors) != 0 {
		t.Fatalf("expected valid, got %v", res.Errors)
	}
}

func TestValidatePropertyFormDescriptionBoundary(t *testing.T) {
	f := validForm()
	f.Description = "  " + strings.Repeat("x", 49) + "  "
	res := ValidatePropertyForm(f, ModeCreate, ImageCount{New: 1})
	if res.IsValid || res.Errors["description"] == "" {
		t.Fatalf("49 chars should fail, got %v", res.Errors)
	}

	f.Description = strings.Repeat("x", 50)
	res = ValidatePropertyForm(f, ModeCreate, ImageCount{New: 1})
	if !res.IsValid {
		t.Fatalf("50 chars should pass, got %v", res.Errors)
	}

	// se cuentan caracteres, no bytes
	f.Description = strings.Repeat("ñ", 49)
	res = ValidatePropertyForm(f, ModeCreate, ImageCount{New: 1})
	if res.IsValid {
		t.Fatal("49 runes should fail")
	}
}

func TestValidatePropertyFormPrice(t *testing.T) {
	cases := map[string]bool{
		"0":    false,
		"0.01": true,
		"-5":   false,
		"abc":  false,
		"":     false,
		"NaN":  false,
		"Inf":  false,
		" 10 ": true,
	}
	for price, ok := range cases {
		f := validForm()
		f.PricePerNight = price
		res := ValidatePropertyForm(f, ModeCreate, ImageCount{New: 1})
		if res.IsValid != ok {
			t.Errorf("price %q: valid = %v, want %v (%v)", price, res.IsValid, ok, res.Errors)
		}
	}
}

func TestValidatePropertyFormGuests(t *testing.T) {
	cases := map[string]bool{"0": false, "1": true, "20": true, "21": false, "2.5": false, "x": false}
	for guests, ok := range cases {
		f := validForm()
		f.MaxGuests = guests
		res := ValidatePropertyForm(f, ModeCreate, ImageCount{New: 1})
		if res.IsValid != ok {
			t.Errorf("guests %q: valid = %v, want %v", guests, res.IsValid, ok)
		}
	}
}

func TestValidatePropertyFormImages(t *testing.T) {
	f := validForm()
	cases := []struct {
		mode   FormMode
		images ImageCount
		ok     bool
	}{
		{ModeCreate, ImageCount{}, false},
		{ModeCreate, ImageCount{Existing: 3}, false},
		{ModeCreate, ImageCount{New: 1}, true},
		{ModeEdit, ImageCount{}, false},
		{ModeEdit, ImageCount{Existing: 1}, true},
		{ModeEdit, ImageCount{New: 4, Existing: 6}, true},
		{ModeEdit, ImageCount{New: 5, Existing: 6}, false},
	}
	for _, tc := range cases {
		res := ValidatePropertyForm(f, tc.mode, tc.images)
		if res.IsValid != tc.ok {
			t.Errorf("%s %+v: valid = %v, want %v", tc.mode, tc.images, res.IsValid, tc.ok)
		}
	}
}

func TestValidatePropertyFormReportsAllErrors(t *testing.T) {
	res := ValidatePropertyForm(PropertyForm{}, ModeCreate, ImageCount{})
	for _, field := range []string{"title", "description", "address", "city", "pricePerNight", "maxGuests", "images"} {
		if res.Errors[field] == "" {
			t.Errorf("missing error for %s", field)
		}
	}
	if res.IsValid {
		t.Error("empty form reported valid")
	}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidateStruct(t *testing.T) {
	if errs := ValidateStruct(loginInput{Email: "ana@example.com", Password: "secreto"}); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	errs := ValidateStruct(loginInput{Email: "no-es-mail", Password: "123"})
	if errs["email"] == "" || errs["password"] == "" {
		t.Fatalf("expected json field names, got %v", errs)
	}
}
