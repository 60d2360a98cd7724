package services

import (
	"reflect"
	"testing"
)

func TestPaymentMethodsDefaults(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingService(db)

	methods, err := settings.PaymentMethods()
	if err != nil {
		t.Fatalf("methods: %v", err)
	}
	if !reflect.DeepEqual(methods, defaultPaymentMethods) {
		t.Errorf("methods = %v, want defaults", methods)
	}
}

func TestSettingUpdateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingService(db)

	input := SettingInput{
		Name:           "City Hostel",
		Address:        "12 Mall Road",
		Phone:          "042-1234567",
		Email:          "office@cityhostel.example",
		PaymentMethods: []string{" Cash ", "", "JazzCash"},
	}
	saved, err := settings.Update(input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved.Name != "City Hostel" {
		t.Errorf("name = %q", saved.Name)
	}

	methods, err := settings.PaymentMethods()
	if err != nil {
		t.Fatalf("methods: %v", err)
	}
	if !reflect.DeepEqual(methods, []string{"Cash", "JazzCash"}) {
		t.Errorf("methods = %v, blanks should be pruned", methods)
	}

	// A second update rewrites the same row rather than adding one.
	input.Name = "City Hostel II"
	if _, err := settings.Update(input); err != nil {
		t.Fatalf("second update: %v", err)
	}
	got, err := settings.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != saved.ID || got.Name != "City Hostel II" {
		t.Errorf("got = %+v, want same row updated", got)
	}
}

func TestPaymentMethodsFallBackWhenEmptyList(t *testing.T) {
	db := newTestDB(t)
	settings := NewSettingService(db)

	if _, err := settings.Update(SettingInput{Name: "X", PaymentMethods: []string{"  ", ""}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	methods, err := settings.PaymentMethods()
	if err != nil {
		t.Fatalf("methods: %v", err)
	}
	if !reflect.DeepEqual(methods, defaultPaymentMethods) {
		t.Errorf("methods = %v, want defaults for empty list", methods)
	}
}
