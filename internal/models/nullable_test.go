package models

import (
	"encoding/json"
	"testing"
)

func TestNullableBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantSet   bool
		wantValid bool
		wantValue bool
	}{
		{name: "field present with true", json: `{"lunch": true}`, wantSet: true, wantValid: true, wantValue: true},
		{name: "field present with false", json: `{"lunch": false}`, wantSet: true, wantValid: true, wantValue: false},
		{name: "field present with null", json: `{"lunch": null}`, wantSet: true, wantValid: false},
		{name: "field absent", json: `{}`, wantSet: false, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result struct {
				Lunch NullableBool `json:"lunch"`
			}
			if err := json.Unmarshal([]byte(tt.json), &result); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if result.Lunch.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", result.Lunch.Set, tt.wantSet)
			}
			if result.Lunch.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", result.Lunch.Valid, tt.wantValid)
			}
			if result.Lunch.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", result.Lunch.Value, tt.wantValue)
			}
		})
	}
}

func TestNullableInt_UnmarshalJSON_RejectsWrongType(t *testing.T) {
	var result struct {
		Water NullableInt `json:"water_intake"`
	}
	if err := json.Unmarshal([]byte(`{"water_intake": "full"}`), &result); err == nil {
		t.Fatal("expected an error for a string value")
	}
}

func TestNullableInt_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A NullableInt `json:"a"`
		B NullableInt `json:"b"`
	}{
		A: NullableInt{Value: 3, Valid: true, Set: true},
		B: NullableInt{Set: true},
	})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"a":3,"b":null}` {
		t.Errorf("Marshal = %s", data)
	}
}

func TestUpdateFoodIntakeRequest_Apply(t *testing.T) {
	intake := FoodIntake{Breakfast: true, Lunch: true, WaterIntake: 3}

	var req UpdateFoodIntakeRequest
	if err := json.Unmarshal([]byte(`{"lunch": null, "dinner": true, "water_intake": 4}`), &req); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	req.Apply(&intake)

	if !intake.Breakfast {
		t.Error("Expected absent breakfast to stay true")
	}
	if intake.Lunch {
		t.Error("Expected null lunch to reset to false")
	}
	if !intake.Dinner {
		t.Error("Expected dinner to be set")
	}
	if intake.Snacks {
		t.Error("Expected snacks to stay false")
	}
	if intake.WaterIntake != 4 {
		t.Errorf("Expected water_intake=4, got %d", intake.WaterIntake)
	}
}

func TestUpdateFoodIntakeRequest_IsEmpty(t *testing.T) {
	var empty UpdateFoodIntakeRequest
	if err := json.Unmarshal([]byte(`{}`), &empty); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !empty.IsEmpty() {
		t.Error("Expected empty request to report IsEmpty")
	}

	var snacks UpdateFoodIntakeRequest
	if err := json.Unmarshal([]byte(`{"snacks": false}`), &snacks); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if snacks.IsEmpty() {
		t.Error("Expected request with snacks to be non-empty")
	}
}

func TestEntryKind_Valid(t *testing.T) {
	for _, k := range EntryKinds {
		if !k.Valid() {
			t.Errorf("Expected %q to be valid", k)
		}
	}
	if EntryKind("steps").Valid() {
		t.Error("Expected unknown kind to be invalid")
	}
}
