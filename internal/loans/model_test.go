package loans

import (
	"encoding/json"
	"testing"
)

func TestFlexBoolUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"Yes"`, true},
		{`"yes"`, true},
		{`"No"`, false},
		{`"no"`, false},
		{`"true"`, true},
		{`null`, false},
	}
	for _, tc := range cases {
		var b FlexBool
		if err := json.Unmarshal([]byte(tc.in), &b); err != nil {
			t.Errorf("unmarshal %s: %v", tc.in, err)
			continue
		}
		if bool(b) != tc.want {
			t.Errorf("unmarshal %s = %v, want %v", tc.in, bool(b), tc.want)
		}
	}
}

func TestFlexBoolUnmarshalRejectsNumbers(t *testing.T) {
	var b FlexBool
	if err := json.Unmarshal([]byte(`7`), &b); err == nil {
		t.Fatal("expected error for numeric existingLoans")
	}
}

func TestLoanRoundTripKeepsMixedExistingLoans(t *testing.T) {
	in := []byte(`{"loanType":"personal","fullName":"alice","existingLoans":"Yes","monthlyIncome":"45000"}`)

	var loan Loan
	if err := json.Unmarshal(in, &loan); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if loan.ExistingLoans == nil || !bool(*loan.ExistingLoans) {
		t.Fatalf("expected existingLoans normalized to true, got %v", loan.ExistingLoans)
	}

	out, err := json.Marshal(loan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode round trip: %v", err)
	}
	if v, ok := decoded["existingLoans"].(bool); !ok || !v {
		t.Fatalf("expected existingLoans marshalled as boolean true, got %v", decoded["existingLoans"])
	}
}

func TestLoanOmitsAbsentOptionalFields(t *testing.T) {
	var loan Loan
	if err := json.Unmarshal([]byte(`{"loanType":"car","carMake":"Toyota"}`), &loan); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(loan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, present := decoded["jewelType"]; present {
		t.Fatal("unset optional field should be omitted")
	}
	if decoded["carMake"] != "Toyota" {
		t.Fatalf("expected carMake kept, got %v", decoded["carMake"])
	}
	if _, present := decoded["existingLoans"]; present {
		t.Fatal("absent existingLoans should stay absent")
	}
}
