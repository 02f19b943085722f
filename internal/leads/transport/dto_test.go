package transport

import (
	"encoding/json"
	"testing"
)

func TestFlexFloatAcceptsNumbersAndNumericStrings(t *testing.T) {
	cases := []struct {
		in    string
		value float64
		known bool
	}{
		{`8000`, 8000, true},
		{`"8000"`, 8000, true},
		{`" 7.5 "`, 7.5, true},
		{`"around 500"`, 0, false},
		{`"NaN"`, 0, false},
		{`null`, 0, false},
		{`{"amount":500}`, 0, false},
	}

	for _, tc := range cases {
		var f FlexFloat
		if err := json.Unmarshal([]byte(tc.in), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if f.Known != tc.known || f.Value != tc.value {
			t.Fatalf("input %s: got value=%v known=%v", tc.in, f.Value, f.Known)
		}
	}
}

func TestFlexBoolAcceptsBoolsAndAffirmativeText(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"yes"`, true},
		{`"YES"`, true},
		{`" y "`, true},
		{`"1"`, true},
		{`"no"`, false},
		{`"maybe"`, false},
		{`null`, false},
	}

	for _, tc := range cases {
		var b FlexBool
		if err := json.Unmarshal([]byte(tc.in), &b); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if bool(b) != tc.want {
			t.Fatalf("input %s: got %v", tc.in, b)
		}
	}
}

func TestSubmitLeadRequestToleratesMessyPayload(t *testing.T) {
	payload := `{
		"name": "Jane",
		"phone": "305-555-1234",
		"budget": "not sure yet",
		"timeframeDays": "14",
		"insurance": "Yes"
	}`

	var req SubmitLeadRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if req.Budget == nil || req.Budget.Known {
		t.Fatalf("non-numeric budget must degrade to unknown, got %+v", req.Budget)
	}
	if req.TimeframeDays == nil || !req.TimeframeDays.Known || req.TimeframeDays.Value != 14 {
		t.Fatalf("unexpected timeframe %+v", req.TimeframeDays)
	}
	if req.Insurance == nil || !bool(*req.Insurance) {
		t.Fatalf("expected insurance true, got %+v", req.Insurance)
	}
}
