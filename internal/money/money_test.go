package money

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "two decimals", input: "12.34", want: 1234},
		{name: "no decimals", input: "7", want: 700},
		{name: "one decimal", input: "0.5", want: 50},
		{name: "negative", input: "-0.05", want: -5},
		{name: "zero", input: "0.00", want: 0},
		{name: "rounds half away from zero", input: "0.005", want: 1},
		{name: "rounds extra precision", input: "10.333", want: 1033},
		{name: "not a number", input: "ten", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.MinorUnits() != tt.want {
				t.Errorf("Parse(%q) = %d cents, want %d", tt.input, got.MinorUnits(), tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 1234, want: "12.34"},
		{cents: 334, want: "3.34"},
		{cents: 0, want: "0.00"},
		{cents: -5, want: "-0.05"},
		{cents: 100000, want: "1000.00"},
		{cents: 7, want: "0.07"},
	}

	for _, tt := range tests {
		if got := FromMinorUnits(tt.cents).String(); got != tt.want {
			t.Errorf("Amount(%d).String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Total Amount `json:"total"`
	}

	data, err := json.Marshal(payload{Total: FromMinorUnits(1050)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"total":"10.50"}` {
		t.Errorf("Marshal = %s, want {\"total\":\"10.50\"}", data)
	}

	var decoded payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Total != FromMinorUnits(1050) {
		t.Errorf("round trip = %d cents, want 1050", decoded.Total.MinorUnits())
	}

	// Bare numbers are rejected: money crosses the wire as strings only.
	if err := json.Unmarshal([]byte(`{"total":10.5}`), &decoded); err == nil {
		t.Error("Unmarshal accepted a bare number, want error")
	}
	if err := json.Unmarshal([]byte(`{"total":1050}`), &decoded); err == nil {
		t.Error("Unmarshal accepted a bare integer, want error")
	}
}

func TestAbs(t *testing.T) {
	if got := FromMinorUnits(-250).Abs(); got != FromMinorUnits(250) {
		t.Errorf("Abs(-250) = %d, want 250", got.MinorUnits())
	}
	if got := FromMinorUnits(250).Abs(); got != FromMinorUnits(250) {
		t.Errorf("Abs(250) = %d, want 250", got.MinorUnits())
	}
}
