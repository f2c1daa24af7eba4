package machine

import (
	"encoding/json"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"L", Left},
		{"left", Left},
		{"R", Right},
		{"right", Right},
		{"S", Stay},
		{"stay", Stay},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("up"); err == nil {
		t.Error("ParseDirection(\"up\") should fail")
	}
}

func TestDirection_JSON(t *testing.T) {
	data, err := json.Marshal(Right)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"R"` {
		t.Errorf("Marshal(Right) = %s, want \"R\"", data)
	}

	var d Direction
	if err := json.Unmarshal([]byte(`"left"`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d != Left {
		t.Errorf("Unmarshal(\"left\") = %s, want L", d)
	}

	if err := json.Unmarshal([]byte(`"X"`), &d); err == nil {
		t.Error("Unmarshal(\"X\") should fail")
	}
}
