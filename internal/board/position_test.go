package board

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
		ok   bool
	}{
		{"a1", Position{0, 0}, true},
		{"e4", Position{4, 3}, true},
		{"h8", Position{7, 7}, true},
		{"i1", NoPosition, false},
		{"a9", NoPosition, false},
		{"-", NoPosition, false},
		{"e44", NoPosition, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParsePosition(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParsePosition(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
			if ok && got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestPositionClamp(t *testing.T) {
	tests := []struct {
		delta Position
		want  Position
	}{
		{Position{0, 5}, Position{0, 1}},
		{Position{-3, 0}, Position{-1, 0}},
		{Position{4, -4}, Position{1, -1}},
		{Position{1, 2}, Position{1, 1}},
		{Position{0, 0}, Position{0, 0}},
	}
	for _, tt := range tests {
		if got := tt.delta.Clamp(); got != tt.want {
			t.Errorf("%v.Clamp() = %v, want %v", tt.delta, got, tt.want)
		}
	}
}

func TestPositionAdvance(t *testing.T) {
	p := Position{6, 6}
	if !p.Advance(Position{1, 1}) {
		t.Fatalf("advance to %v reported off board", p)
	}
	if p != (Position{7, 7}) {
		t.Errorf("got %v, want h8", p)
	}
	if p.Advance(Position{1, 1}) {
		t.Errorf("advance past h8 reported on board: %v", p)
	}
	if NoPosition.InBounds() {
		t.Error("NoPosition is in bounds")
	}
	if NoPosition.String() != "-" {
		t.Errorf("NoPosition.String() = %q", NoPosition.String())
	}
}
