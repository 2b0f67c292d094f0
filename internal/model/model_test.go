package model

import (
	"encoding"
	"testing"
)

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		target  encoding.TextUnmarshaler
		text    string
		want    string
		wantErr bool
	}{
		{"planet", new(Planet), "jupiter", "Jupiter", false},
		{"sign", new(Sign), " Scorpio ", "Scorpio", false},
		{"nakshatra", new(Nakshatra), "purva phalguni", "Purva Phalguni", false},
		{"last nakshatra", new(Nakshatra), "Revati", "Revati", false},
		{"dasha level", new(DashaLevel), "PRATYANTARDASHA", "Pratyantardasha", false},
		{"deepest dasha level", new(DashaLevel), "Prana", "Prana", false},
		{"unknown planet", new(Planet), "Pluto", "", true},
		{"unknown nakshatra", new(Nakshatra), "Abhijit", "", true},
		{"unknown dasha level", new(DashaLevel), "DashaLevel(9)", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := tt.target.(interface{ String() string }).String(); got != tt.want {
				t.Errorf("decoded %q as %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDashaLevel_TextRoundTrip(t *testing.T) {
	for l := Mahadasha; l <= Prana; l++ {
		b, err := l.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got DashaLevel
		if err := got.UnmarshalText(b); err != nil || got != l {
			t.Errorf("%v decoded as %v (err %v)", l, got, err)
		}
	}
}
