package colour

import (
	"encoding/json"
	"strings"
	"testing"
)

var (
	white = RGB{R: 255, G: 255, B: 255}
	black = RGB{}
	red   = RGB{R: 255}
	navy  = RGB{B: 128}
	sky   = RGB{R: 135, G: 206, B: 235}
)

func TestNewColour(t *testing.T) {
	got := NewColour(red)
	want := Colour{R: 255, Hex: "#FF0000", HSL: "0, 100%, 50%", CMYK: "0%, 100%, 100%, 0%"}
	if got != want {
		t.Errorf("NewColour(red) = %+v, want %+v", got, want)
	}
	if got.RGB() != red {
		t.Errorf("RGB() = %+v, want %+v", got.RGB(), red)
	}
}

func TestAssembleRoles(t *testing.T) {
	tests := []struct {
		name                                   string
		selected                               []RGB
		primary, secondary, accent, background RGB
	}{
		{
			name:     "single colour falls back to index zero",
			selected: []RGB{red},
			primary:  red, secondary: red, accent: red, background: red,
		},
		{
			name:     "two colours",
			selected: []RGB{black, white},
			primary:  black, secondary: white, accent: black, background: white,
		},
		{
			name:     "three colours",
			selected: []RGB{navy, white, red},
			primary:  red, secondary: white, accent: navy, background: red,
		},
		{
			name:     "five colours",
			selected: []RGB{navy, sky, black, white, red},
			// Luminance order: white, sky, red, navy, black.
			primary: red, secondary: white, accent: black, background: navy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Assemble(tt.selected)
			checks := map[Role]RGB{
				RolePrimary:    tt.primary,
				RoleSecondary:  tt.secondary,
				RoleAccent:     tt.accent,
				RoleBackground: tt.background,
			}
			for role, want := range checks {
				got := p.Role(role)
				if got == nil {
					t.Fatalf("%s is nil", role)
				}
				if got.RGB() != want {
					t.Errorf("%s = %v, want %v", role, got.RGB(), want)
				}
			}
		})
	}
}

func TestAssembleKeepsWeightOrder(t *testing.T) {
	selected := []RGB{navy, white, red}
	p := Assemble(selected)

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	for i, c := range p.Colours {
		if c.RGB() != selected[i] {
			t.Errorf("Colours[%d] = %v, want %v", i, c.RGB(), selected[i])
		}
	}
}

func TestAssembleEmpty(t *testing.T) {
	p := Assemble(nil)

	if !p.Empty() {
		t.Error("Empty() = false for no colours")
	}
	for _, role := range Roles() {
		if p.Role(role) != nil {
			t.Errorf("%s should be nil for an empty palette", role)
		}
	}
	if p.String() != "Empty palette" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestRolesAreCopies(t *testing.T) {
	p := Assemble([]RGB{red})
	p.Primary.Hex = "#000000"

	if p.Colours[0].Hex != "#FF0000" {
		t.Error("role mutation leaked into Colours")
	}
}

func TestSortByLuminanceStable(t *testing.T) {
	a := NewColour(RGB{R: 100, G: 100, B: 100})
	b := NewColour(RGB{R: 100, G: 100, B: 100})
	b.Hex = "marker"

	sorted := SortByLuminance([]Colour{a, b, NewColour(white)})
	if sorted[0].RGB() != white {
		t.Errorf("brightest first: got %v", sorted[0].RGB())
	}
	if sorted[2].Hex != "marker" {
		t.Error("equal luminance colours must keep input order")
	}
}

func TestPaletteAll(t *testing.T) {
	p := Assemble([]RGB{red, navy, white})

	count := 0
	for i, c := range p.All() {
		if c != p.Colours[i] {
			t.Errorf("All() yielded %v at %d", c, i)
		}
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected early break after 2, got %d", count)
	}
}

func TestPaletteToJSON(t *testing.T) {
	p := Assemble([]RGB{red})

	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}

	var decoded struct {
		Primary Colour   `json:"primary"`
		Colors  []Colour `json:"colors"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Primary.Hex != "#FF0000" || len(decoded.Colors) != 1 {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestPaletteString(t *testing.T) {
	s := Assemble([]RGB{red, navy}).String()
	if !strings.Contains(s, "2 colours") || !strings.Contains(s, "#FF0000") || !strings.Contains(s, "#000080") {
		t.Errorf("String() = %q", s)
	}
}
