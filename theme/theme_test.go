package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

const plasmaGPL = `GIMP Palette
Name: plasma
Columns: 0
#
 13   8 135	#0d0887
156  23 158	#9c179e
237 121  83	#ed7953
240 249  33	#f0f921
`

func TestParseGPL(t *testing.T) {
	p, err := ParseGPL(strings.NewReader(plasmaGPL))
	if err != nil {
		t.Fatal(err)
	}
	want := &Palette{
		Name: "plasma",
		Colors: []RGB{
			{13, 8, 135},
			{156, 23, 158},
			{237, 121, 83},
			{240, 249, 33},
		},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGPL_NoColors(t *testing.T) {
	if _, err := ParseGPL(strings.NewReader("GIMP Palette\nName: empty\n")); err == nil {
		t.Fatal("expected error for palette without colors")
	}
}

func TestLookup(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {200, 100, 50}}}
	tests := []struct {
		norm float64
		want RGB
	}{
		{-1, RGB{0, 0, 0}},
		{0, RGB{0, 0, 0}},
		{0.5, RGB{100, 50, 25}},
		{1, RGB{200, 100, 50}},
		{2, RGB{200, 100, 50}},
	}
	for _, tt := range tests {
		if got := p.Lookup(tt.norm); got != tt.want {
			t.Fatalf("Lookup(%v) = %v, want %v", tt.norm, got, tt.want)
		}
	}
}

func TestDefaultRolesHitPaletteEntries(t *testing.T) {
	th := New(nil)
	tests := map[string]struct {
		got  lipgloss.Color
		want lipgloss.Color
	}{
		"bg":      {th.BG(), "#1a1026"},
		"border":  {th.Border(), "#c14fd8"},
		"cursor":  {th.Cursor(), "#ff5555"},
		"warning": {th.Warning(), "#ffb86c"},
		"fg":      {th.FG(), "#f8f8f2"},
	}
	for name, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s = %s, want %s", name, tt.got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if th.Palette.Name != "strummy" {
		t.Fatalf("expected built-in palette, got %q", th.Palette.Name)
	}

	path := filepath.Join(t.TempDir(), "plasma.gpl")
	if err := os.WriteFile(path, []byte(plasmaGPL), 0644); err != nil {
		t.Fatal(err)
	}
	th, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Palette.Name != "plasma" {
		t.Fatalf("expected plasma palette, got %q", th.Palette.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.gpl")); err == nil {
		t.Fatal("expected error for missing palette file")
	}
}
