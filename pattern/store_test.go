package pattern

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := testRand()

	for _, name := range []string{"p.json", "p.yaml", "p.yml", "p.txt"} {
		for _, n := range []int{0, 1, 8, 33} {
			path := filepath.Join(dir, name)
			want := Generate(r, n)

			if err := Save(want, path); err != nil {
				t.Fatalf("Save(%s, len %d): %v", name, n, err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load(%s, len %d): %v", name, n, err)
			}
			if diff := cmp.Diff(want.Strokes(), got.Strokes(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("%s len %d mismatch (-want +got):\n%s", name, n, diff)
			}
		}
	}
}

func TestSave_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns", "nested", "p.json")
	if err := Save(New(Down), path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not written: %v", err)
	}
}

func TestMarshal_JSONShape(t *testing.T) {
	data, err := Marshal(New(Down, Up, Mute, Miss), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"strokes\": [\n    \"Down\",\n    \"Up\",\n    \"Mute\",\n    \"Miss\"\n  ]\n}\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}

	empty, err := Marshal(New(), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(empty), `"strokes": []`) {
		t.Fatalf("empty pattern should encode an empty list, got %s", empty)
	}
}

func TestUnmarshal_EmptyForms(t *testing.T) {
	tests := []struct {
		name string
		data string
		f    Format
	}{
		{"json empty list", `{"strokes": []}`, FormatJSON},
		{"json null", `{"strokes": null}`, FormatJSON},
		{"json missing", `{}`, FormatJSON},
		{"yaml empty list", "strokes: []\n", FormatYAML},
		{"yaml missing", "{}\n", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Unmarshal([]byte(tt.data), tt.f)
			if err != nil {
				t.Fatal(err)
			}
			if p.Len() != 0 {
				t.Fatalf("Len() = %d, want 0", p.Len())
			}
		})
	}
}

func TestUnmarshal_YAML(t *testing.T) {
	p, err := Unmarshal([]byte("strokes: [Down, Up, Up, Miss]\n"), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Shorthand(); got != "D U U -" {
		t.Fatalf("Shorthand() = %q", got)
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"strokes": ["Down", "Slap"]}`), FormatJSON); !errors.Is(err, ErrUnknownStroke) {
		t.Fatalf("unknown tag error = %v, want ErrUnknownStroke", err)
	}
	if _, err := Unmarshal([]byte(`{"strokes": [`), FormatJSON); err == nil {
		t.Fatal("expected error for truncated json")
	}
	if _, err := Unmarshal([]byte("strokes: [Down, Slap]\n"), FormatYAML); err == nil {
		t.Fatal("expected error for unknown yaml tag")
	}
	if _, err := Unmarshal([]byte(`{}`), Format("toml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("format error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load missing file = %v, want os.ErrNotExist", err)
	}
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"a.json":      FormatJSON,
		"a.JSON":      FormatJSON,
		"a.yaml":      FormatYAML,
		"dir/a.YML":   FormatYAML,
		"no-ext":      FormatJSON,
		"pattern.txt": FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Fatalf("FormatFor(%q) = %q, want %q", path, got, want)
		}
	}
}
