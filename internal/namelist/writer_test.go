// SPDX-License-Identifier: MPL-2.0

package namelist

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestRender_Shape(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Name: "Maxwell, Ghislaine", Anchor: "Maxwell,_Ghislaine"},
		{Name: "Smith", Anchor: "S"},
	}
	out := string(Render(entries, "content/names.js"))

	if !strings.HasPrefix(out, "// content/names.js\n") {
		t.Errorf("missing path comment header:\n%s", out)
	}
	if !strings.Contains(out, "const HARDCODED_NAMES = [\n") {
		t.Errorf("missing constant declaration:\n%s", out)
	}
	if !strings.Contains(out, `  { name: "Maxwell, Ghislaine", anchor: "Maxwell,_Ghislaine" },`+"\n") {
		t.Errorf("missing first entry line:\n%s", out)
	}
	if !strings.Contains(out, `  { name: "Smith", anchor: "S" },`+"\n") {
		t.Errorf("missing second entry line:\n%s", out)
	}
	if !strings.HasSuffix(out, "];\n") {
		t.Errorf("missing closing bracket:\n%s", out)
	}
}

func TestRender_EscapingRoundTrips(t *testing.T) {
	t.Parallel()

	name := `O'Brien "Bob" back\slash`
	out := string(Render([]Entry{{Name: name, Anchor: "O"}}, "x.js"))

	start := strings.Index(out, `{ name: "`)
	if start < 0 {
		t.Fatalf("entry line not found:\n%s", out)
	}
	rest := out[start+len(`{ name: `):]
	end := strings.Index(rest, `, anchor:`)
	if end < 0 {
		t.Fatalf("entry line malformed:\n%s", out)
	}
	literal := rest[:end]

	// The escape set (backslash, double quote) matches Go string syntax, so
	// the emitted literal must parse back to the exact original characters.
	parsed, err := strconv.Unquote(literal)
	if err != nil {
		t.Fatalf("emitted literal %s does not parse: %v", literal, err)
	}
	if parsed != name {
		t.Errorf("round trip changed the name: got %q, want %q", parsed, name)
	}
}

func TestRender_EmptyList(t *testing.T) {
	t.Parallel()

	out := string(Render(nil, "content/names.js"))
	if !strings.Contains(out, "const HARDCODED_NAMES = [\n];\n") {
		t.Errorf("empty list should render an empty array:\n%s", out)
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names.js")
	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(path, []Entry{{Name: "Smith", Anchor: "S"}}, "names.js"); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale content") {
		t.Error("previous file content survived the overwrite")
	}
	if !strings.Contains(string(data), `"Smith"`) {
		t.Errorf("new content missing:\n%s", data)
	}
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "no-such-dir", "names.js")
	if err := WriteFile(path, nil, "names.js"); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
