package input

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLinesFromReader(t *testing.T) {
	in := "milk\n\n  eggs  \n# staples\nbread\n"
	got, err := ReadLinesFromReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadLinesFromReader failed: %v", err)
	}
	want := []string{"milk", "eggs", "bread"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLinesStdin(t *testing.T) {
	got, err := Lines("-", strings.NewReader("apples\npears\n"))
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	if len(got) != 2 || got[1] != "pears" {
		t.Errorf("got %q", got)
	}
}

func TestLinesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	if err := os.WriteFile(path, []byte("tape\nglue\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, src := range []string{path, "@" + path} {
		got, err := Lines(src, nil)
		if err != nil {
			t.Fatalf("Lines(%q) failed: %v", src, err)
		}
		if !reflect.DeepEqual(got, []string{"tape", "glue"}) {
			t.Errorf("Lines(%q) = %q", src, got)
		}
	}
}

func TestLinesMissingFile(t *testing.T) {
	_, err := Lines(filepath.Join(t.TempDir(), "nope.txt"), nil)
	if err == nil || !strings.Contains(err.Error(), "read items") {
		t.Errorf("expected read items error, got %v", err)
	}
}
