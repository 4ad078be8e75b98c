package metarename

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFind(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"sub", ".hidden"} {
		if err := os.Mkdir(filepath.Join(dir, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{
		"a.jpg",
		"b.txt",
		".skipme.jpg",
		filepath.Join("sub", "c.JPG"),
		filepath.Join("sub", "d.mov"),
		filepath.Join(".hidden", "e.jpg"),
	} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Find(dir, false)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := []string{filepath.Join(dir, "a.jpg")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find(recurse=false) = %v, want %v", got, want)
	}

	got, err = Find(dir, true)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want = []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "sub", "c.JPG"),
		filepath.Join(dir, "sub", "d.mov"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Find(recurse=true) = %v, want %v", got, want)
	}
}

func TestFindDirs(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"a", filepath.Join("a", "b"), ".hidden"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	got, err := findDirs(dir)
	if err != nil {
		t.Fatalf("findDirs: %v", err)
	}
	want := []string{dir, filepath.Join(dir, "a"), filepath.Join(dir, "a", "b")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findDirs = %v, want %v", got, want)
	}
}
