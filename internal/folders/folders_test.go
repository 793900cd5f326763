package folders

import (
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "recent-folders.yaml"))
}

func TestRecentEmpty(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Recent()
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Recent() = %v, want empty", got)
	}
}

func TestAddOrdersMostRecentFirst(t *testing.T) {
	s := newTestStore(t)

	for _, p := range []string{"/a", "/b", "/c"} {
		if err := s.Add(p); err != nil {
			t.Fatalf("Add(%q) error: %v", p, err)
		}
	}

	got, err := s.Recent()
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	want := []string{"/c", "/b", "/a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}
}

func TestAddDeduplicates(t *testing.T) {
	s := newTestStore(t)

	for _, p := range []string{"/a", "/b", "/a"} {
		if err := s.Add(p); err != nil {
			t.Fatalf("Add(%q) error: %v", p, err)
		}
	}

	got, err := s.Recent()
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	want := []string{"/a", "/b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}
}

func TestAddCapsAtFive(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 7; i++ {
		if err := s.Add(fmt.Sprintf("/dir-%d", i)); err != nil {
			t.Fatalf("Add() error: %v", err)
		}
	}

	got, err := s.Recent()
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	want := []string{"/dir-6", "/dir-5", "/dir-4", "/dir-3", "/dir-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}
}
