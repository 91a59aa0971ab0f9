package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/timshannon/bolthold"
)

// emptyTrackDB creates a track database file with no points in it.
func emptyTrackDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.db")
	store, err := bolthold.Open(path, 0666, nil)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("closing store: %v", err)
	}
	return path
}

// captureStdout runs fn and returns everything it printed.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = orig

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return string(out), fnErr
}

func TestTrackListCommand_EmptyStoreJSON(t *testing.T) {
	path := emptyTrackDB(t)

	flagJSON = true
	t.Cleanup(func() { flagJSON = false })

	cmd := newTrackCmd()
	cmd.SetArgs([]string{"list", "--db", path})

	out, err := captureStdout(t, cmd.Execute)
	if err != nil {
		t.Fatalf("track list error = %v", err)
	}
	if got := strings.TrimSpace(out); got != "[]" {
		t.Errorf("track list --json on empty store printed %q, want []", got)
	}
}

func TestTrackListCommand_EmptyStoreProse(t *testing.T) {
	path := emptyTrackDB(t)

	cmd := newTrackCmd()
	cmd.SetArgs([]string{"list", "--db", path})

	out, err := captureStdout(t, cmd.Execute)
	if err != nil {
		t.Fatalf("track list error = %v", err)
	}
	if !strings.Contains(out, "no track points recorded") {
		t.Errorf("track list on empty store printed %q, want the no-points notice", out)
	}
}
