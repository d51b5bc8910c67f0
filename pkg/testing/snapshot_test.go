package testing

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

type fakeT struct {
	errors []string
	fatals []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}

func TestSnapshot_RoundTripFile(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.SetSize(12, 2)
	tester.Mount(counter)

	path := filepath.Join(t.TempDir(), "nested", "counter.snapshot.json")
	snap := tester.CaptureSnapshot()
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	snap.MatchesFile(t, path)

	if snap.Measured != [2]int{8, 1} {
		t.Errorf("Measured = %v, want [8 1]", snap.Measured)
	}
	if snap.Lines[0] != "count: 0" {
		t.Errorf("Lines[0] = %q", snap.Lines[0])
	}
}

func TestSnapshot_Mismatch(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.SetSize(12, 1)
	tester.Mount(counter)

	path := filepath.Join(t.TempDir(), "counter.json")
	if err := tester.CaptureSnapshot().UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	tester.Type("+")
	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)

	if len(ft.errors) != 1 {
		t.Fatalf("errors = %v, want one mismatch", ft.errors)
	}
	if !strings.Contains(ft.errors[0], `-    "count: 0"`) || !strings.Contains(ft.errors[0], `+    "count: 1"`) {
		t.Errorf("diff does not show the changed line:\n%s", ft.errors[0])
	}
}

func TestSnapshot_MissingFile(t *testing.T) {
	ft := &fakeT{}
	(&Snapshot{}).MatchesFile(ft, filepath.Join(t.TempDir(), "absent.json"))

	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], UpdateSnapshotsEnv) {
		t.Errorf("fatals = %v", ft.fatals)
	}
}

func TestSnapshot_UpdateEnv(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "1")
	path := filepath.Join(t.TempDir(), "new.json")

	ft := &fakeT{}
	(&Snapshot{Lines: []string{"x"}}).MatchesFile(ft, path)
	if len(ft.fatals)+len(ft.errors) != 0 {
		t.Fatalf("unexpected failures: %v %v", ft.fatals, ft.errors)
	}

	loaded, err := loadSnapshot(path)
	if err != nil {
		t.Fatalf("loadSnapshot: %v", err)
	}
	if len(loaded.Lines) != 1 || loaded.Lines[0] != "x" {
		t.Errorf("loaded = %+v", loaded)
	}
}
