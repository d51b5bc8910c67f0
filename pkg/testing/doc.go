// Package testing provides a harness for testing components without a
// terminal.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    tester := termtest.NewTesterWithT(t)
//	    tester.Mount(Counter)
//
//	    termtest.Emit(tester, input.Char('+'))
//
//	    if got := tester.Text(); got != "count: 1" {
//	        t.Errorf("Text() = %q", got)
//	    }
//	}
//
// Mount and Emit wait for every refresh and effect they cause before
// returning, so assertions see a settled tree.
//
// # Snapshot Testing
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	TERMDRIFT_UPDATE_SNAPSHOTS=1 go test ./...
//
// WritePNG renders the current frame as an image for visual review.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import termtest "github.com/go-drift/termdrift/pkg/testing"
package testing
