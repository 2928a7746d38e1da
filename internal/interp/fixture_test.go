package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/mjezek/sol25interp/internal/astxml"
	"github.com/mjezek/sol25interp/internal/interp/errors"
)

// TestFixtures runs every *.xml program under testdata/fixtures through the
// interpreter and snapshots its transcript (stdout, plus the error kind if
// the run did not finish cleanly) with go-snaps, the way the teacher's
// fixture_test.go snapshots a DWScript program's output.
func TestFixtures(t *testing.T) {
	xmlFiles, err := filepath.Glob("../../testdata/fixtures/*.xml")
	if err != nil {
		t.Fatalf("failed to glob fixtures: %v", err)
	}
	if len(xmlFiles) == 0 {
		t.Fatal("expected at least one fixture under testdata/fixtures")
	}

	for _, xmlFile := range xmlFiles {
		name := strings.TrimSuffix(filepath.Base(xmlFile), ".xml")
		t.Run(name, func(t *testing.T) {
			doc, err := os.ReadFile(xmlFile)
			if err != nil {
				t.Fatalf("failed to read %s: %v", xmlFile, err)
			}

			stdin := ""
			if data, err := os.ReadFile(strings.TrimSuffix(xmlFile, ".xml") + ".stdin"); err == nil {
				stdin = string(data)
			}

			program, err := astxml.Parse(bytes.NewReader(doc))
			if err != nil {
				t.Fatalf("unexpected parse error for %s: %v", xmlFile, err)
			}

			var out bytes.Buffer
			ev := New(&out, strings.NewReader(stdin))
			var runErr error
			if runErr = ev.Load(program); runErr == nil {
				runErr = ev.Run()
			}

			transcript := "stdout:\n" + out.String() + "\n"
			if runErr != nil {
				if ie, ok := errors.As(runErr); ok {
					transcript += "error: " + ie.Kind.String()
				} else {
					transcript += "error: " + runErr.Error()
				}
			} else {
				transcript += "error: none"
			}

			snaps.MatchSnapshot(t, transcript)
		})
	}
}
