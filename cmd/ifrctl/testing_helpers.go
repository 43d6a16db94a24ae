package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/ifrkit/internal/testutil"
)

// writeDump writes a synthetic dump to a temp file and returns its path.
func writeDump(t *testing.T, d *testutil.Dump) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.txt")
	if err := os.WriteFile(path, d.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write dump: %v", err)
	}
	return path
}

// sampleDump builds the dump most command tests run against.
func sampleDump() *testutil.Dump {
	d := testutil.NewDump()
	d.VarStore(1, 0x30C, "Setup")
	d.OneOf("Above 4G Decoding", 1, 0x10, 8)
	d.Option("Disabled", 0, false)
	d.Option("Enabled", 1, true)
	d.Numeric("Boot Timeout", 1, 0x20, 16, 0, 65535)
	d.CheckBox("Fast Boot", 1, 0x30, false)
	return d
}

// resetFlags restores every global flag to its default between table cases.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = false
	strict = false
	inputEncoding = ""

	searchRegex = false
	searchCaseSensitive = false
	searchMaxResults = 0
	searchVarStore = ""
	searchType = ""

	settingsVarStore = ""
	settingsType = ""

	exportSets = nil
	exportBulks = nil
	exportCommand = ""
	exportEncoding = ""
	exportBOM = false
	exportStdout = false
	exportNoComments = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
