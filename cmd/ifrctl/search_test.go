package main

import (
	"testing"
)

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name           string
		pattern        string
		regex          bool
		caseSensitive  bool
		varstore       string
		settingType    string
		maxResults     int
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:           "substring is case-insensitive",
			pattern:        "boot",
			wantContain:    []string{"Boot Timeout", "Fast Boot", "Total: 2"},
			wantNotContain: []string{"Above 4G Decoding"},
		},
		{
			name:           "case-sensitive substring",
			pattern:        "boot",
			caseSensitive:  true,
			wantContain:    []string{"Total: 0"},
			wantNotContain: []string{"Boot Timeout", "Fast Boot"},
		},
		{
			name:        "regex anchors",
			pattern:     "^Above",
			regex:       true,
			wantContain: []string{"Above 4G Decoding", "Total: 1"},
		},
		{
			name:    "invalid regex",
			pattern: "[",
			regex:   true,
			wantErr: true,
		},
		{
			name:           "type filter",
			pattern:        "boot",
			settingType:    "checkbox",
			wantContain:    []string{"Fast Boot", "Total: 1"},
			wantNotContain: []string{"Boot Timeout"},
		},
		{
			name:        "unknown type",
			pattern:     "boot",
			settingType: "slider",
			wantErr:     true,
		},
		{
			name:        "max results truncates",
			pattern:     "boot",
			maxResults:  1,
			wantContain: []string{"limited to 1", "Total: 1"},
		},
		{
			name:        "json output",
			pattern:     "above 4g",
			wantJSON:    true,
			wantContain: []string{"Above 4G Decoding", "\"varstore\": \"Setup\""},
		},
	}

	path := writeDump(t, sampleDump())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			searchRegex = tt.regex
			searchCaseSensitive = tt.caseSensitive
			searchMaxResults = tt.maxResults
			searchVarStore = tt.varstore
			searchType = tt.settingType

			output, err := captureOutput(t, func() error {
				return runSearch([]string{path, tt.pattern})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runSearch() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestInfoCommand(t *testing.T) {
	path := writeDump(t, sampleDump())

	resetFlags()
	output, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	assertContains(t, output, []string{
		"Settings: 3 (1 oneof, 1 numeric, 1 checkbox)",
		"Setup",
	})

	resetFlags()
	jsonOut = true
	output, err = captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{"\"settings\": 3"})
}

func TestGetCommand(t *testing.T) {
	path := writeDump(t, sampleDump())

	resetFlags()
	output, err := captureOutput(t, func() error {
		return runGet([]string{path, "Above 4G Decoding"})
	})
	if err != nil {
		t.Fatalf("runGet() error = %v", err)
	}
	assertContains(t, output, []string{
		"Above 4G Decoding",
		"Type: oneof",
		"Offset: 0x10",
		"0 = Disabled",
		"1 = Enabled (default)",
	})

	resetFlags()
	if _, err := captureOutput(t, func() error {
		return runGet([]string{path, "No Such Setting"})
	}); err == nil {
		t.Errorf("runGet() expected error for unknown name")
	}
}
