package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// HTML Report Tests

func TestGenerateHTMLReport(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "report.html")
	if err := GenerateHTMLReport(config, path); err != nil {
		t.Fatalf("GenerateHTMLReport failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)

	sections := []string{
		"Total Invested",
		"Sensitivity Analysis",
		"<svg",
		"<polyline",
	}
	for _, want := range sections {
		if !strings.Contains(body, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Risk summary under the sensitivity bars: worst and best vs base
	if !strings.Contains(body, "Worst case vs base:") || !strings.Contains(body, "Best case vs base:") {
		t.Error("report missing the worst/best vs base risk summary")
	}
}
