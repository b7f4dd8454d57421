package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `{
  "M": {"ucumCode": "m", "label": "Metre", "quantityKind": "Length",
        "dimension": "L1", "multiplier": 1, "offset": 0, "baseUnit": "M"},
  "MilliM": {"ucumCode": "mm", "label": "Millimetre", "quantityKind": "Length",
             "dimension": "L1", "multiplier": 0.001, "offset": 0, "baseUnit": "M"},
  "DEG_F": {"ucumCode": "[degF]", "label": "Degree Fahrenheit", "quantityKind": "Temperature",
            "dimension": "H1", "multiplier": "5/9", "offset": "45967/180", "baseUnit": "K"},
  "K": {"ucumCode": "K", "label": "Kelvin", "quantityKind": "Temperature",
        "dimension": "H1", "multiplier": 1, "offset": 0, "baseUnit": "K"}
}`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag values persist on the package-level commands between runs.
	catalogs = nil
	listKind = ""
	compactOut = ""
	compactKinds = nil
	approximate = false

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.json")
	if err := os.WriteFile(path, []byte(testCatalog), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func TestConvertCommand(t *testing.T) {
	path := writeTestCatalog(t)

	out, err := runCLI(t, "convert", "10", "mm", "m", "--catalog", path)
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, out)
	}
	if got := strings.TrimSpace(out); got != "0.01" {
		t.Fatalf("convert output = %q, want \"0.01\"", got)
	}

	out, err = runCLI(t, "convert", "32", "[degF]", "K", "--catalog", path)
	if err != nil {
		t.Fatalf("convert degF: %v\n%s", err, out)
	}
	if got := strings.TrimSpace(out); got != "273.15" {
		t.Fatalf("convert output = %q, want \"273.15\"", got)
	}
}

func TestConvertCommandByIdentifier(t *testing.T) {
	path := writeTestCatalog(t)

	out, err := runCLI(t, "convert", "2.5", "MilliM", "M", "--catalog", path)
	if err != nil {
		t.Fatalf("convert: %v\n%s", err, out)
	}
	if got := strings.TrimSpace(out); got != "0.0025" {
		t.Fatalf("convert output = %q, want \"0.0025\"", got)
	}
}

func TestConvertCommandErrors(t *testing.T) {
	path := writeTestCatalog(t)

	if _, err := runCLI(t, "convert", "10", "mm", "K", "--catalog", path); err == nil {
		t.Fatalf("incompatible conversion should fail")
	}
	if _, err := runCLI(t, "convert", "10", "mm", "furlong", "--catalog", path); err == nil {
		t.Fatalf("unknown unit should fail")
	}
	if _, err := runCLI(t, "convert", "bogus", "mm", "m", "--catalog", path); err == nil {
		t.Fatalf("malformed value should fail")
	}
}

func TestUnitsListCommand(t *testing.T) {
	path := writeTestCatalog(t)

	out, err := runCLI(t, "units", "list", "--catalog", path)
	if err != nil {
		t.Fatalf("units list: %v\n%s", err, out)
	}
	for _, want := range []string{"MilliM", "DEG_F", "Length", "Temperature"} {
		if !strings.Contains(out, want) {
			t.Fatalf("units list output missing %q:\n%s", want, out)
		}
	}

	out, err = runCLI(t, "units", "list", "--kind", "Length", "--catalog", path)
	if err != nil {
		t.Fatalf("units list --kind: %v\n%s", err, out)
	}
	if strings.Contains(out, "DEG_F") {
		t.Fatalf("kind filter leaked other kinds:\n%s", out)
	}
}

func TestUnitsShowCommand(t *testing.T) {
	path := writeTestCatalog(t)

	out, err := runCLI(t, "units", "show", "[degF]", "--catalog", path)
	if err != nil {
		t.Fatalf("units show: %v\n%s", err, out)
	}
	if !strings.Contains(out, "5/9") || !strings.Contains(out, "45967/180") {
		t.Fatalf("units show should print exact fraction record:\n%s", out)
	}
}

func TestCatalogCompactCommand(t *testing.T) {
	path := writeTestCatalog(t)
	outFile := filepath.Join(t.TempDir(), "compact.json")

	out, err := runCLI(t, "catalog", "compact", "--catalog", path, "--out", outFile,
		"--kinds", "Length")
	if err != nil {
		t.Fatalf("catalog compact: %v\n%s", err, out)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read compact output: %v", err)
	}
	if !strings.Contains(string(data), `"mm"`) {
		t.Fatalf("compact output missing unit code:\n%s", data)
	}
	if strings.Contains(string(data), "degF") {
		t.Fatalf("compact output should be restricted to Length:\n%s", data)
	}
}
