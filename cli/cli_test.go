package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"weatherreport/manager"
)

type fakeReporter struct {
	report manager.Report
	err    error
}

func (f fakeReporter) Build(ctx context.Context) (manager.Report, error) {
	return f.report, f.err
}

var losAngeles = manager.Report{
	Location: manager.Location{Latitude: 34.0522, Longitude: -118.2437, City: "Los Angeles", Country: "United States"},
	Weather:  manager.Weather{TemperatureC: 18.5, WeatherCode: 2, WindSpeedKmh: 12.3},
}

func execute(t *testing.T, reporter Reporter, args ...string) (string, error) {
	t.Helper()

	cmd, err := New(reporter)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestJSONOutput(t *testing.T) {
	for _, flag := range []string{"--json", "-j"} {
		t.Run(flag, func(t *testing.T) {
			out, err := execute(t, fakeReporter{report: losAngeles}, flag)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got manager.Report
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("output is not JSON: %v\n%s", err, out)
			}
			if got != losAngeles {
				t.Errorf("report = %+v, want %+v", got, losAngeles)
			}
			if !strings.Contains(out, "\n  \"location\": {") {
				t.Errorf("expected two-space indentation:\n%s", out)
			}
			if strings.Contains(out, "continent") {
				t.Errorf("continent must be omitted when empty:\n%s", out)
			}
		})
	}
}

func TestPanelOutput(t *testing.T) {
	out, err := execute(t, fakeReporter{report: losAngeles})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		panelTitle,
		"Los Angeles",
		"United States",
		"34.0522, -118.2437",
		"18.5 °C",
		"12.3 km/h",
		"Partly cloudy ⛅",
		"18.5°C, Partly cloudy in Los Angeles, United States\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "\x1b[") {
		t.Errorf("no colour expected when not writing to a terminal")
	}
	if strings.Contains(out, "Continent") {
		t.Errorf("continent row must be omitted when empty")
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	box := lines[:len(lines)-1]
	width := runewidth.StringWidth(box[0])
	for _, line := range box {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("line %q has width %d, want %d", line, w, width)
		}
	}
}

func TestPanelContinent(t *testing.T) {
	report := losAngeles
	report.Location.Continent = "North America"

	out, err := execute(t, fakeReporter{report: report})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "North America") {
		t.Errorf("continent row missing:\n%s", out)
	}
	if !strings.Contains(out, "in Los Angeles, United States, North America") {
		t.Errorf("summary should end with the continent:\n%s", out)
	}
}

func TestErrorIsReturned(t *testing.T) {
	want := &manager.GeolocationError{Message: "reserved range"}

	out, err := execute(t, fakeReporter{err: want})
	if err != want {
		t.Fatalf("error = %v, want %v", err, want)
	}
	if out != "" {
		t.Errorf("nothing should be printed on failure, got %q", out)
	}
}

func TestRejectsArguments(t *testing.T) {
	if _, err := execute(t, fakeReporter{report: losAngeles}, "Helsinki"); err == nil {
		t.Fatalf("expected an error for positional arguments")
	}
}
