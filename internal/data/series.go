// Package data loads recorded intensity series from activity files so a
// session can be simulated against a real effort instead of a synthetic
// profile. Supported formats: CSV (one sample per row), JSON exports
// (array picked out by a JSONPath expression), and FIT activity files.
package data

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tormoder/fit"
)

// Options selects which part of the file holds the intensity samples.
type Options struct {
	// Field names the CSV column, or the FIT record field ("speed" or
	// "power"). Defaults to "intensity" for CSV and "speed" for FIT.
	Field string
	// Path is a JSONPath expression locating the numeric array in a JSON
	// export, e.g. $.velocity_smooth.data. Defaults to the document root.
	Path string
}

// LoadSeries reads a per-second intensity series from path. Relative
// paths are resolved against baseDir (typically the config file's
// directory). The format is chosen by extension.
func LoadSeries(path, baseDir string, opts Options) ([]float64, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	var series []float64
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		series, err = loadCSV(path, opts.Field)
	case ".json":
		series, err = loadJSON(path, opts.Path)
	case ".fit":
		series, err = loadFIT(path, opts.Field)
	default:
		return nil, fmt.Errorf("unsupported file format %q (use .csv, .json or .fit)", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no intensity samples in %s", path)
	}
	return series, nil
}

// loadCSV reads the named column from a CSV file. The first row is the
// header; every following row contributes one sample.
func loadCSV(path, field string) ([]float64, error) {
	if field == "" {
		field = "intensity"
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV must have a header row and at least one data row")
	}

	col := -1
	for i, name := range records[0] {
		if strings.EqualFold(strings.TrimSpace(name), field) {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("CSV has no column %q", field)
	}

	series := make([]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if col >= len(record) {
			return nil, fmt.Errorf("row %d has no column %q", i+2, field)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		series = append(series, v)
	}
	return series, nil
}

// loadJSON extracts a numeric array from a JSON document. jsonPath uses
// JSONPath syntax ($.foo.bar, array access $.items[0]) converted to gjson
// format; an empty path takes the document root.
func loadJSON(path, jsonPath string) ([]float64, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON")
	}

	var result gjson.Result
	if converted := convertJSONPath(jsonPath); converted == "" {
		result = gjson.ParseBytes(body)
	} else {
		result = gjson.GetBytes(body, converted)
		if !result.Exists() {
			return nil, fmt.Errorf("path %q not found", jsonPath)
		}
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("path %q is not an array", jsonPath)
	}

	values := result.Array()
	series := make([]float64, len(values))
	for i, v := range values {
		series[i] = v.Float()
	}
	return series, nil
}

// convertJSONPath converts JSONPath syntax to gjson path format.
// $.foo.bar -> foo.bar
// $.items[0].id -> items.0.id
func convertJSONPath(path string) string {
	if strings.HasPrefix(path, "$.") {
		path = path[2:]
	} else if strings.HasPrefix(path, "$") {
		path = path[1:]
	}

	var result strings.Builder
	i := 0
	for i < len(path) {
		if path[i] == '[' {
			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}
			if j < len(path) {
				result.WriteByte('.')
				result.WriteString(path[i+1 : j])
				i = j + 1
				continue
			}
		}
		result.WriteByte(path[i])
		i++
	}
	return result.String()
}

// loadFIT decodes a FIT activity file and extracts the per-record speed
// (m/s) or power (watts) stream. Records with an invalid value for the
// chosen field contribute a zero sample, keeping the series aligned with
// the recording's timeline.
func loadFIT(path, field string) ([]float64, error) {
	if field == "" {
		field = "speed"
	}
	if field != "speed" && field != "power" {
		return nil, fmt.Errorf("unsupported FIT field %q (use speed or power)", field)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := fit.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding FIT: %w", err)
	}
	activity, err := f.Activity()
	if err != nil {
		return nil, fmt.Errorf("not an activity file: %w", err)
	}

	series := make([]float64, 0, len(activity.Records))
	for _, rec := range activity.Records {
		switch field {
		case "speed":
			v := rec.GetSpeedScaled()
			if math.IsNaN(v) {
				v = 0
			}
			series = append(series, v)
		case "power":
			if rec.Power == 0xFFFF {
				series = append(series, 0)
			} else {
				series = append(series, float64(rec.Power))
			}
		}
	}
	return series, nil
}
