package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// ErrNoData is returned when an input holds a header but no data rows.
var ErrNoData = goerr.New("no data rows found in CSV")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (default: "date")
	ValueColumn string // Column name for values (default: "value")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn:  "date",
		ValueColumn: "value",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// fallbackDateFormats are tried after CSVOptions.DateFormat.
var fallbackDateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, goerr.Wrap(err, "input file not found", goerr.V("path", filename))
		}
		return nil, goerr.Wrap(err, "failed to open input file", goerr.V("path", filename))
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load CSV", goerr.V("path", filename))
	}
	return series, nil
}

// LoadCSVFromReader loads a time series from an io.Reader. Any row with an
// unparseable date or value aborts the load.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	line := 0
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, goerr.Wrap(err, "failed to skip leading rows", goerr.V("row", i+1))
		}
		line++
	}

	dateIdx, valueIdx := 0, 1
	if opts.HasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoData
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read CSV header")
		}
		line++

		dateIdx, valueIdx = -1, -1
		for i, h := range header {
			if i == 0 {
				h = strings.TrimPrefix(h, "\ufeff")
			}
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch h {
			case opts.DateColumn:
				dateIdx = i
			case opts.ValueColumn:
				valueIdx = i
			}
		}
		if dateIdx == -1 {
			return nil, goerr.New("date column not found in header",
				goerr.V("column", opts.DateColumn), goerr.V("header", header))
		}
		if valueIdx == -1 {
			return nil, goerr.New("value column not found in header",
				goerr.V("column", opts.ValueColumn), goerr.V("header", header))
		}
	}

	formats := append([]string{opts.DateFormat}, fallbackDateFormats...)
	var timestamps []time.Time
	var values []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read CSV row", goerr.V("row", line))
		}
		if dateIdx >= len(record) || valueIdx >= len(record) {
			return nil, goerr.New("CSV row has too few fields",
				goerr.V("row", line), goerr.V("fields", len(record)))
		}

		dateStr := strings.TrimSpace(strings.Trim(record[dateIdx], "\""))
		ts, ok := parseDate(dateStr, formats)
		if !ok {
			return nil, goerr.New("unparseable date",
				goerr.V("row", line), goerr.V("input", dateStr))
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			return nil, goerr.Wrap(err, "unparseable value",
				goerr.V("row", line), goerr.V("input", valStr))
		}
		if math.IsNaN(val) || math.IsInf(val, 0) || val < 0 {
			return nil, goerr.New("value must be a non-negative count",
				goerr.V("row", line), goerr.V("input", valStr))
		}

		timestamps = append(timestamps, ts)
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	series, err := NewWithTimestamps(timestamps, values)
	if err != nil {
		return nil, err
	}
	series.Name = opts.ValueColumn
	return series, nil
}

func parseDate(s string, formats []string) (time.Time, bool) {
	for _, layout := range formats {
		if layout == "" {
			continue
		}
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// SaveCSV saves a time series to a CSV file as date,value rows.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return goerr.Wrap(err, "failed to create CSV file", goerr.V("path", filename))
	}
	defer file.Close()

	if err := WriteCSV(series, file); err != nil {
		return goerr.Wrap(err, "failed to write CSV file", goerr.V("path", filename))
	}
	return file.Close()
}

// WriteCSV writes a time series as date,value rows with a header.
func WriteCSV(series *Series, w io.Writer) error {
	writer := bufio.NewWriter(w)

	writer.WriteString("date,value\n")
	for i, v := range series.Values {
		writer.WriteString(series.Timestamps[i].Format("2006-01-02"))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return writer.Flush()
}
