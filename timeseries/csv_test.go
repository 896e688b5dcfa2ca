package timeseries

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `date,value
2016-05-09,1201
2016-05-10,2329
2016-05-11,1716
2016-05-12,10539
2016-05-13,6933`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	gt.NoError(t, err).Required()

	gt.Equal(t, series.Len(), 5)
	gt.Equal(t, series.Values, []float64{1201, 2329, 1716, 10539, 6933})
	gt.True(t, series.Timestamps[0].Equal(time.Date(2016, 5, 9, 0, 0, 0, 0, time.UTC)))
	gt.True(t, series.Timestamps[4].Equal(time.Date(2016, 5, 13, 0, 0, 0, 0, time.UTC)))
	gt.Equal(t, series.Name, "value")
}

func TestLoadCSVByteOrderMark(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
	}{
		{"plain header", "\ufeffdate,value\n2016-05-09,1201\n2016-05-10,2329\n"},
		{"quoted header", "\ufeff\"date\",\"value\"\n2016-05-09,1201\n2016-05-10,2329\n"},
		{"value first", "\ufeffvalue,date\n1201,2016-05-09\n2329,2016-05-10\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			series, err := LoadCSVFromReader(strings.NewReader(tc.csvData), DefaultCSVOptions())
			gt.NoError(t, err).Required()
			gt.Equal(t, series.Values, []float64{1201, 2329})
			gt.True(t, series.Timestamps[0].Equal(time.Date(2016, 5, 9, 0, 0, 0, 0, time.UTC)))
		})
	}
}

func TestLoadCSVColumnOrder(t *testing.T) {
	csvData := `value,date
10,2020-01-01
20,2020-01-02`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	gt.NoError(t, err).Required()
	gt.Equal(t, series.Values, []float64{10, 20})
}

func TestLoadCSVCustomColumns(t *testing.T) {
	csvData := `"day";"site";"views"
"2020-01-01";"forum";"100"
"2020-01-02";"forum";"110"`

	opts := DefaultCSVOptions()
	opts.DateColumn = "day"
	opts.ValueColumn = "views"
	opts.Delimiter = ';'

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	gt.NoError(t, err).Required()
	gt.Equal(t, series.Values, []float64{100, 110})
	gt.Equal(t, series.Name, "views")
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	csvData := `2020-01-01,5
2020-01-02,6`

	opts := DefaultCSVOptions()
	opts.HasHeader = false

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	gt.NoError(t, err).Required()
	gt.Equal(t, series.Values, []float64{5, 6})
}

func TestLoadCSVDateFormats(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
	}{
		{"ISO format", "date,value\n2020-01-01,100\n2020-01-02,101"},
		{"ISO with time", "date,value\n2020-01-01T00:00:00,100\n2020-01-02T00:00:00,101"},
		{"slashes", "date,value\n2020/01/01,100\n2020/01/02,101"},
		{"US format", "date,value\n01/01/2020,100\n01/02/2020,101"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			series, err := LoadCSVFromReader(strings.NewReader(tc.csvData), DefaultCSVOptions())
			gt.NoError(t, err).Required()
			gt.Equal(t, series.Len(), 2)
			gt.Equal(t, series.Timestamps[1].Day(), 2)
		})
	}
}

func TestLoadCSVErrors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
		message string
	}{
		{"bad date", "date,value\n2020-01-01,1\nnot-a-date,2", "unparseable date"},
		{"bad value", "date,value\n2020-01-01,abc", "unparseable value"},
		{"NA value", "date,value\n2020-01-01,NA", "unparseable value"},
		{"negative value", "date,value\n2020-01-01,-4", "non-negative"},
		{"missing date column", "day,value\n2020-01-01,1", "date column not found"},
		{"missing value column", "date,views\n2020-01-01,1", "value column not found"},
		{"short row", "date,value\n2020-01-01", "CSV row"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCSVFromReader(strings.NewReader(tc.csvData), DefaultCSVOptions())
			gt.Error(t, err).Required()
			gt.S(t, err.Error()).Contains(tc.message)
		})
	}
}

func TestLoadCSVNoData(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		_, err := LoadCSVFromReader(strings.NewReader("date,value\n"), nil)
		gt.True(t, errors.Is(err, ErrNoData))
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := LoadCSVFromReader(strings.NewReader(""), nil)
		gt.True(t, errors.Is(err, ErrNoData))
	})
}

func TestLoadCSVMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	_, err := LoadCSV(path, nil)
	gt.Error(t, err).Required()
	gt.True(t, errors.Is(err, os.ErrNotExist))
	gt.S(t, err.Error()).Contains("input file not found")
}

func TestSaveCSVRoundTrip(t *testing.T) {
	original, err := LoadCSVFromReader(strings.NewReader("date,value\n2019-12-01,42\n2019-12-02,43\n"), nil)
	gt.NoError(t, err).Required()

	path := filepath.Join(t.TempDir(), "cleaned.csv")
	gt.NoError(t, SaveCSV(original, path)).Required()

	loaded, err := LoadCSV(path, nil)
	gt.NoError(t, err).Required()
	gt.Equal(t, loaded.Values, original.Values)
	gt.Equal(t, loaded.Timestamps, original.Timestamps)
}

func TestWriteCSV(t *testing.T) {
	series := FromRecords([]Record{
		{Date: time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), Value: 7},
		{Date: time.Date(2017, 1, 3, 0, 0, 0, 0, time.UTC), Value: 8.5},
	})

	var buf bytes.Buffer
	gt.NoError(t, WriteCSV(series, &buf))
	gt.Equal(t, buf.String(), "date,value\n2017-01-02,7\n2017-01-03,8.5\n")
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	gt.Equal(t, opts.DateColumn, "date")
	gt.Equal(t, opts.ValueColumn, "value")
	gt.Equal(t, opts.DateFormat, "2006-01-02")
	gt.True(t, opts.HasHeader)
	gt.Equal(t, opts.Delimiter, ',')
}
