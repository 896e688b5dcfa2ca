package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/render"
	"github.com/sartorproj/pageviews/report"
	"gopkg.in/yaml.v3"
)

// Charts is the content of the optional YAML chart configuration file.
//
//	labels:
//	  line:
//	    title: Daily Page Views
//	outputs:
//	  line: daily
type Charts struct {
	Labels  render.ChartLabels `yaml:"labels"`
	Outputs report.Outputs     `yaml:"outputs"`
}

// DefaultCharts returns the built-in labels and file names.
func DefaultCharts() *Charts {
	return &Charts{
		Labels:  render.DefaultChartLabels(),
		Outputs: report.DefaultOutputs(),
	}
}

// LoadChartsFromFile loads chart settings from a YAML file. Fields left
// out of the file keep their defaults.
func LoadChartsFromFile(path string) (*Charts, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var charts Charts
	if err := yaml.Unmarshal(data, &charts); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	def := DefaultCharts()
	charts.Labels = charts.Labels.Merge(def.Labels)
	charts.Outputs = mergeOutputs(charts.Outputs, def.Outputs)
	return &charts, nil
}

func mergeOutputs(o, def report.Outputs) report.Outputs {
	if o.Dir == "" {
		o.Dir = def.Dir
	}
	if o.Line == "" {
		o.Line = def.Line
	}
	if o.Bar == "" {
		o.Bar = def.Bar
	}
	if o.Box == "" {
		o.Box = def.Box
	}
	return o
}
