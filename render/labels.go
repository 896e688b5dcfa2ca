package render

// Labels holds the title and axis labels of one chart.
type Labels struct {
	Title string `yaml:"title"`
	X     string `yaml:"x"`
	Y     string `yaml:"y"`
}

// ChartLabels holds labels for every chart the tool draws.
type ChartLabels struct {
	Line     Labels `yaml:"line"`
	Bar      Labels `yaml:"bar"`
	YearBox  Labels `yaml:"year_box"`
	MonthBox Labels `yaml:"month_box"`
}

// DefaultChartLabels returns labels for the freeCodeCamp forum dataset.
func DefaultChartLabels() ChartLabels {
	return ChartLabels{
		Line: Labels{
			Title: "Daily freeCodeCamp Forum Page Views 5/2016-12/2019",
			X:     "Date",
			Y:     "Page Views",
		},
		Bar: Labels{
			X: "Years",
			Y: "Average Page Views",
		},
		YearBox: Labels{
			Title: "Year-wise Box Plot (Trend)",
			X:     "Year",
			Y:     "Page Views",
		},
		MonthBox: Labels{
			Title: "Month-wise Box Plot (Seasonality)",
			X:     "Month",
			Y:     "Page Views",
		},
	}
}

// Merge returns l with empty fields taken from def.
func (l Labels) Merge(def Labels) Labels {
	if l.Title == "" {
		l.Title = def.Title
	}
	if l.X == "" {
		l.X = def.X
	}
	if l.Y == "" {
		l.Y = def.Y
	}
	return l
}

// Merge returns c with empty labels taken from def.
func (c ChartLabels) Merge(def ChartLabels) ChartLabels {
	return ChartLabels{
		Line:     c.Line.Merge(def.Line),
		Bar:      c.Bar.Merge(def.Bar),
		YearBox:  c.YearBox.Merge(def.YearBox),
		MonthBox: c.MonthBox.Merge(def.MonthBox),
	}
}
