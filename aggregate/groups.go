package aggregate

import (
	"sort"
	"strconv"

	"github.com/sartorproj/pageviews/timeseries"
)

// Group is a labelled set of raw values for a distribution plot.
type Group struct {
	Key    int
	Label  string
	Values []float64
}

// YearlyGroups partitions the series by calendar year, ascending.
func YearlyGroups(series *timeseries.Series) []Group {
	index := make(map[int]int)
	var groups []Group

	for i, ts := range series.Timestamps {
		year := ts.Year()
		idx, ok := index[year]
		if !ok {
			idx = len(groups)
			index[year] = idx
			groups = append(groups, Group{Key: year, Label: strconv.Itoa(year)})
		}
		groups[idx].Values = append(groups[idx].Values, series.Values[i])
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// MonthlyGroups partitions the series by calendar month across years. It
// always returns twelve groups, January first, some possibly empty.
func MonthlyGroups(series *timeseries.Series) []Group {
	groups := make([]Group, 12)
	for i, m := range CalendarMonths() {
		groups[i] = Group{Key: int(m), Label: MonthAbbrev(m)}
	}

	for i, ts := range series.Timestamps {
		idx := int(ts.Month()) - 1
		groups[idx].Values = append(groups[idx].Values, series.Values[i])
	}
	return groups
}

// Labels returns the label of each group in order.
func Labels(groups []Group) []string {
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	return labels
}
