// Package aggregate derives chart-ready views of a cleaned page view series.
//
// MonthlyMeans averages each (year, month) and rounds the mean half to even.
// BarGrid lays those means out by year with months always in calendar order,
// so a legend starts at January even when the data starts in May.
//
// YearlyGroups and MonthlyGroups keep raw values for box plots. Monthly
// groups are always January through December.
package aggregate
