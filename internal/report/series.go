package report

import (
	"sort"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/stats"
)

// TrendSeries flattens the monthly trend map into parallel arrays in
// chronological order. Bucket labels sort by calendar month, not by
// insertion order.
func TrendSeries(s dto.TransactionStats) dto.TrendSeries {
	labels := make([]string, 0, len(s.MonthlyTrend))
	for label := range s.MonthlyTrend {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ti, _ := stats.MonthKey(labels[i])
		tj, _ := stats.MonthKey(labels[j])
		return ti.Before(tj)
	})

	series := dto.TrendSeries{
		Labels:  labels,
		Income:  make([]float64, len(labels)),
		Expense: make([]float64, len(labels)),
		Balance: make([]float64, len(labels)),
	}
	for i, label := range labels {
		bucket := s.MonthlyTrend[label]
		series.Income[i] = bucket.Income
		series.Expense[i] = bucket.Expense
		series.Balance[i] = bucket.Balance
	}
	return series
}

// CategorySeries flattens the category breakdown into label/value
// arrays for pie charts, largest slice first. Ties break
// alphabetically so re-renders are stable.
func CategorySeries(s dto.TransactionStats) dto.CategorySeries {
	labels := make([]string, 0, len(s.CategoryBreakdown))
	for label := range s.CategoryBreakdown {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ti := s.CategoryBreakdown[labels[i]].Total
		tj := s.CategoryBreakdown[labels[j]].Total
		if ti != tj {
			return ti > tj
		}
		return labels[i] < labels[j]
	})

	var grand float64
	for _, label := range labels {
		grand += s.CategoryBreakdown[label].Total
	}

	series := dto.CategorySeries{
		Labels: labels,
		Values: make([]float64, len(labels)),
		Shares: make([]string, len(labels)),
	}
	for i, label := range labels {
		total := s.CategoryBreakdown[label].Total
		series.Values[i] = total
		var share float64
		if grand > 0 {
			share = total / grand * 100
		}
		series.Shares[i] = FormatShare(share)
	}
	return series
}
