package analyzer

import (
	"math"
	"sort"
	"strings"

	"github.com/viant/uicover/analyzer/stats"
)

// Aggregate computes statistics over pages; only page entries of index contribute to project usage.
// When allowed names are supplied, counts of other names are dropped and unused names are reported.
func Aggregate(pages stats.PageSet, index stats.FileIndex, allowed ...string) *stats.Statistics {
	result := stats.Empty()
	allowList := NewAllowList(allowed...)
	for _, page := range pages.Sorted() {
		usage, ok := index[page]
		if !ok {
			continue
		}
		filtered := stats.Usage{}
		for name, count := range usage {
			if allowList.Allows(name) {
				filtered.Add(name, count)
			}
		}
		result.FileUsage[page] = filtered
	}
	result.TotalPages = len(pages)
	for _, usage := range result.FileUsage {
		if len(usage) == 0 {
			continue
		}
		result.PagesWithUsage++
		result.ProjectUsage.Merge(usage)
	}
	result.PagesWithoutUsage = result.TotalPages - result.PagesWithUsage
	result.CoverageRate = percentage(result.PagesWithUsage, result.TotalPages)
	summarize(result, allowed)
	return result
}

// Recount replaces project usage with the sum of each file own usage, so a file reached from many pages counts once.
// Page totals and coverage are left unchanged.
func Recount(s *stats.Statistics, files stats.FileIndex, allowed ...string) {
	allowList := NewAllowList(allowed...)
	s.ProjectUsage = stats.Usage{}
	for _, usage := range files {
		for name, count := range usage {
			if allowList.Allows(name) {
				s.ProjectUsage.Add(name, count)
			}
		}
	}
	summarize(s, allowed)
}

// summarize derives ranking and tracked component figures from project usage
func summarize(s *stats.Statistics, allowed []string) {
	s.Ranking = rank(s.ProjectUsage)
	s.TrackedComponents, s.UnusedComponents, s.ComponentUsageRate = nil, nil, 0
	allowList := NewAllowList(allowed...)
	if len(allowList) == 0 {
		return
	}
	used := 0
	seen := map[string]bool{}
	for _, name := range allowed {
		name = strings.TrimSpace(name)
		if _, ok := allowList[name]; !ok || seen[name] {
			continue
		}
		seen[name] = true
		s.TrackedComponents = append(s.TrackedComponents, name)
		if s.ProjectUsage[name] > 0 {
			used++
		} else {
			s.UnusedComponents = append(s.UnusedComponents, name)
		}
	}
	s.ComponentUsageRate = percentage(used, len(s.TrackedComponents))
}

func rank(usage stats.Usage) []stats.ComponentCount {
	result := make([]stats.ComponentCount, 0, len(usage))
	for name, count := range usage {
		result = append(result, stats.ComponentCount{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}
