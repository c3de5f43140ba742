package stats

import "fmt"

// ComponentCount represents a single ranking entry
type ComponentCount struct {
	Name  string `yaml:"name" json:"name"`
	Count int    `yaml:"count" json:"count"`
}

// Statistics represents coverage computed from a page set and a file index
type Statistics struct {
	TotalPages         int              `yaml:"totalPages" json:"totalPages"`
	PagesWithUsage     int              `yaml:"pagesWithUsage" json:"pagesWithUsage"`
	PagesWithoutUsage  int              `yaml:"pagesWithoutUsage" json:"pagesWithoutUsage"`
	CoverageRate       float64          `yaml:"coverageRate" json:"coverageRate"` // percentage 0-100
	ProjectUsage       Usage            `yaml:"projectUsage" json:"projectUsage"`
	FileUsage          FileIndex        `yaml:"fileUsage" json:"fileUsage"`
	Ranking            []ComponentCount `yaml:"ranking" json:"ranking"`
	TrackedComponents  []string         `yaml:"trackedComponents,omitempty" json:"trackedComponents,omitempty"`
	UnusedComponents   []string         `yaml:"unusedComponents,omitempty" json:"unusedComponents,omitempty"`
	ComponentUsageRate float64          `yaml:"componentUsageRate" json:"componentUsageRate"`
}

// Empty returns zero-state statistics
func Empty() *Statistics {
	return &Statistics{
		ProjectUsage: Usage{},
		FileUsage:    FileIndex{},
		Ranking:      []ComponentCount{},
	}
}

// CoverageString returns coverage rate formatted as percentage
func (s *Statistics) CoverageString() string {
	return fmt.Sprintf("%.2f%%", s.CoverageRate)
}

// UsedComponents returns tracked components that were matched at least once
func (s *Statistics) UsedComponents() []string {
	var result []string
	for _, name := range s.TrackedComponents {
		if s.ProjectUsage[name] > 0 {
			result = append(result, name)
		}
	}
	return result
}

// PagesWithout returns pages whose usage is empty, in lexical order
func (s *Statistics) PagesWithout(pages PageSet) []string {
	var result []string
	for _, page := range pages.Sorted() {
		if len(s.FileUsage[page]) == 0 {
			result = append(result, page)
		}
	}
	return result
}
