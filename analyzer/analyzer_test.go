package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/uicover/analyzer/stats"
)

const scenarioRouter = `import { createRouter, createWebHistory } from "vue-router"

const routes = [
  { path: "/a", name: "a", component: () => import("@/views/PageA.vue") },
  { path: "/b", name: "b", component: () => import(/* webpackChunkName: "b" */ "../views/PageB.vue") },
  { path: "/layout", component: () => import("@/layouts/index.ts") },
]

export default createRouter({ history: createWebHistory(), routes })
`

func scenarioFiles() map[string]string {
	return map[string]string{
		"src/router/index.ts":      scenarioRouter,
		"src/views/PageA.vue":      component(`<cx-button/><div><cx-button type="primary"/></div><Child/>`, `import Child from "@/components/Child.vue"`),
		"src/views/PageB.vue":      component(`<div>plain</div>`, `export default {}`),
		"src/components/Child.vue": component(`<cx-tag/>`, ``),
	}
}

func TestAnalyzer_RunStandalone(t *testing.T) {
	root := writeProject(t, scenarioFiles())
	result, err := New().RunStandalone(context.Background(), scenarioRouter, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/views/PageA.vue", "src/views/PageB.vue"}, result.Pages)
	assert.Equal(t, 2, result.Statistics.TotalPages)
	assert.Equal(t, 1, result.Statistics.PagesWithUsage)
	assert.Equal(t, 50.0, result.Statistics.CoverageRate)
	assert.EqualValues(t, stats.Usage{"cx-button": 2, "cx-tag": 1}, result.Statistics.ProjectUsage)
	assert.EqualValues(t, stats.Usage{}, result.Statistics.FileUsage["src/views/PageB.vue"])
	assert.Empty(t, result.Warnings)
	assert.Nil(t, result.Warning())
}

func TestAnalyzer_Run(t *testing.T) {
	root := writeProject(t, scenarioFiles())
	result, err := New(WithRoot(root), WithComponents("cx-button", "cx-dialog")).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Statistics.CoverageRate)
	assert.EqualValues(t, stats.Usage{"cx-button": 2}, result.Statistics.ProjectUsage)
	assert.Equal(t, []string{"cx-dialog"}, result.Statistics.UnusedComponents)
	assert.Equal(t, 50.0, result.Statistics.ComponentUsageRate)
}

func TestAnalyzer_RouterNotFound(t *testing.T) {
	root := writeProject(t, map[string]string{
		"src/router/empty.ts": "  \n",
	})
	var testCases = []struct {
		description string
		run         func() (*Result, error)
	}{
		{
			description: "empty router text",
			run: func() (*Result, error) {
				return New().RunStandalone(context.Background(), "", root)
			},
		},
		{
			description: "missing router file",
			run: func() (*Result, error) {
				return New(WithRoot(root)).Run(context.Background())
			},
		},
		{
			description: "empty router file",
			run: func() (*Result, error) {
				return New(WithRoot(root), WithRouter("src/router/empty.ts")).Run(context.Background())
			},
		},
	}
	for _, testCase := range testCases {
		result, err := testCase.run()
		assert.ErrorIs(t, err, ErrRouterNotFound, testCase.description)
		require.NotNil(t, result, testCase.description)
		assert.Equal(t, 0, result.Statistics.TotalPages, testCase.description)
		assert.Equal(t, 0.0, result.Statistics.CoverageRate, testCase.description)
		assert.NotNil(t, result.Statistics.ProjectUsage, testCase.description)
	}
}

func TestAnalyzer_MissingChild(t *testing.T) {
	files := scenarioFiles()
	files["src/views/PageA.vue"] = component(`<cx-button/><cx-button/>`, `import Gone from "@/components/Gone.vue"`)
	root := writeProject(t, files)
	result, err := New().RunStandalone(context.Background(), scenarioRouter, root)
	require.NoError(t, err)
	assert.EqualValues(t, stats.Usage{"cx-button": 2}, result.Statistics.ProjectUsage)
	require.Len(t, result.Warnings, 1)
	assert.ErrorIs(t, result.Warnings[0], ErrFileUnavailable)
	assert.ErrorIs(t, result.Warning(), ErrFileUnavailable)
}

func TestAnalyzer_SharedChildPolicy(t *testing.T) {
	router := `
{ component: () => import("@/views/A.vue") },
{ component: () => import("@/views/B.vue") },`
	root := writeProject(t, map[string]string{
		"src/views/A.vue":         component(``, `import Card from "@/components/Card.vue"`),
		"src/views/B.vue":         component(``, `import Card from "@/components/Card.vue"`),
		"src/components/Card.vue": component(`<cx-cell/>`, ``),
	})

	perPage, err := New().RunStandalone(context.Background(), router, root)
	require.NoError(t, err)
	assert.EqualValues(t, stats.Usage{"cx-cell": 2}, perPage.Statistics.ProjectUsage)
	assert.Equal(t, 100.0, perPage.Statistics.CoverageRate)

	perRun, err := New(WithRunScopedVisits()).RunStandalone(context.Background(), router, root)
	require.NoError(t, err)
	assert.EqualValues(t, stats.Usage{"cx-cell": 1}, perRun.Statistics.ProjectUsage)
	assert.Equal(t, 100.0, perRun.Statistics.CoverageRate)
	assert.Equal(t, 2, perRun.Statistics.PagesWithUsage)
}

func TestAnalyzer_RunScopedVisits_PageOrder(t *testing.T) {
	router := `
{ component: () => import("@/views/A.vue") },
{ component: () => import("@/views/B.vue") },`
	root := writeProject(t, map[string]string{
		"src/views/A.vue": component(``, `import B from "./B.vue"`),
		"src/views/B.vue": component(`<cx-tag/>`, ``),
	})
	var testCases = []struct {
		description string
		options     []Option
		expectUsage stats.Usage
	}{
		{description: "page scope", expectUsage: stats.Usage{"cx-tag": 2}},
		{description: "run scope", options: []Option{WithRunScopedVisits(), WithComponents("cx-tag", "cx-cell")}, expectUsage: stats.Usage{"cx-tag": 1}},
	}
	for _, testCase := range testCases {
		result, err := New(testCase.options...).RunStandalone(context.Background(), router, root)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, 2, result.Statistics.PagesWithUsage, testCase.description)
		assert.Equal(t, 100.0, result.Statistics.CoverageRate, testCase.description)
		assert.EqualValues(t, stats.Usage{"cx-tag": 1}, result.Statistics.FileUsage["src/views/A.vue"], testCase.description)
		assert.EqualValues(t, stats.Usage{"cx-tag": 1}, result.Statistics.FileUsage["src/views/B.vue"], testCase.description)
		assert.EqualValues(t, testCase.expectUsage, result.Statistics.ProjectUsage, testCase.description)
	}
}

func TestAnalyzer_Cancelled(t *testing.T) {
	root := writeProject(t, scenarioFiles())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := New().RunStandalone(ctx, scenarioRouter, root)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, result.Statistics.TotalPages)
	assert.Empty(t, result.Statistics.FileUsage)
}

func TestAnalyzer_DiscoverPages(t *testing.T) {
	root := writeProject(t, scenarioFiles())
	analyzer := New(WithRoot(root))
	pages, err := analyzer.DiscoverPages(context.Background(), root+"/src/router/index.ts")
	require.NoError(t, err)
	assert.Equal(t, []string{"src/views/PageA.vue", "src/views/PageB.vue"}, pages.Sorted())

	_, err = analyzer.DiscoverPages(context.Background(), root+"/src/router/missing.ts")
	assert.ErrorIs(t, err, ErrRouterNotFound)
}

func TestAnalyzer_Collector(t *testing.T) {
	collector := New(WithComponents("cx-button")).Collector(WithPages(stats.NewPageSet("src/views/A.vue")))
	require.NoError(t, collector.RecordFile("src/views/A.vue", `<cx-button/><cx-tag/>`, ``))
	actual := collector.Finalize()
	assert.Equal(t, 100.0, actual.CoverageRate)
	assert.EqualValues(t, stats.Usage{"cx-button": 1}, actual.ProjectUsage)
}
