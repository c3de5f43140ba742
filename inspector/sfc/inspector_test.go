package sfc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/uicover/inspector/graph"
	"github.com/viant/uicover/inspector/sfc"
)

func TestInspector_InspectSource(t *testing.T) {
	tests := []struct {
		name           string
		source         string
		svelte         bool
		wantLang       string
		markupContains []string
		markupExcludes []string
		logicContains  []string
		wantImports    []string
		wantErr        error
	}{
		{
			name: "vue component with nested template",
			source: `<template>
  <div class="page">
    <cx-button type="primary" @click="save">Save</cx-button>
    <cx-list>
      <template #item="{ row }">
        <cx-tag>{{ row.name }}</cx-tag>
      </template>
    </cx-list>
  </div>
</template>

<script>
import Child from './Child.vue'
import { CxToast } from 'chuxin-ui-mobile'
export default {
  components: { Child },
  methods: { save() { CxToast('saved') } }
}
</script>

<style scoped>
.page { color: red; }
</style>
`,
			wantLang:       "js",
			markupContains: []string{"<cx-button", "<template #item", "<cx-tag>", "</cx-list>"},
			markupExcludes: []string{"import Child", ".page {"},
			logicContains:  []string{"CxToast('saved')"},
			wantImports:    []string{"./Child.vue", "chuxin-ui-mobile"},
		},
		{
			name: "script setup with typescript",
			source: `<script lang="ts">
export default { name: 'Profile' }
</script>
<script setup lang="ts">
import type { User } from './types'
import Avatar from '@/components/Avatar.vue'
const user: User = { name: 'x' }
</script>
<template><cx-cell :title="user.name" /></template>
`,
			wantLang:       "ts",
			markupContains: []string{"<cx-cell"},
			logicContains:  []string{"name: 'Profile'", "const user: User"},
			wantImports:    []string{"./types", "@/components/Avatar.vue"},
		},
		{
			name: "re-exported component",
			source: `<script>
export { default as Panel } from './Panel.vue'
</script>`,
			wantLang:    "js",
			wantImports: []string{"./Panel.vue"},
		},
		{
			name:     "empty component",
			source:   "",
			wantLang: "js",
		},
		{
			name:    "unclosed template",
			source:  "<template><div><cx-button></div>",
			wantErr: sfc.ErrUnbalanced,
		},
		{
			name: "svelte component",
			source: `<script>
  import Row from './Row.svelte'
</script>

<cx-button>Go</cx-button>
<Row />

<style>
  cx-button { color: red; }
</style>
`,
			svelte:         true,
			wantLang:       "js",
			markupContains: []string{"<cx-button>Go</cx-button>", "<Row />"},
			markupExcludes: []string{"import Row", "color: red"},
			wantImports:    []string{"./Row.svelte"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inspector := sfc.NewInspector(nil)
			if tt.svelte {
				inspector = sfc.NewSvelteInspector(nil)
			}
			file, err := inspector.InspectSource(context.Background(), "component", []byte(tt.source))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, file.Lang)
			for _, fragment := range tt.markupContains {
				assert.Contains(t, file.Markup, fragment)
			}
			for _, fragment := range tt.markupExcludes {
				assert.NotContains(t, file.Markup, fragment)
			}
			for _, fragment := range tt.logicContains {
				assert.Contains(t, file.Logic, fragment)
			}
			assert.Equal(t, tt.wantImports, file.ImportPaths())
			assert.Equal(t, graph.Hash([]byte(tt.source)), file.Hash)
		})
	}
}

func TestInspector_LexicalImports(t *testing.T) {
	source := `<script>
import Child from "./Child.vue"
import { a, b } from '../util.js'
import './side-effect.css'
</script>`
	inspector := sfc.NewInspector(&graph.Config{LexicalImport: true})
	file, err := inspector.InspectSource(context.Background(), "component", []byte(source))
	require.NoError(t, err)
	assert.Equal(t, []string{"./Child.vue", "../util.js", "./side-effect.css"}, file.ImportPaths())
}

func TestInspector_SkipImports(t *testing.T) {
	source := `<script>import Child from './Child.vue'</script>`
	inspector := sfc.NewInspector(&graph.Config{SkipImports: true})
	file, err := inspector.InspectSource(context.Background(), "component", []byte(source))
	require.NoError(t, err)
	assert.Empty(t, file.Imports)
	assert.True(t, file.HasLogic())
	assert.False(t, file.HasMarkup())
}
