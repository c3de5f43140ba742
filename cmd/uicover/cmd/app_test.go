package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"package.json":        `{"name": "shop"}`,
		"src/router/index.ts": `export default [{ path: "/", component: () => import("@/views/Home.vue") }, { path: "/me", component: () => import("@/views/Mine.vue") }]`,
		"src/views/Home.vue":  "<template><cx-button/></template>\n<script>\nimport Card from './Card.vue'\n</script>\n",
		"src/views/Card.vue":  "<template><cx-cell/><cx-cell/></template>\n",
		"src/views/Mine.vue":  "<template><div/></template>\n",
	}
	for name, content := range files {
		location := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	}
	return root
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := NewApp()
	buffer := &bytes.Buffer{}
	app.Writer = buffer
	err := app.Run(append([]string{"uicover"}, args...))
	return buffer.String(), err
}

func TestCoverageCommand(t *testing.T) {
	root := writeProject(t)
	output, err := runApp(t, "coverage", "--root", root, "--format", "yaml")
	require.NoError(t, err)
	decoded := map[string]interface{}{}
	require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
	assert.EqualValues(t, 2, decoded["totalPages"])
	assert.EqualValues(t, 50.0, decoded["coverageRate"])

	output, err = runApp(t, "coverage", "--root", root, "--no-color", "--show-usage", "--component", "cx-cell", "--component", "cx-dialog")
	require.NoError(t, err)
	assert.Contains(t, output, "Page coverage:       50.00%")
	assert.Contains(t, output, "- cx-dialog")
	assert.NotContains(t, output, "cx-button")
}

func TestPagesCommand(t *testing.T) {
	root := writeProject(t)
	output, err := runApp(t, "pages", "--root", root)
	require.NoError(t, err)
	assert.Equal(t, "src/views/Home.vue\nsrc/views/Mine.vue\n", output)
}

func TestScanCommand(t *testing.T) {
	root := writeProject(t)
	output, err := runApp(t, "scan", "--root", root, filepath.Join(root, "src", "views", "Home.vue"), filepath.Join(root, "src", "views", "Card.vue"))
	require.NoError(t, err)
	assert.Contains(t, output, "src/views/Card.vue\n  cx-cell")
	assert.Contains(t, output, "src/views/Home.vue\n  cx-button")

	require.NoError(t, os.WriteFile(filepath.Join(root, "Banner.vue"), []byte("<template><cx-tag/></template>"), 0o644))
	output, err = runApp(t, "scan", "--root", root, filepath.Join(root, "Banner.vue"))
	require.NoError(t, err)
	assert.Empty(t, output)
	output, err = runApp(t, "scan", "--root", root, "--all", filepath.Join(root, "Banner.vue"))
	require.NoError(t, err)
	assert.Contains(t, output, "Banner.vue\n  cx-tag")
}

func TestConfigFile(t *testing.T) {
	root := writeProject(t)
	location := filepath.Join(root, "uicover.yaml")
	require.NoError(t, os.WriteFile(location, []byte("root: "+root+"\nrouter: src/router/index.ts\nreport:\n  format: json\n"), 0o644))
	output, err := runApp(t, "pages", "--config", location)
	require.NoError(t, err)
	assert.Equal(t, "[\"src/views/Home.vue\",\"src/views/Mine.vue\"]\n", output)
}

func TestConfigFile_DetectsRoot(t *testing.T) {
	root := writeProject(t)
	location := filepath.Join(root, "uicover.yaml")
	require.NoError(t, os.WriteFile(location, []byte("router: src/router/index.ts\n"), 0o644))
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Join(root, "src", "views")))
	t.Cleanup(func() { _ = os.Chdir(previous) })
	output, err := runApp(t, "pages", "--config", location)
	require.NoError(t, err)
	assert.Equal(t, "src/views/Home.vue\nsrc/views/Mine.vue\n", output)
}
