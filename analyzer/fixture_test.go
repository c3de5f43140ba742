package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeProject writes files under a temporary project root and returns the root
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		location := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	}
	return root
}

func component(markup, logic string) string {
	result := ""
	if markup != "" {
		result += "<template>\n" + markup + "\n</template>\n"
	}
	if logic != "" {
		result += "<script>\n" + logic + "\n</script>\n"
	}
	return result
}
