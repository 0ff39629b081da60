package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCriteria(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "criteria.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCriteria(t *testing.T) {
	path := writeCriteria(t, `kind: reportCriteria
apiVersion: npolctl.nvidia.com/v1alpha1
metadata:
  name: prod-weekly
spec:
  namespaces:
    - prod
    - staging
  cluster: prod-east
  output: netpol-report.md
  format: markdown
`)

	c, err := LoadCriteria(path)
	require.NoError(t, err)
	assert.Equal(t, "prod-weekly", c.Metadata.Name)
	assert.Equal(t, []string{"prod", "staging"}, c.Spec.Namespaces)
	assert.Equal(t, "prod-east", c.Spec.Cluster)
	assert.Equal(t, "netpol-report.md", c.Spec.Output)
	assert.Equal(t, "markdown", c.Spec.Format)
}

func TestLoadCriteria_JSON(t *testing.T) {
	path := writeCriteria(t, `{"kind": "reportCriteria", "spec": {"cluster": "dev"}}`)

	c, err := LoadCriteria(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", c.Spec.Cluster)
}

func TestLoadCriteria_WrongKind(t *testing.T) {
	path := writeCriteria(t, "kind: recipeCriteria\n")

	_, err := LoadCriteria(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unexpected kind "recipeCriteria"`)
}

func TestLoadCriteria_MissingFile(t *testing.T) {
	_, err := LoadCriteria(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadCriteria_Malformed(t *testing.T) {
	path := writeCriteria(t, "kind: [broken")
	_, err := LoadCriteria(path)
	assert.Error(t, err)
}
