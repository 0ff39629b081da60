package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Criteria file constants.
const (
	CriteriaKind       = "reportCriteria"
	CriteriaAPIVersion = "npolctl.nvidia.com/v1alpha1"
)

// Criteria is a Kubernetes-style resource file describing how to generate a
// report, as an alternative to individual CLI flags. Flags given on the
// command line override the file's values.
//
//	kind: reportCriteria
//	apiVersion: npolctl.nvidia.com/v1alpha1
//	metadata:
//	  name: prod-weekly
//	spec:
//	  namespaces: [prod, staging]
//	  cluster: prod-east
//	  output: netpol-report.md
//	  format: markdown
type Criteria struct {
	Kind       string           `yaml:"kind" json:"kind"`
	APIVersion string           `yaml:"apiVersion" json:"apiVersion"`
	Metadata   CriteriaMetadata `yaml:"metadata" json:"metadata"`
	Spec       CriteriaSpec     `yaml:"spec" json:"spec"`
}

// CriteriaMetadata carries the resource name, used only for log attribution.
type CriteriaMetadata struct {
	Name string `yaml:"name" json:"name"`
}

// CriteriaSpec holds the report parameters.
type CriteriaSpec struct {
	Namespaces []string `yaml:"namespaces,omitempty" json:"namespaces,omitempty"`
	Cluster    string   `yaml:"cluster,omitempty" json:"cluster,omitempty"`
	Output     string   `yaml:"output,omitempty" json:"output,omitempty"`
	Format     string   `yaml:"format,omitempty" json:"format,omitempty"`
}

// LoadCriteria reads and validates a criteria file. YAML and JSON are both
// accepted.
func LoadCriteria(path string) (*Criteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read criteria file %q: %w", path, err)
	}

	var c Criteria
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse criteria file %q: %w", path, err)
	}
	if c.Kind != CriteriaKind {
		return nil, fmt.Errorf("criteria file %q: unexpected kind %q, want %q", path, c.Kind, CriteriaKind)
	}
	return &c, nil
}
