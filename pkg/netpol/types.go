// Package netpol defines the in-memory NetworkPolicy model consumed by the
// report builder, together with the conversion from the Kubernetes API types.
//
// The model is deliberately decoupled from k8s.io/api/networking/v1: label
// maps become key-sorted pair slices so that rendering is deterministic, and
// the absent-versus-present-but-empty distinction of rule lists survives as
// nil versus empty slices. Conversion happens once at the collector boundary;
// downstream code never touches wire types.
package netpol

import "strings"

// Pair is a single label key/value match.
type Pair struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// LabelSet is an ordered list of label pairs. A non-nil empty LabelSet means
// "selector present, matching everything", which renders differently from an
// absent selector.
type LabelSet []Pair

// String renders the set in kubectl selector notation (k=v,k2=v2).
func (s LabelSet) String() string {
	parts := make([]string, 0, len(s))
	for _, p := range s {
		parts = append(parts, p.Key+"="+p.Value)
	}
	return strings.Join(parts, ",")
}

// IPBlock is a CIDR-based peer with optional carved-out exceptions.
type IPBlock struct {
	CIDR   string   `json:"cidr" yaml:"cidr"`
	Except []string `json:"except,omitempty" yaml:"except,omitempty"`
}

// Peer identifies a traffic source or destination. Exactly one field is
// populated on objects coming from the Kubernetes API; the model does not
// enforce exclusivity and rendering emits every populated variant.
type Peer struct {
	PodSelector       *LabelSet `json:"podSelector,omitempty" yaml:"podSelector,omitempty"`
	NamespaceSelector *LabelSet `json:"namespaceSelector,omitempty" yaml:"namespaceSelector,omitempty"`
	IPBlock           *IPBlock  `json:"ipBlock,omitempty" yaml:"ipBlock,omitempty"`
}

// Empty reports whether no variant is populated.
func (p Peer) Empty() bool {
	return p.PodSelector == nil && p.NamespaceSelector == nil && p.IPBlock == nil
}

// PortSpec is a single allowed protocol/port combination. Port is kept as a
// string so numeric ports, named ports and port ranges render uniformly.
type PortSpec struct {
	Protocol string `json:"protocol" yaml:"protocol"`
	Port     string `json:"port,omitempty" yaml:"port,omitempty"`
}

// Rule is one ingress or egress clause. Empty Peers means "all sources" (or
// destinations), empty Ports means "all ports".
type Rule struct {
	Peers []Peer     `json:"peers,omitempty" yaml:"peers,omitempty"`
	Ports []PortSpec `json:"ports,omitempty" yaml:"ports,omitempty"`
}

// NetworkPolicy is a single policy as collected from a cluster, immutable
// once built. IngressRules and EgressRules distinguish absent (nil) from
// present-but-empty (non-nil, zero length); the report builder renders the
// two cases differently.
type NetworkPolicy struct {
	Name        string   `json:"name" yaml:"name"`
	Namespace   string   `json:"namespace" yaml:"namespace"`
	CreatedAt   string   `json:"createdAt" yaml:"createdAt"`
	Labels      LabelSet `json:"labels,omitempty" yaml:"labels,omitempty"`
	PodSelector LabelSet `json:"podSelector,omitempty" yaml:"podSelector,omitempty"`
	PolicyTypes []string `json:"policyTypes,omitempty" yaml:"policyTypes,omitempty"`

	IngressRules []Rule `json:"ingressRules,omitempty" yaml:"ingressRules,omitempty"`
	EgressRules  []Rule `json:"egressRules,omitempty" yaml:"egressRules,omitempty"`
}
