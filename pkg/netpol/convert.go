package netpol

import (
	"log/slog"
	"sort"
	"strconv"
	"time"

	networkingv1 "k8s.io/api/networking/v1"
)

// DefaultProtocol is applied when a NetworkPolicyPort omits the protocol.
const DefaultProtocol = "TCP"

// FromAPIList converts a listing API response into the report model,
// preserving the order in which the API server returned the items.
func FromAPIList(list *networkingv1.NetworkPolicyList) []NetworkPolicy {
	if list == nil {
		return nil
	}
	out := make([]NetworkPolicy, 0, len(list.Items))
	for i := range list.Items {
		out = append(out, FromAPI(&list.Items[i]))
	}
	return out
}

// FromAPI converts a single Kubernetes NetworkPolicy into the report model.
func FromAPI(np *networkingv1.NetworkPolicy) NetworkPolicy {
	p := NetworkPolicy{
		Name:        np.Name,
		Namespace:   np.Namespace,
		Labels:      pairsFromMap(np.Labels),
		PodSelector: pairsFromMap(np.Spec.PodSelector.MatchLabels),
	}

	if !np.CreationTimestamp.IsZero() {
		p.CreatedAt = np.CreationTimestamp.UTC().Format(time.RFC3339)
	}

	for _, t := range np.Spec.PolicyTypes {
		p.PolicyTypes = append(p.PolicyTypes, string(t))
	}

	if np.Spec.Ingress != nil {
		p.IngressRules = make([]Rule, 0, len(np.Spec.Ingress))
		for _, r := range np.Spec.Ingress {
			p.IngressRules = append(p.IngressRules, convertRule(np, r.From, r.Ports))
		}
	}
	if np.Spec.Egress != nil {
		p.EgressRules = make([]Rule, 0, len(np.Spec.Egress))
		for _, r := range np.Spec.Egress {
			p.EgressRules = append(p.EgressRules, convertRule(np, r.To, r.Ports))
		}
	}

	return p
}

func convertRule(np *networkingv1.NetworkPolicy, peers []networkingv1.NetworkPolicyPeer, ports []networkingv1.NetworkPolicyPort) Rule {
	rule := Rule{}
	for _, peer := range peers {
		rule.Peers = append(rule.Peers, convertPeer(np, peer))
	}
	for _, port := range ports {
		rule.Ports = append(rule.Ports, convertPort(port))
	}
	return rule
}

// convertPeer carries over whichever variants the API object populates. Real
// API objects expose exactly one; anything else is logged and passed through
// so a malformed object degrades to odd report lines instead of a failure.
func convertPeer(np *networkingv1.NetworkPolicy, peer networkingv1.NetworkPolicyPeer) Peer {
	p := Peer{}
	if peer.PodSelector != nil {
		set := pairsFromMap(peer.PodSelector.MatchLabels)
		p.PodSelector = &set
	}
	if peer.NamespaceSelector != nil {
		set := pairsFromMap(peer.NamespaceSelector.MatchLabels)
		p.NamespaceSelector = &set
	}
	if peer.IPBlock != nil {
		p.IPBlock = &IPBlock{
			CIDR:   peer.IPBlock.CIDR,
			Except: append([]string(nil), peer.IPBlock.Except...),
		}
	}

	if variants := countVariants(peer); variants != 1 {
		slog.Warn("network policy peer does not populate exactly one variant",
			slog.String("policy", np.Namespace+"/"+np.Name),
			slog.Int("variants", variants))
	}
	return p
}

func countVariants(peer networkingv1.NetworkPolicyPeer) int {
	n := 0
	if peer.PodSelector != nil {
		n++
	}
	if peer.NamespaceSelector != nil {
		n++
	}
	if peer.IPBlock != nil {
		n++
	}
	return n
}

func convertPort(port networkingv1.NetworkPolicyPort) PortSpec {
	spec := PortSpec{Protocol: DefaultProtocol}
	if port.Protocol != nil {
		spec.Protocol = string(*port.Protocol)
	}
	if port.Port != nil {
		spec.Port = port.Port.String()
		if port.EndPort != nil {
			spec.Port += "-" + strconv.FormatInt(int64(*port.EndPort), 10)
		}
	}
	return spec
}

// pairsFromMap flattens a label map into a key-sorted pair slice. Kubernetes
// hands selectors over as unordered maps; sorting here is what makes report
// output deterministic. A nil map yields a nil slice, an empty map yields an
// empty non-nil slice so selector presence survives the conversion.
func pairsFromMap(m map[string]string) LabelSet {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := make(LabelSet, 0, len(m))
	for _, k := range keys {
		set = append(set, Pair{Key: k, Value: m[k]})
	}
	return set
}
