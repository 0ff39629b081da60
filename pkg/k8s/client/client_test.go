package client

import (
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: staging
clusters:
- name: staging
  cluster:
    server: https://staging.example.com:6443
contexts:
- name: staging
  context:
    cluster: staging
    user: staging-admin
- name: production
  context:
    cluster: staging
    user: staging-admin
users:
- name: staging-admin
  user:
    token: not-a-real-token
`

func writeKubeconfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(testKubeconfig), 0o600))
	return path
}

func TestResolveKubeconfig(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/env/config")
		assert.Equal(t, "/explicit/config", ResolveKubeconfig("/explicit/config"))
	})

	t.Run("falls back to env", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/env/config")
		assert.Equal(t, "/env/config", ResolveKubeconfig(""))
	})
}

func TestBuildKubeClient_ExplicitFile(t *testing.T) {
	path := writeKubeconfig(t)

	clientSet, config, err := BuildKubeClient(path, "")
	require.NoError(t, err)
	assert.NotNil(t, clientSet)
	assert.Equal(t, "https://staging.example.com:6443", config.Host)
}

func TestBuildKubeClient_NamedContext(t *testing.T) {
	path := writeKubeconfig(t)

	clientSet, _, err := BuildKubeClient(path, "production")
	require.NoError(t, err)
	assert.NotNil(t, clientSet)
}

func TestBuildKubeClient_UnknownContextSuggests(t *testing.T) {
	path := writeKubeconfig(t)

	_, _, err := BuildKubeClient(path, "prodution")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Contains(t, err.Error(), `did you mean "production"`)
}

func TestBuildKubeClient_UnknownContextNoNearMatch(t *testing.T) {
	path := writeKubeconfig(t)

	_, _, err := BuildKubeClient(path, "completely-different")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestCurrentContext(t *testing.T) {
	path := writeKubeconfig(t)
	assert.Equal(t, "staging", CurrentContext(path))
}

func TestClosestName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
	}{
		{name: "single typo", input: "stagin", candidates: []string{"staging", "production"}, want: "staging"},
		{name: "too far", input: "minikube", candidates: []string{"staging", "production"}, want: ""},
		{name: "no candidates", input: "anything", candidates: nil, want: ""},
		{name: "exact", input: "staging", candidates: []string{"staging"}, want: "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, closestName(tt.input, tt.candidates))
		})
	}
}

func TestClassify(t *testing.T) {
	gr := schema.GroupResource{Group: "networking.k8s.io", Resource: "networkpolicies"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "net error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: ErrUnreachable},
		{name: "api timeout", err: apierrors.NewServerTimeout(gr, "list", 5), want: ErrUnreachable},
		{name: "service unavailable", err: apierrors.NewServiceUnavailable("down"), want: ErrUnreachable},
		{name: "decode failure", err: &json.SyntaxError{}, want: ErrBadResponse},
		{name: "already classified", err: ErrNoCredentials, want: ErrNoCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassify_UnknownErrorPassesThrough(t *testing.T) {
	plain := errors.New("forbidden")
	assert.Equal(t, plain, Classify(plain))
}
