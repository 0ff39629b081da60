package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// Sentinel errors for the failure classes the commands care about. All of
// them are detected at the glue layer, before any report is built.
var (
	// ErrNoCredentials means no usable cluster credentials were found
	// (no kubeconfig, unreadable kubeconfig, unknown context).
	ErrNoCredentials = errors.New("no usable cluster credentials")

	// ErrUnreachable means the API server could not be reached.
	ErrUnreachable = errors.New("cluster API unreachable")

	// ErrBadResponse means the API response could not be decoded.
	ErrBadResponse = errors.New("unexpected API response")
)

// Classify maps a raw client-go error onto the sentinels above so commands
// can choose exit behavior without inspecting transport details. Errors that
// fit no class are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNoCredentials) || errors.Is(err, ErrUnreachable) || errors.Is(err, ErrBadResponse) {
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsServerTimeout(err) ||
		apierrors.IsServiceUnavailable(err) {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	return err
}
