package security

import (
	"crypto/x509"
	"sync"
)

// Verdict is the outcome a hook chooses for a security event.
type Verdict int

const (
	// Deny keeps the engine's default, blocking outcome.
	Deny Verdict = iota
	// Proceed overrides the default and lets the action continue.
	Proceed
)

func (v Verdict) String() string {
	if v == Proceed {
		return "proceed"
	}
	return "deny"
}

// CertificateError describes a failed server certificate validation.
type CertificateError struct {
	URL         string
	Err         error
	Certificate *x509.Certificate
}

// ClientCertificateRequest is raised when a server asks for a client
// certificate and the engine offers Candidates to choose from.
type ClientCertificateRequest struct {
	URL        string
	Candidates []*x509.Certificate
}

// PolicyViolation describes a blocked action such as a CSP violation.
type PolicyViolation struct {
	URL        string
	Directive  string
	BlockedURI string
}

type (
	CertificateErrorHook  func(CertificateError) Verdict
	ClientCertificateHook func(ClientCertificateRequest) (index int, ok bool)
	PolicyViolationHook   func(PolicyViolation) Verdict
)

// HookRegistry is implemented by rendering surfaces that raise security events.
type HookRegistry interface {
	OnCertificateError(CertificateErrorHook)
	OnSelectClientCertificate(ClientCertificateHook)
	OnPolicyViolation(PolicyViolationHook)
}

// Hooks is a HookRegistry that surfaces embed to store and dispatch their
// security hooks. With nothing installed every event keeps its default,
// strict outcome.
type Hooks struct {
	mu         sync.RWMutex
	certErr    CertificateErrorHook
	clientCert ClientCertificateHook
	violation  PolicyViolationHook
}

// OnCertificateError sets the hook consulted when server certificate
// validation fails, replacing any previous one.
func (h *Hooks) OnCertificateError(fn CertificateErrorHook) {
	h.mu.Lock()
	h.certErr = fn
	h.mu.Unlock()
}

// OnSelectClientCertificate sets the hook that picks a client certificate
// from the offered candidates.
func (h *Hooks) OnSelectClientCertificate(fn ClientCertificateHook) {
	h.mu.Lock()
	h.clientCert = fn
	h.mu.Unlock()
}

// OnPolicyViolation sets the hook consulted when a content policy blocks
// an action.
func (h *Hooks) OnPolicyViolation(fn PolicyViolationHook) {
	h.mu.Lock()
	h.violation = fn
	h.mu.Unlock()
}

// Installed reports whether all three hooks are set.
func (h *Hooks) Installed() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.certErr != nil && h.clientCert != nil && h.violation != nil
}

// RaiseCertificateError runs the certificate hook.
func (h *Hooks) RaiseCertificateError(ev CertificateError) Verdict {
	h.mu.RLock()
	fn := h.certErr
	h.mu.RUnlock()
	if fn == nil {
		return Deny
	}
	return fn(ev)
}

// RaiseSelectClientCertificate runs the client certificate hook. Without a
// hook no certificate is chosen.
func (h *Hooks) RaiseSelectClientCertificate(req ClientCertificateRequest) (int, bool) {
	h.mu.RLock()
	fn := h.clientCert
	h.mu.RUnlock()
	if fn == nil {
		return -1, false
	}
	return fn(req)
}

// RaisePolicyViolation runs the policy violation hook.
func (h *Hooks) RaisePolicyViolation(ev PolicyViolation) Verdict {
	h.mu.RLock()
	fn := h.violation
	h.mu.RUnlock()
	if fn == nil {
		return Deny
	}
	return fn(ev)
}
