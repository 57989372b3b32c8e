package security

import "github.com/example/webshell/internal/logging"

// InsecurePolicy trusts everything: every certificate error proceeds, the
// first offered client certificate is selected without prompting, and every
// security-policy violation is allowed. It is stateless and installing it
// more than once is harmless.
type InsecurePolicy struct{}

// NewInsecurePolicy returns the trust-everything policy.
func NewInsecurePolicy() *InsecurePolicy {
	return &InsecurePolicy{}
}

// Install registers the policy's three hooks on r. Callers must install it
// before the surface navigates anywhere.
func (p *InsecurePolicy) Install(r HookRegistry) {
	r.OnCertificateError(p.CertificateError)
	r.OnSelectClientCertificate(p.SelectClientCertificate)
	r.OnPolicyViolation(p.PolicyViolation)
}

// CertificateError accepts the certificate regardless of the failure.
func (p *InsecurePolicy) CertificateError(ev CertificateError) Verdict {
	logging.Debugf("security: accepting certificate error for %s: %v", logging.SanitizeURL(ev.URL), ev.Err)
	return Proceed
}

// SelectClientCertificate picks the first candidate, or none when the list
// is empty.
func (p *InsecurePolicy) SelectClientCertificate(req ClientCertificateRequest) (int, bool) {
	if len(req.Candidates) == 0 {
		logging.Debugf("security: no client certificate offered for %s", logging.SanitizeURL(req.URL))
		return -1, false
	}
	logging.Debugf("security: selecting first of %d client certificates for %s", len(req.Candidates), logging.SanitizeURL(req.URL))
	return 0, true
}

// PolicyViolation lets the violating action proceed.
func (p *InsecurePolicy) PolicyViolation(ev PolicyViolation) Verdict {
	logging.Debugf("security: allowing policy violation %q on %s", ev.Directive, logging.SanitizeURL(ev.URL))
	return Proceed
}
