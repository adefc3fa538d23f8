// Package ready reports module readiness for smoke checks.
package ready

// Token is the constant returned by Check once the backend packages are
// loaded and callable.
const Token = "backend-ready"

// Check confirms the module loaded. It probes no dependencies and cannot
// fail; callers wanting a real health check must look elsewhere.
func Check() string { return Token }
