package client

// GuardDecision tells a caller what to do with a role-protected view.
type GuardDecision int

const (
	// GuardAllow lets the caller proceed.
	GuardAllow GuardDecision = iota
	// GuardShowLoading means authentication is still in flight and the
	// caller should wait rather than redirect prematurely.
	GuardShowLoading
	// GuardRedirectLogin means there is no session at all.
	GuardRedirectLogin
	// GuardRedirectDashboard means the session exists but the role is not
	// allowed here.
	GuardRedirectDashboard
)

// Guard decides synchronously from the current session state whether the
// caller may enter a view restricted to the given roles.
func (s *Session) Guard(requiredRoles ...string) GuardDecision {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.authenticating {
		return GuardShowLoading
	}
	if !s.loggedIn {
		return GuardRedirectLogin
	}
	if len(requiredRoles) == 0 {
		return GuardAllow
	}
	for _, role := range requiredRoles {
		if s.role == role {
			return GuardAllow
		}
	}
	return GuardRedirectDashboard
}
