package usecase

// RequestContext carries the identity resolved once for an inbound request.
// Authorization decisions within a request must all read this value; it is
// never re-derived mid-request.
type RequestContext struct {
	// UID is the verified subject, nil when the request is unauthenticated.
	UID *string
}

// NewRequestContext returns a context for uid; an empty uid is unauthenticated.
func NewRequestContext(uid string) RequestContext {
	if uid == "" {
		return RequestContext{}
	}

	return RequestContext{UID: &uid}
}

// Authenticated reports whether an identity was resolved.
func (rc RequestContext) Authenticated() bool {
	return rc.UID != nil && *rc.UID != ""
}

// UserID returns the resolved identity or "".
func (rc RequestContext) UserID() string {
	if rc.UID == nil {
		return ""
	}

	return *rc.UID
}
