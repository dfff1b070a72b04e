package middleware

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/hithereguys123/Creative-Clicks/internal/session"
)

const (
	SessionCookie = "cc_session"

	flowsKey = "flows"
)

// Session resolves the visitor's flow bundle from the session cookie,
// minting a new session when the cookie is missing or stale, and stores
// the bundle on the request context for handlers.
func Session(manager *session.Manager, cookieMaxAge int) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, _ := c.Cookie(SessionCookie)

		id, flows := manager.Acquire(id)
		c.SetCookie(SessionCookie, id, cookieMaxAge, "/", "", false, true)
		c.Set(flowsKey, flows)

		c.Next()
	}
}

// FlowsFrom returns the flow bundle the Session middleware attached.
func FlowsFrom(c *ginext.Context) *session.Flows {
	v, ok := c.Get(flowsKey)
	if !ok {
		return nil
	}
	flows, _ := v.(*session.Flows)
	return flows
}
