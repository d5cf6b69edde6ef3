// Package router holds the client's static route table and the navigation
// guard that gates every route change on session presence.
package router

import "fmt"

// Access is the closed set of route access requirements.
type Access int

const (
	AccessNone Access = iota
	AccessRequiresSession
	AccessGuestOnly
)

func (a Access) String() string {
	switch a {
	case AccessNone:
		return "none"
	case AccessRequiresSession:
		return "requires-session"
	case AccessGuestOnly:
		return "guest-only"
	default:
		return fmt.Sprintf("Access(%d)", int(a))
	}
}

// Decision is the guard outcome for one navigation attempt.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Guard evaluates a route's access requirement against session presence.
// It keeps no state between calls.
//
//  1. requires-session without a session -> login
//  2. guest-only with a session          -> home
//  3. otherwise                          -> allow
func Guard(access Access, hasSession bool) Decision {
	switch access {
	case AccessRequiresSession:
		if !hasSession {
			return RedirectLogin
		}
		return Allow
	case AccessGuestOnly:
		if hasSession {
			return RedirectHome
		}
		return Allow
	case AccessNone:
		return Allow
	default:
		panic(fmt.Sprintf("router: unknown access requirement %d", int(access)))
	}
}
