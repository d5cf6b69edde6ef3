// Package cli provides the interactive gallery command-line client.
//
// It wires configuration, local storage, the session store, the router, the
// HTTP client and the services, then runs a REPL. Commands that map to a
// screen (list, show, upload, edit, delete) navigate first: the route guard
// may send a guest to the login prompt, after which the command continues.
// A 401 from the server ends the session and returns the user to login.
//
// Key features:
//   - Login / Register / Logout / WhoAmI
//   - List, show, upload, edit and delete images
//   - List and create categories
//   - Light, dark and auto output themes
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and execIface for details.
package cli
