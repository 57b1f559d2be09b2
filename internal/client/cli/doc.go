// Package cli provides the estatehub terminal client.
//
// It wires configuration, the local session store, the API client and the
// application services behind a cobra command tree. Every command is also
// available from the interactive shell started by App.Shell.
//
// Commands that need a role go through App.protected, which consults the
// route gate: anonymous users are asked to log in first and users without
// the role are shown the featured listings instead.
package cli
