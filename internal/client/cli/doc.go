// Package cli provides the interactive todo command-line client.
//
// It wires configuration, the HTTP API client, the on-disk session token and
// a read-eval-print loop. A saved token is reused across runs until it
// expires; expired tokens are dropped locally before the server is asked.
//
// Commands:
//   - signup / login / logout / whoami
//   - list, add <text>, done <id>, undo <id>, delete <id>
//   - users, promote <id>, deluser <id> (administrators only)
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
