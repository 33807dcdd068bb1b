// Package http exposes the chat server's REST surface: login and logout,
// account provisioning, and the shared message feed. Handlers translate
// between the wire contract and the service layer and never touch storage
// directly.
package http
