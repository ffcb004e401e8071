// Package logging builds the zerolog logger used across userlist and carries
// it, together with a per-command trace id, through context.Context.
package logging
