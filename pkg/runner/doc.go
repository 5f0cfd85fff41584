// Package runner provides the interactive terminal loop for a branchtale Reader.
//
// The Runner renders the current view through a Presenter, then reads one
// command per line:
//
//	1..n        select the numbered choice
//	r, restart  begin a new traversal at the start node
//	q, quit     leave
//
// Input is sanitised before interpretation; see SanitizeInput.
package runner
