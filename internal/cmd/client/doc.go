// Package client provides the `dtqueue` command-line client.
//
// The CLI talks to the dtqueue HTTP endpoints to perform common queue
// operations from a terminal. It is primarily intended for developers
// and operators.
//
// Installation
//
//	go install github.com/zhenghui88/dtqueue/cmd/dtqueue@latest
//
// Or build from this repo and use the embedded `dtqueue` binary.
//
// # Address configuration
//
// The HTTP base URL is discovered by the application that embeds the
// commands via a BaseURLFunc. When using the standalone binary, it is
// read from the DTQUEUE_ADDR environment variable (default
// http://127.0.0.1:8080).
//
// Usage
//
//	dtqueue queue put --queue jobs \
//	    --datetime 2024-06-01T12:00:00Z \
//	    --message '{"job":"resize"}'
//
//	# Tie-break two items sharing a primary timestamp
//	dtqueue queue put --queue jobs \
//	    --datetime 2024-06-01T12:00:00Z \
//	    --datetime-secondary 2024-06-01T13:30:00Z \
//	    --message retry
//
//	# Show the earliest item without removing it
//	dtqueue queue peek --queue jobs
//
//	# Remove and show the earliest item
//	dtqueue queue pop --queue jobs
//
//	# List configured queues with item counts
//	dtqueue queue list
//
//	dtqueue health
//
// Notes
//
//   - put replaces an existing item carrying the same timestamps and
//     prints "status: replaced" instead of "status: created".
//   - Timestamps are RFC3339; the server stores them in UTC with
//     millisecond precision.
package client
