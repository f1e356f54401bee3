// Copyright 2026 The Loom Authors
// SPDX-License-Identifier: Apache-2.0

// Package session implements the layout session: one long-lived
// bidirectional CBOR stream between the layout engine and the
// compositor. The compositor sends layout-request events; the manager
// resolves output and tag handles, invokes the user's generation
// callback, serializes the resulting tree, and writes the tagged
// response. The scripting side can also proactively nudge the
// compositor with a force-layout request on the same stream.
//
// Events are handled one at a time, end to end, in Run's goroutine.
// A callback failure (error or panic) never tears down the session:
// it is logged and answered with a neutral empty tree. Outbound write
// failures are logged and dropped — the compositor re-requests layouts
// on its own schedule, so there is nothing useful to retry. The
// session ends when the stream closes.
package session
