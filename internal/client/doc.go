// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Trippr Contributors

// Package client implements the interactive admin console runtime.
//
// It wires terminal UI flows and the service layer into a single process
// lifecycle: restore-or-login, then the main loop, looping back on logout.
package client
