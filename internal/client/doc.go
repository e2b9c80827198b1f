// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the classsync command-line application.
//
// It wires configuration, token storage, the session and the API adapter into
// a command tree. Every command prints its result as JSON on the configured
// writer; logs go to the log file so stdout stays machine readable.
package client
