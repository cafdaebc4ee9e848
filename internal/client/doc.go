// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the unlock client.
//
// It picks the terminal UI or a line prompt, remembers the last account
// through the local session store and hands recovered keys over before
// wiping them.
package client
