// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"testing"
)

func TestDigest_MatchesSHA256(t *testing.T) {
	data := []byte("test-data")

	got := digest(data)
	want := sha256.Sum256(data)

	if !bytes.Equal(got, want[:]) {
		t.Fatalf("unexpected digest\nwant: %x\ngot:  %x", want, got)
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint("u@example.com")
	b := Fingerprint("u@example.com")

	if a != b {
		t.Fatalf("fingerprint must be deterministic, got %s and %s", a, b)
	}
	if len(a) != fingerprintLen {
		t.Fatalf("fingerprint length = %d, want %d", len(a), fingerprintLen)
	}
	if _, err := hex.DecodeString(a); err != nil {
		t.Fatalf("fingerprint is not hex: %v", err)
	}
}

func TestFingerprint_Normalizes(t *testing.T) {
	if Fingerprint(" U@Example.COM ") != Fingerprint("u@example.com") {
		t.Fatal("expected case and surrounding spaces to be ignored")
	}
}

func TestFingerprint_DoesNotLeakIdentifier(t *testing.T) {
	fp := Fingerprint("u@example.com")
	if strings.Contains(fp, "example") || strings.Contains(fp, "@") {
		t.Fatalf("fingerprint leaks the identifier: %s", fp)
	}
}

func TestFingerprint_DifferentIdentifiers(t *testing.T) {
	if Fingerprint("a@example.com") == Fingerprint("b@example.com") {
		t.Fatal("expected different fingerprints for different identifiers")
	}
}

func TestFingerprint_Empty(t *testing.T) {
	if got := Fingerprint("   "); got != "" {
		t.Fatalf("expected empty fingerprint for blank identifier, got %q", got)
	}
}

func TestFingerprint_Concurrent(t *testing.T) {
	want := Fingerprint("u@example.com")

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Fingerprint("u@example.com"); got != want {
				t.Errorf("concurrent fingerprint mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}
