package ch

import (
	"context"
	"strings"
	"testing"
)

// TestOpen_BadDSN rejects DSNs the driver cannot parse before dialing
func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "://not-a-dsn"})
	if err == nil {
		t.Fatalf("Open expected error for bad DSN, got nil")
	}
	if !strings.Contains(err.Error(), "parse dsn") {
		t.Fatalf("Open error should identify the parse step, got: %v", err)
	}
}

// TestInsert_ShapeCheck rejects payloads that are not [][]any before
// touching the connection
func TestInsert_ShapeCheck(t *testing.T) {
	t.Parallel()

	cl := &CH{}
	err := cl.Insert(context.Background(), "t", struct{}{})
	if err == nil {
		t.Fatalf("Insert expected error for bad shape, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported data shape") {
		t.Fatalf("Insert error should identify the shape, got: %v", err)
	}
}

// TestInsert_EmptyBatchNoOp returns nil without preparing a batch
func TestInsert_EmptyBatchNoOp(t *testing.T) {
	t.Parallel()

	cl := &CH{}
	if err := cl.Insert(context.Background(), "t", [][]any{}); err != nil {
		t.Fatalf("Insert of zero rows should be a no op, got: %v", err)
	}
}

// TestClose_NilSafe tolerates nil receivers and unopened clients
func TestClose_NilSafe(t *testing.T) {
	t.Parallel()

	var nilCl *CH
	if err := nilCl.Close(); err != nil {
		t.Fatalf("Close on nil client returned error: %v", err)
	}
	if err := (&CH{}).Close(); err != nil {
		t.Fatalf("Close on unopened client returned error: %v", err)
	}
}

// TestBuildClientInfo carries the configured name and role
func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	info := BuildClientInfo("tubelens", "api")
	var gotName, gotRole bool
	for _, p := range info.Products {
		if p.Name == "tubelens" {
			gotName = true
		}
		if p.Name == "role" && p.Version == "api" {
			gotRole = true
		}
	}
	if !gotName || !gotRole {
		t.Fatalf("ClientInfo missing name/role products: %#v", info.Products)
	}

	// empty name falls back to the project default
	info = BuildClientInfo("", "worker")
	if len(info.Products) == 0 || info.Products[0].Name != "tubelens" {
		t.Fatalf("default product name not applied: %#v", info.Products)
	}
}
