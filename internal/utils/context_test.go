// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRequestIDCtxKey(t *testing.T) {
	if RequestIDCtxKey.String() != "requestID" {
		t.Errorf("expected 'requestID', got '%s'", RequestIDCtxKey.String())
	}
}

func TestGetRequestIDFromContext_Success(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")

	id, ok := GetRequestIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "req-1" {
		t.Errorf("expected id=req-1, got %s", id)
	}
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	if _, ok := GetRequestIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing id")
	}
}

func TestGetRequestIDFromContext_Empty(t *testing.T) {
	if _, ok := GetRequestIDFromContext(WithRequestID(context.Background(), "")); ok {
		t.Error("expected ok=false for empty id")
	}
}

func TestGetRequestIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, 42)

	if _, ok := GetRequestIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestWithOmittedHeaders(t *testing.T) {
	ctx := context.Background()
	if WithOmittedHeaders(ctx) != ctx {
		t.Error("expected ctx to be returned unchanged without names")
	}
	if got := GetOmittedHeadersFromContext(ctx); got != nil {
		t.Errorf("expected no names, got %v", got)
	}

	got := GetOmittedHeadersFromContext(WithOmittedHeaders(ctx, "Content-Type", "Authorization"))
	if len(got) != 2 || got[0] != "Content-Type" || got[1] != "Authorization" {
		t.Errorf("unexpected names: %v", got)
	}
}
