package blobstore

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestScriptPath(t *testing.T) {
	teacher := uuid.New()
	student := uuid.New()
	exam := uuid.New()
	at := time.Date(2026, 3, 9, 10, 30, 0, 0, time.UTC)

	p := ScriptPath(teacher, &student, exam, at, "sheet.jpg")
	parts := strings.Split(p, "/")
	if len(parts) != 4 {
		t.Fatalf("path %q has %d segments, want 4", p, len(parts))
	}
	if parts[0] != teacher.String() || parts[1] != student.String() || parts[2] != exam.String() {
		t.Fatalf("path segments wrong: %q", p)
	}
	if !strings.HasSuffix(parts[3], "_sheet.jpg") {
		t.Fatalf("filename segment = %q", parts[3])
	}
}

func TestScriptPathUnassignedSlot(t *testing.T) {
	p := ScriptPath(uuid.New(), nil, uuid.New(), time.Now(), "sheet.jpg")
	if !strings.Contains(p, "/unassigned/") {
		t.Fatalf("path %q missing unassigned slot", p)
	}

	nilID := uuid.Nil
	p = ScriptPath(uuid.New(), &nilID, uuid.New(), time.Now(), "sheet.jpg")
	if !strings.Contains(p, "/unassigned/") {
		t.Fatalf("path %q: nil uuid must also map to unassigned", p)
	}
}

func TestScriptPathStripsDirectoryComponents(t *testing.T) {
	p := ScriptPath(uuid.New(), nil, uuid.New(), time.Now(), "../../etc/passwd")
	if strings.Contains(p, "..") {
		t.Fatalf("path %q keeps traversal components", p)
	}
}

func TestContentHashDeterministic(t *testing.T) {
	a := ContentHash([]byte("script bytes"))
	b := ContentHash([]byte("script bytes"))
	c := ContentHash([]byte("different bytes"))
	if !bytes.Equal(a, b) {
		t.Error("same input must hash identically")
	}
	if bytes.Equal(a, c) {
		t.Error("different inputs must not collide")
	}
	if len(a) != 32 {
		t.Errorf("hash length = %d, want 32 (sha256)", len(a))
	}
}

func TestFSStoreRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Put(ctx, "a/b/script.jpg", []byte("payload")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx, "a/b/script.jpg")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("Get = %q", got)
	}

	if err := store.Delete(ctx, "a/b/script.jpg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "a/b/script.jpg"); err == nil {
		t.Fatal("Get after Delete should fail")
	}
	// deleting a missing blob is not an error
	if err := store.Delete(ctx, "a/b/script.jpg"); err != nil {
		t.Fatalf("repeat Delete: %v", err)
	}
}

func TestFSStoreRejectsTraversal(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	ctx := context.Background()

	for _, p := range []string{"../outside", "/etc/passwd", "a/../../outside", "."} {
		if _, err := store.Put(ctx, p, []byte("x")); err == nil {
			t.Errorf("Put(%q) should be rejected", p)
		}
		if _, err := store.Get(ctx, p); err == nil {
			t.Errorf("Get(%q) should be rejected", p)
		}
	}
}
