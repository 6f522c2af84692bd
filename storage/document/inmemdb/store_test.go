package inmemdb

import (
	"context"
	"testing"

	"github.com/syedfiras/student-attendance-app/core/attendance"
)

func TestStore(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); err != attendance.ErrNoDocument {
		t.Errorf("Get(missing) error = %v, want %v", err, attendance.ErrNoDocument)
	}

	val := []byte(`{"classes":[]}`)
	if err := store.Set(ctx, attendance.DataKey, val); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, err := store.Get(ctx, attendance.DataKey)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != string(val) {
		t.Errorf("Get() = %s, want %s", got, val)
	}

	// returned bytes are copies: mutating them must not corrupt the store
	got[0] = 'X'
	again, _ := store.Get(ctx, attendance.DataKey)
	if string(again) != string(val) {
		t.Errorf("Get() after caller mutation = %s, want %s", again, val)
	}
}
