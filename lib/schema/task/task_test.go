// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package task

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/bureau-foundation/planwire/lib/event"
	"github.com/bureau-foundation/planwire/lib/ref"
	"github.com/bureau-foundation/planwire/lib/schema"
)

func testKeys(t *testing.T) *event.Keys {
	t.Helper()
	keys, err := event.KeysFromSeed(bytes.Repeat([]byte{0x42}, 32))
	if err != nil {
		t.Fatalf("KeysFromSeed: %v", err)
	}
	return keys
}

// signedTask encodes and signs a task, failing the test on any error.
func signedTask(t *testing.T, tk Task) *event.Event {
	t.Helper()
	builder, err := tk.Builder()
	if err != nil {
		t.Fatalf("Builder: %v", err)
	}
	ev, err := builder.Sign(testKeys(t))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	return ev
}

func TestEncodeConcreteTagOrder(t *testing.T) {
	tk := New("T1", "d")
	tk.Metadata.Title = "X"
	tk.Metadata.AddTag("a", "b")

	builder, err := tk.Builder()
	if err != nil {
		t.Fatalf("Builder: %v", err)
	}
	want := [][]string{
		{"d", "T1"},
		{"title", "X"},
		{"t", "a"},
		{"t", "b"},
	}
	if got := tagValues(builder.TagList()); !reflect.DeepEqual(got, want) {
		t.Errorf("tag list mismatch:\ngot  %v\nwant %v", got, want)
	}

	decoded, err := Decode(signedTask(t, tk))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, tk) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", decoded, tk)
	}
}

func TestTaskRoundTrip(t *testing.T) {
	tk := New("333e500a-7d80-4e7b-beb1-ad1956a6150a", "This is a test task")
	tk.Metadata = Metadata{
		Title:       "Test Task",
		Image:       mustURL(t, "https://example.com/image.jpg"),
		PublishedAt: ref.UnixTimestamp(1296962229),
		DueAt:       ref.UnixTimestamp(1298962229),
		Archived:    true,
	}
	tk.Metadata.AddTag("test", "examples")
	tk.Metadata.AddUser(ref.MustParsePublicKey(assigneeKey), RoleAssignee)
	tk.Metadata.AddUser(ref.MustParsePublicKey(plainKey), RoleNone)

	ev := signedTask(t, tk)
	if ev.Kind != KindTask {
		t.Errorf("Kind = %v, want %v", ev.Kind, KindTask)
	}
	if ev.Content != tk.Description {
		t.Errorf("Content = %q, want the description", ev.Content)
	}

	decoded, err := Decode(ev)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, tk) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", decoded, tk)
	}
}

func TestTaskRoundTripGeneratedID(t *testing.T) {
	id := NewID()
	if id == "" {
		t.Fatal("NewID returned empty string")
	}
	if other := NewID(); other == id {
		t.Errorf("NewID returned the same value twice: %q", id)
	}

	tk := New(id, "generated id task")
	decoded, err := Decode(signedTask(t, tk))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.ID != id {
		t.Errorf("ID = %q, want %q", decoded.ID, id)
	}
}

func TestEncodeEmptyIDFails(t *testing.T) {
	tk := New("", "no identifier")
	if _, err := tk.Builder(); !errors.Is(err, schema.ErrMissingIdentifier) {
		t.Errorf("Builder error = %v, want ErrMissingIdentifier", err)
	}
}

func TestDecodeWrongKind(t *testing.T) {
	ev, err := event.NewBuilder(1, "not a task").
		Tag(event.NewTag("d", "T1")).
		Sign(testKeys(t))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	_, err = Decode(ev)
	var kindErr *schema.WrongKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("Decode error = %v, want WrongKindError", err)
	}
	if kindErr.Got != 1 || kindErr.Want != KindTask {
		t.Errorf("WrongKindError = %+v", kindErr)
	}
}

func TestDecodeMissingIdentifier(t *testing.T) {
	ev, err := event.NewBuilder(KindTask, "task without identifier").
		Tag(event.NewTag("title", "X")).
		Sign(testKeys(t))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := Decode(ev); !errors.Is(err, schema.ErrMissingIdentifier) {
		t.Errorf("Decode error = %v, want ErrMissingIdentifier", err)
	}
}

func TestDecodePropagatesMetadataErrors(t *testing.T) {
	ev, err := event.NewBuilder(KindTask, "bad image").
		Tag(event.NewTag("d", "T1")).
		Tag(event.NewTag("image", "::::")).
		Sign(testKeys(t))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	_, err = Decode(ev)
	var urlErr *schema.InvalidURLError
	if !errors.As(err, &urlErr) {
		t.Errorf("Decode error = %v, want InvalidURLError", err)
	}
}
