package message

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestStore_SendAppendsInOrder(t *testing.T) {
	store := NewStore(Seed(testNow))
	convos := store.List()
	if len(convos) != 2 {
		t.Fatalf("seed has %d conversations, want 2", len(convos))
	}
	target := convos[0]

	sent, ok := store.Send(target.ID, "user1", "Certainly, I spent three years on the surgical ward.", testNow)
	if !ok {
		t.Fatal("Send returned false for existing conversation")
	}
	got, _ := store.ByID(target.ID)
	last, _ := got.LastMessage()
	if last.ID != sent.ID {
		t.Errorf("sent message is not last: got %q", last.Text)
	}
	if last.SenderID != "user1" {
		t.Errorf("sender = %q", last.SenderID)
	}
}

func TestStore_SendUnknownConversation(t *testing.T) {
	store := NewStore(Seed(testNow))
	if _, ok := store.Send("missing", "user1", "hello", testNow); ok {
		t.Error("Send should report false for unknown conversation")
	}
}

func TestStore_MessagesSortedOldestFirst(t *testing.T) {
	seed := []Conversation{{
		ID:       "c1",
		JobTitle: "Registered Nurse",
		Messages: []Message{
			{ID: "m2", SentAt: testNow},
			{ID: "m1", SentAt: testNow.Add(-time.Hour)},
		},
	}}
	store := NewStore(seed)
	got, _ := store.ByID("c1")
	if got.Messages[0].ID != "m1" {
		t.Errorf("messages not sorted by send time: first is %s", got.Messages[0].ID)
	}
}

func TestStore_MarkReadAndUnreadCount(t *testing.T) {
	store := NewStore(Seed(testNow))
	if store.UnreadCount() != 1 {
		t.Fatalf("seed unread = %d, want 1", store.UnreadCount())
	}
	for _, c := range store.List() {
		store.MarkRead(c.ID)
	}
	if store.UnreadCount() != 0 {
		t.Errorf("unread after marking all = %d", store.UnreadCount())
	}
}
