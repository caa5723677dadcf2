package notification

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestStore_AddPrependsForUser(t *testing.T) {
	store := NewStore(nil)
	store.Add("u1", "first", TypeGeneral, testNow)
	added := store.Add("u1", "second", TypeApplication, testNow.Add(time.Minute))

	got := store.ListForUser("u1")
	if len(got) != 2 {
		t.Fatalf("got %d notifications, want 2", len(got))
	}
	if got[0].ID != added.ID {
		t.Errorf("newest notification should be first, got %q", got[0].Message)
	}
	if got[0].Read {
		t.Error("new notifications must start unread")
	}
}

func TestStore_MarkAsReadIsOneWay(t *testing.T) {
	store := NewStore(nil)
	n := store.Add("u1", "shortlisted", TypeShortlist, testNow)
	if store.UnreadCount("u1") != 1 {
		t.Fatalf("unread count = %d, want 1", store.UnreadCount("u1"))
	}
	if !store.MarkAsRead(n.ID) {
		t.Fatal("MarkAsRead returned false for existing notification")
	}
	if store.UnreadCount("u1") != 0 {
		t.Errorf("unread count after read = %d, want 0", store.UnreadCount("u1"))
	}
	// marking again is harmless and stays read
	store.MarkAsRead(n.ID)
	if got := store.ListForUser("u1"); !got[0].Read {
		t.Error("notification reverted to unread")
	}
}

func TestStore_MarkAsReadUnknownID(t *testing.T) {
	store := NewStore(Seed(testNow))
	if store.MarkAsRead("no-such-id") {
		t.Error("MarkAsRead should report false for unknown ids")
	}
}

func TestStore_DeleteIsTerminal(t *testing.T) {
	store := NewStore(nil)
	n := store.Add("u1", "to be removed", TypeGeneral, testNow)
	if !store.Delete(n.ID) {
		t.Fatal("Delete returned false for existing notification")
	}
	if len(store.ListForUser("u1")) != 0 {
		t.Error("deleted notification still listed")
	}
	if store.Delete(n.ID) {
		t.Error("second delete should report false")
	}
}

func TestSeed_HasTwoUnread(t *testing.T) {
	store := NewStore(Seed(testNow))
	if got := store.UnreadCount("anyone"); got != 2 {
		t.Errorf("seed unread count = %d, want 2", got)
	}
}
