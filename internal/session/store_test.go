package session

import "testing"

func TestStoreNewestFirst(t *testing.T) {
	st := NewStore()

	st.Add(&LearningSession{ID: "a"})
	st.Add(&LearningSession{ID: "b"})
	st.Add(&LearningSession{ID: "c"})

	list := st.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(list))
	}
	if list[0].ID != "c" || list[1].ID != "b" || list[2].ID != "a" {
		t.Errorf("not newest first: %s %s %s", list[0].ID, list[1].ID, list[2].ID)
	}
}

func TestStoreDuplicateIDRejected(t *testing.T) {
	st := NewStore()

	if err := st.Add(&LearningSession{ID: "a"}); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if err := st.Add(&LearningSession{ID: "a"}); err == nil {
		t.Error("expected duplicate ID to be rejected")
	}
	if st.Len() != 1 {
		t.Errorf("expected 1 session, got %d", st.Len())
	}
}

func TestStoreActivePointer(t *testing.T) {
	st := NewStore()
	st.Add(&LearningSession{ID: "a"})
	st.Add(&LearningSession{ID: "b"})

	if st.Active() != nil {
		t.Error("expected no active session initially")
	}

	if err := st.SetActive("a"); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if got := st.Active(); got == nil || got.ID != "a" {
		t.Errorf("expected a active, got %v", got)
	}

	// Activating another session moves the single pointer.
	st.SetActive("b")
	if got := st.Active(); got.ID != "b" {
		t.Errorf("expected b active, got %s", got.ID)
	}

	if err := st.SetActive("nope"); err == nil {
		t.Error("expected unknown ID to be rejected")
	}
	if st.Active().ID != "b" {
		t.Error("failed activation changed the pointer")
	}

	st.ClearActive()
	if st.Active() != nil {
		t.Error("expected no active session after clear")
	}
}

func TestStoreGetMissing(t *testing.T) {
	st := NewStore()
	if st.Get("missing") != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestStoreUpdateUnknownIgnored(t *testing.T) {
	st := NewStore()
	st.Add(&LearningSession{ID: "a", Subject: "old"})

	// Unknown ID is ignored, known ID replaces.
	st.Update(&LearningSession{ID: "zzz"})
	if st.Len() != 1 {
		t.Errorf("unknown update changed the collection")
	}

	st.Update(&LearningSession{ID: "a", Subject: "new"})
	if st.Get("a").Subject != "new" {
		t.Error("update did not replace the session")
	}
}
