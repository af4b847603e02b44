package store

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

type memSlots struct {
	data       map[string][]byte
	failWrites bool
}

func newMemSlots() *memSlots {
	return &memSlots{data: make(map[string][]byte)}
}

func (m *memSlots) ReadSlot(name string) ([]byte, bool, error) {
	data, ok := m.data[name]
	return data, ok, nil
}

func (m *memSlots) WriteSlot(name string, data []byte) error {
	if m.failWrites {
		return errors.New("disk full")
	}
	m.data[name] = data
	return nil
}

// newTestStore returns a store over empty collections with a
// deterministic clock that advances one second per call.
func newTestStore(t *testing.T) (*Store, *memSlots) {
	t.Helper()
	slots := newMemSlots()
	slots.data[slotPosts] = []byte("[]")
	slots.data[slotConversations] = []byte("[]")

	s := New(slots, "You (demo)", zap.NewNop())
	ms := int64(1_700_000_000_000)
	s.now = func() time.Time {
		ms += 1000
		return time.UnixMilli(ms).UTC()
	}
	return s, slots
}

func TestCreatePostNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)

	s.CreatePost("first", "body one")
	s.CreatePost("second", "body two")
	third := s.CreatePost("third", "body three")

	posts := s.Posts()
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].ID != third.ID || posts[0].Title != "third" {
		t.Fatalf("expected newest post first, got %+v", posts[0])
	}
	if posts[2].Title != "first" {
		t.Fatalf("expected oldest post last, got %+v", posts[2])
	}
	if posts[0].Votes != 0 {
		t.Fatalf("expected new post to start at 0 votes, got %d", posts[0].Votes)
	}
	if posts[0].Author != "You (demo)" {
		t.Fatalf("expected local user as author, got %q", posts[0].Author)
	}
}

func TestCreateThenVoteScenario(t *testing.T) {
	s, _ := newTestStore(t)

	p := s.CreatePost("T", "B")
	s.VotePost(p.ID, 1)
	s.VotePost(p.ID, -1)

	got, ok := s.Post(p.ID)
	if !ok {
		t.Fatalf("expected post %d to exist", p.ID)
	}
	if got.Votes != 0 || got.Title != "T" || got.Body != "B" {
		t.Fatalf("expected votes=0 title=T body=B, got %+v", got)
	}
}

func TestVotePostNoClamp(t *testing.T) {
	s, _ := newTestStore(t)

	p := s.CreatePost("T", "B")
	s.VotePost(p.ID, -1)
	s.VotePost(p.ID, -1)

	got, _ := s.Post(p.ID)
	if got.Votes != -2 {
		t.Fatalf("expected votes to go negative without clamping, got %d", got.Votes)
	}

	s.VotePost(p.ID, 1)
	s.VotePost(p.ID, 1)
	s.VotePost(p.ID, 1)
	got, _ = s.Post(p.ID)
	if got.Votes != 1 {
		t.Fatalf("expected votes=1 after three upvotes, got %d", got.Votes)
	}
}

func TestVotePostUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	p := s.CreatePost("T", "B")
	before := s.Posts()

	s.VotePost(p.ID+999, 1)

	after := s.Posts()
	if len(after) != len(before) {
		t.Fatalf("expected post count unchanged, got %d", len(after))
	}
	if after[0].Votes != before[0].Votes {
		t.Fatalf("expected votes unchanged, got %d", after[0].Votes)
	}
}

func TestStartConversationScenario(t *testing.T) {
	s, _ := newTestStore(t)

	if n := len(s.Conversations()); n != 0 {
		t.Fatalf("expected zero conversations to start, got %d", n)
	}

	c, ok := s.StartConversation("Ava", "hi")
	if !ok {
		t.Fatalf("expected conversation to be created")
	}

	convos := s.Conversations()
	if len(convos) != 1 {
		t.Fatalf("expected exactly one conversation, got %d", len(convos))
	}
	got := convos[0]
	if got.ID != c.ID {
		t.Fatalf("expected returned conversation to match stored, got %q vs %q", got.ID, c.ID)
	}
	if len(got.Participants) != 2 || got.Participants[0] != "You (demo)" || got.Participants[1] != "Ava" {
		t.Fatalf("expected participants [local, Ava], got %v", got.Participants)
	}
	if len(got.Messages) != 1 || got.Messages[0].From != "You (demo)" || got.Messages[0].Text != "hi" {
		t.Fatalf("unexpected seeded message: %+v", got.Messages)
	}
}

func TestStartConversationRejectsEmptyInput(t *testing.T) {
	s, _ := newTestStore(t)

	if _, ok := s.StartConversation("", "hi"); ok {
		t.Fatalf("expected empty participant to be rejected")
	}
	if _, ok := s.StartConversation("Ava", "   "); ok {
		t.Fatalf("expected blank text to be rejected")
	}
	if n := len(s.Conversations()); n != 0 {
		t.Fatalf("expected no conversations created, got %d", n)
	}
}

func TestSendMessageAppendOrder(t *testing.T) {
	s, _ := newTestStore(t)

	c, _ := s.StartConversation("Ava", "one")
	s.SendMessage(c.ID, "two")
	s.SendMessage(c.ID, "  three  ")

	got, ok := s.Conversation(c.ID)
	if !ok {
		t.Fatalf("expected conversation %q to exist", c.ID)
	}
	if len(got.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got.Messages))
	}
	for i, want := range []string{"one", "two", "three"} {
		if got.Messages[i].Text != want {
			t.Fatalf("message %d: expected %q, got %q", i, want, got.Messages[i].Text)
		}
	}
	if !got.Messages[1].At.Before(got.Messages[2].At) {
		t.Fatalf("expected messages in chronological order")
	}
}

func TestSendMessageUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	c, _ := s.StartConversation("Ava", "hi")
	s.SendMessage("c-nope", "x")

	got, _ := s.Conversation(c.ID)
	if len(got.Messages) != 1 {
		t.Fatalf("expected existing conversation untouched, got %d messages", len(got.Messages))
	}
	if len(s.Conversations()) != 1 {
		t.Fatalf("expected no new conversations")
	}
}

func TestSendMessageDropsEmptyText(t *testing.T) {
	s, _ := newTestStore(t)

	c, _ := s.StartConversation("Ava", "hi")
	s.SendMessage(c.ID, "   ")

	got, _ := s.Conversation(c.ID)
	if len(got.Messages) != 1 {
		t.Fatalf("expected blank message to be dropped, got %d messages", len(got.Messages))
	}
}

func TestRoundTripThroughSlots(t *testing.T) {
	s, slots := newTestStore(t)

	s.CreatePost("Looking for a drummer", "weekends only")
	p := s.CreatePost("Synth for sale", "barely used")
	s.VotePost(p.ID, 1)
	c, _ := s.StartConversation("Emma", "hey")
	s.SendMessage(c.ID, "still on for Friday?")

	// A second store over the same slots must see field-for-field
	// identical collections.
	reloaded := New(slots, "You (demo)", zap.NewNop())

	gotPosts, wantPosts := reloaded.Posts(), s.Posts()
	if len(gotPosts) != len(wantPosts) {
		t.Fatalf("expected %d posts after reload, got %d", len(wantPosts), len(gotPosts))
	}
	for i := range wantPosts {
		w, g := wantPosts[i], gotPosts[i]
		if g.ID != w.ID || g.Author != w.Author || g.Title != w.Title ||
			g.Body != w.Body || g.Votes != w.Votes || !g.CreatedAt.Equal(w.CreatedAt) {
			t.Fatalf("post %d did not round-trip: got %+v want %+v", i, g, w)
		}
	}

	gotConvos, wantConvos := reloaded.Conversations(), s.Conversations()
	if len(gotConvos) != len(wantConvos) {
		t.Fatalf("expected %d conversations after reload, got %d", len(wantConvos), len(gotConvos))
	}
	for i := range wantConvos {
		w, g := wantConvos[i], gotConvos[i]
		if g.ID != w.ID {
			t.Fatalf("conversation %d id mismatch: %q vs %q", i, g.ID, w.ID)
		}
		if len(g.Participants) != len(w.Participants) || g.Participants[0] != w.Participants[0] || g.Participants[1] != w.Participants[1] {
			t.Fatalf("conversation %d participants mismatch: %v vs %v", i, g.Participants, w.Participants)
		}
		if len(g.Messages) != len(w.Messages) {
			t.Fatalf("conversation %d message count mismatch: %d vs %d", i, len(g.Messages), len(w.Messages))
		}
		for j := range w.Messages {
			wm, gm := w.Messages[j], g.Messages[j]
			if gm.From != wm.From || gm.Text != wm.Text || !gm.At.Equal(wm.At) {
				t.Fatalf("conversation %d message %d mismatch: %+v vs %+v", i, j, gm, wm)
			}
		}
	}
}

func TestFailedSaveKeepsMutation(t *testing.T) {
	s, slots := newTestStore(t)
	slots.failWrites = true

	p := s.CreatePost("T", "B")

	if _, ok := s.Post(p.ID); !ok {
		t.Fatalf("expected in-memory mutation to survive a failed save")
	}
	c, ok := s.StartConversation("Ava", "hi")
	if !ok {
		t.Fatalf("expected conversation despite failed save")
	}
	if _, ok := s.Conversation(c.ID); !ok {
		t.Fatalf("expected in-memory conversation to survive a failed save")
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	s, _ := newTestStore(t)

	p := s.CreatePost("T", "B")
	posts := s.Posts()
	posts[0].Votes = 99

	got, _ := s.Post(p.ID)
	if got.Votes != 0 {
		t.Fatalf("expected snapshot mutation not to leak into store, got votes=%d", got.Votes)
	}

	c, _ := s.StartConversation("Ava", "hi")
	convos := s.Conversations()
	convos[0].Messages[0].Text = "tampered"

	gotC, _ := s.Conversation(c.ID)
	if gotC.Messages[0].Text != "hi" {
		t.Fatalf("expected message snapshot to be a copy, got %q", gotC.Messages[0].Text)
	}
}

func TestSeedsOnMissingAndMalformedSlots(t *testing.T) {
	slots := newMemSlots()
	s := New(slots, "You (demo)", zap.NewNop())

	if n := len(s.Posts()); n != 2 {
		t.Fatalf("expected sample feed on first run, got %d posts", n)
	}
	if n := len(s.Conversations()); n != 2 {
		t.Fatalf("expected sample conversations on first run, got %d", n)
	}

	slots.data[slotPosts] = []byte("{not json")
	slots.data[slotConversations] = []byte("\x00garbage")
	s = New(slots, "You (demo)", zap.NewNop())

	if n := len(s.Posts()); n != 2 {
		t.Fatalf("expected sample feed after corruption, got %d posts", n)
	}
	if n := len(s.Conversations()); n != 2 {
		t.Fatalf("expected sample conversations after corruption, got %d", n)
	}
}
