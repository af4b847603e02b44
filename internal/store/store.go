package store

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Store owns the post and conversation collections. Its operations are
// the only legal way to change entity state; every successful mutation
// is mirrored to the persistence slots before the call returns. All
// access is single-actor (the bubbletea update loop), so there is no
// locking.
type Store struct {
	slots Slots
	log   *zap.Logger
	user  string
	now   func() time.Time

	posts  []Post
	convos []Conversation
}

// New loads both collections from the slots, seeding the sample feed
// and conversations when a slot is absent or unreadable.
func New(slots Slots, user string, log *zap.Logger) *Store {
	s := &Store{slots: slots, log: log, user: user, now: time.Now}
	now := s.now()
	s.posts = loadSlot(slots, log, slotPosts, samplePosts(now))
	s.convos = loadSlot(slots, log, slotConversations, sampleConversations(user, now))
	return s
}

// User returns the local user identifier.
func (s *Store) User() string {
	return s.user
}

// CreatePost adds a post authored by the local user to the front of the
// feed. The collection is newest-first; insertion order is significant.
func (s *Store) CreatePost(title, body string) Post {
	now := s.now()
	p := Post{
		ID:        newPostID(now),
		Author:    s.user,
		Title:     strings.TrimSpace(title),
		Body:      strings.TrimSpace(body),
		CreatedAt: now,
	}
	s.posts = append([]Post{p}, s.posts...)
	s.savePosts()
	return p
}

// VotePost applies delta to a post's vote count. There is no floor or
// ceiling. An unknown id is a no-op, not an error: the UI only ever
// references ids it has rendered, but an id that slipped through must
// not fault.
func (s *Store) VotePost(id int64, delta int) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Votes += delta
			s.savePosts()
			return
		}
	}
}

// StartConversation opens a new thread with another participant, seeded
// with a first message from the local user, and prepends it to the
// conversation list. Empty participant or text (after trimming) is
// rejected; the compose form already prevents it, this is defense in
// depth for callers that bypass the form.
func (s *Store) StartConversation(participant, firstText string) (Conversation, bool) {
	participant = strings.TrimSpace(participant)
	firstText = strings.TrimSpace(firstText)
	if participant == "" || firstText == "" {
		return Conversation{}, false
	}

	now := s.now()
	c := Conversation{
		ID:           newConversationID(now),
		Participants: []string{s.user, participant},
		Messages:     []Message{{From: s.user, Text: firstText, At: now}},
	}
	s.convos = append([]Conversation{c}, s.convos...)
	s.saveConversations()
	return c, true
}

// SendMessage appends a message from the local user to a conversation.
// Empty text after trimming and unknown conversation ids are no-ops.
func (s *Store) SendMessage(conversationID, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	for i := range s.convos {
		if s.convos[i].ID == conversationID {
			s.convos[i].Messages = append(s.convos[i].Messages, Message{
				From: s.user,
				Text: text,
				At:   s.now(),
			})
			s.saveConversations()
			return
		}
	}
}

// Posts returns a snapshot of the feed, newest first.
func (s *Store) Posts() []Post {
	out := make([]Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Post returns a single post by id.
func (s *Store) Post(id int64) (Post, bool) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}

// Conversations returns a snapshot of all conversations, newest first.
// Message and participant slices are copied so callers cannot reach
// back into store state.
func (s *Store) Conversations() []Conversation {
	out := make([]Conversation, len(s.convos))
	for i, c := range s.convos {
		out[i] = copyConversation(c)
	}
	return out
}

// Conversation returns a single conversation by id.
func (s *Store) Conversation(id string) (Conversation, bool) {
	for _, c := range s.convos {
		if c.ID == id {
			return copyConversation(c), true
		}
	}
	return Conversation{}, false
}

func copyConversation(c Conversation) Conversation {
	out := c
	out.Participants = append([]string(nil), c.Participants...)
	out.Messages = append([]Message(nil), c.Messages...)
	return out
}

// newPostID derives a post id from the creation time in milliseconds.
// Unique enough for a single local actor with no concurrent writers;
// isolated here so it can be swapped for a collision-resistant
// generator if that ever changes.
func newPostID(now time.Time) int64 {
	return now.UnixMilli()
}

// newConversationID prefixes the millisecond timestamp to keep the
// conversation id namespace disjoint from post ids.
func newConversationID(now time.Time) string {
	return "c" + strconv.FormatInt(now.UnixMilli(), 10)
}
