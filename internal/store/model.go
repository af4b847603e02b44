package store

import "time"

// Post is a single feed entry. ID is unique and immutable after
// creation; Votes is unclamped and may go negative.
type Post struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Conversation is a two-party message thread. Participants is fixed at
// creation as [local user, other participant]; Messages is append-only
// in chronological order.
type Conversation struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	Messages     []Message `json:"messages"`
}

// Message is one entry in a conversation, immutable once appended.
type Message struct {
	From string    `json:"from"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Other returns the participant that is not the given user, for display.
func (c Conversation) Other(user string) string {
	for _, p := range c.Participants {
		if p != user {
			return p
		}
	}
	return "Me"
}

// LastMessage returns the newest message and whether one exists.
func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}
