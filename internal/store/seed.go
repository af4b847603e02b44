package store

import "time"

// samplePosts is the starter feed shown on a first run, before anything
// has been persisted.
func samplePosts(now time.Time) []Post {
	return []Post{
		{
			ID:        1,
			Author:    "JazzKat",
			Title:     "Looking for a drummer in Boston",
			Body:      "Experienced drummer wanted for indie project. Rehearsals weekends.",
			Votes:     12,
			CreatedAt: now.Add(-1 * time.Hour),
		},
		{
			ID:        2,
			Author:    "LiamG",
			Title:     "Share your best lo-fi beats",
			Body:      "Drop short snippets and feedback. 45s max.",
			Votes:     8,
			CreatedAt: now.Add(-5 * time.Hour),
		},
	}
}

// sampleConversations is the starter DM list for a first run.
func sampleConversations(user string, now time.Time) []Conversation {
	return []Conversation{
		{
			ID:           "c1",
			Participants: []string{user, "Ava"},
			Messages: []Message{
				{From: "Ava", Text: "Hey! Are you coming to the jam tonight?", At: now.Add(-30 * time.Minute)},
				{From: user, Text: "Yep, I can bring a keyboard!", At: now.Add(-20 * time.Minute)},
			},
		},
		{
			ID:           "c2",
			Participants: []string{user, "Marcus"},
			Messages: []Message{
				{From: "Marcus", Text: "Got an idea for a collab, DM me your flexible times", At: now.Add(-24 * time.Hour)},
			},
		},
	}
}
