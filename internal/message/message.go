package message

import (
	"sort"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
)

type Participant struct {
	ID        string
	Name      string
	AvatarURL string
}

type Message struct {
	ID       string
	SenderID string
	Text     string
	SentAt   time.Time
}

// Conversation is a thread between a seeker and a recruiter about one
// listing. Messages are kept ordered by send time.
type Conversation struct {
	ID           string
	JobID        string
	JobTitle     string
	Participants []Participant
	Messages     []Message
	Read         bool
}

// LastMessage returns the most recent message, if any.
func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// Latest is LastMessage for templates, returning a zero Message when
// the thread is empty.
func (c Conversation) Latest() Message {
	m, _ := c.LastMessage()
	return m
}

// Store holds the session's conversations. There is no transport
// behind it; recruiter replies only exist in the seed data.
type Store struct {
	mu            sync.RWMutex
	conversations []Conversation
}

func NewStore(seed []Conversation) *Store {
	conversations := make([]Conversation, len(seed))
	copy(conversations, seed)
	for i := range conversations {
		sortMessages(conversations[i].Messages)
	}
	return &Store{conversations: conversations}
}

func sortMessages(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].SentAt.Before(msgs[j].SentAt)
	})
}

// List returns all conversations, most recently active first.
func (s *Store) List() []Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Conversation, len(s.conversations))
	copy(out, s.conversations)
	sort.SliceStable(out, func(i, j int) bool {
		li, iok := out[i].LastMessage()
		lj, jok := out[j].LastMessage()
		if !iok || !jok {
			return iok
		}
		return li.SentAt.After(lj.SentAt)
	})
	return out
}

func (s *Store) ByID(id string) (Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.conversations {
		if c.ID == id {
			msgs := make([]Message, len(c.Messages))
			copy(msgs, c.Messages)
			c.Messages = msgs
			return c, true
		}
	}
	return Conversation{}, false
}

// Send appends a message to the conversation and returns it.
func (s *Store) Send(conversationID, senderID, text string, now time.Time) (Message, bool) {
	msg := Message{
		ID:       ksuid.New().String(),
		SenderID: senderID,
		Text:     text,
		SentAt:   now,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.conversations {
		if s.conversations[i].ID == conversationID {
			s.conversations[i].Messages = append(s.conversations[i].Messages, msg)
			return msg, true
		}
	}
	return Message{}, false
}

// MarkRead flags the whole thread as read.
func (s *Store) MarkRead(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.conversations {
		if s.conversations[i].ID == conversationID {
			s.conversations[i].Read = true
			return
		}
	}
}

// UnreadCount feeds the header badge next to the messages link.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, c := range s.conversations {
		if !c.Read {
			count++
		}
	}
	return count
}

// Seed returns the conversations the store starts the session with.
func Seed(now time.Time) []Conversation {
	seeker := Participant{ID: "user1", Name: "John Doe", AvatarURL: "https://placehold.co/40x40.png"}
	return []Conversation{
		{
			ID:       ksuid.New().String(),
			JobID:    "2HqZzGtYw4R9sBvN6cXeKf1mPdQ",
			JobTitle: "Registered Nurse",
			Participants: []Participant{
				seeker,
				{ID: "recruiter1", Name: "Jane Smith (Recruiter)", AvatarURL: "https://placehold.co/40x40.png"},
			},
			Messages: []Message{
				{ID: ksuid.New().String(), SenderID: "user1", Text: "Good morning, I have submitted my application for the Registered Nurse position. I look forward to hearing from you.", SentAt: now.AddDate(0, 0, -1)},
				{ID: ksuid.New().String(), SenderID: "recruiter1", Text: "Thank you for your application, John. We have received it and are currently reviewing candidates.", SentAt: now.Add(-8 * time.Hour)},
				{ID: ksuid.New().String(), SenderID: "recruiter1", Text: "Your profile looks promising. Could you tell us more about your experience at Ndola Central Hospital?", SentAt: now.Add(-5 * time.Minute)},
			},
		},
		{
			ID:       ksuid.New().String(),
			JobID:    "2HqZzNx4KbU7fRwQ2mYvTd9cJgH",
			JobTitle: "Accountant",
			Read:     true,
			Participants: []Participant{
				seeker,
				{ID: "recruiter2", Name: "Peter Jones (Hiring Manager)", AvatarURL: "https://placehold.co/40x40.png"},
			},
			Messages: []Message{
				{ID: ksuid.New().String(), SenderID: "recruiter2", Text: "Hello John, thanks for your interest in the Accountant role at Airtel Zambia.", SentAt: now.AddDate(0, 0, -3)},
				{ID: ksuid.New().String(), SenderID: "user1", Text: "Thank you. Please let me know if you need any further documents from me.", SentAt: now.AddDate(0, 0, -2)},
			},
		},
	}
}
