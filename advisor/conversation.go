package advisor

import (
	"crypto/rand"
	"encoding/hex"
	"slices"
)

// Sender identifies who wrote a message.
type Sender string

const (
	User Sender = "user"
	AI   Sender = "ai"
)

// Message is one entry of a conversation transcript.
type Message struct {
	ID      string
	Sender  Sender
	Text    string
	Pending bool // true while a reply is still streaming into this slot
}

// Conversation is an ordered transcript of advisor messages. Replies stream
// into their own slot, found by id, so a slow reply never lands in the wrong
// place.
type Conversation struct {
	messages []Message
}

// NewConversation creates a transcript opened by the advisor's greeting.
func NewConversation() *Conversation {
	return &Conversation{messages: []Message{{ID: newMessageID(), Sender: AI, Text: Greeting}}}
}

// Messages returns a copy of the transcript in order.
func (c *Conversation) Messages() []Message { return slices.Clone(c.messages) }

// AddUser appends a user message and returns its id.
func (c *Conversation) AddUser(text string) string {
	id := newMessageID()
	c.messages = append(c.messages, Message{ID: id, Sender: User, Text: text})
	return id
}

// OpenReply appends an empty pending slot for an incoming reply and returns
// its id.
func (c *Conversation) OpenReply() string {
	id := newMessageID()
	c.messages = append(c.messages, Message{ID: id, Sender: AI, Pending: true})
	return id
}

// Append adds a chunk of streamed text to the slot with the given id. An
// unknown id is ignored.
func (c *Conversation) Append(id, chunk string) {
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Text += chunk
			c.messages[i].Pending = false
			return
		}
	}
}

// Fail replaces the slot's content with an error text and closes it. An
// unknown id is ignored.
func (c *Conversation) Fail(id, text string) {
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Text = text
			c.messages[i].Pending = false
			return
		}
	}
}

func newMessageID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("cannot read random source: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}
