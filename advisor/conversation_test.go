package advisor

import "testing"

func TestConversation(t *testing.T) {
	c := NewConversation()

	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].Sender != AI || msgs[0].Text != Greeting {
		t.Fatalf("new conversation = %v, want the greeting", msgs)
	}

	c.AddUser("how am I doing?")
	slot := c.OpenReply()

	if msgs := c.Messages(); !msgs[len(msgs)-1].Pending {
		t.Error("open reply slot is not pending")
	}

	c.Append(slot, "You are ")
	c.Append(slot, "doing fine.")

	msgs = c.Messages()
	last := msgs[len(msgs)-1]
	if last.Text != "You are doing fine." {
		t.Errorf("streamed text = %q, want %q", last.Text, "You are doing fine.")
	}
	if last.Pending {
		t.Error("slot still pending after first chunk")
	}
}

func TestConversationStaleSlot(t *testing.T) {
	c := NewConversation()
	first := c.OpenReply()
	second := c.OpenReply()

	// A late chunk for the first request lands in its own slot, not the newest.
	c.Append(second, "fresh")
	c.Append(first, "stale")

	msgs := c.Messages()
	if msgs[len(msgs)-2].Text != "stale" || msgs[len(msgs)-1].Text != "fresh" {
		t.Errorf("chunks landed in the wrong slots: %v", msgs)
	}
}

func TestConversationFail(t *testing.T) {
	c := NewConversation()
	slot := c.OpenReply()
	c.Append(slot, "partial answer")
	c.Fail(slot, "Sorry, I encountered an error. Please try again.")

	msgs := c.Messages()
	last := msgs[len(msgs)-1]
	if last.Text != "Sorry, I encountered an error. Please try again." {
		t.Errorf("failed slot text = %q", last.Text)
	}
	if last.Pending {
		t.Error("failed slot still pending")
	}

	// Unknown ids are ignored.
	c.Append("nope", "x")
	c.Fail("nope", "x")
	if len(c.Messages()) != 2 {
		t.Errorf("unknown id changed the transcript: %v", c.Messages())
	}
}
