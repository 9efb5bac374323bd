package testutil

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// FakeContext records what a handler sends, edits and answers.
// Methods not overridden here panic through the nil embedded Context.
type FakeContext struct {
	tele.Context

	ChatID      int64
	MessageText string
	Payload     []string
	IsCallback  bool
	EditErr     error

	Sent      []string
	Edited    []string
	Outputs   []string
	Responses []*tele.CallbackResponse
}

var _ tele.Context = (*FakeContext)(nil)

// NewCommandContext creates a context for a plain text message
func NewCommandContext(chatID int64, text string) *FakeContext {
	return &FakeContext{ChatID: chatID, MessageText: text}
}

// NewCallbackContext creates a context for an inline button press
func NewCallbackContext(chatID int64, payload ...string) *FakeContext {
	return &FakeContext{ChatID: chatID, Payload: payload, IsCallback: true}
}

func (f *FakeContext) Chat() *tele.Chat {
	return &tele.Chat{ID: f.ChatID}
}

func (f *FakeContext) Sender() *tele.User {
	return &tele.User{ID: f.ChatID}
}

func (f *FakeContext) Text() string {
	return f.MessageText
}

func (f *FakeContext) Args() []string {
	return f.Payload
}

func (f *FakeContext) Callback() *tele.Callback {
	if !f.IsCallback {
		return nil
	}
	return &tele.Callback{ID: "cb", Data: strings.Join(f.Payload, "|")}
}

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	f.Sent = append(f.Sent, fmt.Sprint(what))
	f.Outputs = append(f.Outputs, fmt.Sprint(what))
	return nil
}

func (f *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if f.EditErr != nil {
		return f.EditErr
	}
	f.Edited = append(f.Edited, fmt.Sprint(what))
	f.Outputs = append(f.Outputs, fmt.Sprint(what))
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		f.Responses = append(f.Responses, &tele.CallbackResponse{})
		return nil
	}
	f.Responses = append(f.Responses, resp...)
	return nil
}

// LastOutput returns the most recent sent or edited text
func (f *FakeContext) LastOutput() string {
	if len(f.Outputs) == 0 {
		return ""
	}
	return f.Outputs[len(f.Outputs)-1]
}

// LastResponseText returns the text of the most recent callback answer
func (f *FakeContext) LastResponseText() string {
	if len(f.Responses) == 0 {
		return ""
	}
	return f.Responses[len(f.Responses)-1].Text
}
