package session

import (
	"testing"
	"time"

	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(name string) model.AttachedFile {
	return model.AttachedFile{FileName: name, Data: []byte(name), MimeType: "text/plain"}
}

func message(msg model.ChatMessage) func([]model.AttachedFile) (model.ChatMessage, bool) {
	return func([]model.AttachedFile) (model.ChatMessage, bool) { return msg, true }
}

func TestNewUsesDefaultStyle(t *testing.T) {
	profile := model.DefaultProfile()
	profile.DefaultStyle = model.StudyModeSummary

	sess := New(7, profile, nil)

	assert.Equal(t, model.StudyModeSummary, sess.Mode())
	assert.Equal(t, StateIdle, sess.State())
	assert.Empty(t, sess.Transcript())
}

func TestAttachOrdersBySequence(t *testing.T) {
	sess := New(1, model.DefaultProfile(), nil)

	sess.Attach(30, file("c"))
	sess.Attach(10, file("a1"), file("a2"))
	sess.Attach(20, file("b"))

	names := make([]string, 0)
	for _, f := range sess.Attachments() {
		names = append(names, f.FileName)
	}
	assert.Equal(t, []string{"a1", "a2", "b", "c"}, names)
	assert.Equal(t, 4, sess.DropAttachments())
	assert.Empty(t, sess.Attachments())
}

func TestBeginRejectsWhileSending(t *testing.T) {
	sess := New(1, model.DefaultProfile(), nil)
	sess.Attach(1, file("a"))

	first := model.NewUserMessage("first", model.StudyModeQA, nil)
	ticket, ok := sess.Begin(message(first), true)
	require.True(t, ok)
	assert.Equal(t, StateSending, sess.State())
	assert.Empty(t, sess.Attachments())

	_, ok = sess.Begin(message(model.NewUserMessage("second", model.StudyModeQA, nil)), true)
	assert.False(t, ok)
	assert.Equal(t, []model.ChatMessage{first}, sess.Transcript())

	assert.True(t, sess.Finish(ticket, model.NewAssistantMessage("answer", model.StudyModeQA, false)))
	assert.Equal(t, StateIdle, sess.State())
	assert.Len(t, sess.Transcript(), 2)
}

func TestBeginWithoutHistoryRestartsTranscript(t *testing.T) {
	history := []model.ChatMessage{
		model.NewUserMessage("old", model.StudyModeQA, nil),
		model.NewAssistantMessage("old answer", model.StudyModeQA, false),
	}
	sess := New(1, model.DefaultProfile(), history)

	msg := model.NewUserMessage("new", model.StudyModeQA, nil)
	_, ok := sess.Begin(message(msg), false)
	require.True(t, ok)

	assert.Equal(t, []model.ChatMessage{msg}, sess.Transcript())
}

func TestTranscriptReturnsCopy(t *testing.T) {
	sess := New(1, model.DefaultProfile(), nil)
	_, ok := sess.Begin(message(model.NewUserMessage("q", model.StudyModeQA, nil)), true)
	require.True(t, ok)

	transcript := sess.Transcript()
	transcript[0].Content = "changed"

	assert.Equal(t, "q", sess.Transcript()[0].Content)
}

func TestBeginTakesDraftAtomically(t *testing.T) {
	sess := New(1, model.DefaultProfile(), nil)
	sess.Attach(2, file("b"))
	sess.Attach(1, file("a"))

	var taken []model.AttachedFile
	_, ok := sess.Begin(
		func(draft []model.AttachedFile) (model.ChatMessage, bool) {
			taken = draft
			return model.NewUserMessage("q", model.StudyModeQA, []string{"a", "b"}), true
		}, true,
	)
	require.True(t, ok)
	assert.Equal(t, []model.AttachedFile{file("a"), file("b")}, taken)

	// Files arriving while the request runs belong to the next draft.
	sess.Attach(3, file("c"))
	assert.Equal(t, []model.AttachedFile{file("c")}, sess.Attachments())
}

func TestBeginDeclinedKeepsDraft(t *testing.T) {
	sess := New(1, model.DefaultProfile(), nil)
	sess.Attach(1, file("a"))

	_, ok := sess.Begin(
		func([]model.AttachedFile) (model.ChatMessage, bool) { return model.ChatMessage{}, false }, true,
	)

	assert.False(t, ok)
	assert.Equal(t, StateIdle, sess.State())
	assert.Len(t, sess.Attachments(), 1)
}

func TestClearDuringSendDropsReply(t *testing.T) {
	sess := New(1, model.DefaultProfile(), nil)
	ticket, ok := sess.Begin(message(model.NewUserMessage("q", model.StudyModeQA, nil)), true)
	require.True(t, ok)

	sess.ClearTranscript()

	assert.False(t, sess.Finish(ticket, model.NewAssistantMessage("a", model.StudyModeQA, false)))
	assert.Equal(t, StateIdle, sess.State())
	assert.Empty(t, sess.Transcript())

	called := false
	require.NoError(
		t, sess.Persist(
			ticket, func(model.UserProfile, []model.ChatMessage) error {
				called = true
				return nil
			},
		),
	)
	assert.False(t, called)
}

func TestPersistAfterClose(t *testing.T) {
	sess := New(1, model.DefaultProfile(), nil)
	ticket, ok := sess.Begin(message(model.NewUserMessage("q", model.StudyModeQA, nil)), true)
	require.True(t, ok)
	sess.Finish(ticket, model.NewAssistantMessage("a", model.StudyModeQA, false))

	var saved []model.ChatMessage
	save := func(_ model.UserProfile, transcript []model.ChatMessage) error {
		saved = transcript
		return nil
	}
	require.NoError(t, sess.Persist(ticket, save))
	assert.Len(t, saved, 2)

	saved = nil
	sess.Close()
	require.NoError(t, sess.Persist(ticket, save))
	assert.Nil(t, saved)
}

func TestStoreAddKeepsExistingSession(t *testing.T) {
	store := NewStore(time.Hour)

	first := store.Add(New(5, model.DefaultProfile(), nil))
	second := store.Add(New(5, model.DefaultProfile(), nil))

	assert.Same(t, first, second)
	got, ok := store.Get(5)
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, 1, store.Len())

	store.Delete(5)
	_, ok = store.Get(5)
	assert.False(t, ok)
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	store := NewStore(20 * time.Millisecond)
	store.Add(New(9, model.DefaultProfile(), nil))

	time.Sleep(40 * time.Millisecond)

	_, ok := store.Get(9)
	assert.False(t, ok)
}
