// Package session keeps the per-chat state: profile, current mode,
// transcript, draft attachments and whether a request is in flight.
package session

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/i7k15/ai-study-advisor/internal/model"
)

type State int32

const (
	StateIdle = State(iota)
	StateSending
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	default:
		return "unknown"
	}
}

type draftFile struct {
	seq  int
	file model.AttachedFile
}

type Session struct {
	ID     uuid.UUID
	ChatID int64

	// saveMu orders transcript writes to storage against clears and logout.
	saveMu sync.Mutex

	mu         sync.Mutex
	state      State
	epoch      uint64
	closed     bool
	profile    model.UserProfile
	mode       model.StudyMode
	transcript []model.ChatMessage
	draft      []draftFile
}

func New(chatID int64, profile model.UserProfile, transcript []model.ChatMessage) *Session {
	mode := profile.DefaultStyle
	if !mode.IsValid() {
		mode = model.StudyModeAdvisor
	}
	return &Session{
		ID:         uuid.New(),
		ChatID:     chatID,
		state:      StateIdle,
		profile:    profile,
		mode:       mode,
		transcript: append([]model.ChatMessage(nil), transcript...),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Profile() model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Session) SetProfile(profile model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
}

func (s *Session) Mode() model.StudyMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) SetMode(mode model.StudyMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// Transcript returns a copy of the messages.
func (s *Session) Transcript() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ChatMessage(nil), s.transcript...)
}

// ClearTranscript empties the transcript. A reply still in flight is not
// recorded afterwards.
func (s *Session) ClearTranscript() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
	s.epoch++
}

// Close marks the session as logged out. Pending replies are neither
// recorded nor persisted.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.epoch++
}

// Exclusive runs fn while no Persist call can run.
func (s *Session) Exclusive(fn func() error) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return fn()
}

// Attach adds files to the draft. seq orders files across calls, so files
// delivered out of order still end up in the order the user picked them.
func (s *Session) Attach(seq int, files ...model.AttachedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, file := range files {
		s.draft = append(s.draft, draftFile{seq: seq, file: file})
	}
	sort.SliceStable(
		s.draft, func(i, j int) bool {
			return s.draft[i].seq < s.draft[j].seq
		},
	)
}

// Attachments returns a copy of the draft files in order.
func (s *Session) Attachments() []model.AttachedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	files := make([]model.AttachedFile, 0, len(s.draft))
	for _, d := range s.draft {
		files = append(files, d.file)
	}
	return files
}

// DropAttachments clears the draft and reports how many files it held.
func (s *Session) DropAttachments() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.draft)
	s.draft = nil
	return n
}

// Ticket identifies an accepted send. It goes stale when the transcript is
// cleared or the session is closed.
type Ticket struct {
	epoch uint64
}

// Begin moves the session from idle to sending. build receives the draft
// files and returns the user message, or false when there is nothing to send.
// On success the draft is cleared and the message recorded. With history off
// the transcript restarts at the message.
// Begin returns false, changing nothing, when a request is already in flight
// or build declines.
func (s *Session) Begin(
	build func(draft []model.AttachedFile) (model.ChatMessage, bool), saveHistory bool,
) (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return Ticket{}, false
	}
	draft := make([]model.AttachedFile, 0, len(s.draft))
	for _, d := range s.draft {
		draft = append(draft, d.file)
	}
	msg, ok := build(draft)
	if !ok {
		return Ticket{}, false
	}
	if saveHistory {
		s.transcript = append(s.transcript, msg)
	} else {
		s.transcript = []model.ChatMessage{msg}
	}
	s.draft = nil
	s.state = StateSending
	return Ticket{epoch: s.epoch}, true
}

// Finish returns the session to idle. The reply is appended only when the
// ticket is still current, which Finish reports.
func (s *Session) Finish(ticket Ticket, reply model.ChatMessage) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	if !s.currentLocked(ticket) {
		return false
	}
	s.transcript = append(s.transcript, reply)
	return true
}

// Persist hands the profile and transcript to save unless the ticket went
// stale. It is serialized with Exclusive.
func (s *Session) Persist(
	ticket Ticket, save func(profile model.UserProfile, transcript []model.ChatMessage) error,
) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	current := s.currentLocked(ticket)
	profile := s.profile
	transcript := append([]model.ChatMessage(nil), s.transcript...)
	s.mu.Unlock()

	if !current {
		return nil
	}
	return save(profile, transcript)
}

func (s *Session) currentLocked(ticket Ticket) bool {
	return !s.closed && ticket.epoch == s.epoch
}
