package drawing

import (
	"context"
	"strings"
	"sync"
	"time"
)

// SlotState is the lifecycle of one action slot.
type SlotState string

const (
	StateIdle      SlotState = "idle"
	StateLoading   SlotState = "loading"
	StateSucceeded SlotState = "succeeded"
	StateFailed    SlotState = "failed"
)

// User-facing messages. Transport failures and malformed replies look the
// same to the user; the distinction is only logged.
const (
	msgNotesFailed = "Failed to generate notes. Please try again."
	msgAskFailed   = "Failed to get an answer. Please try again."
)

const copiedWindow = 2 * time.Second

type slot struct {
	state SlotState
	seq   uint64
}

// Controller holds the two independent action slots (notes generation and
// ask-AI) and their results. A trigger on a slot that is already Loading is
// rejected, and completions carry a sequence number so a stale late reply
// can never overwrite newer state.
type Controller struct {
	svc Service
	now func() time.Time

	mu        sync.Mutex
	notesSlot slot
	notes     *Notes
	notesErr  string

	askSlot slot
	answer  string
	askErr  string

	copiedAt time.Time
}

func NewController(svc Service) *Controller {
	return &Controller{
		svc: svc,
		now: time.Now,
	}
}

// Snapshot is the controller state as rendered to the UI.
type Snapshot struct {
	NotesState SlotState `json:"notesState"`
	Notes      *Notes    `json:"notes,omitempty"`
	NotesError string    `json:"notesError,omitempty"`
	AskState   SlotState `json:"askState"`
	Answer     string    `json:"answer,omitempty"`
	AskError   string    `json:"askError,omitempty"`
	Copied     bool      `json:"copied"`
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		NotesState: stateOrIdle(c.notesSlot.state),
		Notes:      c.notes,
		NotesError: c.notesErr,
		AskState:   stateOrIdle(c.askSlot.state),
		Answer:     c.answer,
		AskError:   c.askErr,
		Copied:     c.copiedLocked(),
	}
}

// GenerateNotes runs the notes action slot: it rejects empty material and
// overlapping triggers, clears the previous notes result AND the ask-AI
// answer (a new generation invalidates both), then applies the outcome only
// if the slot was not reset in the meantime.
func (c *Controller) GenerateNotes(ctx context.Context, material, finish string) (Notes, error) {
	c.mu.Lock()
	if strings.TrimSpace(material) == "" {
		c.mu.Unlock()
		return Notes{}, ErrMissingInput
	}
	if c.notesSlot.state == StateLoading {
		c.mu.Unlock()
		return Notes{}, ErrBusy
	}
	c.notesSlot.state = StateLoading
	c.notesSlot.seq++
	seq := c.notesSlot.seq
	c.notes = nil
	c.notesErr = ""
	c.answer = ""
	c.askErr = ""
	c.copiedAt = time.Time{}
	c.mu.Unlock()

	notes, err := c.svc.GenerateNotes(ctx, material, finish)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.notesSlot.seq != seq {
		// The slot was reset while we were in flight; discard.
		return notes, err
	}
	if err != nil {
		c.notesSlot.state = StateFailed
		c.notesErr = msgNotesFailed
		return Notes{}, err
	}
	c.notesSlot.state = StateSucceeded
	c.notes = &notes
	return notes, nil
}

// Ask runs the ask-AI action slot. Requires both material and question.
func (c *Controller) Ask(ctx context.Context, material, question string) (string, error) {
	c.mu.Lock()
	if strings.TrimSpace(material) == "" || strings.TrimSpace(question) == "" {
		c.mu.Unlock()
		return "", ErrMissingInput
	}
	if c.askSlot.state == StateLoading {
		c.mu.Unlock()
		return "", ErrBusy
	}
	c.askSlot.state = StateLoading
	c.askSlot.seq++
	seq := c.askSlot.seq
	c.answer = ""
	c.askErr = ""
	c.mu.Unlock()

	answer, err := c.svc.AskAboutMaterial(ctx, material, question)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.askSlot.seq != seq {
		return answer, err
	}
	if err != nil {
		c.askSlot.state = StateFailed
		c.askErr = msgAskFailed
		return "", err
	}
	c.askSlot.state = StateSucceeded
	c.answer = answer
	return answer, nil
}

// Copy returns the clipboard text (the four fields joined by newlines) and
// flips the transient copied indicator. Only valid when notes succeeded.
func (c *Controller) Copy() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.notesSlot.state != StateSucceeded || c.notes == nil {
		return "", ErrNotReady
	}
	c.copiedAt = c.now()
	return c.notes.ClipboardText(), nil
}

// Copied reports whether the copied indicator is still within its window.
func (c *Controller) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copiedLocked()
}

// Reset clears both slots, as when the page is reloaded. Any in-flight
// request resolves against a stale sequence number and is discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notesSlot = slot{state: StateIdle, seq: c.notesSlot.seq + 1}
	c.notes = nil
	c.notesErr = ""
	c.askSlot = slot{state: StateIdle, seq: c.askSlot.seq + 1}
	c.answer = ""
	c.askErr = ""
	c.copiedAt = time.Time{}
}

func (c *Controller) copiedLocked() bool {
	return !c.copiedAt.IsZero() && c.now().Sub(c.copiedAt) < copiedWindow
}

func stateOrIdle(s SlotState) SlotState {
	if s == "" {
		return StateIdle
	}
	return s
}

