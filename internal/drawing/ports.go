package drawing

import (
	"context"
	"strings"
)

// Notes holds the four drawing notes in render order, each already carrying
// its canonical "<n>. " prefix.
type Notes struct {
	MaterialDescription string `json:"materialDescription"`
	Grade               string `json:"grade"`
	GeneralNotes        string `json:"generalNotes"`
	FinishNotes         string `json:"finishNotes"`
}

// Lines returns the note block in fixed order: material, grade, general, finish.
func (n Notes) Lines() []string {
	return []string{n.MaterialDescription, n.Grade, n.GeneralNotes, n.FinishNotes}
}

// ClipboardText is the four fields joined by newlines, unaltered.
func (n Notes) ClipboardText() string {
	return strings.Join(n.Lines(), "\n")
}

// Generation is one stored notes-generation result.
type Generation struct {
	ID        int64
	Material  string
	Finish    string
	Notes     Notes
	CreatedAt int64
}

// Repo — persistence for the generation history. May be absent (nil).
type Repo interface {
	SaveGeneration(ctx context.Context, g *Generation) error
	ListRecent(ctx context.Context, limit int) ([]Generation, error)
}

// Service — the two model-backed operations.
type Service interface {
	GenerateNotes(ctx context.Context, material, finish string) (Notes, error)
	AskAboutMaterial(ctx context.Context, material, question string) (string, error)
}
