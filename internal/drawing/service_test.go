package drawing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Udaykiran265/DNAapp/internal/ai"
)

const cannedNotesJSON = `{
	"materialDescription": "ALUMINUM 6061-T6 PLATE",
	"grade": "PER ASTM B209",
	"generalNotes": "BREAK ALL SHARP EDGES, DEBURR",
	"finishNotes": "ANODIZE BLACK PER MIL-A-8625 TYPE II"
}`

type fakeAI struct {
	structuredResp string
	structuredErr  error
	textResp       string
	textErr        error

	structuredCalls int
	textCalls       int
	lastPrompt      string
	lastSchema      ai.Schema
}

func (f *fakeAI) GenerateStructured(_ context.Context, prompt string, schema ai.Schema) (string, error) {
	f.structuredCalls++
	f.lastPrompt = prompt
	f.lastSchema = schema
	return f.structuredResp, f.structuredErr
}

func (f *fakeAI) GenerateText(_ context.Context, prompt string) (string, error) {
	f.textCalls++
	f.lastPrompt = prompt
	return f.textResp, f.textErr
}

func TestGenerateNotesSpecificFinish(t *testing.T) {
	fake := &fakeAI{structuredResp: cannedNotesJSON}
	svc := NewService(nil, fake)

	notes, err := svc.GenerateNotes(context.Background(), "Aluminum 6061-T6", "Anodize Black, MIL-A-8625 Type II")
	require.NoError(t, err)

	// Specific path: the exact finish is in the prompt, no option enumeration.
	assert.Contains(t, fake.lastPrompt, "Aluminum 6061-T6")
	assert.Contains(t, fake.lastPrompt, "Anodize Black, MIL-A-8625 Type II")
	assert.NotContains(t, fake.lastPrompt, "treatment options")

	lines := notes.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "1. ALUMINUM 6061-T6 PLATE", lines[0])
	assert.Equal(t, "2. PER ASTM B209", lines[1])
	assert.Equal(t, "3. BREAK ALL SHARP EDGES, DEBURR", lines[2])
	assert.Equal(t, "4. ANODIZE BLACK PER MIL-A-8625 TYPE II", lines[3])
}

func TestGenerateNotesGenericFinish(t *testing.T) {
	fake := &fakeAI{structuredResp: cannedNotesJSON}
	svc := NewService(nil, fake)

	_, err := svc.GenerateNotes(context.Background(), "Titanium", "treatment")
	require.NoError(t, err)

	// Generic path: the prompt asks for option enumeration.
	assert.Contains(t, fake.lastPrompt, "Titanium")
	assert.Contains(t, fake.lastPrompt, "treatment options")
}

func TestGenerateNotesSchemaContract(t *testing.T) {
	fake := &fakeAI{structuredResp: cannedNotesJSON}
	svc := NewService(nil, fake)

	_, err := svc.GenerateNotes(context.Background(), "Steel 4140", "Black Oxide per MIL-DTL-13924")
	require.NoError(t, err)

	assert.Equal(t, "cad_drawing_notes", fake.lastSchema.Name)
	assert.ElementsMatch(t,
		[]string{"materialDescription", "grade", "generalNotes", "finishNotes"},
		fake.lastSchema.Definition.Required,
	)
	assert.Len(t, fake.lastSchema.Definition.Properties, 4)
}

func TestGenerateNotesStripsModelNumbering(t *testing.T) {
	fake := &fakeAI{structuredResp: `{
		"materialDescription": "NOTE 1: TITANIUM 6AL-4V BAR",
		"grade": "note 2: PER AMS 4928",
		"generalNotes": "Note 3: REMOVE ALL BURRS",
		"finishNotes": "NOTE 4: PASSIVATE PER AMS 2700"
	}`}
	svc := NewService(nil, fake)

	notes, err := svc.GenerateNotes(context.Background(), "Titanium 6Al-4V", "Passivate per AMS 2700")
	require.NoError(t, err)

	for _, line := range notes.Lines() {
		assert.NotContains(t, strings.ToUpper(line), "NOTE")
	}
	assert.Equal(t, "2. PER AMS 4928", notes.Grade)
}

func TestGenerateNotesEmptyMaterial(t *testing.T) {
	fake := &fakeAI{structuredResp: cannedNotesJSON}
	svc := NewService(nil, fake)

	_, err := svc.GenerateNotes(context.Background(), "   ", "Anodize")
	assert.ErrorIs(t, err, ErrMissingInput)
	assert.Zero(t, fake.structuredCalls, "model must not be invoked")
}

func TestGenerateNotesModelFailure(t *testing.T) {
	fake := &fakeAI{structuredErr: errors.New("connection refused")}
	svc := NewService(nil, fake)

	_, err := svc.GenerateNotes(context.Background(), "Aluminum", "Anodize Clear Type II")
	assert.ErrorIs(t, err, ErrModelInvocation)
}

func TestGenerateNotesInvalidJSON(t *testing.T) {
	fake := &fakeAI{structuredResp: "sorry, here are your notes:"}
	svc := NewService(nil, fake)

	_, err := svc.GenerateNotes(context.Background(), "Aluminum", "Anodize Clear Type II")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerateNotesMissingField(t *testing.T) {
	fake := &fakeAI{structuredResp: `{
		"materialDescription": "ALUMINUM 6061-T6 PLATE",
		"grade": "",
		"generalNotes": "BREAK ALL SHARP EDGES",
		"finishNotes": "ANODIZE"
	}`}
	svc := NewService(nil, fake)

	_, err := svc.GenerateNotes(context.Background(), "Aluminum", "Anodize Clear Type II")
	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "grade")
}

func TestAskAboutMaterial(t *testing.T) {
	fake := &fakeAI{textResp: "  Yes, 6061-T6 is weldable per AWS D1.2.  "}
	svc := NewService(nil, fake)

	answer, err := svc.AskAboutMaterial(context.Background(), "Aluminum 6061-T6", "Is it weldable?")
	require.NoError(t, err)

	assert.Equal(t, "Yes, 6061-T6 is weldable per AWS D1.2.", answer)
	assert.Contains(t, fake.lastPrompt, "Aluminum 6061-T6")
	assert.Contains(t, fake.lastPrompt, "Is it weldable?")
	assert.Zero(t, fake.structuredCalls)
}

func TestAskAboutMaterialMissingInput(t *testing.T) {
	fake := &fakeAI{textResp: "answer"}
	svc := NewService(nil, fake)

	_, err := svc.AskAboutMaterial(context.Background(), "Aluminum", "")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = svc.AskAboutMaterial(context.Background(), "", "Is it weldable?")
	assert.ErrorIs(t, err, ErrMissingInput)

	assert.Zero(t, fake.textCalls)
}

func TestAskAboutMaterialModelFailure(t *testing.T) {
	fake := &fakeAI{textErr: errors.New("timeout")}
	svc := NewService(nil, fake)

	_, err := svc.AskAboutMaterial(context.Background(), "Aluminum", "Is it weldable?")
	assert.ErrorIs(t, err, ErrModelInvocation)
}

func TestGenerateNotesSavesHistory(t *testing.T) {
	fake := &fakeAI{structuredResp: cannedNotesJSON}
	hist := &memRepo{}
	svc := NewService(hist, fake)

	_, err := svc.GenerateNotes(context.Background(), "Aluminum 6061-T6", "Anodize Black, MIL-A-8625 Type II")
	require.NoError(t, err)

	require.Len(t, hist.saved, 1)
	assert.Equal(t, "Aluminum 6061-T6", hist.saved[0].Material)
	assert.Equal(t, "1. ALUMINUM 6061-T6 PLATE", hist.saved[0].Notes.MaterialDescription)
}

func TestGenerateNotesHistoryFailureIsNonFatal(t *testing.T) {
	fake := &fakeAI{structuredResp: cannedNotesJSON}
	hist := &memRepo{saveErr: errors.New("db down")}
	svc := NewService(hist, fake)

	_, err := svc.GenerateNotes(context.Background(), "Aluminum", "Anodize Clear Type II")
	assert.NoError(t, err)
}

type memRepo struct {
	saved   []Generation
	saveErr error
}

func (m *memRepo) SaveGeneration(_ context.Context, g *Generation) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, *g)
	return nil
}

func (m *memRepo) ListRecent(_ context.Context, limit int) ([]Generation, error) {
	if limit > len(m.saved) {
		limit = len(m.saved)
	}
	out := make([]Generation, limit)
	copy(out, m.saved[len(m.saved)-limit:])
	return out, nil
}
