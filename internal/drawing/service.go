package drawing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/Udaykiran265/DNAapp/internal/ai"
)

type service struct {
	repo Repo // nil when generation history is disabled
	ai   ai.AI
}

func NewService(repo Repo, aiClient ai.AI) Service {
	return &service{
		repo: repo,
		ai:   aiClient,
	}
}

func (s *service) GenerateNotes(ctx context.Context, material, finish string) (Notes, error) {
	material = strings.TrimSpace(material)
	if material == "" {
		return Notes{}, ErrMissingInput
	}

	generic := IsGenericTreatment(finish)
	log.Printf("[drawing] generate material=%q finish=%q generic=%v", material, finish, generic)

	raw, err := s.ai.GenerateStructured(ctx, buildNotesPrompt(material, finish), notesSchema())
	if err != nil {
		return Notes{}, fmt.Errorf("%w: %v", ErrModelInvocation, err)
	}

	var decoded Notes
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Printf("[drawing] bad JSON from model: %v", err)
		return Notes{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// The schema marks all four fields required, but trust nothing: a missing
	// or blank field is a malformed response, not an empty note.
	if missing := missingFields(decoded); len(missing) > 0 {
		log.Printf("[drawing] model response missing fields: %v", missing)
		return Notes{}, fmt.Errorf("%w: missing fields %v", ErrMalformedResponse, missing)
	}

	notes := normalizeNotes(decoded)

	if s.repo != nil {
		g := &Generation{Material: material, Finish: finish, Notes: notes}
		if err := s.repo.SaveGeneration(ctx, g); err != nil {
			// History is an audit log; never fail the generation over it.
			log.Printf("[drawing] history save failed: %v", err)
		}
	}

	return notes, nil
}

func (s *service) AskAboutMaterial(ctx context.Context, material, question string) (string, error) {
	material = strings.TrimSpace(material)
	question = strings.TrimSpace(question)
	if material == "" || question == "" {
		return "", ErrMissingInput
	}

	log.Printf("[drawing] ask material=%q question=%q", material, question)

	answer, err := s.ai.GenerateText(ctx, buildAskPrompt(material, question))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelInvocation, err)
	}

	return strings.TrimSpace(answer), nil
}

func missingFields(n Notes) []string {
	var missing []string
	if strings.TrimSpace(n.MaterialDescription) == "" {
		missing = append(missing, "materialDescription")
	}
	if strings.TrimSpace(n.Grade) == "" {
		missing = append(missing, "grade")
	}
	if strings.TrimSpace(n.GeneralNotes) == "" {
		missing = append(missing, "generalNotes")
	}
	if strings.TrimSpace(n.FinishNotes) == "" {
		missing = append(missing, "finishNotes")
	}
	return missing
}
