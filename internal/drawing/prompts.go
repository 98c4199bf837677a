package drawing

import "fmt"

const specificFinishPrompt = `You are preparing manufacturing notes for a CAD drawing.

Material: %s
Finish: %s

Write concise, industry-standard drawing notes in ALL CAPS for exactly this
material and finish. Do not substitute a different material or treatment.
Reference the governing specifications (ASTM, AMS, MIL, ISO) where they apply.

Fill every field of the response schema:
- materialDescription: the material with temper and form
- grade: the governing specification or grade callout
- generalNotes: general fabrication notes
- finishNotes: the finish treatment note`

const genericTreatmentPrompt = `You are preparing manufacturing notes for a CAD drawing.

Material: %s

The requested finish ("%s") does not name a specific treatment. First work out
which surface treatments are commonly applied to this material, then write
concise, industry-standard drawing notes in ALL CAPS.

Fill every field of the response schema:
- materialDescription: the material with temper and form
- grade: the governing specification or grade callout
- generalNotes: general fabrication notes
- finishNotes: list the plausible treatment options, not a single callout`

const askMaterialPrompt = `Answer the following question about the engineering material "%s".
Be concise and cite applicable standard numbers (ASTM, AMS, MIL, ISO) when relevant.

Question: %s`

func buildNotesPrompt(material, finish string) string {
	if IsGenericTreatment(finish) {
		return fmt.Sprintf(genericTreatmentPrompt, material, finish)
	}
	return fmt.Sprintf(specificFinishPrompt, material, finish)
}

func buildAskPrompt(material, question string) string {
	return fmt.Sprintf(askMaterialPrompt, material, question)
}
