package drawing

import "strings"

// genericFinishLimit: anything this long is assumed to be a real callout,
// keyword or not.
const genericFinishLimit = 20

var genericKeywords = []string{"treatment", "treat", "finish required", "surface"}

// IsGenericTreatment reports whether the finish input is too vague to name a
// single treatment (e.g. "treatment?") as opposed to a full callout
// (e.g. "Anodize Black, MIL-A-8625 Type II"). A simple rule, not a classifier:
// short AND mentioning one of the generic keywords.
func IsGenericTreatment(finish string) bool {
	f := strings.ToLower(strings.TrimSpace(finish))
	if len(f) >= genericFinishLimit {
		return false
	}
	for _, kw := range genericKeywords {
		if strings.Contains(f, kw) {
			return true
		}
	}
	return false
}
