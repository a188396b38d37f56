package docdiff

import "strings"

// Training flag labels, in cascade priority order.
const (
	FlagNewContent     = "New content"
	FlagContentRemoved = "Content removed"
	FlagFrequency      = "Frequency change"
	FlagDocumentation  = "Documentation requirement"
	FlagSafety         = "Safety-related change"
	FlagLimits         = "Limit/specification change"
	FlagRoles          = "Role/responsibility change"
	FlagProcedural     = "Procedural change"
)

// Keyword vocabularies for the flag cascade. Matching is a case-insensitive
// substring search; the vocabularies are intentionally small and coarse.
var (
	frequencyKeywords = []string{
		"daily", "weekly", "monthly", "quarterly", "annually", "hourly",
		"every", "per day", "per week", "per month",
	}
	documentationKeywords = []string{
		"document", "record", "log", "form", "report", "signature", "sign-off",
	}
	safetyKeywords = []string{
		"warning", "caution", "danger", "safety", "ppe", "protective", "hazard",
	}
	limitKeywords = []string{
		"minimum", "maximum", "limit", "threshold", "range", "specification",
		"tolerance", "°c", "°f", "%", "mg", "ml",
	}
	roleKeywords = []string{
		"responsible", "operator", "supervisor", "manager", "qa", "qc",
		"technician", "analyst",
	}
)

// flagRule pairs a training flag with its predicate over the lowercased old
// and new section contents.
type flagRule struct {
	flag  string
	match func(oldText, newText string) bool
}

// The cascade is single-label: rules are evaluated in order and the first
// match wins, so a change touching both safety and documentation vocabulary
// reports only the earlier category.
var flagRules = []flagRule{
	{FlagFrequency, func(o, n string) bool {
		return o != n && (containsAny(o, frequencyKeywords) || containsAny(n, frequencyKeywords))
	}},
	{FlagDocumentation, func(o, n string) bool {
		return containsAnyNewOnly(o, n, documentationKeywords)
	}},
	{FlagSafety, func(o, n string) bool {
		return containsAny(o, safetyKeywords) || containsAny(n, safetyKeywords)
	}},
	{FlagLimits, func(o, n string) bool {
		return containsAny(o, limitKeywords) || containsAny(n, limitKeywords)
	}},
	{FlagRoles, func(o, n string) bool {
		return o != n && (containsAny(o, roleKeywords) || containsAny(n, roleKeywords))
	}},
}

// containsAny reports whether any keyword occurs in the (lowercased) text.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// containsAnyNewOnly reports whether some keyword occurs in the new text but
// not in the old one, i.e. the requirement was introduced by this revision.
func containsAnyNewOnly(oldText, newText string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(newText, kw) && !strings.Contains(oldText, kw) {
			return true
		}
	}
	return false
}

// CategorizeChange classifies a text delta and assigns its training flag.
// Pure and deterministic; identical inputs always yield identical results.
func CategorizeChange(oldText, newText string) (ChangeType, string) {
	switch {
	case strings.TrimSpace(oldText) == "":
		return ChangeAdded, FlagNewContent
	case strings.TrimSpace(newText) == "":
		return ChangeRemoved, FlagContentRemoved
	default:
		return ChangeModified, detectTrainingFlag(oldText, newText)
	}
}

// detectTrainingFlag runs the cascade over a modified pair and returns the
// first matching flag, defaulting to a generic procedural change.
func detectTrainingFlag(oldText, newText string) string {
	o := strings.ToLower(oldText)
	n := strings.ToLower(newText)
	for _, rule := range flagRules {
		if rule.match(o, n) {
			return rule.flag
		}
	}
	return FlagProcedural
}

// DetectTrainingIndicators aggregates the per-change flags into document
// level booleans. Matching is a substring test against the flag string, not
// against the original section text.
func DetectTrainingIndicators(changes []FlaggedChange) TrainingIndicators {
	var ind TrainingIndicators
	for _, ch := range changes {
		flag := strings.ToLower(ch.TrainingFlag)
		if strings.Contains(flag, "procedural") {
			ind.ProceduralSteps = true
		}
		if strings.Contains(flag, "safety") {
			ind.SafetyWarnings = true
		}
		if strings.Contains(flag, "limit") || strings.Contains(flag, "specification") {
			ind.LimitsSpecifications = true
		}
		if strings.Contains(flag, "frequency") {
			ind.FrequencyTiming = true
		}
		if strings.Contains(flag, "documentation") {
			ind.RequiredDocumentation = true
		}
		if strings.Contains(flag, "role") || strings.Contains(flag, "responsib") {
			ind.RoleResponsibilities = true
		}
	}
	return ind
}

// BuildReport classifies every change in a comparison and aggregates the
// training indicators into the report structure consumed by renderers.
func BuildReport(result *ComparisonResult) *Report {
	changes := make([]FlaggedChange, 0, len(result.Changes))
	for _, ch := range result.Changes {
		_, flag := CategorizeChange(ch.OldContent, ch.NewContent)
		changes = append(changes, FlaggedChange{SectionChange: ch, TrainingFlag: flag})
	}
	return &Report{
		OldMetadata: result.OldDocument.Metadata,
		NewMetadata: result.NewDocument.Metadata,
		Summary:     result.Summary,
		Changes:     changes,
		Indicators:  DetectTrainingIndicators(changes),
	}
}
