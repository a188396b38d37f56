package docdiff

// DocumentSection is one labeled section of a source document. ID is the
// identifier as it appears in the text ("1.2", "Section 3", "A.1") and is the
// alignment key between two document revisions.
type DocumentSection struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Level   int    `json:"level"`
}

// Metadata holds document identity fields pulled from the raw text and
// filename. Every field may be empty except SopID, which always resolves to a
// value ("N/A" when nothing matched).
type Metadata struct {
	Title      string `json:"title,omitempty"`
	Version    string `json:"version,omitempty"`
	SopID      string `json:"sop_id"`
	Department string `json:"department,omitempty"`
}

// ExtractedDocument is the parsed form of one uploaded document revision.
// It is immutable once built.
type ExtractedDocument struct {
	Text     string            `json:"text"`
	Sections []DocumentSection `json:"sections"`
	Metadata Metadata          `json:"metadata"`
}

// ChangeType classifies a section change between two revisions.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeRemoved  ChangeType = "removed"
	ChangeModified ChangeType = "modified"
)

// SectionChange is one aligned difference between two revisions. OldContent
// and NewContent are empty when not applicable to the change type. Sections
// whose normalized content is equal in both revisions produce no entry.
type SectionChange struct {
	SectionID    string     `json:"section_id"`
	SectionTitle string     `json:"section_title"`
	ChangeType   ChangeType `json:"change_type"`
	OldContent   string     `json:"old_content"`
	NewContent   string     `json:"new_content"`
}

// ChangeSummary holds exact counts by change type.
// TotalChanges == Added + Modified + Removed == len(Changes).
type ChangeSummary struct {
	TotalChanges int `json:"total_changes"`
	Added        int `json:"added"`
	Modified     int `json:"modified"`
	Removed      int `json:"removed"`
}

// ComparisonResult is the full output of comparing two revisions. Both input
// documents are retained for traceability. Changes are sorted by section id
// in natural (numeric-aware) order.
type ComparisonResult struct {
	OldDocument *ExtractedDocument `json:"old_document"`
	NewDocument *ExtractedDocument `json:"new_document"`
	Changes     []SectionChange    `json:"changes"`
	Summary     ChangeSummary      `json:"summary"`
}

// TrainingIndicators are document-level booleans set when any change's
// training flag matches the corresponding category. Presence only, no counts.
type TrainingIndicators struct {
	ProceduralSteps       bool `json:"procedural_steps"`
	SafetyWarnings        bool `json:"safety_warnings"`
	LimitsSpecifications  bool `json:"limits_specifications"`
	FrequencyTiming       bool `json:"frequency_timing"`
	RequiredDocumentation bool `json:"required_documentation"`
	RoleResponsibilities  bool `json:"role_responsibilities"`
}

// FlaggedChange is a SectionChange plus its training-impact flag.
type FlaggedChange struct {
	SectionChange
	TrainingFlag string `json:"training_flag"`
}

// Report is the training-impact view of a comparison, the structure consumed
// by report renderers and stored with a completed comparison job.
type Report struct {
	OldMetadata Metadata           `json:"old_metadata"`
	NewMetadata Metadata           `json:"new_metadata"`
	Summary     ChangeSummary      `json:"summary"`
	Changes     []FlaggedChange    `json:"changes"`
	Indicators  TrainingIndicators `json:"indicators"`
}
