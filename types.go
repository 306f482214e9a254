package jsondec

// Severity expresses the severity level for source issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for byte-level input conditions that the
// value tree cannot represent, currently duplicate object keys.
type Strictness struct {
	OnDuplicateKey Severity
}

// SourceIssue describes a non-fatal condition observed while building the
// value tree (for example a suppressed duplicate key).
type SourceIssue struct {
	Code string
	Path string // JSON Pointer of the offending member
	Key  string
}

// ParseOpt bundles options for ParseBytes/ParseReader.
type ParseOpt struct {
	Strictness Strictness
	// OnIssue receives Warn-level source issues. Optional.
	OnIssue func(SourceIssue)
}
