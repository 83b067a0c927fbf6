package trace

// TraceLevel controls the verbosity of outcome tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelOutcomes captures every serve and every timeout.
	TraceLevelOutcomes TraceLevel = "outcomes"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:     true,
	TraceLevelOutcomes: true,
	"":                 true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SessionTrace collects outcome records during a session.
type SessionTrace struct {
	Level    TraceLevel
	Serves   []ServeRecord
	Timeouts []TimeoutRecord
}

// NewSessionTrace creates a SessionTrace ready for recording.
func NewSessionTrace(level TraceLevel) *SessionTrace {
	return &SessionTrace{
		Level:    level,
		Serves:   make([]ServeRecord, 0),
		Timeouts: make([]TimeoutRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on nil.
func (st *SessionTrace) Enabled() bool {
	return st != nil && st.Level == TraceLevelOutcomes
}

// RecordServe appends a serve record.
func (st *SessionTrace) RecordServe(record ServeRecord) {
	st.Serves = append(st.Serves, record)
}

// RecordTimeout appends a timeout record.
func (st *SessionTrace) RecordTimeout(record TimeoutRecord) {
	st.Timeouts = append(st.Timeouts, record)
}
