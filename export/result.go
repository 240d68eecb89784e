package export

// Status classifies a finished export run. A run that produced fewer
// rows than the server reported, or none at all, is a warning, not a
// failure.
type Status int

const (
	// StatusComplete means every discovered record was written.
	StatusComplete Status = iota
	// StatusPartial means some discovered records were not written.
	StatusPartial
	// StatusNoData means the export produced a header-only file.
	StatusNoData
)

// String implements fmt.Stringer
func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusPartial:
		return "partial"
	case StatusNoData:
		return "no data"
	}
	return "unknown"
}

// Result summarizes one exporter invocation.
type Result struct {
	Status   Status
	Path     string
	Exported int // data rows written
	Expected int // records discovered in the document, minus filtered
	Skipped  int // records dropped for missing a primary title
	Filtered int // records excluded by the filter expression
}

func classify(exported, expected int) Status {
	switch {
	case exported == 0:
		return StatusNoData
	case exported < expected:
		return StatusPartial
	}
	return StatusComplete
}
