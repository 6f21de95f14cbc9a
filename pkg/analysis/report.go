package analysis

// Report holds aggregated views of a run, computed once by Analyze and
// shared by renderers.
type Report struct {
	// Version is the report format version.
	Version string `json:"version"`

	// Entries is the flat violation list in file then line order.
	Entries []Entry `json:"entries,omitempty"`

	// ByFile groups violations by file. Files without violations are omitted.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByRule groups violations by rule.
	ByRule []RuleAnalysis `json:"byRule,omitempty"`

	// Totals contains aggregate counts.
	Totals Totals `json:"summary"`
}

// Entry is one violation with a display path and formatted rule label.
type Entry struct {
	Path     string `json:"path"`
	Rule     string `json:"rule"`
	RuleID   string `json:"ruleId"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
}

// Totals contains aggregate counts for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesErrored    int `json:"filesErrored"`
	Issues          int `json:"totalIssues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Infos           int `json:"infos"`
	RuleErrors      int `json:"ruleErrors"`
}

// HasIssues reports whether any violation was found.
func (t Totals) HasIssues() bool {
	return t.Issues > 0
}

// HasErrors reports whether any error-severity violation was found.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis aggregates violations for one file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Rules    []string `json:"rules,omitempty"`
}

// RuleAnalysis aggregates violations for one rule.
type RuleAnalysis struct {
	RuleID   string   `json:"ruleId"`
	Rule     string   `json:"rule"`
	Issues   int      `json:"issues"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Infos    int      `json:"infos"`
	Files    []string `json:"files,omitempty"`
}

func (t *Totals) add(severity string) {
	t.Issues++
	tally(severity, &t.Errors, &t.Warnings, &t.Infos)
}

func (fa *FileAnalysis) add(severity string) {
	fa.Issues++
	tally(severity, &fa.Errors, &fa.Warnings, &fa.Infos)
}

func (ra *RuleAnalysis) add(severity string) {
	ra.Issues++
	tally(severity, &ra.Errors, &ra.Warnings, &ra.Infos)
}

func tally(severity string, errs, warnings, infos *int) {
	switch severity {
	case severityError:
		*errs++
	case severityInfo:
		*infos++
	default:
		*warnings++
	}
}
