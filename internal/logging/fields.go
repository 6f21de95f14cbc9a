package logging

// Structured field keys shared across packages.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"
	FieldSource     = "source"

	FieldFlavor = "flavor"
	FieldFormat = "format"
	FieldJobs   = "jobs"
	FieldStrict = "strict"

	FieldCount      = "count"
	FieldFiles      = "files"
	FieldViolations = "violations"
	FieldRuleErrors = "rule_errors"

	FieldRule = "rule"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
