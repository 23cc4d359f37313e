package types

// OperationKind identifies a step in the install sequence
type OperationKind string

const (
	// OperationDirCreate ensures the destination bin directory exists
	OperationDirCreate OperationKind = "dir_create"

	// OperationPayload places one payload and marks it executable
	OperationPayload OperationKind = "payload"

	// OperationPathEntry ensures the PATH export line in the startup file
	OperationPathEntry OperationKind = "path_entry"
)

// Operation records a single completed (or planned) install step
type Operation struct {
	Kind        OperationKind
	Description string
	Target      string

	// Changed is false when the step found nothing to do, e.g. the
	// PATH entry was already present
	Changed bool
}

// RunResult holds the outcome of a full install run
type RunResult struct {
	Operations []Operation
	DryRun     bool
}
