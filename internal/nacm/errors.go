package nacm

import "fmt"

// DeniedAccessControl is the structured payload behind a Deny verdict for
// RPC and write requests (spec.md §7). It is not a Go error in the usual
// sense — a deny is a verdict, not a failure — but it satisfies the error
// interface so callers that want to `errors.As` it into a wire payload can.
type DeniedAccessControl struct {
	AppTag  string
	Message string
}

func (d *DeniedAccessControl) Error() string {
	return fmt.Sprintf("%s: %s", d.AppTag, d.Message)
}

func newDeniedRule() *DeniedAccessControl {
	return &DeniedAccessControl{AppTag: "access-denied", Message: "access denied"}
}

func newDeniedDefault() *DeniedAccessControl {
	return &DeniedAccessControl{AppTag: "access-denied", Message: "default deny"}
}

// FatalConfig is raised when a mandatory policy field is missing or
// unrecognised (spec.md §7). It terminates the current evaluation; the
// engine does not recover from it locally.
type FatalConfig struct {
	Reason string
}

func (e *FatalConfig) Error() string {
	return "nacm: fatal configuration error: " + e.Reason
}

// CollaboratorFailure wraps a failure returned by the schema or data-tree
// collaborators (spec.md §7), propagated unchanged.
type CollaboratorFailure struct {
	Op  string
	Err error
}

func (e *CollaboratorFailure) Error() string {
	return fmt.Sprintf("nacm: collaborator failure in %s: %v", e.Op, e.Err)
}

func (e *CollaboratorFailure) Unwrap() error {
	return e.Err
}
