package models

// Descriptor is the normalized representation of a remote template file.
// Produced only by the catalog fetcher; immutable afterwards.
type Descriptor struct {
	Label       string
	Description string
	URL         string
}

type MergeMode int

const (
	Overwrite MergeMode = iota
	Append
)

func (m MergeMode) String() string {
	if m == Append {
		return "append"
	}
	return "overwrite"
}

// MergeOperation is built once per user interaction and consumed by the
// merge engine. Never mutated after construction.
type MergeOperation struct {
	Mode       MergeMode
	TargetPath string
	Selected   Descriptor
}
