package vary

// Tag identifies which of its two states a container instance is in.
type Tag string

const (
	TagPresent Tag = "Present"
	TagAbsent  Tag = "Absent"
	TagSuccess Tag = "Success"
	TagFailure Tag = "Failure"

	// TagDefault is the fallback key in mapped branch specifications.
	TagDefault Tag = "_"
)

// Variant is implemented by both container families. It is the capability the
// matching engine relies on: a tag plus access to the contained value.
type Variant interface {
	// Tag returns the variant discriminant.
	Tag() Tag
	// Payload returns the contained value and whether one exists.
	// Absent is the only variant without a payload.
	Payload() (any, bool)
}
