package domain

// SampleType classifies a laboratory part. It is fixed at creation.
type SampleType string

const (
	SampleTypeBacterium SampleType = "bacterium"
	SampleTypePrimer    SampleType = "primer"
	SampleTypeYeast     SampleType = "yeast"
	SampleTypeOther     SampleType = "other"
)

func (t SampleType) String() string { return string(t) }

func (t SampleType) IsValid() bool {
	switch t {
	case SampleTypeBacterium, SampleTypePrimer, SampleTypeYeast, SampleTypeOther:
		return true
	}
	return false
}

// Letter returns the single-letter code used in identifier prefixes.
// Anything outside the known types maps to "x".
func (t SampleType) Letter() string {
	switch t {
	case SampleTypeBacterium:
		return "e"
	case SampleTypePrimer:
		return "p"
	case SampleTypeYeast:
		return "y"
	default:
		return "x"
	}
}

// OperationType identifies the kind of mutation recorded in the operation log.
type OperationType string

const (
	OperationCreatePart OperationType = "create part"
	OperationUpdatePart OperationType = "update part"
	OperationDeletePart OperationType = "delete part"
)

func (o OperationType) String() string { return string(o) }

// Level returns the severity the operation is logged with.
func (o OperationType) Level() int {
	switch o {
	case OperationCreatePart:
		return 3
	case OperationUpdatePart, OperationDeletePart:
		return 4
	}
	return 0
}

// Well-known group names carried by authenticated identities.
const (
	GroupUsers          = "users"
	GroupAdministrators = "administrators"
)
