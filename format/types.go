package format

type (
	Unit     uint8
	Notation uint8
)

const (
	UnitNone  Unit = 0x0 // UnitNone marks an absent instant or an empty container with no bound unit.
	UnitFrame Unit = 0x1 // UnitFrame represents 32-bit frame numbers.
	UnitTime  Unit = 0x2 // UnitTime represents 64-bit microsecond timestamps.

	NotationHalfOpen  Notation = 0x1 // NotationHalfOpen renders spans as "[start,end)".
	NotationInclusive Notation = 0x2 // NotationInclusive renders spans as "start:last".
)

func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "None"
	case UnitFrame:
		return "Frame"
	case UnitTime:
		return "Time"
	default:
		return "Unknown"
	}
}

// IsValid reports whether u names a concrete axis.
func (u Unit) IsValid() bool {
	return u == UnitFrame || u == UnitTime
}

func (n Notation) String() string {
	switch n {
	case NotationHalfOpen:
		return "HalfOpen"
	case NotationInclusive:
		return "Inclusive"
	default:
		return "Unknown"
	}
}
