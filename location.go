package efjson

// Location describes the syntactic slot a character occupies in the
// document being parsed.
type Location uint8

const (
	// LocationRoot is the top-level document position, before or after
	// the single root value.
	LocationRoot Location = iota
	// LocationKey is inside an object's property name.
	LocationKey
	// LocationValue is inside an object's property value.
	LocationValue
	// LocationElement is inside an array element.
	LocationElement
	// LocationObject is an object's ',' or ':'. The object's '{' and '}'
	// are not reported here: they carry the Location of the slot the
	// object fills (Root, Value or Element).
	LocationObject
	// LocationArray is an array's ','. The array's '[' and ']' are not
	// reported here: they carry the Location of the slot the array fills.
	LocationArray
)

func (l Location) String() string {
	switch l {
	case LocationRoot:
		return "Root"
	case LocationKey:
		return "Key"
	case LocationValue:
		return "Value"
	case LocationElement:
		return "Element"
	case LocationObject:
		return "Object"
	case LocationArray:
		return "Array"
	default:
		return "Location(?)"
	}
}

// locationState is the parser's internal syntactic slot, one level more
// refined than the public Location: it distinguishes, e.g., "first key of
// an empty object" from "key after a comma" so trailing-comma handling
// and EOF handling can tell them apart. next/public map it down to the
// public three-ish-way Location.
type locationState uint8

const (
	stRootStart locationState = iota
	stKeyFirstStart
	stKeyStart
	stValueStart
	stElementFirstStart
	stElementStart
	stRootEnd
	stKeyEnd
	stValueEnd
	stElementEnd
	stEOF
)

// next advances a *Start state to its matching *End state once the atom
// occupying that slot has been fully consumed.
func (s locationState) next() locationState {
	switch s {
	case stRootStart:
		return stRootEnd
	case stKeyFirstStart, stKeyStart:
		return stKeyEnd
	case stValueStart:
		return stValueEnd
	case stElementFirstStart, stElementStart:
		return stElementEnd
	default:
		panic("efjson: next() on a non-Start location state")
	}
}

// public maps the internal location state to the public Location.
func (s locationState) public() Location {
	switch s {
	case stRootStart, stRootEnd, stEOF:
		return LocationRoot
	case stKeyFirstStart, stKeyStart, stKeyEnd:
		return LocationKey
	case stValueStart, stValueEnd:
		return LocationValue
	case stElementFirstStart, stElementStart, stElementEnd:
		return LocationElement
	default:
		panic("efjson: invalid location state")
	}
}
