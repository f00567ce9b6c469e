// Package builder defines shared constants used by the list constructors.
package builder

//-----------------------------------------------------------------------------
// Constructor name constants, used to prefix errors with context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildList is the canonical name for the BuildList orchestrator.
	MethodBuildList = "BuildList"
	// MethodRegular is the canonical name for the Regular constructor.
	MethodRegular = "Regular"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
)

// MinSegments is the smallest segment count a constructor accepts.
const MinSegments = 1

// FirstSegmentID is the ID DefaultIDFn assigns to the first segment.
const FirstSegmentID = 1
