package engine

// Rotation wires one session: which role is forked into Staging, which
// role receives Pending on commit, whether that role is cleared first and
// whether the balancing policy runs afterwards.
type Rotation struct {
	From    Role
	To      Role
	Clear   bool
	Balance bool
}

var (
	// Neutral is the rotation every verb uses by default.
	Neutral = Rotation{From: Source, To: Result, Clear: true, Balance: true}
	// Keep appends each verb's output to Result instead of replacing it.
	Keep = Rotation{From: Source, To: Result, Clear: false, Balance: true}
	// SyncRotation copies Result over Source.
	SyncRotation = Rotation{From: Result, To: Source, Clear: true}
	// ShiftRotation appends Result to Source.
	ShiftRotation = Rotation{From: Result, To: Source, Clear: false}
	// OutSyncRotation copies Source over Result.
	OutSyncRotation = Rotation{From: Source, To: Result, Clear: true}
	// OutShiftRotation appends Source to Result.
	OutShiftRotation = Rotation{From: Source, To: Result, Clear: false}
	// ReupRotation rewrites Source in place.
	ReupRotation = Rotation{From: Source, To: Source, Clear: true}
)

// String describes the rotation for logs and spans.
func (r Rotation) String() string {
	s := r.From.String() + "->" + r.To.String()
	if r.Clear {
		s += ":clear"
	}
	if r.Balance {
		s += ":balance"
	}
	return s
}
