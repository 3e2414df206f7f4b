package automaton

// Outcome describes where a Runner's run stands.
type Outcome string

const (
	Pending  Outcome = ""
	Running  Outcome = "Running"
	Accepted Outcome = "Accepted"
	Rejected Outcome = "Rejected"
	Canceled Outcome = "Canceled"
)

// IsTerminated reports whether the run is over, whichever way it went.
func (o Outcome) IsTerminated() bool {
	return o == Accepted || o == Rejected || o == Canceled
}

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "Pending"
	case Running, Accepted, Rejected, Canceled:
		return string(o)
	default:
		return "Unknown"
	}
}
