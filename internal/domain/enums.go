package domain

// BreakReason categorizes why a stretch of time was excluded from active work.
type BreakReason string

const (
	BreakIdle   BreakReason = "idle"
	BreakManual BreakReason = "manual"
)

// ValidBreakReasons is the canonical set of accepted break reason strings.
var ValidBreakReasons = map[string]bool{
	"idle": true, "manual": true,
}

// Valid reports whether the reason is one of the known values.
func (r BreakReason) Valid() bool {
	return ValidBreakReasons[string(r)]
}
