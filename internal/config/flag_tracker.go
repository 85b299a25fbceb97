package config

// FlagTracker records which flags were explicitly set on the command line.
// It is read-only after construction and safe for concurrent reads.
type FlagTracker struct {
	flags map[string]bool
}

// NewFlagTrackerWithFlags creates a new flag tracker with initial flags
func NewFlagTrackerWithFlags(flags map[string]bool) *FlagTracker {
	// Create a copy to avoid external modifications
	copiedFlags := make(map[string]bool, len(flags))
	for k, v := range flags {
		copiedFlags[k] = v
	}
	return &FlagTracker{
		flags: copiedFlags,
	}
}

// WasSet checks if a flag was explicitly set
func (ft *FlagTracker) WasSet(flagName string) bool {
	return ft.flags[flagName]
}

// MergeString returns override when the flag was set, base otherwise
func (ft *FlagTracker) MergeString(base, override, flagName string) string {
	if ft.WasSet(flagName) {
		return override
	}
	return base
}

// MergeBool returns override when the flag was set, base otherwise
func (ft *FlagTracker) MergeBool(base, override bool, flagName string) bool {
	if ft.WasSet(flagName) {
		return override
	}
	return base
}

// MergeStringSlice returns a non-empty override when the flag was set
func (ft *FlagTracker) MergeStringSlice(base, override []string, flagName string) []string {
	if ft.WasSet(flagName) && len(override) > 0 {
		return override
	}
	return base
}
