package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconWinner    = "¹" // Entry the shell actually runs
	IconShadowed  = "¶" // Entry hidden behind an earlier one
	IconIdentical = "≈" // Both names resolve to the same file
	IconDifferent = "≠" // Genuinely different files
	IconMissing   = "✗" // Not found anywhere on the path
	IconOK        = " " // Space (OK - no icon to reduce noise)
)
