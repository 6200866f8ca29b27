package text

import (
	"context"
	"fmt"
	"io"
)

// ReplacementRule defines a single literal text replacement
type ReplacementRule struct {
	// FromText is the text to replace
	FromText string

	// ToText is the replacement text, may be empty
	ToText string
}

// Change records one rule that matched during a replacement pass
type Change struct {
	FromText string
	ToText   string
	Count    int
}

// String renders the change the way the fix report prints it
func (c Change) String() string {
	return fmt.Sprintf("  '%s' -> '%s' (%d occurrences)", c.FromText, c.ToText, c.Count)
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if the content differs from the original
	WasModified bool

	// ReplacementCount is the total number of occurrences replaced
	ReplacementCount int

	// Changes lists the matching rules in the order they were applied
	Changes []Change

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the rules to the content in order, each rule seeing
	// the output of the ones before it
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
