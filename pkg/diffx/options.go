// options.go - the option resolver (spec.md §4.5).
//
// Validates and compiles a raw Options struct into a resolvedOptions the
// engine consults during the walk, in the style of the teacher's
// CLIConfig.Validate()/ToCompareOptions() split between user-facing config
// and engine-facing, pre-validated settings.
package diffx

import "regexp"

// Options configures diff(). The zero Options is the engine's default
// behaviour: exact equality, positional sequence alignment, no filtering.
type Options struct {
	// Epsilon is the absolute float tolerance (spec.md §4.4). Must be >= 0.
	Epsilon float64
	// ArrayIDKey switches sequence comparison to the keyed regime
	// (spec.md §4.3) when set.
	ArrayIDKey string
	// IgnoreKeysRegex skips mapping keys matching this pattern during
	// descent, pruning the subtree entirely (spec.md §4.2).
	IgnoreKeysRegex string
	// PathFilter retains only differences whose rendered path contains
	// this substring; applied after the full list is produced.
	PathFilter string
	// IgnoreWhitespace strips Unicode whitespace from String scalars
	// before comparison.
	IgnoreWhitespace bool
	// IgnoreCase applies Unicode simple case folding to String scalars
	// before comparison.
	IgnoreCase bool
	// ShowUnchanged also emits an Unchanged record for equal leaves.
	ShowUnchanged bool
	// ShowTypes attaches the variant tag of each value for formatters
	// that render it (old_type/new_type/value_type in JSON output).
	ShowTypes bool
	// OutputFormat selects the formatter: "diffx", "json", "yaml", or
	// "unified". Consumed by the formatter, not the engine.
	OutputFormat string
	// ContextLines is the number of surrounding context lines the
	// unified formatter includes. Ignored by other formatters.
	ContextLines int
	// BriefMode is a formatter hint: render only "differ"/"equal". No
	// formatter in this package reads it; FormatOutput and
	// FormatOutputWithContext render the full list regardless.
	BriefMode bool
	// QuietMode is a caller hint: the list is still computed and
	// returned, but callers may discard it and look only at len() > 0.
	QuietMode bool
	// UseMemoryOptimization and BatchSize are implementation-defined
	// hints permitting streaming iteration of very large mappings and
	// sequences. They MUST NOT alter the observable difference list.
	UseMemoryOptimization bool
	BatchSize             int
}

// resolvedOptions is the validated, engine-ready form of Options: the
// regex is pre-compiled once instead of on every recursive call, mirroring
// the teacher's compileRegexPatterns/FilterDiffsWithRegexp split.
type resolvedOptions struct {
	epsilon          float64
	arrayIDKey       string
	ignoreKeysRegex  *regexp.Regexp
	pathFilter       string
	ignoreWhitespace bool
	ignoreCase       bool
	showUnchanged    bool
	showTypes        bool
}

// validOutputFormats lists the formatter names recognised by
// FormatOutputWithContext.
var validOutputFormats = []string{"diffx", "json", "yaml", "unified"}

// resolveOptions validates opts and compiles it into a resolvedOptions.
// A nil Options resolves to all defaults. Returns a DiffError for invalid
// regex or an unrecognised output format (spec.md §4.5, §7).
func resolveOptions(opts *Options) (*resolvedOptions, error) {
	if opts == nil {
		opts = &Options{}
	}

	if opts.Epsilon < 0 {
		return nil, newConfigError("diff", "epsilon must be >= 0, got %v", opts.Epsilon)
	}

	ro := &resolvedOptions{
		epsilon:          opts.Epsilon,
		arrayIDKey:       opts.ArrayIDKey,
		pathFilter:       opts.PathFilter,
		ignoreWhitespace: opts.IgnoreWhitespace,
		ignoreCase:       opts.IgnoreCase,
		showUnchanged:    opts.ShowUnchanged,
		showTypes:        opts.ShowTypes,
	}

	if opts.IgnoreKeysRegex != "" {
		re, err := regexp.Compile(opts.IgnoreKeysRegex)
		if err != nil {
			return nil, newDiffError("diff", "", err)
		}
		ro.ignoreKeysRegex = re
	}

	if opts.OutputFormat != "" {
		if err := validateOutputFormat(opts.OutputFormat); err != nil {
			return nil, err
		}
	}

	return ro, nil
}

func validateOutputFormat(format string) error {
	for _, valid := range validOutputFormats {
		if format == valid {
			return nil
		}
	}
	return newConfigError("diff", "unknown output format %q, valid formats: diffx, json, yaml, unified", format)
}
