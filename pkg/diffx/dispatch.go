// dispatch.go - the convenience entry points layered on Diff (spec.md §6).
//
// DiffFiles/DiffStrings/ParseFormat/DiffDirs dispatch to the per-format
// parsers by file extension, grounded on the teacher's extension-sniffing
// in directory.go (DiscoverYAMLFiles) generalized from "only .yaml/.yml"
// to the full format table, and on cli.go's file-reading error wrapping.
package diffx

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ParseFunc parses raw content into a Value for one format.
type ParseFunc func(content []byte) (Value, error)

// parsersByFormat maps a format name (as used by DiffStrings and the
// extension table below) to its parser.
var parsersByFormat = map[string]ParseFunc{
	"json": ParseJSON,
	"yaml": ParseYAML,
	"toml": ParseTOML,
	"ini":  ParseINI,
	"csv":  ParseCSV,
	"xml":  ParseXML,
}

// ParseFormat parses content using the named format's parser
// (spec.md §6's parse_<fmt>).
func ParseFormat(content []byte, format string) (Value, error) {
	parse, ok := parsersByFormat[strings.ToLower(format)]
	if !ok {
		return Value{}, newConfigError("parse", "unknown format %q", format)
	}
	return parse(content)
}

// extensionToFormat maps a file extension (including the leading dot) to
// a format name, per spec.md §6's diff_files contract.
var extensionToFormat = map[string]string{
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
	".ini":  "ini",
	".cfg":  "ini",
	".xml":  "xml",
	".csv":  "csv",
}

func formatForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := extensionToFormat[ext]; ok {
		return format
	}
	return "json"
}

// DiffFiles reads both files, dispatches to a parser by extension, and
// diffs the results (spec.md §6). An unrecognised extension falls back to
// JSON; if that parse also fails, the caller gets a DiffError.
func DiffFiles(path1, path2 string, opts *Options) ([]Difference, error) {
	old, err := parseFile(path1)
	if err != nil {
		return nil, err
	}
	new, err := parseFile(path2)
	if err != nil {
		return nil, err
	}
	return Diff(old, new, opts)
}

func parseFile(path string) (Value, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Value{}, newDiffError("diff_files", path, err)
	}

	v, err := ParseFormat(content, formatForPath(path))
	if err != nil {
		return Value{}, newDiffError("diff_files", path, err)
	}
	return v, nil
}

// DiffStrings parses both strings with the named format's parser, then
// diffs the results (spec.md §6).
func DiffStrings(content1, content2, format string, opts *Options) ([]Difference, error) {
	old, err := ParseFormat([]byte(content1), format)
	if err != nil {
		return nil, err
	}
	new, err := ParseFormat([]byte(content2), format)
	if err != nil {
		return nil, err
	}
	return Diff(old, new, opts)
}

// discoverFilesRecursive walks dir recursively and returns the sorted
// slash-separated paths, relative to dir, of every file whose extension
// is recognised by formatForPath. Generalizes the teacher's
// DiscoverYAMLFiles (YAML-only, non-recursive) to every supported format
// and to subdirectories (SPEC_FULL.md's supplemented directory-mode
// feature).
func discoverFilesRecursive(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := extensionToFormat[ext]; !ok {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, newDiffError("dir", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// DiffDirs recursively walks both directories, pairs recognised files by
// relative path, and returns a map from relative path to that file's
// difference list (SPEC_FULL.md's supplemented directory-mode feature,
// grounded on the teacher's BuildFilePairPlan/runDirectory). A file
// present on only one side is reported as a single whole-file Added or
// Removed record at the empty path, carrying that side's full content.
func DiffDirs(dir1, dir2 string, opts *Options) (map[string][]Difference, error) {
	rels1, err := discoverFilesRecursive(dir1)
	if err != nil {
		return nil, err
	}
	rels2, err := discoverFilesRecursive(dir2)
	if err != nil {
		return nil, err
	}

	in1 := make(map[string]bool, len(rels1))
	for _, r := range rels1 {
		in1[r] = true
	}
	in2 := make(map[string]bool, len(rels2))
	for _, r := range rels2 {
		in2[r] = true
	}

	union := make(map[string]bool, len(rels1)+len(rels2))
	for _, r := range rels1 {
		union[r] = true
	}
	for _, r := range rels2 {
		union[r] = true
	}

	rels := make([]string, 0, len(union))
	for r := range union {
		rels = append(rels, r)
	}
	sort.Strings(rels)

	result := make(map[string][]Difference, len(rels))

	for _, rel := range rels {
		path1 := filepath.Join(dir1, filepath.FromSlash(rel))
		path2 := filepath.Join(dir2, filepath.FromSlash(rel))

		switch {
		case in1[rel] && in2[rel]:
			old, err := parseFile(path1)
			if err != nil {
				return nil, err
			}
			new, err := parseFile(path2)
			if err != nil {
				return nil, err
			}
			diffs, err := Diff(old, new, opts)
			if err != nil {
				return nil, err
			}
			result[rel] = diffs
		case in1[rel]:
			old, err := parseFile(path1)
			if err != nil {
				return nil, err
			}
			result[rel] = []Difference{{Kind: DiffRemoved, Path: "", Value: old}}
		case in2[rel]:
			new, err := parseFile(path2)
			if err != nil {
				return nil, err
			}
			result[rel] = []Difference{{Kind: DiffAdded, Path: "", Value: new}}
		}
	}

	return result, nil
}
