package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrEmptyLevel is returned for a level description without any rows.
	ErrEmptyLevel = errors.New("level has no rows")
	// ErrRaggedRows is returned when a row's length differs from the first row's.
	ErrRaggedRows = errors.New("level rows differ in length")
	// ErrInvalidTile is returned for a token that is not a non-negative integer.
	ErrInvalidTile = errors.New("invalid tile value")
)

// LoadError describes why a level description could not be parsed.
// Err is one of ErrEmptyLevel, ErrRaggedRows, ErrInvalidTile, or an I/O error.
type LoadError struct {
	// Path is the file or name the level was read from.
	Path string
	// Line is the 1-based line number of the offending row, 0 when not tied to a line.
	Line int
	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to load level %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to load level %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Parse reads a level description: one row per line, space separated
// non-negative integers. Blank lines are skipped. Every row must have as many
// tiles as the first.
//
// Parameters:
//   - name: the name reported in errors
//   - r: the level text
//
// Returns:
//   - [][]int: the tile grid
//   - error: a *LoadError describing the first problem found
func Parse(name string, r io.Reader) ([][]int, error) {
	var tiles [][]int

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, &LoadError{Path: name, Line: line, Err: fmt.Errorf("%w %q", ErrInvalidTile, f)}
			}
			row = append(row, v)
		}

		if len(tiles) > 0 && len(row) != len(tiles[0]) {
			return nil, &LoadError{
				Path: name,
				Line: line,
				Err:  fmt.Errorf("%w: got %d tiles, want %d", ErrRaggedRows, len(row), len(tiles[0])),
			}
		}
		tiles = append(tiles, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	if len(tiles) == 0 {
		return nil, &LoadError{Path: name, Err: ErrEmptyLevel}
	}

	return tiles, nil
}

// Load parses a level description and lays it out over a width × height play area.
//
// Parameters:
//   - name: identifier for the level
//   - r: the level text
//   - width: play area width in pixels
//   - height: play area height in pixels
//
// Returns:
//   - *GameLevel: the laid-out level
//   - error: a *LoadError if the description is malformed
func Load(name string, r io.Reader, width, height float32) (*GameLevel, error) {
	tiles, err := Parse(name, r)
	if err != nil {
		return nil, err
	}
	return New(name, tiles, width, height), nil
}

// LoadFile reads and lays out the level stored at path.
//
// Parameters:
//   - path: the level file
//   - width: play area width in pixels
//   - height: play area height in pixels
//
// Returns:
//   - *GameLevel: the laid-out level, named after path
//   - error: a *LoadError if the file cannot be read or is malformed
func LoadFile(path string, width, height float32) (*GameLevel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return Load(path, f, width, height)
}
