// Package tsplib parses two coordinate input formats into []geom.City:
//
//   - TSPLIB's NODE_COORD_SECTION / DISPLAY_DATA_SECTION: "id x y" lines
//     bracketed by keyword section markers, terminated by EOF.
//   - A flat format: a leading integer N, then N "x y" lines.
//
// Parsing itself is out of scope for the solver core (the core only ever
// sees a []geom.City); this package is the ambient plumbing a command-line
// driver uses to get there.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mgrzywacz/eutsp/internal/geom"
)

// ErrEmptyInput is returned when the reader produces no usable coordinate
// lines at all.
var ErrEmptyInput = errors.New("tsplib: no coordinates found")

// Document is a parsed coordinate file: a name (TSPLIB's NAME field, or
// empty for the flat format) plus the coordinate set itself.
type Document struct {
	Name   string
	Cities []geom.City
}

const (
	sectionNodeCoord   = "NODE_COORD_SECTION"
	sectionDisplayData = "DISPLAY_DATA_SECTION"
	sectionEOF         = "EOF"
)

// ParseTSPLIB reads a TSPLIB-format document from r.
//
// Complexity: O(n) time and space in the number of lines.
func ParseTSPLIB(r io.Reader) (Document, error) {
	var doc Document
	inCoordSection := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)

		if upper == sectionEOF {
			break
		}
		if upper == sectionNodeCoord || upper == sectionDisplayData {
			inCoordSection = true
			continue
		}

		if inCoordSection {
			c, err := parseCoordLine(line)
			if err != nil {
				return Document{}, fmt.Errorf("tsplib: line %d: %w", lineNo, err)
			}
			doc.Cities = append(doc.Cities, c)
			continue
		}

		// Metadata line: "KEY : value" or "KEY: value".
		if key, val, ok := splitKeyValue(line); ok && key == "NAME" {
			doc.Name = val
		}
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("tsplib: read failed: %w", err)
	}
	if len(doc.Cities) == 0 {
		return Document{}, ErrEmptyInput
	}
	return doc, nil
}

// parseCoordLine parses one "id x y" line. The id column is positional and
// discarded — the city's index in the returned slice is its canonical index.
func parseCoordLine(line string) (geom.City, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return geom.City{}, fmt.Errorf("expected 'id x y', got %q", line)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.City{}, fmt.Errorf("bad x coordinate: %w", err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geom.City{}, fmt.Errorf("bad y coordinate: %w", err)
	}
	return geom.City{X: x, Y: y}, nil
}

func splitKeyValue(line string) (key, val string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(strings.ToUpper(line[:idx])), strings.TrimSpace(line[idx+1:]), true
}

// ParseFlat reads the flat format: a leading integer N, then N "x y" lines.
//
// Complexity: O(n) time and space.
func ParseFlat(r io.Reader) (Document, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return Document{}, ErrEmptyInput
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return Document{}, fmt.Errorf("tsplib: bad city count: %w", err)
	}
	if n <= 0 {
		return Document{}, ErrEmptyInput
	}

	cities := make([]geom.City, 0, n)
	for len(cities) < n {
		if !scanner.Scan() {
			return Document{}, fmt.Errorf("tsplib: expected %d coordinate lines, got %d", n, len(cities))
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return Document{}, fmt.Errorf("tsplib: expected 'x y', got %q", line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Document{}, fmt.Errorf("bad x coordinate: %w", err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Document{}, fmt.Errorf("bad y coordinate: %w", err)
		}
		cities = append(cities, geom.City{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("tsplib: read failed: %w", err)
	}
	return Document{Cities: cities}, nil
}
