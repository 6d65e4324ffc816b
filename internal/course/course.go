// Package course loads obstacle courses: tabular files describing when each
// obstacle materializes and where its gap sits. A course fully determines a
// session's obstacle schedule, so two players on the same course and seed see
// the same world.
package course

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mkoval/ghostbird/internal/sim"
)

// Course is a named, validated obstacle schedule.
type Course struct {
	Name      string
	Templates []sim.ObstacleTemplate
}

// Load reads a course file from disk. The course name is the file's base name
// without extension.
func Load(path string) (Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return Course{}, fmt.Errorf("failed to open course %s: %w", path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	c, err := Parse(f, name)
	if err != nil {
		return Course{}, fmt.Errorf("course %s: %w", path, err)
	}
	return c, nil
}

// Parse reads a course from r. The format is CSV with a header row (ignored)
// and three columns: gap-center fraction, gap-height fraction, spawn seconds.
// Any malformed row fails the whole parse with the offending line number; a
// course with a header and no rows is valid and ends a session immediately.
func Parse(r io.Reader, name string) (Course, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var templates []sim.ObstacleTemplate
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return Course{}, fmt.Errorf("line %d: %w", line, err)
		}
		if line == 1 {
			continue // Header
		}

		tpl, err := parseRow(record)
		if err != nil {
			return Course{}, fmt.Errorf("line %d: %w", line, err)
		}
		templates = append(templates, tpl)
	}

	return Course{Name: name, Templates: templates}, nil
}

func parseRow(record []string) (sim.ObstacleTemplate, error) {
	gapCenter, err := parseFraction(record[0], "gap center")
	if err != nil {
		return sim.ObstacleTemplate{}, err
	}
	gapHeight, err := parseFraction(record[1], "gap height")
	if err != nil {
		return sim.ObstacleTemplate{}, err
	}

	spawn, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return sim.ObstacleTemplate{}, fmt.Errorf("invalid spawn time %q", record[2])
	}
	if math.IsNaN(spawn) || math.IsInf(spawn, 0) || spawn < 0 {
		return sim.ObstacleTemplate{}, fmt.Errorf("spawn time %q out of range", record[2])
	}

	return sim.ObstacleTemplate{
		GapCenterFrac: gapCenter,
		GapHeightFrac: gapHeight,
		SpawnTime:     spawn,
	}, nil
}

// parseFraction accepts values in (0, 1]. NaN and infinities fail the range
// check, so no malformed geometry ever reaches the simulation.
func parseFraction(field, label string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s fraction %q", label, field)
	}
	if !(v > 0 && v <= 1) {
		return 0, fmt.Errorf("%s fraction %q outside (0, 1]", label, field)
	}
	return v, nil
}
