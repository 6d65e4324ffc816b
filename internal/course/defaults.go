package course

import (
	"bytes"
	_ "embed"
)

//go:embed defaults/classic.csv
var defaultCourseCSV []byte

// Default returns the embedded built-in course. The embedded file is
// validated at test time, so a parse failure here is a build defect.
func Default() Course {
	c, err := Parse(bytes.NewReader(defaultCourseCSV), "classic")
	if err != nil {
		panic("embedded default course is invalid: " + err.Error())
	}
	return c
}
