package course

import (
	"strings"
	"testing"
)

func TestParseValidCourse(t *testing.T) {
	input := strings.Join([]string{
		"gap_center,gap_height,spawn_seconds",
		"0.5,0.3,0",
		"0.4, 0.25, 1.5",
	}, "\n")

	c, err := Parse(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "test" {
		t.Errorf("name = %q, want %q", c.Name, "test")
	}
	if len(c.Templates) != 2 {
		t.Fatalf("got %d templates, want 2", len(c.Templates))
	}
	if c.Templates[0].GapCenterFrac != 0.5 || c.Templates[0].SpawnTime != 0 {
		t.Errorf("first template parsed wrong: %+v", c.Templates[0])
	}
	if c.Templates[1].GapHeightFrac != 0.25 || c.Templates[1].SpawnTime != 1.5 {
		t.Errorf("second template parsed wrong: %+v", c.Templates[1])
	}
}

func TestParseHeaderOnlyCourseIsEmpty(t *testing.T) {
	c, err := Parse(strings.NewReader("gap_center,gap_height,spawn_seconds\n"), "empty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Templates) != 0 {
		t.Errorf("got %d templates, want 0", len(c.Templates))
	}
}

func TestParseRejectsMalformedRows(t *testing.T) {
	header := "gap_center,gap_height,spawn_seconds\n"

	cases := []struct {
		name string
		row  string
		want string // substring of the error
	}{
		{"non-numeric gap center", "abc,0.3,0", "gap center"},
		{"non-numeric gap height", "0.5,xyz,0", "gap height"},
		{"non-numeric spawn time", "0.5,0.3,later", "spawn time"},
		{"gap center zero", "0,0.3,0", "outside (0, 1]"},
		{"gap center above one", "1.5,0.3,0", "outside (0, 1]"},
		{"gap height negative", "0.5,-0.3,0", "outside (0, 1]"},
		{"nan gap center", "NaN,0.3,0", "outside (0, 1]"},
		{"nan spawn time", "0.5,0.3,NaN", "out of range"},
		{"negative spawn time", "0.5,0.3,-1", "out of range"},
		{"infinite spawn time", "0.5,0.3,+Inf", "out of range"},
		{"too few columns", "0.5,0.3", "line 2"},
		{"too many columns", "0.5,0.3,0,extra", "line 2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header+c.row+"\n"), "bad")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("error %q does not mention %q", err, c.want)
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("error %q does not name the offending line", err)
			}
		})
	}
}

func TestParseNamesCorrectLine(t *testing.T) {
	input := strings.Join([]string{
		"gap_center,gap_height,spawn_seconds",
		"0.5,0.3,0",
		"0.4,0.3,1",
		"bad,0.3,2",
	}, "\n")

	_, err := Parse(strings.NewReader(input), "test")
	if err == nil || !strings.Contains(err.Error(), "line 4") {
		t.Errorf("expected a line 4 error, got %v", err)
	}
}

func TestDefaultCourseIsValid(t *testing.T) {
	c := Default()
	if c.Name != "classic" {
		t.Errorf("name = %q, want %q", c.Name, "classic")
	}
	if len(c.Templates) == 0 {
		t.Fatal("embedded course has no obstacles")
	}

	prev := -1.0
	for i, tpl := range c.Templates {
		if tpl.SpawnTime <= prev {
			t.Errorf("template %d: spawn times should increase, %f after %f",
				i, tpl.SpawnTime, prev)
		}
		prev = tpl.SpawnTime
	}
}
