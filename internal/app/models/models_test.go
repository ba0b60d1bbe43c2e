package models

import "testing"

func TestTermOrdinal(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		semester Semester
		want     int
	}{
		{name: "spring", year: 2024, semester: SemesterSpring, want: 20241},
		{name: "summer", year: 2024, semester: SemesterSummer, want: 20242},
		{name: "fall", year: 2024, semester: SemesterFall, want: 20243},
		{name: "fall before next spring", year: 2023, semester: SemesterFall, want: 20233},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TermOrdinal(tt.year, tt.semester); got != tt.want {
				t.Errorf("TermOrdinal(%d, %s) = %d, want %d", tt.year, tt.semester, got, tt.want)
			}
		})
	}

	// Fall of one year must sort before Spring of the next.
	if TermOrdinal(2023, SemesterFall) >= TermOrdinal(2024, SemesterSpring) {
		t.Error("Fall 2023 should order before Spring 2024")
	}
}

func TestSemesterValid(t *testing.T) {
	for _, s := range []Semester{SemesterSpring, SemesterSummer, SemesterFall} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Semester{"", "Winter", "fall"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestDegreeLevelValid(t *testing.T) {
	for _, l := range []DegreeLevel{LevelBA, LevelBS, LevelMS, LevelPhD, LevelCert} {
		if !l.Valid() {
			t.Errorf("%s should be valid", l)
		}
	}
	for _, l := range []DegreeLevel{"", "bs", "MBA"} {
		if l.Valid() {
			t.Errorf("%q should not be valid", l)
		}
	}
}

func TestFormatSectionNum(t *testing.T) {
	tests := []struct {
		num  int
		want string
	}{
		{1, "001"},
		{42, "042"},
		{999, "999"},
	}
	for _, tt := range tests {
		if got := FormatSectionNum(tt.num); got != tt.want {
			t.Errorf("FormatSectionNum(%d) = %q, want %q", tt.num, got, tt.want)
		}
	}
}

func TestEvaluationTotal(t *testing.T) {
	e := Evaluation{CountA: 5, CountB: 10, CountC: 3, CountF: 2}
	if got := e.Total(); got != 20 {
		t.Errorf("Total() = %d, want 20", got)
	}

	var empty Evaluation
	if got := empty.Total(); got != 0 {
		t.Errorf("Total() on zero value = %d, want 0", got)
	}
}
