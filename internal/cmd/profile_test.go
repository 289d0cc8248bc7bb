package cmd

import (
	"testing"

	"github.com/hirepath/hirepath/internal/models"
)

func TestParseAssignments(t *testing.T) {
	values, err := parseAssignments(
		[]string{"title=Senior Engineer", "skills=Go, SQL ,", "bio=hello=world"},
		listFields[models.RoleJobSeeker],
	)
	if err != nil {
		t.Fatalf("parseAssignments() error = %v", err)
	}

	if got := values["title"]; got != "Senior Engineer" {
		t.Fatalf("title = %v", got)
	}
	skills, ok := values["skills"].([]string)
	if !ok || len(skills) != 2 || skills[0] != "Go" || skills[1] != "SQL" {
		t.Fatalf("skills = %v", values["skills"])
	}
	// Only the first '=' splits; values may contain more.
	if got := values["bio"]; got != "hello=world" {
		t.Fatalf("bio = %v", got)
	}
}

func TestParseAssignmentsRejectsMalformedPair(t *testing.T) {
	if _, err := parseAssignments([]string{"title"}, nil); err == nil {
		t.Fatalf("expected error for pair without '='")
	}
	if _, err := parseAssignments([]string{"=value"}, nil); err == nil {
		t.Fatalf("expected error for empty field name")
	}
}

func TestDecodeUpdateRejectsForeignFields(t *testing.T) {
	var update models.JobSeekerUpdate
	err := decodeUpdate(map[string]any{"company_name": "Acme"}, &update)
	if err == nil {
		t.Fatalf("expected employer field to be rejected for job-seeker update")
	}
}

func TestDecodeUpdateSetsOnlyGivenFields(t *testing.T) {
	var update models.JobSeekerUpdate
	err := decodeUpdate(map[string]any{"title": "Engineer", "skills": []string{"Go"}}, &update)
	if err != nil {
		t.Fatalf("decodeUpdate() error = %v", err)
	}
	if update.Title == nil || *update.Title != "Engineer" {
		t.Fatalf("Title = %v", update.Title)
	}
	if update.Skills == nil || len(*update.Skills) != 1 {
		t.Fatalf("Skills = %v", update.Skills)
	}
	if update.Bio != nil {
		t.Fatalf("Bio should stay nil, got %v", *update.Bio)
	}
}
