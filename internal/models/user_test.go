package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestUserJSONCarriesJobSeekerVariant(t *testing.T) {
	user := User{
		ID:        "u1",
		Email:     "s@example.com",
		Name:      "Sarah",
		Role:      RoleJobSeeker,
		CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		JobSeeker: &JobSeekerProfile{
			Title:  "Engineer",
			Skills: []string{"Go"},
		},
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"profile"`) {
		t.Fatalf("expected profile payload in %s", data)
	}

	var got User
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.JobSeeker == nil {
		t.Fatalf("expected job-seeker variant, got %+v", got)
	}
	if got.Employer != nil {
		t.Fatalf("expected nil employer variant, got %+v", got.Employer)
	}
	if got.JobSeeker.Title != "Engineer" || len(got.JobSeeker.Skills) != 1 {
		t.Fatalf("unexpected profile: %+v", got.JobSeeker)
	}
}

func TestUserJSONSelectsVariantByRole(t *testing.T) {
	raw := `{"id":"u2","email":"e@example.com","name":"Dana","role":"employer",` +
		`"created_at":"2025-01-02T00:00:00Z","profile":{"company_name":"Acme"}}`

	var got User
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Employer == nil || got.Employer.CompanyName != "Acme" {
		t.Fatalf("unexpected employer variant: %+v", got.Employer)
	}
	if got.JobSeeker != nil {
		t.Fatalf("expected nil job-seeker variant, got %+v", got.JobSeeker)
	}
}

func TestUserJSONMissingSkillsBecomesEmpty(t *testing.T) {
	raw := `{"id":"u3","email":"x@example.com","name":"X","role":"jobseeker",` +
		`"created_at":"2025-01-02T00:00:00Z","profile":{"title":"Dev"}}`

	var got User
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.JobSeeker == nil {
		t.Fatalf("expected job-seeker variant")
	}
	if got.JobSeeker.Skills == nil {
		t.Fatalf("skills must be present (empty), got nil")
	}
}

func TestJobSeekerUpdateApplyMergesOnlySetFields(t *testing.T) {
	profile := JobSeekerProfile{
		Title:  "Engineer",
		Skills: []string{"Go"},
		Bio:    "old bio",
	}

	bio := "new bio"
	update := JobSeekerUpdate{Bio: &bio}
	update.Apply(&profile)

	if profile.Bio != "new bio" {
		t.Fatalf("Bio = %q, want %q", profile.Bio, "new bio")
	}
	if profile.Title != "Engineer" || len(profile.Skills) != 1 {
		t.Fatalf("untouched fields changed: %+v", profile)
	}
}

func TestEmployerUpdateTargetsEmployerRole(t *testing.T) {
	if got := (EmployerUpdate{}).TargetRole(); got != RoleEmployer {
		t.Fatalf("TargetRole() = %v, want employer", got)
	}
	if got := (JobSeekerUpdate{}).TargetRole(); got != RoleJobSeeker {
		t.Fatalf("TargetRole() = %v, want jobseeker", got)
	}
}
