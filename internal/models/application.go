package models

import "time"

// ApplicationStatus tracks where an application sits in the hiring funnel.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

// Application links a job-seeker account to a posting.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	ApplicantID string            `json:"applicant_id"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	ResumeURL   string            `json:"resume_url,omitempty"`
	// MatchScore is seeded display data; nothing in this repository
	// computes it. It is carried so an external scoring integration can
	// fill it in.
	MatchScore    *int       `json:"match_score,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
}

// ProfileView is one entry in the append-only log of profile visits.
type ProfileView struct {
	ID            string    `json:"id"`
	ViewerID      string    `json:"viewer_id"`
	ProfileID     string    `json:"profile_id"`
	ViewedAt      time.Time `json:"viewed_at"`
	ViewerName    string    `json:"viewer_name"`
	ViewerTitle   string    `json:"viewer_title,omitempty"`
	ViewerCompany string    `json:"viewer_company,omitempty"`
	ViewerAvatar  string    `json:"viewer_avatar,omitempty"`
}
