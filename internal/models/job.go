package models

import "time"

// JobType is the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
	JobTypeHybrid   JobType = "hybrid"
)

// JobStatus is the publication state of a posting.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// Job is a posting created by an employer account.
type Job struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Type              JobType   `json:"type"`
	Salary            string    `json:"salary"`
	Description       string    `json:"description"`
	Requirements      []string  `json:"requirements"`
	Benefits          []string  `json:"benefits"`
	PostedBy          string    `json:"posted_by"`
	PostedAt          time.Time `json:"posted_at"`
	Status            JobStatus `json:"status"`
	ApplicationsCount int       `json:"applications_count"`
	Views             int       `json:"views"`
	Featured          bool      `json:"featured,omitempty"`
	Urgent            bool      `json:"urgent,omitempty"`
	ExperienceLevel   string    `json:"experience_level,omitempty"`
	Category          string    `json:"category,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
}
