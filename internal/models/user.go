package models

import (
	"encoding/json"
	"time"
)

// Role discriminates the profile payload carried by a user account.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the known account roles.
func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// User is a marketplace account. Exactly one of JobSeeker or Employer is
// set, matching Role; both are nil for admin accounts.
type User struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       Role       `json:"role"`
	Avatar     string     `json:"avatar,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	IsVerified bool       `json:"is_verified,omitempty"`
	LastActive *time.Time `json:"last_active,omitempty"`

	JobSeeker *JobSeekerProfile `json:"-"`
	Employer  *EmployerProfile  `json:"-"`
}

// JobSeekerProfile is the candidate-side profile payload.
type JobSeekerProfile struct {
	Title          string   `json:"title"`
	Experience     string   `json:"experience"`
	Skills         []string `json:"skills"`
	Education      string   `json:"education,omitempty"`
	Location       string   `json:"location,omitempty"`
	Salary         string   `json:"salary,omitempty"`
	Resume         string   `json:"resume,omitempty"`
	LinkedinURL    string   `json:"linkedin_url,omitempty"`
	GithubURL      string   `json:"github_url,omitempty"`
	PortfolioURL   string   `json:"portfolio_url,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Availability   string   `json:"availability,omitempty"`
	WorkType       string   `json:"work_type,omitempty"`
	ProfileViews   int      `json:"profile_views,omitempty"`
}

// EmployerProfile is the company-side profile payload.
type EmployerProfile struct {
	CompanyName string      `json:"company_name"`
	CompanySize string      `json:"company_size,omitempty"`
	Industry    string      `json:"industry,omitempty"`
	Website     string      `json:"website,omitempty"`
	Description string      `json:"description,omitempty"`
	Location    string      `json:"location,omitempty"`
	Founded     string      `json:"founded,omitempty"`
	Employees   string      `json:"employees,omitempty"`
	Culture     []string    `json:"culture,omitempty"`
	Benefits    []string    `json:"benefits,omitempty"`
	SocialLinks SocialLinks `json:"social_links,omitempty"`
}

// SocialLinks groups optional company social URLs.
type SocialLinks struct {
	Linkedin string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
}

type userAlias User

type userEnvelope struct {
	userAlias
	Profile json.RawMessage `json:"profile,omitempty"`
}

// MarshalJSON stores the active profile variant flat under "profile".
func (u User) MarshalJSON() ([]byte, error) {
	env := userEnvelope{userAlias: userAlias(u)}

	var payload any
	switch {
	case u.JobSeeker != nil:
		payload = u.JobSeeker
	case u.Employer != nil:
		payload = u.Employer
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Profile = raw
	}

	return json.Marshal(env)
}

// UnmarshalJSON decodes the "profile" payload into the variant selected by
// the role field. Payloads on accounts with no profile variant are dropped.
func (u *User) UnmarshalJSON(data []byte) error {
	var env userEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	*u = User(env.userAlias)

	if len(env.Profile) == 0 || string(env.Profile) == "null" {
		return nil
	}

	switch u.Role {
	case RoleJobSeeker:
		var p JobSeekerProfile
		if err := json.Unmarshal(env.Profile, &p); err != nil {
			return err
		}
		if p.Skills == nil {
			p.Skills = []string{}
		}
		u.JobSeeker = &p
	case RoleEmployer:
		var p EmployerProfile
		if err := json.Unmarshal(env.Profile, &p); err != nil {
			return err
		}
		u.Employer = &p
	}
	return nil
}

// Clone returns a deep copy so callers can mutate the result without
// touching stored state.
func (u User) Clone() User {
	out := u
	if u.LastActive != nil {
		t := *u.LastActive
		out.LastActive = &t
	}
	if u.JobSeeker != nil {
		p := *u.JobSeeker
		p.Skills = append([]string{}, u.JobSeeker.Skills...)
		p.Achievements = append([]string(nil), u.JobSeeker.Achievements...)
		p.Languages = append([]string(nil), u.JobSeeker.Languages...)
		p.Certifications = append([]string(nil), u.JobSeeker.Certifications...)
		out.JobSeeker = &p
	}
	if u.Employer != nil {
		p := *u.Employer
		p.Culture = append([]string(nil), u.Employer.Culture...)
		p.Benefits = append([]string(nil), u.Employer.Benefits...)
		out.Employer = &p
	}
	return out
}
