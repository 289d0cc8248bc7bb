// Package seed populates the demo collections on first run. Each collection
// is only written when it is empty, so user-created data is never clobbered.
package seed

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hirepath/hirepath/internal/models"
	"github.com/hirepath/hirepath/internal/store"
)

// Ensure writes demo data into every empty collection and reports the
// collection names it populated.
func Ensure(kv store.KV, logger zerolog.Logger) ([]string, error) {
	now := time.Now()
	var seeded []string

	users := store.NewCollection[models.User](kv, store.CollectionUsers, logger)
	if empty, err := isEmpty(users); err != nil {
		return seeded, err
	} else if empty {
		if err := users.Save(demoUsers(now)); err != nil {
			return seeded, err
		}
		seeded = append(seeded, store.CollectionUsers)
	}

	jobs := store.NewCollection[models.Job](kv, store.CollectionJobs, logger)
	if empty, err := isEmpty(jobs); err != nil {
		return seeded, err
	} else if empty {
		if err := jobs.Save(demoJobs(now)); err != nil {
			return seeded, err
		}
		seeded = append(seeded, store.CollectionJobs)
	}

	apps := store.NewCollection[models.Application](kv, store.CollectionApplications, logger)
	if empty, err := isEmpty(apps); err != nil {
		return seeded, err
	} else if empty {
		if err := apps.Save(demoApplications(now)); err != nil {
			return seeded, err
		}
		seeded = append(seeded, store.CollectionApplications)
	}

	views := store.NewCollection[models.ProfileView](kv, store.CollectionProfileViews, logger)
	if empty, err := isEmpty(views); err != nil {
		return seeded, err
	} else if empty {
		if err := views.Save(demoProfileViews(now)); err != nil {
			return seeded, err
		}
		seeded = append(seeded, store.CollectionProfileViews)
	}

	return seeded, nil
}

func isEmpty[T any](c *store.Collection[T]) (bool, error) {
	records, err := c.Load()
	if err != nil {
		return false, err
	}
	return len(records) == 0, nil
}

func ptr[T any](v T) *T { return &v }

func demoUsers(now time.Time) []models.User {
	return []models.User{
		{
			ID:         "user-sarah",
			Email:      "sarah.chen@example.com",
			Name:       "Sarah Chen",
			Role:       models.RoleJobSeeker,
			CreatedAt:  now.AddDate(0, -6, 0),
			IsVerified: true,
			LastActive: ptr(now.Add(-2 * time.Hour)),
			JobSeeker: &models.JobSeekerProfile{
				Title:        "Senior Frontend Engineer",
				Experience:   "7 years building design systems and React applications",
				Skills:       []string{"React", "TypeScript", "GraphQL", "CSS"},
				Education:    "BSc Computer Science, UC Berkeley",
				Location:     "San Francisco, CA",
				Salary:       "$150k - $180k",
				Bio:          "Frontend engineer focused on accessible, fast interfaces.",
				Languages:    []string{"English", "Mandarin"},
				Availability: "two-weeks",
				WorkType:     "hybrid",
				ProfileViews: 42,
			},
		},
		{
			ID:         "user-marcus",
			Email:      "marcus.webb@example.com",
			Name:       "Marcus Webb",
			Role:       models.RoleJobSeeker,
			CreatedAt:  now.AddDate(0, -3, 0),
			LastActive: ptr(now.AddDate(0, 0, -1)),
			JobSeeker: &models.JobSeekerProfile{
				Title:      "Backend Engineer",
				Experience: "4 years of Go and distributed systems",
				Skills:     []string{"Go", "PostgreSQL", "Kubernetes"},
				Location:   "Austin, TX",
				WorkType:   "remote",
			},
		},
		{
			ID:         "user-priya",
			Email:      "priya.nair@example.com",
			Name:       "Priya Nair",
			Role:       models.RoleJobSeeker,
			CreatedAt:  now.AddDate(0, -1, 0),
			LastActive: ptr(now.AddDate(0, 0, -5)),
			JobSeeker: &models.JobSeekerProfile{
				Skills: []string{"Figma", "Product Design"},
				Title:  "Product Designer",
			},
		},
		{
			ID:         "user-techflow",
			Email:      "talent@techflow.example.com",
			Name:       "Dana Ortiz",
			Role:       models.RoleEmployer,
			CreatedAt:  now.AddDate(-1, 0, 0),
			IsVerified: true,
			Employer: &models.EmployerProfile{
				CompanyName: "TechFlow",
				Industry:    "Developer Tools",
				CompanySize: "51-200",
				Location:    "San Francisco, CA",
				Website:     "https://techflow.example.com",
				Description: "CI/CD platform for fast-moving teams.",
			},
		},
		{
			ID:        "user-brightside",
			Email:     "hiring@brightside.example.com",
			Name:      "Tom Ellison",
			Role:      models.RoleEmployer,
			CreatedAt: now.AddDate(0, -8, 0),
			Employer: &models.EmployerProfile{
				CompanyName: "Brightside Health",
				Industry:    "Healthcare",
				Location:    "Remote",
			},
		},
	}
}

func demoJobs(now time.Time) []models.Job {
	return []models.Job{
		{
			ID:                "job-frontend-techflow",
			Title:             "Senior Frontend Engineer",
			Company:           "TechFlow",
			Location:          "San Francisco, CA",
			Type:              models.JobTypeFullTime,
			Salary:            "$160k - $190k",
			Description:       "Own the pipeline-editor UI and design system.",
			Requirements:      []string{"5+ years React", "TypeScript", "Testing culture"},
			Benefits:          []string{"Health insurance", "401k match", "Remote fridays"},
			PostedBy:          "user-techflow",
			PostedAt:          now.AddDate(0, 0, -2),
			Status:            models.JobStatusActive,
			ApplicationsCount: 12,
			Views:             240,
			Featured:          true,
			ExperienceLevel:   "senior",
			Category:          "Engineering",
			Tags:              []string{"react", "frontend"},
		},
		{
			ID:                "job-backend-techflow",
			Title:             "Backend Engineer, Platform",
			Company:           "TechFlow",
			Location:          "Remote",
			Type:              models.JobTypeRemote,
			Salary:            "$140k - $170k",
			Description:       "Build the Go services behind pipeline orchestration.",
			Requirements:      []string{"Go", "PostgreSQL", "gRPC"},
			Benefits:          []string{"Health insurance", "Home office budget"},
			PostedBy:          "user-techflow",
			PostedAt:          now.AddDate(0, 0, -9),
			Status:            models.JobStatusActive,
			ApplicationsCount: 31,
			Views:             512,
			ExperienceLevel:   "mid",
			Category:          "Engineering",
			Tags:              []string{"go", "backend"},
		},
		{
			ID:                "job-designer-brightside",
			Title:             "Product Designer",
			Company:           "Brightside Health",
			Location:          "Remote",
			Type:              models.JobTypeContract,
			Salary:            "$90/hr",
			Description:       "Design patient-facing scheduling flows.",
			Requirements:      []string{"Figma", "Healthcare experience a plus"},
			Benefits:          []string{"Flexible hours"},
			PostedBy:          "user-brightside",
			PostedAt:          now.AddDate(0, 0, -1),
			Status:            models.JobStatusActive,
			ApplicationsCount: 5,
			Views:             98,
			Category:          "Design",
		},
		{
			ID:                "job-data-brightside",
			Title:             "Data Engineer",
			Company:           "Brightside Health",
			Location:          "New York, NY",
			Type:              models.JobTypeHybrid,
			Salary:            "$150k - $175k",
			Description:       "Build the analytics warehouse powering care decisions.",
			Requirements:      []string{"Python", "dbt", "Airflow"},
			Benefits:          []string{"Health insurance", "Learning stipend"},
			PostedBy:          "user-brightside",
			PostedAt:          now.AddDate(0, 0, -20),
			Status:            models.JobStatusClosed,
			ApplicationsCount: 44,
			Views:             301,
			Category:          "Data",
		},
	}
}

func demoApplications(now time.Time) []models.Application {
	return []models.Application{
		{
			ID:          "app-sarah-frontend",
			JobID:       "job-frontend-techflow",
			ApplicantID: "user-sarah",
			Status:      models.ApplicationShortlisted,
			AppliedAt:   now.AddDate(0, 0, -2),
			CoverLetter: "I led the design-system rebuild at my current company.",
			MatchScore:  ptr(92),
		},
		{
			ID:          "app-marcus-backend",
			JobID:       "job-backend-techflow",
			ApplicantID: "user-marcus",
			Status:      models.ApplicationPending,
			AppliedAt:   now.AddDate(0, 0, -4),
		},
		{
			ID:            "app-marcus-data",
			JobID:         "job-data-brightside",
			ApplicantID:   "user-marcus",
			Status:        models.ApplicationRejected,
			AppliedAt:     now.AddDate(0, 0, -15),
			Notes:         "Strong, but the role needs warehouse experience.",
			InterviewDate: ptr(now.AddDate(0, 0, -12)),
		},
		{
			ID:          "app-priya-designer",
			JobID:       "job-designer-brightside",
			ApplicantID: "user-priya",
			Status:      models.ApplicationReviewed,
			AppliedAt:   now.AddDate(0, 0, -1),
		},
	}
}

func demoProfileViews(now time.Time) []models.ProfileView {
	return []models.ProfileView{
		{
			ID:            "view-1",
			ViewerID:      "user-techflow",
			ProfileID:     "user-sarah",
			ViewedAt:      now.AddDate(0, 0, -1),
			ViewerName:    "Dana Ortiz",
			ViewerTitle:   "Head of Talent",
			ViewerCompany: "TechFlow",
		},
		{
			ID:            "view-2",
			ViewerID:      "user-brightside",
			ProfileID:     "user-sarah",
			ViewedAt:      now.AddDate(0, 0, -3),
			ViewerName:    "Tom Ellison",
			ViewerCompany: "Brightside Health",
		},
		{
			ID:            "view-3",
			ViewerID:      "user-techflow",
			ProfileID:     "user-marcus",
			ViewedAt:      now.AddDate(0, 0, -6),
			ViewerName:    "Dana Ortiz",
			ViewerTitle:   "Head of Talent",
			ViewerCompany: "TechFlow",
		},
	}
}
