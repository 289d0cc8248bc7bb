package query

import "github.com/hirepath/hirepath/internal/models"

// ProfileFilter is the candidate-search criteria set. Text searches name,
// title and skills. Experience is a raw substring test against the
// free-form experience text, not a numeric threshold.
type ProfileFilter struct {
	Text       string
	Location   string
	Skill      string
	Experience string
}

// FilterProfiles restricts the snapshot to job-seeker accounts, then keeps
// those matching every supplied criterion, in input order. An account with
// no profile payload never matches a non-empty criterion.
func FilterProfiles(users []models.User, filter ProfileFilter) []models.User {
	out := make([]models.User, 0, len(users))
	for _, user := range users {
		if user.Role != models.RoleJobSeeker {
			continue
		}
		if matchesProfile(user, filter) {
			out = append(out, user)
		}
	}
	return out
}

func matchesProfile(user models.User, filter ProfileFilter) bool {
	profile := user.JobSeeker

	if filter.Text != "" {
		matched := contains(user.Name, filter.Text)
		if !matched && profile != nil {
			matched = contains(profile.Title, filter.Text) ||
				containsAny(profile.Skills, filter.Text)
		}
		if !matched {
			return false
		}
	}
	if filter.Location != "" {
		if profile == nil || !contains(profile.Location, filter.Location) {
			return false
		}
	}
	if filter.Skill != "" {
		if profile == nil || !containsAny(profile.Skills, filter.Skill) {
			return false
		}
	}
	if filter.Experience != "" {
		if profile == nil || !contains(profile.Experience, filter.Experience) {
			return false
		}
	}
	return true
}
