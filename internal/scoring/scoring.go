// Package scoring computes the display annotations attached to profiles:
// a completeness percentage and a recency label.
package scoring

import (
	"fmt"
	"math"
	"time"

	"github.com/hirepath/hirepath/internal/models"
)

// completenessFields is the fixed checklist a profile is scored against.
const completenessFields = 6

// Completeness returns the percentage of the six-field checklist (title,
// experience, skills, education, location, bio) present on the profile.
// Each field contributes 100/6; rounding happens once at the end, so one
// present field scores 17, three score 50 and six score 100. A nil profile
// scores 0.
func Completeness(p *models.JobSeekerProfile) int {
	if p == nil {
		return 0
	}

	present := 0
	for _, filled := range []bool{
		p.Title != "",
		p.Experience != "",
		len(p.Skills) > 0,
		p.Education != "",
		p.Location != "",
		p.Bio != "",
	} {
		if filled {
			present++
		}
	}

	return int(math.Round(float64(present) * 100.0 / completenessFields))
}

// RecencyLabel buckets a timestamp by whole elapsed days: "today",
// "yesterday", then "N days ago". Days truncate rather than round, so a
// 23h59m difference is still today; timestamps at or past now clamp to
// today as well.
func RecencyLabel(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
