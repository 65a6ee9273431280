package roadmap

import (
	"fmt"
	"math"

	"github.com/amishk599/prepmap/internal/model"
)

// MinWeeks is the shortest plan we will ever suggest.
const MinWeeks = 2

var baseWeeks = map[model.Difficulty]int{
	model.DifficultyEasy:   4,
	model.DifficultyMedium: 8,
	model.DifficultyHard:   12,
}

var experienceMultiplier = map[model.Experience]float64{
	model.ExperienceEntry:  1.5,
	model.ExperienceMid:    1.0,
	model.ExperienceSenior: 0.8,
}

// EstimateWeeks returns the preparation time in weeks. Longer for harder
// loops and less experienced candidates; never below MinWeeks. Unknown enum
// values fail with model.ErrInvalidInput.
func EstimateWeeks(d model.Difficulty, e model.Experience) (int, error) {
	base, ok := baseWeeks[d]
	if !ok {
		return 0, fmt.Errorf("%w: difficulty %q", model.ErrInvalidInput, d)
	}
	mult, ok := experienceMultiplier[e]
	if !ok {
		return 0, fmt.Errorf("%w: experience level %q", model.ErrInvalidInput, e)
	}
	weeks := int(math.Floor(float64(base) * mult))
	if weeks < MinWeeks {
		weeks = MinWeeks
	}
	return weeks, nil
}

// FormatWeeks renders a week count the way it appears in the roadmap file.
func FormatWeeks(weeks int) string {
	if weeks == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", weeks)
}
