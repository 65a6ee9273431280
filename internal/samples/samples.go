// Package samples holds the pre-loaded job postings offered by the
// examples command and the interactive picker.
package samples

import (
	"strconv"
	"strings"

	"github.com/amishk599/prepmap/internal/model"
)

var all = []model.JobInput{
	{
		Company: "Google",
		Role:    "Software Engineer (SDE-1)",
		JobDescription: `Software Engineer - Google

We are looking for a Software Engineer to join our team and help build the next generation of products.

Requirements:
- Bachelor's degree in Computer Science or equivalent
- 1+ years of software development experience
- Experience with Python, Java, or C++
- Knowledge of data structures and algorithms
- Experience with distributed systems and system design
- Strong problem-solving skills`,
	},
	{
		Company: "Microsoft",
		Role:    "Data Scientist",
		JobDescription: `Data Scientist - Microsoft Azure AI

Join our Azure AI team to build intelligent solutions.

Requirements:
- PhD or Master's in Data Science, Statistics, or Computer Science
- 3+ years of experience in machine learning
- Proficiency in Python and R
- Experience with TensorFlow, PyTorch, Scikit-learn
- Strong knowledge of statistics
- Experience with Azure, AWS, or GCP`,
	},
	{
		Company: "TechFlow (Startup)",
		Role:    "Full Stack Developer",
		JobDescription: `Full Stack Developer - TechFlow (YC-backed startup)

We're a fast-growing fintech startup looking for a talented developer.

Requirements:
- 2-4 years of full stack development experience
- Strong proficiency in JavaScript/TypeScript
- Experience with React and Node.js
- Database experience with PostgreSQL
- Understanding of RESTful APIs
- AWS experience preferred`,
	},
}

// All returns a copy of the samples in display order.
func All() []model.JobInput {
	out := make([]model.JobInput, len(all))
	copy(out, all)
	return out
}

// Get returns the sample at the 1-based index.
func Get(index int) (model.JobInput, bool) {
	if index < 1 || index > len(all) {
		return model.JobInput{}, false
	}
	return all[index-1], true
}

// Pick parses a 1-based choice. Anything unparseable or out of range picks
// the first sample; ok reports whether the choice was valid.
func Pick(choice string) (input model.JobInput, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return all[0], false
	}
	if in, found := Get(n); found {
		return in, true
	}
	return all[0], false
}

// Title is the one-line label used in menus.
func Title(in model.JobInput) string {
	return in.Company + " - " + in.Role
}
