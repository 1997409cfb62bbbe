// Package verifier decides whether a registrant qualifies as an IT
// professional, either from a resume text scan or from a manually
// entered skill list.
package verifier

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// techKeywords is the vocabulary scanned for in resume text. Matching
// is case-insensitive substring search.
var techKeywords = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php", "swift", "kotlin",
	"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel",
	"aws", "azure", "gcp", "cloud", "devops", "docker", "kubernetes", "jenkins", "ci/cd",
	"sql", "mysql", "postgresql", "mongodb", "nosql", "database", "redis", "elasticsearch",
	"machine learning", "artificial intelligence", "data science", "big data", "analytics",
	"software engineer", "developer", "programmer", "sde", "web developer", "full stack",
	"frontend", "backend", "mobile developer", "ios developer", "android developer",
	"qa", "quality assurance", "testing", "test automation", "selenium", "cypress",
	"product manager", "project manager", "scrum master", "agile", "jira", "confluence",
	"git", "github", "gitlab", "bitbucket", "version control", "svn", "cybersecurity",
	"network", "system administrator", "linux", "unix", "windows server", "powershell",
	"bash", "shell scripting", "api", "rest", "graphql", "microservices", "soa",
	"html", "css", "sass", "less", "bootstrap", "tailwind", "material ui", "responsive design",
	"ux", "ui", "user experience", "user interface", "figma", "sketch", "adobe xd",
	"data engineer", "etl", "hadoop", "spark", "kafka", "airflow", "tableau", "power bi",
	"blockchain", "cryptocurrency", "smart contracts", "solidity", "web3", "ethereum",
	"iot", "embedded systems", "firmware", "hardware", "raspberry pi", "arduino",
	"game development", "unity", "unreal engine", "3d modeling", "animation",
	"technical lead", "team lead", "engineering manager", "cto", "chief technology officer",
	"it support", "helpdesk", "technical support", "systems analyst", "business analyst",
}

const (
	// resumeThreshold is the minimum number of distinct keyword hits for
	// a resume to pass.
	resumeThreshold = 5

	// manualThreshold is the minimum number of manually entered skills.
	manualThreshold = 3

	// maxSkills caps the skill list attached to the profile.
	maxSkills = 10
)

// Result is the outcome of a verification check.
type Result struct {
	Verified bool
	Skills   []string
}

// ScanResume scans free-form resume text for tech vocabulary. The
// registrant passes when at least five distinct keywords are present.
// Matched keywords are title-cased and capped at ten, in vocabulary
// order so the output is deterministic.
func ScanResume(text string) Result {
	lower := strings.ToLower(text)
	title := cases.Title(language.English)

	var found []string
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, title.String(kw))
		}
	}

	verified := len(found) >= resumeThreshold
	if len(found) > maxSkills {
		found = found[:maxSkills]
	}

	return Result{Verified: verified, Skills: found}
}

// CheckSkills validates a manually entered skill list. Blank entries
// are discarded; the registrant passes with at least three skills.
func CheckSkills(skills []string) Result {
	var cleaned []string
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}

	verified := len(cleaned) >= manualThreshold
	if len(cleaned) > maxSkills {
		cleaned = cleaned[:maxSkills]
	}

	return Result{Verified: verified, Skills: cleaned}
}
