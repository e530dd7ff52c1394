package chat

import (
	"fmt"
	"strings"

	"portfolio-assistant/internal/profile"
)

const (
	// TruncationNotice follows the summary instruction when the README was cut.
	TruncationNotice = "(This README was truncated — ask me if you want more details.)"
	summarizeFormat  = "Summarize this README for a recruiter and highlight %s's contributions, tech stack, and important architecture details."
)

// Project ties a name that may appear in a question to the repository whose
// README describes it and to the matching profile entry.
type Project struct {
	Name       string
	Owner      string
	Repo       string
	ProfileKey string
}

// DefaultProjects is the detection table, in match priority order.
func DefaultProjects() []Project {
	return []Project{
		{Name: "EMS", Owner: "anujsc", Repo: "", ProfileKey: "ems"},
		{Name: "URLShortener", Owner: "anujsc", Repo: "URL_SHORTNER", ProfileKey: "urlshortner"},
		{Name: "ImgEnhancer", Owner: "anujsc", Repo: "ImgEnhancer", ProfileKey: "imgenhancer"},
		{Name: "SCSDB", Owner: "anujsc", Repo: "SCSDB", ProfileKey: "scsdb"},
	}
}

// DetectProject returns the first project whose name occurs anywhere in text,
// ignoring case. Matches inside longer words count.
func DetectProject(text string, projects []Project) (Project, bool) {
	lower := strings.ToLower(text)
	for _, p := range projects {
		if strings.Contains(lower, strings.ToLower(p.Name)) {
			return p, true
		}
	}
	return Project{}, false
}

// SummaryInstruction is the instruction placed in front of a fetched README.
func SummaryInstruction(p profile.Profile) string {
	return fmt.Sprintf(summarizeFormat, p.FirstName())
}

// truncate cuts s to at most limit runes and reports whether it did.
func truncate(s string, limit int) (string, bool) {
	if limit <= 0 || len(s) <= limit {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}
