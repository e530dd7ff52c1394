package profile

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt renders p into the instruction message that opens every
// outbound request. Output depends only on p.
func BuildSystemPrompt(p Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert assistant for %s's portfolio. Use only the following data to answer questions about %s:\n",
		p.Name, p.FirstName())
	fmt.Fprintf(&b, "Name: %s\nTitle: %s\nLocation: %s\nEmail: %s\nGitHub: %s\nPortfolio: %s\nLinkedIn: %s\n",
		p.Name, p.Title, p.Location, p.Email, p.GitHub, p.Portfolio, p.LinkedIn)

	b.WriteString("\nExperience:\n")
	for _, exp := range p.Experience {
		fmt.Fprintf(&b, "- %s at %s (%s): %s\n", exp.Role, exp.Company, exp.Period, strings.Join(exp.Details, " "))
	}

	b.WriteString("\nSkills:\n")
	for _, cat := range p.Skills {
		fmt.Fprintf(&b, "- %s: %s\n", cat.Category, strings.Join(cat.Items, ", "))
	}

	b.WriteString("\nProjects:\n")
	for _, proj := range p.Projects {
		fmt.Fprintf(&b, "- %s: %s (Tech: %s) Repo: %s\n", proj.Name, proj.Description, strings.Join(proj.Tech, ", "), proj.Repo)
		if proj.Deployed != "" {
			fmt.Fprintf(&b, "  Deployed: %s\n", proj.Deployed)
		}
	}

	fmt.Fprintf(&b, "\nEducation: %s from %s (%s), CGPA: %s\n",
		p.Education.Degree, p.Education.Institute, p.Education.Period, p.Education.CGPA)
	fmt.Fprintf(&b, "\nCertifications: %s\n", strings.Join(p.Certifications, ", "))

	name := p.FirstName()
	fmt.Fprintf(&b, "\nAlways answer as if you are %s's personal assistant. If asked about %s, use only this data.", name, name)

	return b.String()
}

// ProjectBrief is the fallback prompt used when a project's README cannot be
// fetched.
func ProjectBrief(label string, proj Project) string {
	brief := fmt.Sprintf("Explain the project %s: %s\nTech: %s", label, proj.Description, strings.Join(proj.Tech, ", "))
	if len(proj.Highlights) > 0 {
		brief += "\nHighlights: " + strings.Join(proj.Highlights, "; ")
	}
	return brief
}
