package profile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio-assistant/internal/profile"
)

func TestBuildSystemPrompt_Deterministic(t *testing.T) {
	p := profile.Default()

	first := profile.BuildSystemPrompt(p)
	for i := 0; i < 10; i++ {
		if got := profile.BuildSystemPrompt(p); got != first {
			t.Fatalf("prompt changed between calls on iteration %d", i)
		}
	}
}

func TestBuildSystemPrompt_Sections(t *testing.T) {
	prompt := profile.BuildSystemPrompt(profile.Default())

	wants := []string{
		"You are an expert assistant for Anuj Chaudhari's portfolio.",
		"Name: Anuj Chaudhari\nTitle: Frontend Developer\n",
		"\nExperience:\n- Software Developer-Trainee (Apprenticeship) at Enprosys Infotech (Sept 2025 – Present): Built an Employee",
		"\nSkills:\n- languages: JavaScript, C++, SQL\n- frontend: React.js",
		"- SCSDB TV App: Built and optimized",
		"(Tech: React, Redux, Movie API) Repo: https://github.com/anujsc/SCSDB\n  Deployed: https://scsdb.netlify.app/\n",
		"\nEducation: B.E. in Computer Engineering from Sinhgad Institute of Technology, Lonavala (June 2021 – July 2025), CGPA: 7.51\n",
		"\nCertifications: Debugging JS / NodeJS – Udemy, UX Design Virtual Experience – Forage\n",
	}
	for _, want := range wants {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	suffix := "Always answer as if you are Anuj's personal assistant. If asked about Anuj, use only this data."
	if !strings.HasSuffix(prompt, suffix) {
		t.Errorf("prompt does not end with instruction suffix")
	}
}

func TestBuildSystemPrompt_SkillOrder(t *testing.T) {
	p := profile.Profile{
		Name: "Jane Doe",
		Skills: []profile.SkillCategory{
			{Category: "zeta", Items: []string{"z"}},
			{Category: "alpha", Items: []string{"a"}},
		},
	}

	prompt := profile.BuildSystemPrompt(p)
	if strings.Index(prompt, "- zeta: z") > strings.Index(prompt, "- alpha: a") {
		t.Error("skill categories were reordered")
	}
	if !strings.Contains(prompt, "you are Jane's personal assistant") {
		t.Error("instruction suffix does not use first name")
	}
}

func TestProjectBrief(t *testing.T) {
	proj := profile.Project{
		Description: "A movie app.",
		Tech:        []string{"React", "Redux"},
	}

	got := profile.ProjectBrief("SCSDB", proj)
	want := "Explain the project SCSDB: A movie app.\nTech: React, Redux"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	proj.Highlights = []string{"fast search", "20% lower bounce"}
	got = profile.ProjectBrief("SCSDB", proj)
	if !strings.HasSuffix(got, "\nHighlights: fast search; 20% lower bounce") {
		t.Errorf("highlights missing: %q", got)
	}
}

func TestLookup(t *testing.T) {
	p := profile.Default()

	proj, ok := p.Lookup("SCSDB")
	if !ok {
		t.Fatal("expected SCSDB project")
	}
	if proj.Name != "SCSDB TV App" {
		t.Errorf("got %q", proj.Name)
	}

	if _, ok := p.Lookup("missing"); ok {
		t.Error("expected no project for unknown key")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	data := `name: Jane Doe
title: Backend Engineer
skills:
  - category: languages
    items: [Go, SQL]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := profile.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Name != "Jane Doe" || p.Title != "Backend Engineer" {
		t.Errorf("got name %q title %q", p.Name, p.Title)
	}
	if len(p.Skills) != 1 || p.Skills[0].Items[0] != "Go" {
		t.Errorf("skills not overridden: %+v", p.Skills)
	}
	if p.Email != profile.Default().Email {
		t.Errorf("unset field lost default: %q", p.Email)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := profile.Load(path); err == nil {
		t.Error("expected parse error")
	}
	if _, err := profile.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected read error")
	}
}
