package services

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type ProfileService interface {
	BuildProfile(rawResumeText string) *models.ResumeProfile
}

type profileService struct {
	skillPatterns map[string]*regexp.Regexp
	experienceRe  *regexp.Regexp
	titler        cases.Caser
}

// skillNames are matched as whole words against the resume, case-insensitive.
var skillNames = []string{
	"python", "java", "c\\+\\+", "flask", "django", "sql", "nosql",
	"pandas", "numpy", "excel", "tableau", "power bi", "spark", "hadoop",
	"machine learning", "deep learning", "nlp", "pytorch", "tensorflow",
	"keras", "docker", "kubernetes", "aws", "communication", "leadership",
	"teamwork",
}

var educationMarkers = []string{
	"b.tech", "m.tech", "bsc", "msc", "bca", "mca", "mba",
	"university", "college", "school",
}

func NewProfileService() ProfileService {
	patterns := make(map[string]*regexp.Regexp, len(skillNames))
	for _, name := range skillNames {
		patterns[name] = regexp.MustCompile(`(?i)\b` + name + skillSuffix(name))
	}
	return &profileService{
		skillPatterns: patterns,
		experienceRe:  regexp.MustCompile(`(?i)(intern|developer|engineer|manager|years?|months?)`),
		titler:        cases.Title(language.English),
	}
}

// skillSuffix closes a skill pattern at a word boundary. `\b` after a symbol
// like '+' only asserts before a word character, so names ending in a symbol
// get an explicit break (any non-symbol, non-word rune, or end of input)
// instead — otherwise "c++" followed by a space or line end never matches.
func skillSuffix(name string) string {
	if strings.HasSuffix(name, `\+`) || strings.HasSuffix(name, "#") {
		return `(?:[^\w+#]|$)`
	}
	return `\b`
}

// BuildProfile pulls skill, experience, education and certification lines out
// of the raw resume text with simple line-level heuristics. Best effort: a
// resume that trips none of the markers yields an empty profile.
func (p *profileService) BuildProfile(rawResumeText string) *models.ResumeProfile {
	profile := &models.ResumeProfile{
		Skills:         []string{},
		Experience:     []string{},
		Education:      []string{},
		Certifications: []string{},
	}

	for name, re := range p.skillPatterns {
		if re.MatchString(rawResumeText) {
			display := strings.ReplaceAll(name, `\+\+`, "++")
			profile.Skills = append(profile.Skills, p.titler.String(display))
		}
	}
	sort.Strings(profile.Skills)

	for _, line := range strings.Split(rawResumeText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if p.experienceRe.MatchString(line) {
			profile.Experience = append(profile.Experience, line)
		}
		for _, marker := range educationMarkers {
			if strings.Contains(lower, marker) {
				profile.Education = append(profile.Education, line)
				break
			}
		}
		if strings.Contains(lower, "certified") || strings.Contains(lower, "certification") || strings.Contains(lower, "coursera") {
			profile.Certifications = append(profile.Certifications, line)
		}
	}

	return profile
}
