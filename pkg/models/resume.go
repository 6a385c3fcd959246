package models

// TailoredResume is the shape the provider is asked to produce
type TailoredResume struct {
	ProfessionalTitle string       `json:"professionalTitle"`
	Frameworks        []string     `json:"frameworks"`
	Summary           string       `json:"summary"`
	Skills            Skills       `json:"skills"`
	Experience        []Experience `json:"experience"`
}

// Skills groups the skill lists of a tailored resume
type Skills struct {
	Frameworks       []string `json:"frameworks"`
	CoreCompetencies []string `json:"coreCompetencies"`
	Technical        []string `json:"technical"`
	Tools            []string `json:"tools"`
}

// Experience is one role in a tailored resume
type Experience struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Dates    string   `json:"dates"`
	Bullets  []string `json:"bullets"`
}

// BulletCount returns the total number of experience bullets
func (r *TailoredResume) BulletCount() int {
	n := 0
	for _, exp := range r.Experience {
		n += len(exp.Bullets)
	}
	return n
}
