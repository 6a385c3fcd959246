package models

// TailorRequest is the body accepted by the tailor endpoint
type TailorRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
	APIKey         string `json:"apiKey"`
}
