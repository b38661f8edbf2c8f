package models

import "time"

// Education levels offered by the client form. Advisory only; the server
// never rejects other values.
const (
	EducationHighSchool          = "high_school"
	EducationUndergraduate       = "undergraduate"
	EducationGraduate            = "graduate"
	EducationWorkingProfessional = "working_professional"
)

// ResumeFile is a PDF attachment as the browser sends it: base64 content
// plus the declared size. Only the filename extension is checked server-side;
// the payload itself goes to the provider unverified.
type ResumeFile struct {
	Filename string `json:"filename"`
	Base64   string `json:"base64"`
	Size     int64  `json:"size"`
}

// StudentProfile lives only for the duration of one request/response
// exchange; nothing is persisted server-side. Optional fields are pointers
// without omitempty so absent values serialize as explicit null, which keeps
// downstream formatting stable.
type StudentProfile struct {
	ID               string      `json:"id"`
	LinkedinURL      *string     `json:"linkedinUrl"`
	Resume           *ResumeFile `json:"resume"`
	CurrentEducation *string     `json:"currentEducation"`
	Interests        *string     `json:"interests"`
	UploadedAt       string      `json:"uploadedAt"`
}

// HasResume reports whether the profile carries resume content usable as a
// provider file attachment.
func (p *StudentProfile) HasResume() bool {
	return p != nil && p.Resume != nil && p.Resume.Base64 != ""
}

// ISOTimestamp formats t the way the browser client expects: UTC with
// millisecond precision, e.g. 2024-05-01T12:30:45.123Z.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
