package dto

// CPIBucket is a grouped count of students by performance index value
type CPIBucket struct {
	CPI   float64 `json:"cpi"`
	Count int64   `json:"count"`
}

// DomainBucket is a grouped count of approved internships by domain
type DomainBucket struct {
	Domain string `json:"domain"`
	Count  int64  `json:"count"`
}

// ResumeCountBucket groups users by how many resumes they have uploaded
type ResumeCountBucket struct {
	Total int64 `json:"total"`
	Count int64 `json:"count"`
}

// ApplicationTrendPoint is a per-day count of job applications
type ApplicationTrendPoint struct {
	Date  string `json:"date" example:"2026-08-30"`
	Count int64  `json:"count"`
}

// AnalyticsResponse is the staff dashboard rollup. Every key is always
// present, possibly as an empty list or zero.
type AnalyticsResponse struct {
	CPIDistribution      []CPIBucket             `json:"cpi_distribution"`
	InternshipDomains    []DomainBucket          `json:"internship_domains"`
	ResumeUploadsStats   []ResumeCountBucket     `json:"resume_uploads_stats"`
	GithubComplete       int64                   `json:"github_complete"`
	LinkedinComplete     int64                   `json:"linkedin_complete"`
	JobApplicationsTrend []ApplicationTrendPoint `json:"job_applications_trend"`
}
