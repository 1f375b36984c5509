package models

import "time"

// Job statuses a tracked application can be in.
const (
	JobStatusPending   = "pending"
	JobStatusInterview = "interview"
	JobStatusDeclined  = "declined"
)

// Job types accepted on create/update.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeRemote     = "remote"
	JobTypeInternship = "internship"
)

// Job represents a single tracked job application.
type Job struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Status      string    `json:"status"`
	JobType     string    `json:"jobType"`
	JobLocation string    `json:"jobLocation"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidJobStatus reports whether s is one of the accepted job statuses.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusPending, JobStatusInterview, JobStatusDeclined:
		return true
	}
	return false
}

// ValidJobType reports whether t is one of the accepted job types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeInternship:
		return true
	}
	return false
}
