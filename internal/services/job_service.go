package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/skisyula/jobify-be/internal/apperr"
	"github.com/skisyula/jobify-be/internal/models"
)

// JobServiceProvider defines the interface for job services.
type JobServiceProvider interface {
	CreateJob(userID string, job models.Job) (models.Job, error)
	GetJobsForUser(userID string) ([]models.Job, error)
	UpdateJob(userID, jobID string, job models.Job) (models.Job, error)
	DeleteJob(userID, jobID string) error
}

// JobService provides business logic for tracked job applications. Every
// operation is scoped to the owning user; a job belonging to someone else
// is indistinguishable from a job that does not exist.
type JobService struct {
	db *sql.DB
}

// NewJobService creates a new JobService.
func NewJobService(db *sql.DB) *JobService {
	return &JobService{db: db}
}

// CreateJob validates and persists a new job owned by userID.
func (s *JobService) CreateJob(userID string, job models.Job) (models.Job, error) {
	if job.Company == "" || job.Position == "" {
		return models.Job{}, apperr.Validation("Please provide all values")
	}
	if job.Status == "" {
		job.Status = models.JobStatusPending
	}
	if job.JobType == "" {
		job.JobType = models.JobTypeFullTime
	}
	if !models.ValidJobStatus(job.Status) {
		return models.Job{}, apperr.Validation("Invalid job status")
	}
	if !models.ValidJobType(job.JobType) {
		return models.Job{}, apperr.Validation("Invalid job type")
	}

	job.ID = uuid.New().String()
	job.CreatedBy = userID

	_, err := s.db.Exec(
		"INSERT INTO jobs(id, company, position, status, job_type, job_location, created_by) VALUES(?, ?, ?, ?, ?, ?, ?)",
		job.ID, job.Company, job.Position, job.Status, job.JobType, job.JobLocation, job.CreatedBy,
	)
	if err != nil {
		return models.Job{}, err
	}
	return s.getJob(userID, job.ID)
}

// GetJobsForUser retrieves all jobs created by userID, newest first.
func (s *JobService) GetJobsForUser(userID string) ([]models.Job, error) {
	rows, err := s.db.Query(
		"SELECT id, company, position, status, job_type, job_location, created_by, created_at, updated_at FROM jobs WHERE created_by = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var job models.Job
		err := rows.Scan(
			&job.ID, &job.Company, &job.Position, &job.Status,
			&job.JobType, &job.JobLocation, &job.CreatedBy,
			&job.CreatedAt, &job.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// UpdateJob replaces the mutable fields of a job owned by userID.
func (s *JobService) UpdateJob(userID, jobID string, job models.Job) (models.Job, error) {
	if job.Company == "" || job.Position == "" {
		return models.Job{}, apperr.Validation("Please provide all values")
	}
	if job.Status != "" && !models.ValidJobStatus(job.Status) {
		return models.Job{}, apperr.Validation("Invalid job status")
	}
	if job.JobType != "" && !models.ValidJobType(job.JobType) {
		return models.Job{}, apperr.Validation("Invalid job type")
	}

	current, err := s.getJob(userID, jobID)
	if err != nil {
		return models.Job{}, err
	}
	if job.Status == "" {
		job.Status = current.Status
	}
	if job.JobType == "" {
		job.JobType = current.JobType
	}

	_, err = s.db.Exec(
		"UPDATE jobs SET company = ?, position = ?, status = ?, job_type = ?, job_location = ?, updated_at = ? WHERE id = ? AND created_by = ?",
		job.Company, job.Position, job.Status, job.JobType, job.JobLocation, time.Now().UTC(), jobID, userID,
	)
	if err != nil {
		return models.Job{}, err
	}
	return s.getJob(userID, jobID)
}

// DeleteJob removes a job owned by userID.
func (s *JobService) DeleteJob(userID, jobID string) error {
	res, err := s.db.Exec("DELETE FROM jobs WHERE id = ? AND created_by = ?", jobID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound("Job not found")
	}
	return nil
}

func (s *JobService) getJob(userID, jobID string) (models.Job, error) {
	var job models.Job
	row := s.db.QueryRow(
		"SELECT id, company, position, status, job_type, job_location, created_by, created_at, updated_at FROM jobs WHERE id = ? AND created_by = ?",
		jobID, userID,
	)
	err := row.Scan(
		&job.ID, &job.Company, &job.Position, &job.Status,
		&job.JobType, &job.JobLocation, &job.CreatedBy,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Job{}, apperr.NotFound("Job not found")
		}
		return models.Job{}, err
	}
	return job, nil
}
