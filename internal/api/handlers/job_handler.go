package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/skisyula/jobify-be/internal/apperr"
	"github.com/skisyula/jobify-be/internal/auth"
	"github.com/skisyula/jobify-be/internal/models"
	"github.com/skisyula/jobify-be/internal/services"
)

// JobHandler handles HTTP requests for tracked job applications. All routes
// sit behind the auth gate, so the owning user comes from the request
// context.
type JobHandler struct {
	service services.JobServiceProvider
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobServiceProvider) *JobHandler {
	return &JobHandler{service: service}
}

// JobPayload defines the structure for job create and update requests.
type JobPayload struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Status      string `json:"status"`
	JobType     string `json:"jobType"`
	JobLocation string `json:"jobLocation"`
}

// GetAll handles the request to list the authenticated user's jobs.
func (h *JobHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(w, apperr.Auth("Authentication Invalid"))
		return
	}

	jobs, err := h.service.GetJobsForUser(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list jobs")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// Create handles the request to create a new job.
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(w, apperr.Auth("Authentication Invalid"))
		return
	}

	var payload JobPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("Invalid request body"))
		return
	}

	job, err := h.service.CreateJob(userID, models.Job{
		Company:     payload.Company,
		Position:    payload.Position,
		Status:      payload.Status,
		JobType:     payload.JobType,
		JobLocation: payload.JobLocation,
	})
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to create job")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

// Update handles the request to update an existing job.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(w, apperr.Auth("Authentication Invalid"))
		return
	}

	id := chi.URLParam(r, "id")
	var payload JobPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperr.Validation("Invalid request body"))
		return
	}

	job, err := h.service.UpdateJob(userID, id, models.Job{
		Company:     payload.Company,
		Position:    payload.Position,
		Status:      payload.Status,
		JobType:     payload.JobType,
		JobLocation: payload.JobLocation,
	})
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Str("job_id", id).Msg("Failed to update job")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// Delete handles the request to delete a job.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeError(w, apperr.Auth("Authentication Invalid"))
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.DeleteJob(userID, id); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Str("job_id", id).Msg("Failed to delete job")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
