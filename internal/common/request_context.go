// request_context.go - Request tracking and logging

package common

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// RequestContext tracks one request's lifecycle with timing per step.
type RequestContext struct {
	RequestID        string
	ClientIP         string
	StartTime        time.Time
	Steps            []StepLog
	currentStep      string
	currentStepStart time.Time
}

// StepLog records a single processing step.
type StepLog struct {
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Duration  int64     `json:"duration_ms"`
	Status    string    `json:"status"` // "success", "failed", "skipped"
	Error     string    `json:"error,omitempty"`
}

// NewRequestContext creates a new request tracking context.
func NewRequestContext(clientIP string) *RequestContext {
	reqID := uuid.New().String()
	log.Printf("[%s] request received from %s", reqID, clientIP)

	return &RequestContext{
		RequestID: reqID,
		ClientIP:  clientIP,
		StartTime: time.Now(),
	}
}

// StartStep begins tracking a new processing step.
func (rc *RequestContext) StartStep(name string) {
	rc.currentStep = name
	rc.currentStepStart = time.Now()
	log.Printf("[%s] step %s started", rc.RequestID, name)
}

// EndStep completes the current step and records timing.
func (rc *RequestContext) EndStep(status string, err error) {
	duration := time.Since(rc.currentStepStart).Milliseconds()

	step := StepLog{
		Name:      rc.currentStep,
		StartTime: rc.currentStepStart,
		Duration:  duration,
		Status:    status,
	}
	if err != nil {
		step.Error = err.Error()
		log.Printf("[%s] step %s failed after %dms: %v", rc.RequestID, rc.currentStep, duration, err)
	} else {
		log.Printf("[%s] step %s %s in %dms", rc.RequestID, rc.currentStep, status, duration)
	}

	rc.Steps = append(rc.Steps, step)
	rc.currentStep = ""
}

// TotalDuration returns the elapsed time since the request started.
func (rc *RequestContext) TotalDuration() time.Duration {
	return time.Since(rc.StartTime)
}

// LogInfo logs an info-level message with the request ID prefix.
func (rc *RequestContext) LogInfo(format string, args ...interface{}) {
	log.Printf("[%s] %s", rc.RequestID, fmt.Sprintf(format, args...))
}

// LogWarning logs a warning-level message with the request ID prefix.
func (rc *RequestContext) LogWarning(format string, args ...interface{}) {
	log.Printf("[%s] WARN %s", rc.RequestID, fmt.Sprintf(format, args...))
}

// LogError logs an error-level message with the request ID prefix.
func (rc *RequestContext) LogError(format string, args ...interface{}) {
	log.Printf("[%s] ERROR %s", rc.RequestID, fmt.Sprintf(format, args...))
}
