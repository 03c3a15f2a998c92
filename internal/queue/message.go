// Package queue runs skill-gap analyses requested over RabbitMQ and
// publishes their progress.
package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillgap-advisor/internal/types"
)

// Names of the broker objects used by the worker
const (
	RequestQueue   = "skillgap_requests"
	UpdateExchange = "skillgap_updates"

	// DeadLetterExchange receives requests the handler rejected, and
	// DeadLetterQueue keeps them for inspection or replay.
	DeadLetterExchange = "skillgap_requests.dlx"
	DeadLetterQueue    = "skillgap_requests.dead"
)

// Analysis statuses published on UpdateExchange
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Request is the body of a message on RequestQueue
type Request struct {
	ID               uuid.UUID              `json:"id"`
	TargetPosition   string                 `json:"target_position"`
	CandidateProfile types.CandidateProfile `json:"candidate_profile"`
	RequestedBy      *uuid.UUID             `json:"requested_by,omitempty"`
}

// AnalyzeRequest returns the engine input of the message
func (r *Request) AnalyzeRequest() *types.AnalyzeRequest {
	return &types.AnalyzeRequest{
		TargetPosition:   r.TargetPosition,
		CandidateProfile: r.CandidateProfile,
	}
}

// StatusUpdate is published for every state change of a request
type StatusUpdate struct {
	RequestID      uuid.UUID  `json:"request_id"`
	AnalysisID     *uuid.UUID `json:"analysis_id,omitempty"`
	Status         string     `json:"status"`
	Message        string     `json:"message"`
	OverallScore   *float64   `json:"overall_score,omitempty"`
	ReadinessLevel string     `json:"readiness_level,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
}

// RoutingKey is the topic under which updates for a request are published
func RoutingKey(requestID uuid.UUID) string {
	return fmt.Sprintf("analysis.%s", requestID)
}

// DecodeRequest parses and validates a message body
func DecodeRequest(body []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &MessageError{Message: "invalid JSON body", Cause: err}
	}
	if req.ID == uuid.Nil {
		return nil, &MessageError{Message: "missing request id"}
	}
	if err := req.AnalyzeRequest().Validate(); err != nil {
		return &req, &MessageError{Message: "invalid analysis request", Cause: err}
	}
	return &req, nil
}
