package queue

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skillgap-advisor/internal/metrics"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// Analyzer runs and stores one analysis. *service.Service implements it.
type Analyzer interface {
	AnalyzeAndStore(ctx context.Context, req *types.AnalyzeRequest, requestedBy *uuid.UUID) (uuid.UUID, *types.Report, error)
}

// Handler processes request messages
type Handler struct {
	analyzer  Analyzer
	publisher Publisher
	metrics   *metrics.Manager
	now       func() time.Time
}

// NewHandler creates a Handler. m may be nil.
func NewHandler(analyzer Analyzer, publisher Publisher, m *metrics.Manager) *Handler {
	return &Handler{
		analyzer:  analyzer,
		publisher: publisher,
		metrics:   m,
		now:       time.Now,
	}
}

// Handle processes one message body. The returned error is non-nil when the
// message should be nacked into DeadLetterQueue rather than acknowledged.
func (h *Handler) Handle(ctx context.Context, body []byte) error {
	req, err := DecodeRequest(body)
	if err != nil {
		log.Printf("[WORKER] Rejecting message: %v", err)
		if req != nil {
			h.publish(req.ID, StatusUpdate{Status: StatusFailed, Message: err.Error()})
		}
		h.metrics.RecordQueueMessage("rejected")
		return err
	}

	log.Printf("[WORKER] Processing request %s for %q", req.ID, req.TargetPosition)
	h.publish(req.ID, StatusUpdate{Status: StatusProcessing, Message: "analysis started"})

	id, report, err := h.analyzer.AnalyzeAndStore(ctx, req.AnalyzeRequest(), req.RequestedBy)
	if err != nil {
		log.Printf("[WORKER] Request %s failed: %v", req.ID, err)
		h.publish(req.ID, StatusUpdate{Status: StatusFailed, Message: "analysis could not be stored"})
		h.metrics.RecordQueueMessage(metrics.OutcomeError)
		return err
	}

	update := StatusUpdate{AnalysisID: &id, Status: StatusCompleted, Message: "analysis completed"}
	if report.Failed() {
		// Unknown positions still produce a stored report carrying the error
		update.Status = StatusFailed
		update.Message = report.Error
	} else if report.OverallScore != nil {
		score := report.OverallScore.OverallScore
		update.OverallScore = &score
		update.ReadinessLevel = report.OverallScore.ReadinessLevel
	}
	h.publish(req.ID, update)
	h.metrics.RecordQueueMessage(metrics.OutcomeSuccess)
	return nil
}

func (h *Handler) publish(requestID uuid.UUID, update StatusUpdate) {
	if h.publisher == nil {
		return
	}
	update.RequestID = requestID
	update.Timestamp = h.now()
	if err := h.publisher.Publish(RoutingKey(requestID), update); err != nil {
		log.Printf("[WORKER] Failed to publish %s update for %s: %v", update.Status, requestID, err)
	}
}
