package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"capstone-backend/app/interfaces"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"

	"github.com/google/uuid"
)

// ProjectEvent payload yang dipublish ke topic Kafka setiap ada aktivitas project.
type ProjectEvent struct {
	EventID    string               `json:"eventId"`
	Type       string               `json:"type"`
	ProjectID  string               `json:"projectId"`
	ActorID    string               `json:"actorId"`
	ActorRole  model.Role           `json:"actorRole"`
	Action     model.ActivityAction `json:"action"`
	FromStatus model.ProjectStatus  `json:"fromStatus,omitempty"`
	ToStatus   model.ProjectStatus  `json:"toStatus,omitempty"`
	Metadata   map[string]any       `json:"metadata,omitempty"`
	OccurredAt time.Time            `json:"occurredAt"`
}

// publishTimeout batas satu publish event; broker mati tidak boleh menahan
// goroutine publish terlalu lama.
const publishTimeout = 3 * time.Second

// ActivityRecorder mencatat aktivitas ke MongoDB dan mempublish event ke Kafka.
// Keduanya best-effort: kegagalan hanya di-log dan tidak menggagalkan request.
// Publish Kafka berjalan di goroutine terpisah dari request.
type ActivityRecorder struct {
	activities repository.ActivityRepository
	producer   interfaces.ProducerHandler

	wg sync.WaitGroup
}

// NewActivityRecorder kedua dependency boleh nil.
func NewActivityRecorder(activities repository.ActivityRepository, producer interfaces.ProducerHandler) *ActivityRecorder {
	return &ActivityRecorder{activities: activities, producer: producer}
}

// Wait menunggu publish yang masih berjalan (shutdown).
func (r *ActivityRecorder) Wait() {
	if r == nil {
		return
	}
	r.wg.Wait()
}

type activityEntry struct {
	projectID uuid.UUID
	action    model.ActivityAction
	from, to  model.ProjectStatus
	metadata  map[string]any
}

func (r *ActivityRecorder) record(ctx context.Context, c Caller, e activityEntry) {
	if r == nil {
		return
	}
	now := nowFunc()

	if r.activities != nil {
		a := &model.ProjectActivity{
			ProjectID:  e.projectID.String(),
			ActorID:    c.UserID.String(),
			ActorRole:  c.Role,
			Action:     e.action,
			FromStatus: e.from,
			ToStatus:   e.to,
			Metadata:   e.metadata,
			CreatedAt:  now,
		}
		if err := r.activities.Insert(ctx, a); err != nil {
			log.Printf("[ACTIVITY] gagal mencatat %s project %s: %v", e.action, e.projectID, err)
		}
	}

	if r.producer != nil {
		evt := ProjectEvent{
			EventID:    uuid.NewString(),
			Type:       "project." + string(e.action),
			ProjectID:  e.projectID.String(),
			ActorID:    c.UserID.String(),
			ActorRole:  c.Role,
			Action:     e.action,
			FromStatus: e.from,
			ToStatus:   e.to,
			Metadata:   e.metadata,
			OccurredAt: now,
		}
		value, err := json.Marshal(evt)
		if err != nil {
			log.Printf("[EVENT] gagal encode event %s: %v", evt.Type, err)
			return
		}

		// lepas dari pembatalan request, dibatasi publishTimeout
		pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			defer cancel()
			if err := r.producer.PublishMessage(pctx, []byte(evt.ProjectID), value); err != nil {
				log.Printf("[EVENT] gagal publish %s project %s: %v", evt.Type, evt.ProjectID, err)
			}
		}()
	}
}

// activityForStatus jenis aktivitas untuk status tujuan transisi.
func activityForStatus(to model.ProjectStatus) model.ActivityAction {
	switch to {
	case model.StatusSubmitted:
		return model.ActivitySubmitted
	case model.StatusInReview:
		return model.ActivityReviewStarted
	case model.StatusApproved:
		return model.ActivityApproved
	case model.StatusRejected:
		return model.ActivityRejected
	case model.StatusRevisionNeeded:
		return model.ActivityRevisionRequested
	}
	return model.ActivityAction(string(to))
}
