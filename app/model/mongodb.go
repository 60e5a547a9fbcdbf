package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityAction jenis kejadian pada timeline project.
type ActivityAction string

const (
	ActivityCreated             ActivityAction = "created"
	ActivitySubmitted           ActivityAction = "submitted"
	ActivityReviewStarted       ActivityAction = "review_started"
	ActivityApproved            ActivityAction = "approved"
	ActivityRejected            ActivityAction = "rejected"
	ActivityRevisionRequested   ActivityAction = "revision_requested"
	ActivityForked              ActivityAction = "forked"
	ActivityInvitationSent      ActivityAction = "invitation_sent"
	ActivityInvitationAccepted  ActivityAction = "invitation_accepted"
	ActivityInvitationDeclined  ActivityAction = "invitation_declined"
	ActivityInvitationCancelled ActivityAction = "invitation_cancelled"
	ActivityRequirementsUpdated ActivityAction = "requirements_updated"
	ActivityDocumentUploaded    ActivityAction = "document_uploaded"
	ActivityReviewCompleted     ActivityAction = "review_completed"
)

// ProjectActivity merepresentasikan 1 dokumen di MongoDB (collection: project_activities).
// Project id dan actor id disimpan sebagai string UUID supaya mudah difilter dari Postgres.
type ProjectActivity struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID  string             `bson:"projectId" json:"projectId"`
	ActorID    string             `bson:"actorId" json:"actorId"`
	ActorRole  Role               `bson:"actorRole" json:"actorRole"`
	Action     ActivityAction     `bson:"action" json:"action"`
	FromStatus ProjectStatus      `bson:"fromStatus,omitempty" json:"fromStatus,omitempty"`
	ToStatus   ProjectStatus      `bson:"toStatus,omitempty" json:"toStatus,omitempty"`
	Metadata   map[string]any     `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
