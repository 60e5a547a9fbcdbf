package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	imocks "capstone-backend/app/interfaces/mocks"
	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/app/repository/mocks"
)

func TestStatistics_ScopedByRole(t *testing.T) {
	counts := map[model.ProjectStatus]int64{
		model.StatusDraft:     2,
		model.StatusSubmitted: 1,
	}

	t.Run("admin tanpa filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepository(ctrl)
		reports := mocks.NewMockReportRepository(ctrl)

		projects.EXPECT().CountByStatus(gomock.Any(), repository.ProjectFilter{}).Return(counts, nil)
		reports.EXPECT().GetActivityStatistics(gomock.Any(), repository.ReportFilter{}).Return(&repository.ActivityReport{TotalActivities: 9}, nil)

		stats, err := NewReportService(projects, reports, nil).Statistics(context.Background(), admin)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalProjects)
		assert.Equal(t, int64(9), stats.Activity.TotalActivities)
	})

	t.Run("dosen tanpa project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepository(ctrl)
		reports := mocks.NewMockReportRepository(ctrl)

		filter := repository.ProjectFilter{DosenID: dosenID}
		projects.EXPECT().CountByStatus(gomock.Any(), filter).Return(map[model.ProjectStatus]int64{}, nil)
		projects.EXPECT().ProjectIDs(gomock.Any(), filter).Return(nil, nil)
		// slice kosong non-nil: tidak ada aktivitas yang boleh dilihat
		reports.EXPECT().GetActivityStatistics(gomock.Any(), repository.ReportFilter{ProjectIDs: []string{}}).
			Return(&repository.ActivityReport{}, nil)

		stats, err := NewReportService(projects, reports, nil).Statistics(context.Background(), dosen)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalProjects)
	})

	t.Run("mahasiswa project sendiri", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepository(ctrl)
		reports := mocks.NewMockReportRepository(ctrl)

		filter := repository.ProjectFilter{MemberID: leaderID}
		projects.EXPECT().CountByStatus(gomock.Any(), filter).Return(counts, nil)
		projects.EXPECT().ProjectIDs(gomock.Any(), filter).Return([]uuid.UUID{projectID}, nil)
		reports.EXPECT().GetActivityStatistics(gomock.Any(), repository.ReportFilter{ProjectIDs: []string{projectID.String()}}).
			Return(&repository.ActivityReport{}, nil)

		_, err := NewReportService(projects, reports, nil).Statistics(context.Background(), leader)
		require.NoError(t, err)
	})
}

func TestActivities_RequiresAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	projects := mocks.NewMockProjectRepository(ctrl)
	activities := mocks.NewMockActivityRepository(ctrl)
	svc := NewReportService(projects, nil, activities)

	projects.EXPECT().FindByID(gomock.Any(), projectID).Return(sampleProject(model.StatusDraft), nil).Times(2)
	activities.EXPECT().ListByProject(gomock.Any(), projectID.String(), int64(20)).
		Return([]model.ProjectActivity{{Action: model.ActivityCreated}}, nil)

	list, err := svc.Activities(context.Background(), member, projectID, 20)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Activities(context.Background(), outsider, projectID, 20)
	assert.Error(t, err)
}

func TestActivityRecorder_BestEffort(t *testing.T) {
	freezeTime(t)
	ctrl := gomock.NewController(t)
	activities := mocks.NewMockActivityRepository(ctrl)
	producer := imocks.NewMockProducerHandler(ctrl)

	activities.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *model.ProjectActivity) error {
		assert.Equal(t, projectID.String(), a.ProjectID)
		assert.Equal(t, model.ActivitySubmitted, a.Action)
		assert.Equal(t, fixedNow, a.CreatedAt)
		return errors.New("mongo down")
	})
	producer.EXPECT().PublishMessage(gomock.Any(), []byte(projectID.String()), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, value []byte) error {
			var evt ProjectEvent
			require.NoError(t, json.Unmarshal(value, &evt))
			assert.Equal(t, "project.submitted", evt.Type)
			assert.Equal(t, model.StatusDraft, evt.FromStatus)
			assert.Equal(t, model.StatusSubmitted, evt.ToStatus)
			return errors.New("kafka down")
		})

	// kegagalan keduanya hanya di-log
	rec := NewActivityRecorder(activities, producer)
	rec.record(context.Background(), leader, activityEntry{
		projectID: projectID,
		action:    model.ActivitySubmitted,
		from:      model.StatusDraft,
		to:        model.StatusSubmitted,
	})
	rec.Wait()

	var nilRecorder *ActivityRecorder
	nilRecorder.record(context.Background(), leader, activityEntry{projectID: projectID})
	nilRecorder.Wait()
}

func TestActivityRecorder_PublishDoesNotBlockRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := imocks.NewMockProducerHandler(ctrl)

	release := make(chan struct{})
	producer.EXPECT().PublishMessage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ []byte) error {
			<-release
			// request sudah selesai, publish tetap punya deadline sendiri
			assert.NoError(t, ctx.Err())
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(publishTimeout), deadline, publishTimeout)
			return errors.New("broker unreachable")
		})

	rec := NewActivityRecorder(nil, producer)
	reqCtx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rec.record(reqCtx, leader, activityEntry{projectID: projectID, action: model.ActivityRequirementsUpdated})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("record menunggu publish Kafka selesai")
	}

	cancel()
	close(release)
	rec.Wait()
}
