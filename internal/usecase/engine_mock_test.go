package usecase

import (
	"context"
	"errors"
	"testing"

	"workshop_flow/internal/domain/entities"
	"workshop_flow/internal/usecase/interfaces"
	mock_interfaces "workshop_flow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkflowEngine_RepositoryFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("load error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIServiceJobRepository(ctrl)
		engine := NewWorkflowEngine(jobs, nil, nil)

		jobs.EXPECT().Load(gomock.Any(), "j-1").Return(entities.ServiceJob{}, errors.New("db down"))

		_, err := engine.Execute(ctx, advanceJobCmd("j-1", 1, "tech-1", entities.RoleTechnician, entities.JobStatusAccepted))
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("commit conflict maps to stale version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIServiceJobRepository(ctrl)
		engine := NewWorkflowEngine(jobs, nil, nil)

		stored := entities.ServiceJob{ID: "j-1", CustomerID: "cust-1", TechnicianID: "tech-1", Status: entities.JobStatusPending, Version: 1}
		jobs.EXPECT().Load(gomock.Any(), "j-1").Return(stored, nil)
		jobs.EXPECT().CommitIfVersion(gomock.Any(), "j-1", int64(1), gomock.Any()).Return(entities.ServiceJob{}, interfaces.ErrVersionConflict)

		_, err := engine.Execute(ctx, advanceJobCmd("j-1", 1, "tech-1", entities.RoleTechnician, entities.JobStatusAccepted))
		if !errors.Is(err, ErrStaleVersion) {
			t.Fatalf("expected ErrStaleVersion, got %v", err)
		}
	})

	t.Run("rejected command never writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIServiceJobRepository(ctrl)
		engine := NewWorkflowEngine(jobs, nil, nil)

		stored := entities.ServiceJob{ID: "j-1", CustomerID: "cust-1", TechnicianID: "tech-1", Status: entities.JobStatusPending, Version: 1}
		jobs.EXPECT().Load(gomock.Any(), "j-1").Return(stored, nil)
		// No CommitIfVersion expectation: the forbidden role must stop the
		// command before persistence.

		_, err := engine.Execute(ctx, advanceJobCmd("j-1", 1, "cust-1", entities.RoleCustomer, entities.JobStatusAccepted))
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})
}

func TestWorkflowEngine_PublishFailureIsNotSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIServiceJobRepository(ctrl)
	sink := mock_interfaces.NewMockIEventSink(ctrl)
	engine := NewWorkflowEngine(jobs, nil, sink)

	stored := entities.ServiceJob{ID: "j-1", CustomerID: "cust-1", TechnicianID: "tech-1", Status: entities.JobStatusPending, Version: 1}
	jobs.EXPECT().Load(gomock.Any(), "j-1").Return(stored, nil)
	jobs.EXPECT().CommitIfVersion(gomock.Any(), "j-1", int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ int64, job entities.ServiceJob) (entities.ServiceJob, error) {
			return job, nil
		},
	)
	sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := engine.Execute(context.Background(), advanceJobCmd("j-1", 1, "tech-1", entities.RoleTechnician, entities.JobStatusAccepted))
	if err != nil {
		t.Fatalf("commit succeeded, publish failure must not surface: %v", err)
	}
	if res.Job.Status != entities.JobStatusAccepted || res.Job.Version != 2 {
		t.Fatalf("unexpected job: %+v", res.Job)
	}
}
