package usecase

import (
	"context"
	"errors"
	"testing"

	"workshop_flow/internal/adapter/events"
	"workshop_flow/internal/adapter/persistence/memory"
	"workshop_flow/internal/domain/entities"
)

func newTestEngine() (*WorkflowEngine, *events.MemorySink) {
	sink := events.NewMemorySink()
	engine := NewWorkflowEngine(memory.NewJobRepository(), memory.NewOrderRepository(), sink)
	return engine, sink
}

func advanceJobCmd(id string, version int64, actorID string, role entities.Role, to entities.JobStatus) Command {
	return Command{
		Kind:            CommandAdvanceJob,
		EntityID:        id,
		ActorID:         actorID,
		ActorRole:       role,
		ExpectedVersion: version,
		ToStatus:        string(to),
	}
}

func advanceOrderCmd(id string, version int64, actorID string, role entities.Role, to entities.OrderStatus) Command {
	return Command{
		Kind:            CommandAdvanceOrder,
		EntityID:        id,
		ActorID:         actorID,
		ActorRole:       role,
		ExpectedVersion: version,
		ToStatus:        string(to),
	}
}

func TestWorkflowEngine_CreateJob(t *testing.T) {
	t.Run("customer id required", func(t *testing.T) {
		engine, _ := newTestEngine()
		_, err := engine.CreateJob(context.Background(), CreateJobInput{CustomerID: "  "})
		if !errors.Is(err, ErrInvalidCommand) {
			t.Fatalf("expected ErrInvalidCommand, got %v", err)
		}
	})

	t.Run("broadcast excludes direct assignment", func(t *testing.T) {
		engine, _ := newTestEngine()
		_, err := engine.CreateJob(context.Background(), CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1", Broadcast: true})
		if !errors.Is(err, ErrInvalidCommand) {
			t.Fatalf("expected ErrInvalidCommand, got %v", err)
		}
	})

	t.Run("new job starts pending at version 1", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, err := engine.CreateJob(context.Background(), CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.ID == "" || job.Status != entities.JobStatusPending || job.Version != 1 {
			t.Fatalf("unexpected job: %+v", job)
		}
		if job.CreatedAt.IsZero() || job.UpdatedAt.IsZero() {
			t.Fatalf("expected timestamps")
		}
	})
}

func TestWorkflowEngine_CreateOrder(t *testing.T) {
	items := []entities.LineItem{{Name: "brake pads", Quantity: 2, UnitPrice: 10}}

	t.Run("buyer and supplier required", func(t *testing.T) {
		engine, _ := newTestEngine()
		_, err := engine.CreateOrder(context.Background(), CreateOrderInput{BuyerID: "cust-1", BuyerRole: entities.RoleCustomer, Items: items})
		if !errors.Is(err, ErrInvalidCommand) {
			t.Fatalf("expected ErrInvalidCommand, got %v", err)
		}
	})

	t.Run("supplier cannot buy", func(t *testing.T) {
		engine, _ := newTestEngine()
		_, err := engine.CreateOrder(context.Background(), CreateOrderInput{BuyerID: "sup-2", BuyerRole: entities.RoleSupplier, SupplierID: "sup-1", Items: items})
		if !errors.Is(err, ErrInvalidCommand) {
			t.Fatalf("expected ErrInvalidCommand, got %v", err)
		}
	})

	t.Run("unpriced order starts in inquiry", func(t *testing.T) {
		engine, _ := newTestEngine()
		unpriced := []entities.LineItem{{Name: "brake pads", Quantity: 2}}
		order, err := engine.CreateOrder(context.Background(), CreateOrderInput{BuyerID: "cust-1", BuyerRole: entities.RoleCustomer, SupplierID: "sup-1", Items: unpriced})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.OrderStatusInquiry || order.Version != 1 {
			t.Fatalf("unexpected order: %+v", order)
		}
	})

	t.Run("priced order starts pending", func(t *testing.T) {
		engine, _ := newTestEngine()
		order, err := engine.CreateOrder(context.Background(), CreateOrderInput{BuyerID: "tech-1", BuyerRole: entities.RoleTechnician, SupplierID: "sup-1", Items: items, Priced: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending, got %s", order.Status)
		}
	})

	t.Run("priced order needs a positive total", func(t *testing.T) {
		engine, _ := newTestEngine()
		unpriced := []entities.LineItem{{Name: "brake pads", Quantity: 2}}
		_, err := engine.CreateOrder(context.Background(), CreateOrderInput{BuyerID: "cust-1", BuyerRole: entities.RoleCustomer, SupplierID: "sup-1", Items: unpriced, Priced: true})
		if !errors.Is(err, ErrInvalidCommand) {
			t.Fatalf("expected ErrInvalidCommand, got %v", err)
		}
	})
}

func TestWorkflowEngine_ExecuteValidation(t *testing.T) {
	engine, _ := newTestEngine()

	t.Run("entity id required", func(t *testing.T) {
		_, err := engine.Execute(context.Background(), Command{Kind: CommandAdvanceJob, ActorID: "tech-1", ActorRole: entities.RoleTechnician})
		if !errors.Is(err, ErrInvalidEntityID) {
			t.Fatalf("expected ErrInvalidEntityID, got %v", err)
		}
	})

	t.Run("actor required", func(t *testing.T) {
		_, err := engine.Execute(context.Background(), Command{Kind: CommandAdvanceJob, EntityID: "j-1", ActorRole: "manager"})
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := engine.Execute(context.Background(), Command{Kind: "noop", EntityID: "j-1", ActorID: "tech-1", ActorRole: entities.RoleTechnician})
		if !errors.Is(err, ErrInvalidCommand) {
			t.Fatalf("expected ErrInvalidCommand, got %v", err)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := engine.Execute(context.Background(), advanceJobCmd("missing", 1, "tech-1", entities.RoleTechnician, entities.JobStatusAccepted))
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestWorkflowEngine_AdvanceJob(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path to completion settles earnings", func(t *testing.T) {
		engine, sink := newTestEngine()
		job, err := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		steps := []struct {
			role    entities.Role
			actorID string
			to      entities.JobStatus
			bill    *entities.Bill
		}{
			{entities.RoleTechnician, "tech-1", entities.JobStatusAccepted, nil},
			{entities.RoleTechnician, "tech-1", entities.JobStatusArrived, nil},
			{entities.RoleTechnician, "tech-1", entities.JobStatusDiagnosing, nil},
			{entities.RoleTechnician, "tech-1", entities.JobStatusQualityCheck, nil},
			{entities.RoleTechnician, "tech-1", entities.JobStatusBillingPending, &entities.Bill{Labor: 100, Parts: 50, Total: 150}},
			{entities.RoleCustomer, "cust-1", entities.JobStatusReadyForDelivery, nil},
			{entities.RoleTechnician, "tech-1", entities.JobStatusVehicleDelivered, nil},
			{entities.RoleCustomer, "cust-1", entities.JobStatusCompleted, nil},
		}

		version := job.Version
		for _, step := range steps {
			cmd := advanceJobCmd(job.ID, version, step.actorID, step.role, step.to)
			cmd.Bill = step.bill
			res, err := engine.Execute(ctx, cmd)
			if err != nil {
				t.Fatalf("advance to %s: %v", step.to, err)
			}
			if res.Job.Status != step.to {
				t.Fatalf("expected %s, got %s", step.to, res.Job.Status)
			}
			version = res.Job.Version
		}

		final, err := engine.GetJob(ctx, job.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if final.Status != entities.JobStatusCompleted || final.Version != int64(len(steps))+1 {
			t.Fatalf("unexpected final job: status=%s version=%d", final.Status, final.Version)
		}
		if len(final.History) != len(steps) {
			t.Fatalf("expected %d history records, got %d", len(steps), len(final.History))
		}

		settled := sink.EventsOfKind(entities.EventSettleTechnicianEarnings)
		if len(settled) != 1 || settled[0].Amount != 150 {
			t.Fatalf("expected one settle event for 150, got %+v", settled)
		}
		if got := len(sink.EventsOfKind(entities.EventJobStateChanged)); got != len(steps) {
			t.Fatalf("expected %d state change events, got %d", len(steps), got)
		}
	})

	t.Run("stale version on retry", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, _ := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})

		cmd := advanceJobCmd(job.ID, 1, "tech-1", entities.RoleTechnician, entities.JobStatusAccepted)
		if _, err := engine.Execute(ctx, cmd); err != nil {
			t.Fatalf("first advance: %v", err)
		}

		_, err := engine.Execute(ctx, cmd)
		if !errors.Is(err, ErrStaleVersion) {
			t.Fatalf("expected ErrStaleVersion on retry, got %v", err)
		}

		reloaded, _ := engine.GetJob(ctx, job.ID)
		if reloaded.Status != entities.JobStatusAccepted || reloaded.Version != 2 {
			t.Fatalf("retry must not change state: %+v", reloaded)
		}
	})

	t.Run("terminal state refuses everything, checked before version", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, _ := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})
		if _, err := engine.Execute(ctx, advanceJobCmd(job.ID, 1, "admin-1", entities.RoleAdmin, entities.JobStatusCancelled)); err != nil {
			t.Fatalf("cancel: %v", err)
		}

		// Wrong version on purpose: the terminal check must win.
		_, err := engine.Execute(ctx, advanceJobCmd(job.ID, 99, "tech-1", entities.RoleTechnician, entities.JobStatusAccepted))
		if !errors.Is(err, ErrTerminalState) {
			t.Fatalf("expected ErrTerminalState, got %v", err)
		}
	})

	t.Run("undeclared edge", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, _ := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})
		_, err := engine.Execute(ctx, advanceJobCmd(job.ID, 1, "tech-1", entities.RoleTechnician, entities.JobStatusCompleted))
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("role gating is server-enforced", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, _ := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})
		_, err := engine.Execute(ctx, advanceJobCmd(job.ID, 1, "cust-1", entities.RoleCustomer, entities.JobStatusAccepted))
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})

	t.Run("cancellation is admin-only", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, _ := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})
		_, err := engine.Execute(ctx, advanceJobCmd(job.ID, 1, "cust-1", entities.RoleCustomer, entities.JobStatusCancelled))
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})

	t.Run("assigned technician only", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, _ := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})
		_, err := engine.Execute(ctx, advanceJobCmd(job.ID, 1, "tech-2", entities.RoleTechnician, entities.JobStatusAccepted))
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole, got %v", err)
		}
	})

	t.Run("broadcast job binds technician at acceptance", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, _ := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", Broadcast: true})
		res, err := engine.Execute(ctx, advanceJobCmd(job.ID, 1, "tech-7", entities.RoleTechnician, entities.JobStatusAccepted))
		if err != nil {
			t.Fatalf("accept: %v", err)
		}
		if res.Job.TechnicianID != "tech-7" {
			t.Fatalf("expected technician bound, got %q", res.Job.TechnicianID)
		}

		_, err = engine.Execute(ctx, advanceJobCmd(job.ID, 2, "tech-8", entities.RoleTechnician, entities.JobStatusArrived))
		if !errors.Is(err, ErrForbiddenRole) {
			t.Fatalf("expected ErrForbiddenRole for the losing technician, got %v", err)
		}
	})

	t.Run("quote-gated edge refuses a direct advance", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, _ := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})
		_, err := engine.Execute(ctx, advanceJobCmd(job.ID, 1, "tech-1", entities.RoleTechnician, entities.JobStatusQuotePending))
		if !errors.Is(err, ErrMissingPayload) {
			t.Fatalf("expected ErrMissingPayload, got %v", err)
		}
	})

	t.Run("billing_pending requires a consistent bill", func(t *testing.T) {
		engine, _ := newTestEngine()
		job, _ := engine.CreateJob(ctx, CreateJobInput{CustomerID: "cust-1", TechnicianID: "tech-1"})
		version := int64(1)
		for _, to := range []entities.JobStatus{entities.JobStatusAccepted, entities.JobStatusArrived, entities.JobStatusDiagnosing, entities.JobStatusQualityCheck} {
			res, err := engine.Execute(ctx, advanceJobCmd(job.ID, version, "tech-1", entities.RoleTechnician, to))
			if err != nil {
				t.Fatalf("advance to %s: %v", to, err)
			}
			version = res.Job.Version
		}

		cmd := advanceJobCmd(job.ID, version, "tech-1", entities.RoleTechnician, entities.JobStatusBillingPending)
		if _, err := engine.Execute(ctx, cmd); !errors.Is(err, ErrMissingPayload) {
			t.Fatalf("expected ErrMissingPayload without bill, got %v", err)
		}

		cmd.Bill = &entities.Bill{Labor: 100, Parts: 50, Total: 140}
		if _, err := engine.Execute(ctx, cmd); !errors.Is(err, ErrMissingPayload) {
			t.Fatalf("expected ErrMissingPayload for inconsistent bill, got %v", err)
		}

		cmd.Bill = &entities.Bill{Labor: 100, Parts: 50, Total: 150}
		res, err := engine.Execute(ctx, cmd)
		if err != nil {
			t.Fatalf("advance with bill: %v", err)
		}
		if res.Job.Bill == nil || res.Job.Bill.Total != 150 {
			t.Fatalf("expected bill stored, got %+v", res.Job.Bill)
		}
	})
}
