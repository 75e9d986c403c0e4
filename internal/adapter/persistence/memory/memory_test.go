package memory

import (
	"context"
	"errors"
	"testing"

	"workshop_flow/internal/domain/entities"
	"workshop_flow/internal/usecase/interfaces"
)

func TestJobRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("load unknown id yields the zero value", func(t *testing.T) {
		repo := NewJobRepository()
		job, err := repo.Load(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.ID != "" {
			t.Fatalf("expected zero value, got %+v", job)
		}
	})

	t.Run("commit requires the stored version", func(t *testing.T) {
		repo := NewJobRepository()
		job := entities.ServiceJob{ID: "j-1", Status: entities.JobStatusPending, Version: 1}
		if _, err := repo.Create(ctx, job); err != nil {
			t.Fatalf("create: %v", err)
		}

		job.Status = entities.JobStatusAccepted
		job.Version = 2
		if _, err := repo.CommitIfVersion(ctx, "j-1", 1, job); err != nil {
			t.Fatalf("commit: %v", err)
		}

		// Same expected version again: the first commit already moved it.
		if _, err := repo.CommitIfVersion(ctx, "j-1", 1, job); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}

		if _, err := repo.CommitIfVersion(ctx, "missing", 1, job); !errors.Is(err, interfaces.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict for unknown id, got %v", err)
		}
	})

	t.Run("stored snapshots are isolated from callers", func(t *testing.T) {
		repo := NewJobRepository()
		bill := entities.Bill{Labor: 1, Parts: 2, Total: 3}
		job := entities.ServiceJob{ID: "j-1", Status: entities.JobStatusBillingPending, Bill: &bill, Version: 1}
		if _, err := repo.Create(ctx, job); err != nil {
			t.Fatalf("create: %v", err)
		}

		bill.Total = 99
		loaded, _ := repo.Load(ctx, "j-1")
		if loaded.Bill.Total != 3 {
			t.Fatalf("caller mutation leaked into the store: %+v", loaded.Bill)
		}

		loaded.Bill.Total = 77
		again, _ := repo.Load(ctx, "j-1")
		if again.Bill.Total != 3 {
			t.Fatalf("loaded value shares state with the store: %+v", again.Bill)
		}
	})
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	order := entities.PartsOrder{
		ID:         "o-1",
		BuyerID:    "cust-1",
		BuyerRole:  entities.RoleCustomer,
		SupplierID: "sup-1",
		Status:     entities.OrderStatusInquiry,
		Items:      []entities.LineItem{{Name: "alternator", Quantity: 1}},
		Version:    1,
	}
	if _, err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create: %v", err)
	}

	order.Status = entities.OrderStatusQuoted
	order.Version = 2
	saved, err := repo.CommitIfVersion(ctx, "o-1", 1, order)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if saved.Status != entities.OrderStatusQuoted {
		t.Fatalf("unexpected saved order: %+v", saved)
	}

	if _, err := repo.CommitIfVersion(ctx, "o-1", 1, order); !errors.Is(err, interfaces.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}
