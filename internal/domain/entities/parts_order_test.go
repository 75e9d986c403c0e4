package entities

import "testing"

func TestOrderTransitionGraph(t *testing.T) {
	t.Run("vocabulary is closed", func(t *testing.T) {
		for from, next := range orderTransitions {
			if !ValidOrderStatus(from) {
				t.Fatalf("status %s missing from vocabulary", from)
			}
			for to := range next {
				if !ValidOrderStatus(to) {
					t.Fatalf("edge %s->%s points outside the vocabulary", from, to)
				}
			}
		}
	})

	t.Run("terminal states have no out-edges", func(t *testing.T) {
		for _, s := range OrderStatuses() {
			if OrderTerminal(s) && len(NextOrderStatuses(s)) != 0 {
				t.Fatalf("terminal status %s has out-edges %v", s, NextOrderStatuses(s))
			}
		}
	})

	t.Run("packing cannot be skipped", func(t *testing.T) {
		if CanOrderTransition(OrderStatusAccepted, OrderStatusOutForDelivery) {
			t.Fatalf("accepted->out_for_delivery must not exist")
		}
		if !CanOrderTransition(OrderStatusAccepted, OrderStatusPacked) {
			t.Fatalf("expected accepted->packed")
		}
		if !CanOrderTransition(OrderStatusPacked, OrderStatusOutForDelivery) {
			t.Fatalf("expected packed->out_for_delivery")
		}
	})

	t.Run("two entry shapes share one downstream chain", func(t *testing.T) {
		if !CanOrderTransition(OrderStatusInquiry, OrderStatusQuoted) {
			t.Fatalf("expected inquiry->quoted")
		}
		if !CanOrderTransition(OrderStatusQuoted, OrderStatusAccepted) {
			t.Fatalf("expected quoted->accepted")
		}
		if !CanOrderTransition(OrderStatusPending, OrderStatusAccepted) {
			t.Fatalf("expected pending->accepted")
		}
		if CanOrderTransition(OrderStatusInquiry, OrderStatusAccepted) {
			t.Fatalf("inquiry must pass through quoted")
		}
	})
}

func TestOrderEdgeRoles(t *testing.T) {
	t.Run("cancellation is admin-only", func(t *testing.T) {
		for _, s := range OrderStatuses() {
			if !CanOrderTransition(s, OrderStatusCancelled) {
				continue
			}
			roles := OrderEdgeRoles(s, OrderStatusCancelled)
			if len(roles) != 1 || roles[0] != RoleAdmin {
				t.Fatalf("cancellation from %s should be admin-only, got %v", s, roles)
			}
		}
	})

	t.Run("supplier drives fulfilment", func(t *testing.T) {
		fulfilment := []struct{ from, to OrderStatus }{
			{OrderStatusAccepted, OrderStatusPacked},
			{OrderStatusPacked, OrderStatusOutForDelivery},
			{OrderStatusOutForDelivery, OrderStatusShipped},
			{OrderStatusShipped, OrderStatusDelivered},
		}
		for _, e := range fulfilment {
			roles := OrderEdgeRoles(e.from, e.to)
			if len(roles) != 1 || roles[0] != RoleSupplier {
				t.Fatalf("edge %s->%s should be supplier-only, got %v", e.from, e.to, roles)
			}
		}
	})

	t.Run("buyer resolves supplier quotes", func(t *testing.T) {
		roles := OrderEdgeRoles(OrderStatusQuoted, OrderStatusAccepted)
		if len(roles) != 2 || roles[0] != RoleCustomer || roles[1] != RoleTechnician {
			t.Fatalf("expected customer and technician, got %v", roles)
		}
	})
}

func TestPartsOrderTotal(t *testing.T) {
	items := []LineItem{
		{Name: "brake pads", Quantity: 2, UnitPrice: 10},
		{Name: "oil filter", Quantity: 1, UnitPrice: 5},
	}

	t.Run("sum over items without an accepted quote", func(t *testing.T) {
		order := PartsOrder{Items: items}
		if got := order.Total(); got != 25 {
			t.Fatalf("expected 25, got %v", got)
		}
	})

	t.Run("accepted quote total wins", func(t *testing.T) {
		order := PartsOrder{
			Items: items,
			Quote: &Quote{TotalAmount: 40, Status: QuoteStatusAccepted},
		}
		if got := order.Total(); got != 40 {
			t.Fatalf("expected 40, got %v", got)
		}
	})

	t.Run("unresolved quote does not override", func(t *testing.T) {
		order := PartsOrder{
			Items: items,
			Quote: &Quote{TotalAmount: 40, Status: QuoteStatusProposed},
		}
		if got := order.Total(); got != 25 {
			t.Fatalf("expected 25, got %v", got)
		}
	})
}
