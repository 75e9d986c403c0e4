package usecase

import (
	"fmt"

	"workshop_flow/internal/domain/entities"
)

// Authorizer decides whether a role may walk a given edge. It is a thin,
// stateless view over the per-edge role tables declared next to the
// transition graphs; keeping it separate from the engine makes the gating
// server-enforced rather than a UI conditional.

type Authorizer struct{}

func NewAuthorizer() Authorizer { return Authorizer{} }

func (Authorizer) AuthorizeJob(from, to entities.JobStatus, role entities.Role) error {
	return authorize(entities.JobEdgeRoles(from, to), role, string(from), string(to))
}

func (Authorizer) AuthorizeOrder(from, to entities.OrderStatus, role entities.Role) error {
	return authorize(entities.OrderEdgeRoles(from, to), role, string(from), string(to))
}

func authorize(allowed []entities.Role, role entities.Role, from, to string) error {
	for _, r := range allowed {
		if r == role {
			return nil
		}
	}
	return fmt.Errorf("%w: role %s on %s->%s", ErrForbiddenRole, role, from, to)
}
