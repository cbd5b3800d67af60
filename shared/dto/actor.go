package dto

import (
	"context"

	"seatsafe/shared/constant"
)

// Actor is the authenticated identity a core operation runs as. It is passed
// explicitly into every service call rather than read from ambient state, so
// the lifecycle logic stays testable without a session layer.
type Actor struct {
	ID             string
	Role           string
	OrganizationID string
}

// ActorFromContext rebuilds the actor from the values the auth middleware put
// on the request context.
func ActorFromContext(ctx context.Context) Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	orgID, _ := ctx.Value(constant.ContextKeyOrganizationID).(string)

	return Actor{
		ID:             id,
		Role:           role,
		OrganizationID: orgID,
	}
}

// IsParent reports whether the actor holds the parent role.
func (a Actor) IsParent() bool {
	return a.Role == constant.RoleParent
}

// IsOrganization reports whether the actor is an organization owner.
func (a Actor) IsOrganization() bool {
	return a.Role == constant.RoleOrganization
}

// IsOrganizationSide reports whether the actor acts for an organization,
// either as its owner or as a team member.
func (a Actor) IsOrganizationSide() bool {
	return a.Role == constant.RoleOrganization || a.Role == constant.RoleTeamMember
}
