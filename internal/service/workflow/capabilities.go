package workflow

import "kabataan-backend/internal/domain"

// Capability names an action a role may perform on workflow entities.
type Capability string

const (
	CapSubmitOwn  Capability = "submit_own"
	CapReview     Capability = "review"
	CapManageUser Capability = "manage_users"
)

// Capabilities resolves the full set of granted actions for a role. All
// role checks in the guard go through this single table rather than
// ad hoc role comparisons at call sites.
func Capabilities(role domain.UserRole) map[Capability]bool {
	switch role {
	case domain.RoleSuperAdmin:
		return map[Capability]bool{
			CapSubmitOwn:  true,
			CapReview:     true,
			CapManageUser: true,
		}
	case domain.RoleAdmin:
		return map[Capability]bool{
			CapSubmitOwn: true,
			CapReview:    true,
		}
	case domain.RoleUser:
		return map[Capability]bool{
			CapSubmitOwn: true,
		}
	default:
		return map[Capability]bool{}
	}
}

func hasCapability(role domain.UserRole, cap Capability) bool {
	return Capabilities(role)[cap]
}
