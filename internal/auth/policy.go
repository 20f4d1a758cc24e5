package auth

import "net/http"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

// Requester is the identity derived from a verified session token
// for the current request. It is never persisted.
type Requester struct {
	ID   int64
	Role string
}

func (r *Requester) IsAdmin() bool { return r != nil && r.Role == RoleAdmin }

// Denial explains why an operation was refused, with the status code
// the boundary should answer with.
type Denial struct {
	Status  int
	Message string
}

// CanModify decides whether the requester may update the target user record.
// Rules are evaluated in order; a nil result means the operation is allowed.
// Callers must still strip any role field for non-admin requesters before the
// update reaches the directory.
func CanModify(requester *Requester, targetID int64, hasRoleChange bool) *Denial {
	if requester == nil {
		return &Denial{Status: http.StatusUnauthorized, Message: "Authentication required"}
	}
	if !requester.IsAdmin() && requester.ID != targetID {
		return &Denial{Status: http.StatusForbidden, Message: "You can only update your own account"}
	}
	if hasRoleChange && !requester.IsAdmin() {
		return &Denial{Status: http.StatusForbidden, Message: "Only admin users can change roles"}
	}
	return nil
}

// CanDelete decides whether the requester may delete the target user record.
func CanDelete(requester *Requester, targetID int64) *Denial {
	if requester == nil {
		return &Denial{Status: http.StatusUnauthorized, Message: "Authentication required"}
	}
	if !requester.IsAdmin() && requester.ID != targetID {
		return &Denial{Status: http.StatusForbidden, Message: "You can only delete your own account"}
	}
	return nil
}
