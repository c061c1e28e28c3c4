package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleStaff   Role = "STAFF"
)

// ApprovalStatus is the lifecycle state of an internship record
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// Valid reports whether s is a known approval status
func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Identity is the resolved caller passed explicitly into every protected
// operation (never read from ambient state).
type Identity struct {
	UserID int64
	Email  string
	Role   Role
}

// IsStaff reports whether the caller holds the elevated placement-cell role
func (i Identity) IsStaff() bool {
	return i.Role == RoleStaff
}
