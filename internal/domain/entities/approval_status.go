package entities

// ApprovalStatus is shared by extensions and substitutions.
type ApprovalStatus string

const (
	ApprovalStatusPendingSupplier ApprovalStatus = "PENDING_SUPPLIER"
	ApprovalStatusPendingClient   ApprovalStatus = "PENDING_CLIENT"
	ApprovalStatusApproved        ApprovalStatus = "APPROVED"
	ApprovalStatusRejected        ApprovalStatus = "REJECTED"
	ApprovalStatusCancelled       ApprovalStatus = "CANCELLED"
)

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPendingSupplier, ApprovalStatusPendingClient,
		ApprovalStatusApproved, ApprovalStatusRejected, ApprovalStatusCancelled:
		return true
	}
	return false
}

func (s ApprovalStatus) IsPending() bool {
	return s == ApprovalStatusPendingSupplier || s == ApprovalStatusPendingClient
}

func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected || s == ApprovalStatusCancelled
}
