package port

// DocumentQueue accepts uploaded documents for background extraction.
// Implementations never block the caller.
type DocumentQueue interface {
	EnqueueDocument(tenantID, documentID string)
}
