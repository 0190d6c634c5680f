package unitofwork

import "context"

// RepositoryFactory creates per-request units of work.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
