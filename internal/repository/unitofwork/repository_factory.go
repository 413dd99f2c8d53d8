package unitofwork

import "context"

// RepositoryFactory hands each service call its own UnitOfWork.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
