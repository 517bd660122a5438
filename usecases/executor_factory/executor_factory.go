package executor_factory

import (
	"context"

	"github.com/heatsight/heatsight-backend/repositories"
)

// ExecutorFactory hands out warehouse executors so usecases decide the
// transaction scope of each write.
type ExecutorFactory interface {
	NewExecutor() repositories.Executor
	Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error
}

type DbExecutorFactory struct {
	executorGetter repositories.ExecutorGetter
}

func NewDbExecutorFactory(executorGetter repositories.ExecutorGetter) DbExecutorFactory {
	return DbExecutorFactory{
		executorGetter: executorGetter,
	}
}

func (factory DbExecutorFactory) NewExecutor() repositories.Executor {
	return factory.executorGetter.GetExecutor()
}

func (factory DbExecutorFactory) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	return factory.executorGetter.Transaction(ctx, fn)
}
