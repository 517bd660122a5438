package executor_factory

import (
	"context"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/heatsight/heatsight-backend/repositories"
)

type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return stub.Mock
}

func (stub ExecutorFactoryStub) Transaction(ctx context.Context, fn func(tx repositories.Executor) error) error {
	return fn(stub.Mock)
}
