package review_priority

import (
	"context"

	reviewPriority "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/review_priority"
)

type ReviewPriorityUseCase interface {
	Execute(ctx context.Context, req *reviewPriority.Request) (*reviewPriority.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
