package async

import (
	"context"
	"fmt"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunParallel executes tasks concurrently and waits for all of them to finish.
// The first error reported, wrapped with the task name, is returned.
func RunParallel(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	type result struct {
		name string
		err  error
	}

	results := make(chan result, len(tasks))
	for _, task := range tasks {
		go func() {
			results <- result{name: task.Name, err: task.Func(ctx)}
		}()
	}

	var firstErr error
	for range len(tasks) {
		res := <-results
		if res.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", res.name, res.err)
		}
	}

	return firstErr
}
