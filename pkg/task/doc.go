// Package task gives goroutines task ids for the correlation decorator.
//
// A Registry hands out ids, remembers which goroutine runs which task and serves
// that through Current, which is the ContextProvider passed to asynclog.Wrap:
//
//	reg := task.NewRegistry(asynclog.Installed())
//	d := asynclog.Wrap(backend, reg.Current, asynclog.DefaultFrameSkip)
//	_ = d.Install(log.LevelTrace)
//
//	reg.Run(func() {
//	    reg.Go(func() { asynclog.Default().Info("child") })
//	})
//
// Every task started through the registry writes a "task spawned" trace record from
// its own goroutine, so the record carries the new task_id, the spawner's id as
// task_parent_id, and spawn_file and spawn_line of the Go call.
//
// Group does the same for golang.org/x/sync/errgroup.
package task
