package task

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/erc7824/asynclog/pkg/asynclog"
	"github.com/erc7824/asynclog/pkg/log"
	"github.com/erc7824/asynclog/pkg/threadid"
)

const (
	// Target is the logger name of spawn records.
	Target = "task"

	KeySpawnFile = "spawn_file"
	KeySpawnLine = "spawn_line"
)

// Registry assigns task ids to goroutines started through it and reports them
// to a decorator through Current.
type Registry struct {
	lg    log.Logger
	next  atomic.Uint64
	live  atomic.Int64
	tasks sync.Map // goroutine id -> asynclog.Correlation
	wg    sync.WaitGroup
}

// NewRegistry returns a registry that writes spawn records to b.
// Pass the decorator, or asynclog.Installed(), so that they carry the new task's ids.
func NewRegistry(b log.Backend) *Registry {
	return &Registry{
		lg: log.NewRecordLogger(b).WithName(Target),
	}
}

// Current returns the task of the calling goroutine. Outside any task it is task 0
// without a parent. It satisfies asynclog.ContextProvider.
func (r *Registry) Current() asynclog.Correlation {
	if v, ok := r.tasks.Load(threadid.Current()); ok {
		return v.(asynclog.Correlation)
	}
	return asynclog.Correlation{}
}

// Go runs fn on a new goroutine as a new task, a child of the caller's task if it has one.
// It returns the new task id.
func (r *Registry) Go(fn func()) uint64 {
	corr, site := r.spawn(1)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer r.enter(corr, site)()
		fn()
	}()

	return corr.ID
}

// Run runs fn on the calling goroutine as a new task. The goroutine's previous task,
// if any, is restored when fn returns.
func (r *Registry) Run(fn func()) uint64 {
	corr, site := r.spawn(1)
	defer r.enter(corr, site)()
	fn()
	return corr.ID
}

// Wait blocks until every goroutine started with Go has returned.
func (r *Registry) Wait() {
	r.wg.Wait()
}

// Live returns the number of tasks currently running.
func (r *Registry) Live() int {
	return int(r.live.Load())
}

type spawnSite struct {
	file string
	line int
}

// spawn allocates the next task id under the caller's task. skip is the number of frames
// between spawn and the exported method whose caller is the spawn site.
func (r *Registry) spawn(skip int) (asynclog.Correlation, spawnSite) {
	corr := asynclog.Correlation{ID: r.next.Add(1)}
	if parent := r.Current(); parent.ID != 0 {
		corr.ParentID, corr.HasParent = parent.ID, true
	}

	var site spawnSite
	_, site.file, site.line, _ = runtime.Caller(skip + 1)

	return corr, site
}

// enter binds corr to the calling goroutine, logs the spawn and returns the function
// that undoes the binding.
func (r *Registry) enter(corr asynclog.Correlation, site spawnSite) func() {
	gid := threadid.Current()
	prev, hadPrev := r.tasks.Load(gid)
	r.tasks.Store(gid, corr)
	r.live.Add(1)

	r.lg.Trace("task spawned", KeySpawnFile, site.file, KeySpawnLine, site.line)

	return func() {
		r.live.Add(-1)
		if hadPrev {
			r.tasks.Store(gid, prev)
			return
		}
		r.tasks.Delete(gid)
	}
}

// Group is an errgroup.Group whose goroutines run as tasks of a Registry.
type Group struct {
	r *Registry
	g *errgroup.Group
}

// Group returns a new Group and a context derived from ctx that is canceled
// when a task in the group fails or Wait returns.
func (r *Registry) Group(ctx context.Context) (*Group, context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	return &Group{r: r, g: g}, ctx
}

// Go runs fn as a new task in the group.
func (g *Group) Go(fn func() error) {
	corr, site := g.r.spawn(1)

	g.g.Go(func() error {
		defer g.r.enter(corr, site)()
		return fn()
	})
}

// SetLimit limits the number of tasks of the group running at once.
func (g *Group) SetLimit(n int) {
	g.g.SetLimit(n)
}

// Wait blocks until all tasks of the group have returned and returns the first error.
func (g *Group) Wait() error {
	return g.g.Wait()
}
