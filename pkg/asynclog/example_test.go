package asynclog_test

import (
	"fmt"

	"github.com/erc7824/asynclog/pkg/asynclog"
	"github.com/erc7824/asynclog/pkg/log"
	"github.com/erc7824/asynclog/pkg/span"
)

type printBackend struct{}

func (printBackend) Enabled(log.Metadata) bool { return true }
func (printBackend) Log(rec log.Record)        { fmt.Println(rec.Message) }
func (printBackend) Flush()                    {}

func ExampleWrap() {
	provider := func() asynclog.Correlation {
		return asynclog.Correlation{ID: 7, ParentID: 5, HasParent: true}
	}
	d := asynclog.Wrap(printBackend{}, provider, asynclog.DefaultFrameSkip,
		asynclog.WithBacktrace(false),
		asynclog.WithThreadIdentity(func() uint64 { return 8 }),
	)
	lg := log.NewRecordLogger(d)

	func() {
		defer span.New(d, "main").End()
		lg.Info("this foo")
	}()

	// Output:
	// main, span_mark=start, task_id=7, task_parent_id=5, thread_id=8
	// this foo, task_id=7, task_parent_id=5, thread_id=8
	// main, span_mark=end, task_id=7, task_parent_id=5, thread_id=8
}
