package log

import (
	"strconv"
	"strings"
)

// Keys of the correlation metadata added to every decorated record.
// Log parsers depend on these names and on their order in the text form.
const (
	KeyFile         = "file"
	KeyLine         = "line"
	KeyFnName       = "fn_name"
	KeyTaskID       = "task_id"
	KeyTaskParentID = "task_parent_id"
	KeyThreadID     = "thread_id"
)

// Augmentation is the correlation metadata gathered for one record.
// File, Line and FnName are optional and left out when zero.
type Augmentation struct {
	File      string
	Line      int
	FnName    string
	TaskID    uint64
	ParentID  uint64
	HasParent bool
	ThreadID  uint64
}

// AppendTo returns msg followed by ", key=value" for every present field, in the order
// file, line, fn_name, task_id, task_parent_id, thread_id.
func (a Augmentation) AppendTo(msg string) string {
	var sb strings.Builder
	sb.Grow(len(msg) + len(a.File) + len(a.FnName) + 96)
	sb.WriteString(msg)

	if a.File != "" {
		writeKey(&sb, KeyFile)
		sb.WriteString(a.File)
	}
	if a.Line > 0 {
		writeKey(&sb, KeyLine)
		sb.WriteString(strconv.Itoa(a.Line))
	}
	if a.FnName != "" {
		writeKey(&sb, KeyFnName)
		sb.WriteString(a.FnName)
	}
	writeKey(&sb, KeyTaskID)
	sb.WriteString(strconv.FormatUint(a.TaskID, 10))
	if a.HasParent {
		writeKey(&sb, KeyTaskParentID)
		sb.WriteString(strconv.FormatUint(a.ParentID, 10))
	}
	writeKey(&sb, KeyThreadID)
	sb.WriteString(strconv.FormatUint(a.ThreadID, 10))

	return sb.String()
}

func writeKey(sb *strings.Builder, key string) {
	sb.WriteString(", ")
	sb.WriteString(key)
	sb.WriteByte('=')
}

// Fields returns the present fields in the same order AppendTo writes them.
func (a Augmentation) Fields() []Field {
	fields := make([]Field, 0, 6)
	if a.File != "" {
		fields = append(fields, Field{Key: KeyFile, Value: a.File})
	}
	if a.Line > 0 {
		fields = append(fields, Field{Key: KeyLine, Value: a.Line})
	}
	if a.FnName != "" {
		fields = append(fields, Field{Key: KeyFnName, Value: a.FnName})
	}
	fields = append(fields, Field{Key: KeyTaskID, Value: a.TaskID})
	if a.HasParent {
		fields = append(fields, Field{Key: KeyTaskParentID, Value: a.ParentID})
	}
	fields = append(fields, Field{Key: KeyThreadID, Value: a.ThreadID})

	return fields
}

// MergeFields returns original followed by every extra field whose key original
// does not already define. Values supplied by the caller are never overwritten.
// Neither input slice is modified.
func MergeFields(original, extra []Field) []Field {
	merged := make([]Field, 0, len(original)+len(extra))
	merged = append(merged, original...)

next:
	for _, e := range extra {
		for _, o := range original {
			if o.Key == e.Key {
				continue next
			}
		}
		merged = append(merged, e)
	}

	return merged
}

// Apply returns a copy of rec carrying the augmentation. With structured set the
// augmentation is merged into the record's fields. Otherwise the record's fields are
// rendered into the message first and the augmentation follows them, so thread_id is
// always the last token; the returned record has no fields left.
func (a Augmentation) Apply(rec Record, structured bool) Record {
	if structured {
		rec.Fields = MergeFields(rec.Fields, a.Fields())
		return rec
	}
	rec.Message = a.AppendTo(AppendFields(rec.Message, rec.Fields))
	rec.Fields = nil
	return rec
}
