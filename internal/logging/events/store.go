package events

import "github.com/atomicstack/gridmenu/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Load(source string, count int) {
	logging.Trace("store.load", map[string]interface{}{"source": source, "count": count})
}

func (StoreTracer) Write(op, key string) {
	logging.Trace("store.write", map[string]interface{}{"op": op, "key": key})
}

func (StoreTracer) Export(format, path string, rows int) {
	logging.Trace("store.export", map[string]interface{}{"format": format, "path": path, "rows": rows})
}

func (StoreTracer) View(op, path string) {
	logging.Trace("store.view", map[string]interface{}{"op": op, "path": path})
}
