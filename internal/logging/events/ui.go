package events

import (
	"time"

	"github.com/atomicstack/gridmenu/internal/logging"
)

type MenuTracer struct{}

type PopupTracer struct{}

type GridTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Menu    = MenuTracer{}
	Popup   = PopupTracer{}
	Grid    = GridTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) Open(target string, items, x, y int) {
	logging.Trace("menu.open", map[string]interface{}{
		"target": target,
		"items":  items,
		"x":      x,
		"y":      y,
	})
}

func (MenuTracer) Replace(from, to string) {
	logging.Trace("menu.replace", map[string]interface{}{"from": from, "to": to})
}

func (MenuTracer) Close(target string) {
	logging.Trace("menu.close", map[string]interface{}{"target": target})
}

func (MenuTracer) Execute(item string) {
	logging.Trace("menu.execute", map[string]interface{}{"item": item})
}

func (MenuTracer) ActionError(item string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.action-error", map[string]interface{}{"item": item, "error": err.Error()})
}

func (MenuTracer) Undo(item string, age time.Duration) {
	logging.Trace("menu.undo", map[string]interface{}{"item": item, "ageMs": age.Milliseconds()})
}

func (MenuTracer) UndoExpired(item string, age time.Duration) {
	logging.Trace("menu.undo-expired", map[string]interface{}{"item": item, "ageMs": age.Milliseconds()})
}

func (PopupTracer) Place(x, y, left, top int) {
	logging.Trace("popup.place", map[string]interface{}{
		"x":    x,
		"y":    y,
		"left": left,
		"top":  top,
	})
}

func (PopupTracer) FlyoutOpen(item string, left, top int) {
	logging.Trace("popup.flyout-open", map[string]interface{}{"item": item, "left": left, "top": top})
}

func (PopupTracer) FlyoutClose(item string) {
	logging.Trace("popup.flyout-close", map[string]interface{}{"item": item})
}

func (PopupTracer) Blocked(item, reason string) {
	logging.Trace("popup.blocked", map[string]interface{}{"item": item, "reason": reason})
}

func (PopupTracer) Dismiss(reason string) {
	logging.Trace("popup.dismiss", map[string]interface{}{"reason": reason})
}

func (GridTracer) Scroll(top, start, end int) {
	logging.Trace("grid.scroll", map[string]interface{}{"top": top, "start": start, "end": end})
}

func (GridTracer) Sort(column, direction string) {
	logging.Trace("grid.sort", map[string]interface{}{"column": column, "direction": direction})
}

func (GridTracer) Filter(column, query string, matches int) {
	logging.Trace("grid.filter", map[string]interface{}{"column": column, "query": query, "matches": matches})
}

func (GridTracer) Group(column string) {
	logging.Trace("grid.group", map[string]interface{}{"column": column})
}

func (GridTracer) Column(op, column string, width int) {
	logging.Trace("grid.column", map[string]interface{}{"op": op, "column": column, "width": width})
}

func (GridTracer) Select(key string, selected bool, total int) {
	logging.Trace("grid.select", map[string]interface{}{"key": key, "selected": selected, "total": total})
}

func (GridTracer) Page(page, pages int, paginated bool) {
	logging.Trace("grid.page", map[string]interface{}{"page": page, "pages": pages, "paginated": paginated})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
