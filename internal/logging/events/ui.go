package events

import (
	"github.com/karpador/trombone/internal/logging"
	"go.uber.org/zap"
)

type UITracer struct{}

type FindTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Find    = FindTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Cursor(pane string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"pane": pane, "cursor": cursor})
}

func (UITracer) Overlay(name string, open bool) {
	logging.Trace("ui.overlay", map[string]interface{}{"overlay": name, "open": open})
}

func (UITracer) Content(placeKey, title string) {
	logging.Trace("ui.content", map[string]interface{}{"place": placeKey, "title": title})
}

func (UITracer) Unhandled(kind string) {
	logging.Warn("unimplemented output", zap.String("output", kind))
	logging.Trace("ui.unimplemented", map[string]interface{}{"output": kind})
}

func (FindTracer) Query(query string, match int) {
	logging.Trace("find.query", map[string]interface{}{"query": query, "match": match})
}

func (FindTracer) Cancel() {
	logging.Trace("find.cancel", nil)
}

func (ActionTracer) Dispatch(name string) {
	logging.Trace("action.dispatch", map[string]interface{}{"action": name})
}

func (ActionTracer) Unimplemented(name, label string) {
	logging.Warn("unimplemented action", zap.String("action", name), zap.String("label", label))
	logging.Trace("action.unimplemented", map[string]interface{}{"action": name, "label": label})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
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
