package events

import "github.com/atomicstack/menustack/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type TickTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Tick   = TickTracer{}
)

func (UITracer) PickerCursor(cursor int) {
	logging.Trace("picker.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Key(key, action string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "action": action})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}

func (TickTracer) Done(seq uint64, transitions int, err error) {
	payload := map[string]interface{}{"seq": seq, "transitions": transitions}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("tick", payload)
}
