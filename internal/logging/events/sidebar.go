package events

import "github.com/karpador/trombone/internal/logging"

type SidebarTracer struct{}

type BackendTracer struct{}

var (
	Sidebar = SidebarTracer{}
	Backend = BackendTracer{}
)

func (SidebarTracer) Build(items, lists int) {
	logging.Trace("sidebar.build", map[string]interface{}{"items": items, "lists": lists})
}

func (SidebarTracer) Emit(output string, detail string) {
	logging.Trace("sidebar.emit", map[string]interface{}{"output": output, "detail": detail})
}

func (SidebarTracer) Mutate(op string, index int) {
	logging.Trace("sidebar.mutate", map[string]interface{}{"op": op, "index": index})
}

func (SidebarTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	logging.Trace("sidebar.error", map[string]interface{}{"error": err.Error()})
}

func (BackendTracer) Fetch(kind string, err error) {
	payload := map[string]interface{}{"kind": kind}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("backend.fetch", payload)
}

func (BackendTracer) Applied(kind string, changed bool) {
	logging.Trace("backend.applied", map[string]interface{}{"kind": kind, "changed": changed})
}
