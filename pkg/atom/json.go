package atom

import "encoding/json"

// Encoder marshals decoded records to JSON. A Schema restricts the output
// to the named fields, applied at every nesting level; a nil Schema keeps
// everything. Derived capability flags are encoded as booleans alongside
// the decoded fields.
type Encoder struct {
	// Schema lists the field names to include. nil means all fields.
	Schema []string
}

// Marshal encodes a *Record, Neighbor, Ports or *Interface.
func (e Encoder) Marshal(v any) ([]byte, error) {
	switch r := v.(type) {
	case *Interface:
		out := e.value(r.Record)
		if e.allowed("port") {
			out["port"] = e.value(r.Port.Record)
		}
		return json.Marshal(out)
	case Ports:
		return json.Marshal(e.value(r.Record))
	case Neighbor:
		return json.Marshal(e.value(r.Record))
	case *Record:
		return json.Marshal(e.value(r))
	default:
		return json.Marshal(v)
	}
}

// value builds the JSON object for one record, schema-filtered.
func (e Encoder) value(r *Record) map[string]any {
	out := make(map[string]any)
	if r == nil {
		return out
	}
	for name, v := range r.fields {
		if e.allowed(name) {
			out[name] = v
		}
	}
	for name, children := range r.lists {
		if !e.allowed(name) {
			continue
		}
		encoded := make([]map[string]any, 0, len(children))
		for _, c := range children {
			encoded = append(encoded, e.value(c))
		}
		out[name] = encoded
	}
	for name, enabled := range map[string]bool{
		"repeater_enabled": r.RepeaterEnabled(),
		"bridge_enabled":   r.BridgeEnabled(),
		"wlan_enabled":     r.WLANEnabled(),
		"router_enabled":   r.RouterEnabled(),
	} {
		if e.allowed(name) {
			out[name] = enabled
		}
	}
	return out
}

func (e Encoder) allowed(name string) bool {
	if e.Schema == nil {
		return true
	}
	for _, s := range e.Schema {
		if s == name {
			return true
		}
	}
	return false
}
