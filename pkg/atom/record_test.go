package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordNilReceiver(t *testing.T) {
	var r *Record

	_, ok := r.Field("chassis_name")
	assert.False(t, ok)
	assert.Equal(t, "fallback", r.FieldOr("chassis_name", "fallback"))
	assert.Nil(t, r.List("port_neighbors"))
	assert.Nil(t, r.FieldNames())
	assert.Nil(t, r.ListNames())

	assert.False(t, r.RepeaterEnabled())
	assert.False(t, r.BridgeEnabled())
	assert.False(t, r.WLANEnabled())
	assert.False(t, r.RouterEnabled())
}

func TestRecordFieldAccess(t *testing.T) {
	r := &Record{
		fields: map[string]string{
			"chassis_name": "switch1",
			"port_id":      "Gi0/1",
		},
		lists: map[string][]*Record{
			"port_neighbors": {{fields: map[string]string{"chassis_id": "aa:bb"}}},
		},
	}

	v, ok := r.Field("chassis_name")
	assert.True(t, ok)
	assert.Equal(t, "switch1", v)

	_, ok = r.Field("port_descr")
	assert.False(t, ok)
	assert.Equal(t, "none", r.FieldOr("port_descr", "none"))

	assert.Len(t, r.List("port_neighbors"), 1)
	assert.Empty(t, r.List("chassis_mgmt"))

	assert.Equal(t, []string{"chassis_name", "port_id"}, r.FieldNames())
	assert.Equal(t, []string{"port_neighbors"}, r.ListNames())
}

func TestCapabilityFlags(t *testing.T) {
	tests := []struct {
		name     string
		mask     string
		absent   bool
		repeater bool
		bridge   bool
		wlan     bool
		router   bool
	}{
		{name: "absent mask", absent: true},
		{name: "unparsable mask", mask: "not-a-number"},
		{name: "empty mask", mask: ""},
		{name: "repeater only", mask: "2", repeater: true},
		{name: "bridge and router", mask: "20", bridge: true, router: true},
		{name: "all capabilities", mask: "30", repeater: true, bridge: true, wlan: true, router: true},
		{name: "unrelated bits", mask: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Record{fields: map[string]string{}}
			if !tt.absent {
				r.fields[FieldChassisCapEnabled] = tt.mask
			}
			assert.Equal(t, tt.repeater, r.RepeaterEnabled(), "repeater")
			assert.Equal(t, tt.bridge, r.BridgeEnabled(), "bridge")
			assert.Equal(t, tt.wlan, r.WLANEnabled(), "wlan")
			assert.Equal(t, tt.router, r.RouterEnabled(), "router")
		})
	}
}
