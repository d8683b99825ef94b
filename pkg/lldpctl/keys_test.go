package lldpctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "interface_name", KeyName(KeyInterfaceName))
	assert.Equal(t, "chassis_name", KeyName(KeyChassisName))
	assert.Equal(t, "port_neighbors", KeyName(KeyPortNeighbors))
	assert.Equal(t, "", KeyName(Key(-1)))
}

func TestKeyTableIsUnambiguous(t *testing.T) {
	names := make(map[string]bool)
	keys := make(map[Key]bool)
	for _, spec := range Keys() {
		assert.False(t, names[spec.Name], "duplicate field name %q", spec.Name)
		assert.False(t, keys[spec.Key], "duplicate key %d", spec.Key)
		assert.NotEmpty(t, spec.Name)
		names[spec.Name] = true
		keys[spec.Key] = true
	}
}

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "ADDED", ChangeAdded.String())
	assert.Equal(t, "DELETED", ChangeDeleted.String())
	assert.Equal(t, "UPDATED", ChangeUpdated.String())
	assert.Equal(t, "UNKNOWN", ChangeKind(42).String())
}
