package watcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jta/lldpy/pkg/atom"
)

func TestHandlerFuncsNilFields(t *testing.T) {
	var h HandlerFuncs
	assert.NotPanics(t, func() {
		h.OnAdd(nil, atom.Neighbor{})
		h.OnDelete(nil, atom.Neighbor{})
		h.OnUpdate(nil, atom.Neighbor{})
	})
}

func TestHandlerFuncsRouting(t *testing.T) {
	var adds, deletes, updates int
	h := HandlerFuncs{
		Add:    func(*atom.Interface, atom.Neighbor) { adds++ },
		Delete: func(*atom.Interface, atom.Neighbor) { deletes++ },
		Update: func(*atom.Interface, atom.Neighbor) { updates++ },
	}

	h.OnAdd(nil, atom.Neighbor{})
	h.OnDelete(nil, atom.Neighbor{})
	h.OnDelete(nil, atom.Neighbor{})
	h.OnUpdate(nil, atom.Neighbor{})

	assert.Equal(t, 1, adds)
	assert.Equal(t, 2, deletes)
	assert.Equal(t, 1, updates)
}
