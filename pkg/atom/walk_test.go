package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jta/lldpy/internal/lldptest"
	"github.com/jta/lldpy/pkg/lldpctl"
)

func TestWalkVisitsAllElements(t *testing.T) {
	b := lldptest.New()
	b.SetInterfaces(
		lldptest.Iface("eth0"),
		lldptest.Iface("eth1"),
		lldptest.Iface("eth2"),
	)
	conn := b.NewConnection()

	var names []string
	Walk(b, b.Interfaces(conn), func(h lldpctl.Atom) bool {
		v, _ := b.AtomString(h, lldpctl.KeyInterfaceName)
		names = append(names, v)
		return true
	})

	assert.Equal(t, []string{"eth0", "eth1", "eth2"}, names)
}

func TestWalkReleasesEveryReference(t *testing.T) {
	b := lldptest.New()
	b.SetInterfaces(lldptest.Iface("eth0"), lldptest.Iface("eth1"), lldptest.Iface("eth2"))
	conn := b.NewConnection()

	Walk(b, b.Interfaces(conn), func(lldpctl.Atom) bool { return true })

	assert.Equal(t, 3, b.Acquired())
	assert.Equal(t, 3, b.Released())
}

func TestWalkEarlyStopStillReleases(t *testing.T) {
	b := lldptest.New()
	b.SetInterfaces(lldptest.Iface("eth0"), lldptest.Iface("eth1"), lldptest.Iface("eth2"))
	conn := b.NewConnection()

	visits := 0
	Walk(b, b.Interfaces(conn), func(lldpctl.Atom) bool {
		visits++
		return false
	})

	assert.Equal(t, 1, visits)
	assert.Equal(t, 1, b.Acquired())
	assert.Equal(t, 1, b.Released(), "the reference for the visited element must still be dropped")
}

func TestWalkNilList(t *testing.T) {
	b := lldptest.New()
	conn := b.NewConnection()

	visits := 0
	Walk(b, b.Interfaces(conn), func(lldpctl.Atom) bool {
		visits++
		return true
	})

	assert.Zero(t, visits)
	assert.Zero(t, b.Acquired())
}
