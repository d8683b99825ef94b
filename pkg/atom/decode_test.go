package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jta/lldpy/internal/lldptest"
	"github.com/jta/lldpy/pkg/lldpctl"
)

// twoInterfaceBackend is eth0 carrying one fully-populated neighbor and
// eth1 with an empty neighbor table.
func twoInterfaceBackend() *lldptest.Backend {
	neighbor := &lldptest.Atom{
		Strings: map[lldpctl.Key]string{
			lldpctl.KeyChassisID:         "aa:bb:cc:dd:ee:ff",
			lldpctl.KeyChassisName:       "switch1",
			lldpctl.KeyChassisCapEnabled: "20",
			lldpctl.KeyPortID:            "Gi0/1",
			lldpctl.KeyPortDescr:         "uplink",
		},
		Lists: map[lldpctl.Key][]*lldptest.Atom{
			lldpctl.KeyChassisMgmt: {
				lldptest.Neighbor(map[lldpctl.Key]string{lldpctl.KeyMgmtIP: "192.0.2.10"}),
				lldptest.Neighbor(map[lldpctl.Key]string{lldpctl.KeyMgmtIP: "2001:db8::10"}),
			},
		},
	}

	b := lldptest.New()
	b.SetInterfaces(
		lldptest.Iface("eth0", neighbor),
		lldptest.Iface("eth1"),
	)
	return b
}

func TestInterfacesDecodesInventory(t *testing.T) {
	b := twoInterfaceBackend()
	conn := b.NewConnection()

	ifaces := Interfaces(b, conn)
	require.Len(t, ifaces, 2)

	eth0, eth1 := ifaces[0], ifaces[1]
	assert.Equal(t, "eth0", eth0.Name())
	assert.Equal(t, "eth1", eth1.Name())

	neighbors := eth0.Neighbors()
	require.Len(t, neighbors, 1)
	assert.Empty(t, eth1.Neighbors())

	nb := neighbors[0]
	assert.Equal(t, "switch1", nb.FieldOr("chassis_name", ""))
	assert.Equal(t, "Gi0/1", nb.FieldOr("port_id", ""))
	assert.True(t, nb.BridgeEnabled())
	assert.True(t, nb.RouterEnabled())
	assert.False(t, nb.WLANEnabled())

	// Management addresses decode as child records.
	mgmt := nb.List("chassis_mgmt")
	require.Len(t, mgmt, 2)
	assert.Equal(t, "192.0.2.10", mgmt[0].FieldOr("mgmt_ip", ""))
	assert.Equal(t, "2001:db8::10", mgmt[1].FieldOr("mgmt_ip", ""))
}

func TestDecodeOmitsAbsentFields(t *testing.T) {
	b := twoInterfaceBackend()
	conn := b.NewConnection()

	ifaces := Interfaces(b, conn)
	require.Len(t, ifaces, 2)
	nb := ifaces[0].Neighbors()[0]

	// The backend reported no TTL: the field must be missing, not empty.
	_, ok := nb.Field("port_ttl")
	assert.False(t, ok)
	assert.NotContains(t, nb.FieldNames(), "port_ttl")
}

func TestDecodeNilHandles(t *testing.T) {
	b := lldptest.New()

	iface := DecodeInterface(b, nil)
	require.NotNil(t, iface)
	assert.Equal(t, "", iface.Name())
	assert.Empty(t, iface.Neighbors())

	nb := DecodeNeighbor(b, nil)
	assert.Empty(t, nb.FieldNames())
}

func TestEachInterfaceEarlyStop(t *testing.T) {
	b := twoInterfaceBackend()
	conn := b.NewConnection()

	visits := 0
	EachInterface(b, conn, func(*Interface) bool {
		visits++
		return false
	})
	assert.Equal(t, 1, visits)
}

func TestDecodeReleasesAllReferences(t *testing.T) {
	b := twoInterfaceBackend()
	conn := b.NewConnection()

	Interfaces(b, conn)

	assert.Positive(t, b.Acquired())
	assert.Equal(t, b.Acquired(), b.Released())
}
