package lldpctl

// Key identifies one attribute of a backend Atom. The constants mirror the
// backend's published lldpctl_k_* enum; the numeric values are a contract
// between this surface and Backend implementations.
type Key int

// Published attribute keys. Field names used by decoded records are the
// enum suffixes, e.g. KeyChassisName decodes under "chassis_name".
const (
	KeyInterfaceName Key = iota

	KeyChassisID
	KeyChassisIDSubtype
	KeyChassisName
	KeyChassisDescr
	KeyChassisCapAvailable
	KeyChassisCapEnabled
	KeyChassisMgmt

	KeyPortProtocol
	KeyPortAge
	KeyPortID
	KeyPortIDSubtype
	KeyPortDescr
	KeyPortTTL
	KeyPortHidden
	KeyPortStatus
	KeyPortNeighbors

	KeyPortVlanID
	KeyVlanID
	KeyVlanName

	KeyMgmtIP
	KeyMgmtIfaceIndex
)

// FieldSpec pairs a record field name with the backend key it decodes from.
type FieldSpec struct {
	// Name is the field name under which the value appears on a record.
	Name string

	// Key is the backend attribute key.
	Key Key
}

// fieldTable is the static table of all published keys, built once at
// process initialization and read-only afterwards.
var fieldTable = []FieldSpec{
	{"interface_name", KeyInterfaceName},

	{"chassis_id", KeyChassisID},
	{"chassis_id_subtype", KeyChassisIDSubtype},
	{"chassis_name", KeyChassisName},
	{"chassis_descr", KeyChassisDescr},
	{"chassis_cap_available", KeyChassisCapAvailable},
	{"chassis_cap_enabled", KeyChassisCapEnabled},
	{"chassis_mgmt", KeyChassisMgmt},

	{"port_protocol", KeyPortProtocol},
	{"port_age", KeyPortAge},
	{"port_id", KeyPortID},
	{"port_id_subtype", KeyPortIDSubtype},
	{"port_descr", KeyPortDescr},
	{"port_ttl", KeyPortTTL},
	{"port_hidden", KeyPortHidden},
	{"port_status", KeyPortStatus},
	{"port_neighbors", KeyPortNeighbors},

	{"port_vlan_id", KeyPortVlanID},
	{"vlan_id", KeyVlanID},
	{"vlan_name", KeyVlanName},

	{"mgmt_ip", KeyMgmtIP},
	{"mgmt_iface_index", KeyMgmtIfaceIndex},
}

// Keys returns the static field table. The returned slice is shared and
// must not be modified.
func Keys() []FieldSpec {
	return fieldTable
}

// KeyName returns the record field name for a key, or "" for an unknown key.
func KeyName(key Key) string {
	for _, spec := range fieldTable {
		if spec.Key == key {
			return spec.Name
		}
	}
	return ""
}
