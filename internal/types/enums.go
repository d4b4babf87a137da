// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// SystemAdministratorRole is the only role the service knows about.
const SystemAdministratorRole = "SystemAdministrator"

type DeviceType string

const (
	DeviceTypeRouter      DeviceType = "Router"
	DeviceTypeSwitch      DeviceType = "Switch"
	DeviceTypeModem       DeviceType = "Modem"
	DeviceTypeServer      DeviceType = "Server"
	DeviceTypePC          DeviceType = "PC"
	DeviceTypeNotebook    DeviceType = "Notebook"
	DeviceTypeAccessPoint DeviceType = "AccessPoint"
	DeviceTypeWifiRouter  DeviceType = "WifiRouter"
	DeviceTypePrinter     DeviceType = "Printer"
	DeviceTypeSpecs       DeviceType = "Specs"
)

var DeviceTypes = []DeviceType{
	DeviceTypeRouter,
	DeviceTypeSwitch,
	DeviceTypeModem,
	DeviceTypeServer,
	DeviceTypePC,
	DeviceTypeNotebook,
	DeviceTypeAccessPoint,
	DeviceTypeWifiRouter,
	DeviceTypePrinter,
	DeviceTypeSpecs,
}

func (t DeviceType) Valid() bool {
	for _, v := range DeviceTypes {
		if v == t {
			return true
		}
	}

	return false
}

type ConnectionType string

const (
	ConnectionTypeEthernet ConnectionType = "Ethernet"
	ConnectionTypeFiber    ConnectionType = "Fiber"
	ConnectionTypeWireless ConnectionType = "Wireless"
	ConnectionTypeRadio    ConnectionType = "Radio"
	ConnectionTypeVPN      ConnectionType = "VPN"
	ConnectionTypeSerial   ConnectionType = "Serial"
	ConnectionTypeOther    ConnectionType = "Other"
)

var ConnectionTypes = []ConnectionType{
	ConnectionTypeEthernet,
	ConnectionTypeFiber,
	ConnectionTypeWireless,
	ConnectionTypeRadio,
	ConnectionTypeVPN,
	ConnectionTypeSerial,
	ConnectionTypeOther,
}

func (t ConnectionType) Valid() bool {
	for _, v := range ConnectionTypes {
		if v == t {
			return true
		}
	}

	return false
}

// ConnectionSpeed is a suggested value for the free text speed of a connection.
type ConnectionSpeed string

const (
	SpeedEthernet10M          ConnectionSpeed = "Ethernet10M"
	SpeedFastEthernet100M     ConnectionSpeed = "FastEthernet100M"
	SpeedGigabit1G            ConnectionSpeed = "Gigabit1G"
	SpeedMultiGigabit2_5G     ConnectionSpeed = "MultiGigabit2_5G"
	SpeedMultiGigabit5G       ConnectionSpeed = "MultiGigabit5G"
	SpeedTenGigabit10G        ConnectionSpeed = "TenGigabit10G"
	SpeedTwentyFiveGigabit25G ConnectionSpeed = "TwentyFiveGigabit25G"
	SpeedFortyGigabit40G      ConnectionSpeed = "FortyGigabit40G"
	SpeedFiftyGigabit50G      ConnectionSpeed = "FiftyGigabit50G"
	SpeedHundredGigabit100G   ConnectionSpeed = "HundredGigabit100G"
	SpeedOther                ConnectionSpeed = "Other"
)

var ConnectionSpeeds = []ConnectionSpeed{
	SpeedEthernet10M,
	SpeedFastEthernet100M,
	SpeedGigabit1G,
	SpeedMultiGigabit2_5G,
	SpeedMultiGigabit5G,
	SpeedTenGigabit10G,
	SpeedTwentyFiveGigabit25G,
	SpeedFortyGigabit40G,
	SpeedFiftyGigabit50G,
	SpeedHundredGigabit100G,
	SpeedOther,
}

var speedLabels = map[ConnectionSpeed]string{
	SpeedEthernet10M:          "10 Mbps (Ethernet)",
	SpeedFastEthernet100M:     "100 Mbps (Fast Ethernet)",
	SpeedGigabit1G:            "1 Gbps (Gigabit)",
	SpeedMultiGigabit2_5G:     "2.5 Gbps (Multi-Gigabit)",
	SpeedMultiGigabit5G:       "5 Gbps (Multi-Gigabit)",
	SpeedTenGigabit10G:        "10 Gbps (10 Gigabit)",
	SpeedTwentyFiveGigabit25G: "25 Gbps",
	SpeedFortyGigabit40G:      "40 Gbps",
	SpeedFiftyGigabit50G:      "50 Gbps",
	SpeedHundredGigabit100G:   "100 Gbps",
	SpeedOther:                "Other",
}

// Label returns the display text for a preset, unknown values are returned as is.
func (s ConnectionSpeed) Label() string {
	if l, ok := speedLabels[s]; ok {
		return l
	}

	return string(s)
}

// ResolveSpeed turns a preset name into its label and leaves free text untouched.
func ResolveSpeed(value string) string {
	return ConnectionSpeed(value).Label()
}
