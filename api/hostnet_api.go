package api

import (
	"log"
	"net"

	"github.com/sqlc-dev/pqtype"
)

var loopbackIpNet = net.IPNet{
	IP:   net.IPv4(127, 0, 0, 1).To4(),
	Mask: net.CIDRMask(32, 32),
}

// HostIpNet returns the first non-loopback IPv4 address of an interface
// that is up. Analytics are keyed by it. Loopback is used when none is found.
func HostIpNet() pqtype.Inet {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Println("failed to list interfaces:", err)
		return pqtype.Inet{IPNet: loopbackIpNet, Valid: true}
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				return pqtype.Inet{
					IPNet: net.IPNet{IP: ip.To4(), Mask: net.CIDRMask(32, 32)},
					Valid: true,
				}
			}
		}
	}

	return pqtype.Inet{IPNet: loopbackIpNet, Valid: true}
}
