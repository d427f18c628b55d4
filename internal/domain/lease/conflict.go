package lease

import (
	"lease-market/internal/domain/master"
)

// FindConflicts lists every requested hour already held by an existing contract.
//
// Contracts are scanned in the order given. When a VIP requester meets a contract
// held by a non-VIP master the scan stops entirely: that contract and every one
// after it are ignored, whatever their holders' priority. Hours held by several
// contracts are reported once per contract.
func FindConflicts(requester *master.Master, existing []*Contract, requested []HourUnit) []HourKey {
	var conflicts []HourKey

	for _, contract := range existing {
		if requester.IsVIP() && !contract.Master().IsVIP() {
			break
		}

		for _, h := range requested {
			if contract.Holds(h.Key()) {
				conflicts = append(conflicts, h.Key())
			}
		}
	}

	return conflicts
}
