package pricing

import (
	"fmt"

	"github.com/imamik/vmctl/internal/descriptor"
	"github.com/imamik/vmctl/internal/quantity"
)

// StorageRatePerGB is the hourly rate per GB of provisioned block storage.
const StorageRatePerGB = 0.000097

// Estimate computes the estimated hourly cost of a descriptor against the
// billing catalog, formatted to two decimal places.
//
// The second return value is false when the descriptor cannot be priced:
// its compute selection has no matching catalog entry, or one of its size
// quantities does not parse. Both are valid "cannot price" outcomes, not
// errors: freely typed compute classes and hand-edited templates simply get
// no estimate.
func Estimate(vs descriptor.VirtualServer, catalog Catalog) (string, bool) {
	var rate float64

	memGB, err := gb(vs.Compute.Memory)
	if err != nil {
		return "", false
	}

	switch {
	case vs.Compute.GPUType != "":
		entry, ok := catalog.Find(vs.Compute.GPUType)
		if !ok {
			return "", false
		}
		rate += entry.BillingRate * float64(countOrOne(vs.Compute.GPUCount))
		rate += entry.Memory.BillingRate * memGB

	case vs.Compute.CPUType != "":
		entry, ok := catalog.Find(vs.Compute.CPUType)
		if !ok {
			return "", false
		}
		rate += entry.BillingRate * float64(countOrOne(vs.Compute.CPUCount))
		rate += entry.Memory.BillingRate * memGB

	default:
		return "", false
	}

	rootGB, err := gb(vs.Storage.Root.Size)
	if err != nil {
		return "", false
	}
	rate += StorageRatePerGB * rootGB

	if vs.Storage.Swap != nil {
		swapGB, err := gb(vs.Storage.Swap.Size)
		if err != nil {
			return "", false
		}
		rate += StorageRatePerGB * swapGB
	}

	return fmt.Sprintf("%.2f", rate), true
}

// gb normalizes a quantity string through the parser and converts to GB. An
// empty string is a missing size and contributes nothing; a malformed one is
// an error so corrupt descriptors are never priced as zero-cost.
func gb(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return quantity.ParseToUnit(s, quantity.GB)
}

func countOrOne(n int) int {
	if n > 0 {
		return n
	}
	return 1
}
