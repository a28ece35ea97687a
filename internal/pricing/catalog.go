// Package pricing provides hourly cost estimation for VirtualServer
// descriptors from a remote billing catalog.
package pricing

// Compute class types in the billing catalog.
const (
	TypeCPU = "cpu"
	TypeGPU = "gpu"
)

// MemoryRate is the per-GB hourly rate attached to a compute class.
type MemoryRate struct {
	BillingRate float64 `json:"billingRate"`
}

// CatalogEntry is one billable compute class.
type CatalogEntry struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	BillingRate float64    `json:"billingRate"`
	Memory      MemoryRate `json:"memory"`
}

// Catalog is the billing rate catalog fetched from the metadata endpoint.
type Catalog []CatalogEntry

// Find returns the entry with the given id.
func (c Catalog) Find(id string) (CatalogEntry, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// ByType returns all entries of the given compute class type, in catalog
// order.
func (c Catalog) ByType(t string) []CatalogEntry {
	var out []CatalogEntry
	for _, e := range c {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
