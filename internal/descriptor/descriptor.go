// Package descriptor defines the VirtualServer deployment descriptor and the
// pure builder that assembles one from collected wizard answers.
package descriptor

import (
	"encoding/json"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// API coordinates of the VirtualServer resource on the orchestration API.
const (
	APIVersion = "compute.vmctl.dev/v1alpha1"
	KindName   = "VirtualServer"
)

// VirtualServer is the deployment descriptor produced by the wizard. It is
// immutable once built; only the identity fields are overwritten when
// instantiating from a saved template.
type VirtualServer struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`

	Region string `json:"region"`
	OS     string `json:"os"`

	Compute Compute `json:"compute"`
	Storage Storage `json:"storage"`
	Users   []User  `json:"users,omitempty"`
	Network Network `json:"network"`
}

// Compute describes the machine class. Exactly one of CPUType and GPUType is
// set; a GPU system still carries a CPUCount for host cores.
type Compute struct {
	Definition string `json:"definition,omitempty"`
	CPUType    string `json:"cpu,omitempty"`
	CPUCount   int    `json:"cpuCount"`
	GPUType    string `json:"gpu,omitempty"`
	GPUCount   int    `json:"gpuCount,omitempty"`
	Memory     string `json:"memory"`
}

// Storage describes the root volume and an optional swap volume.
type Storage struct {
	Root RootVolume  `json:"root"`
	Swap *SwapVolume `json:"swap,omitempty"`
}

// RootVolume is the boot disk, cloned from its source volume.
type RootVolume struct {
	Size         string       `json:"size"`
	StorageClass string       `json:"storageClass"`
	Source       VolumeSource `json:"source"`
}

// VolumeSource names the volume the root disk is cloned from: either a
// selected image's backing volume or a manually entered claim.
type VolumeSource struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

// SwapVolume is an optional swap disk.
type SwapVolume struct {
	Size string `json:"size"`
}

// User is a provisioned account. Usernames are unique within a descriptor.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Network describes public exposure. TCPPorts and UDPPorts hold at most
// MaxPorts entries each; FloatingIPs are stable name references to network
// services.
type Network struct {
	Public       bool     `json:"public"`
	DirectAttach bool     `json:"directAttachLoadBalancerIP,omitempty"`
	TCPPorts     []int    `json:"tcpPorts,omitempty"`
	UDPPorts     []int    `json:"udpPorts,omitempty"`
	FloatingIPs  []string `json:"floatingIPs,omitempty"`
}

// ToUnstructured renders the descriptor in the wire shape expected by the
// orchestration API.
func (v VirtualServer) ToUnstructured() (*unstructured.Unstructured, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var spec map[string]any
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	// Identity lives in metadata, not spec.
	delete(spec, "name")
	delete(spec, "namespace")

	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": APIVersion,
		"kind":       KindName,
		"metadata": map[string]any{
			"name":      v.Name,
			"namespace": v.Namespace,
		},
		"spec": spec,
	}}, nil
}
