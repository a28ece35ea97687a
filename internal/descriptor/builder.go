package descriptor

import "github.com/imamik/vmctl/internal/wizard"

// ImageRef is the projection of a selected image object that the builder
// needs: the backing volume coordinates plus the size and storage class the
// image itself declares.
type ImageRef struct {
	Name         string `json:"name"`
	Namespace    string `json:"namespace"`
	Size         string `json:"size"`
	StorageClass string `json:"storageClass"`
}

// Build maps a completed answer set to a VirtualServer. It is pure and total
// over any answer set a finished flow produces: the flow's activity
// predicates guarantee the image and manual storage branches are disjoint and
// that exactly one compute class was selected.
func Build(a wizard.Answers) VirtualServer {
	vs := VirtualServer{
		Name:      a.String(KeyName),
		Namespace: a.String(KeyNamespace),
		Region:    a.String(KeyRegion),
		OS:        a.String(KeyOS),
	}

	vs.Compute.Definition = DefaultDefinition
	vs.Compute.Memory = a.String(KeyMemory)
	vs.Compute.CPUCount = countOrDefault(a, KeyCPUCount)
	if a.String(KeySystemType) == SystemGPU {
		vs.Compute.GPUType = a.String(KeyGPU)
		vs.Compute.GPUCount = countOrDefault(a, KeyGPUCount)
	} else {
		vs.Compute.CPUType = a.String(KeyCPU)
	}

	if img, ok := a[KeyImage].(ImageRef); ok {
		vs.Storage.Root = RootVolume{
			Size:         img.Size,
			StorageClass: img.StorageClass,
			Source:       VolumeSource{Name: img.Name, Namespace: img.Namespace},
		}
	} else {
		vs.Storage.Root = RootVolume{
			Size:         a.String(KeyRootSize),
			StorageClass: a.String(KeyStorageClass),
			Source: VolumeSource{
				Name:      a.String(KeyRootPVCName),
				Namespace: a.String(KeyRootPVCNamespace),
			},
		}
	}
	if a.Bool(KeyAddSwap) {
		vs.Storage.Swap = &SwapVolume{Size: a.String(KeySwapSize)}
	}

	if creds, ok := a[KeyUsers].([]wizard.Credential); ok {
		for _, c := range creds {
			vs.Users = append(vs.Users, User{Username: c.Username, Password: c.Password})
		}
	}

	if a.Bool(KeyPublic) {
		vs.Network.Public = true
		if a.String(KeyExposure) == ExposureDirect {
			vs.Network.DirectAttach = true
		} else {
			vs.Network.TCPPorts = ports(a, KeyTCPPorts)
			vs.Network.UDPPorts = ports(a, KeyUDPPorts)
		}
		vs.Network.FloatingIPs = a.Strings(KeyFloatingIPs)
	}

	return vs
}

// countOrDefault returns the answered count, defaulting to 1 when the
// question was skipped or answered non-positive.
func countOrDefault(a wizard.Answers, key string) int {
	if n := a.Int(key); n > 0 {
		return n
	}
	return 1
}

func ports(a wizard.Answers, key string) []int {
	v, _ := a[key].([]int)
	return v
}
