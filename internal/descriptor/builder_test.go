package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/vmctl/internal/wizard"
)

func baseAnswers() wizard.Answers {
	return wizard.Answers{
		KeyName:       "web-1",
		KeyNamespace:  "tenant-a",
		KeyRegion:     "ORD1",
		KeyOS:         "linux",
		KeySystemType: SystemCPU,
		KeyCPU:        "cpu-epyc",
		KeyCPUCount:   2,
		KeyMemory:     "8Gi",
		KeyUseImage:   false,
		KeyRootPVCName:      "golden-root",
		KeyRootPVCNamespace: "images",
		KeyRootSize:         "40Gi",
		KeyStorageClass:     "block-nvme",
	}
}

func TestBuild_ImageBranchCopiesImageMetadata(t *testing.T) {
	a := baseAnswers()
	a[KeyUseImage] = true
	a[KeyImage] = ImageRef{
		Name:         "ubuntu-2404",
		Namespace:    "vd-images",
		Size:         "40Gi",
		StorageClass: "block-hdd",
	}
	delete(a, KeyRootPVCName)
	delete(a, KeyRootPVCNamespace)
	delete(a, KeyRootSize)
	delete(a, KeyStorageClass)

	vs := Build(a)

	assert.Equal(t, VolumeSource{Name: "ubuntu-2404", Namespace: "vd-images"}, vs.Storage.Root.Source)
	assert.Equal(t, "40Gi", vs.Storage.Root.Size)
	assert.Equal(t, "block-hdd", vs.Storage.Root.StorageClass)
}

func TestBuild_ManualBranchUsesTypedAnswers(t *testing.T) {
	vs := Build(baseAnswers())

	assert.Equal(t, VolumeSource{Name: "golden-root", Namespace: "images"}, vs.Storage.Root.Source)
	assert.Equal(t, "40Gi", vs.Storage.Root.Size)
	assert.Equal(t, "block-nvme", vs.Storage.Root.StorageClass)
}

func TestBuild_GPUSystem(t *testing.T) {
	a := baseAnswers()
	a[KeySystemType] = SystemGPU
	a[KeyGPU] = "gpu-a40"
	a[KeyGPUCount] = 4
	delete(a, KeyCPU)

	vs := Build(a)

	assert.Equal(t, "gpu-a40", vs.Compute.GPUType)
	assert.Equal(t, 4, vs.Compute.GPUCount)
	assert.Empty(t, vs.Compute.CPUType, "GPU system never carries a top-level CPU selection")
	assert.Equal(t, 2, vs.Compute.CPUCount, "GPU systems still carry host cores")
}

func TestBuild_GPUCountDefaultsToOne(t *testing.T) {
	a := baseAnswers()
	a[KeySystemType] = SystemGPU
	a[KeyGPU] = "gpu-a40"
	delete(a, KeyGPUCount)
	delete(a, KeyCPU)

	vs := Build(a)
	assert.Equal(t, 1, vs.Compute.GPUCount)
}

func TestBuild_CPUCountDefaultsToOne(t *testing.T) {
	a := baseAnswers()
	delete(a, KeyCPUCount)

	vs := Build(a)
	assert.Equal(t, 1, vs.Compute.CPUCount)
}

func TestBuild_SwapVolume(t *testing.T) {
	a := baseAnswers()
	a[KeyAddSwap] = true
	a[KeySwapSize] = "4Gi"

	vs := Build(a)
	require.NotNil(t, vs.Storage.Swap)
	assert.Equal(t, "4Gi", vs.Storage.Swap.Size)

	a[KeyAddSwap] = false
	assert.Nil(t, Build(a).Storage.Swap)
}

func TestBuild_Users(t *testing.T) {
	a := baseAnswers()
	a[KeyUsers] = []wizard.Credential{
		{Username: "alice", Password: "one"},
		{Username: "bob", Password: "two"},
	}

	vs := Build(a)
	assert.Equal(t, []User{
		{Username: "alice", Password: "one"},
		{Username: "bob", Password: "two"},
	}, vs.Users)
}

func TestBuild_NetworkPortList(t *testing.T) {
	a := baseAnswers()
	a[KeyPublic] = true
	a[KeyExposure] = ExposurePorts
	a[KeyTCPPorts] = []int{80, 443}
	a[KeyUDPPorts] = []int{53}
	a[KeyFloatingIPs] = []string{"edge-1"}

	vs := Build(a)
	assert.True(t, vs.Network.Public)
	assert.False(t, vs.Network.DirectAttach)
	assert.Equal(t, []int{80, 443}, vs.Network.TCPPorts)
	assert.Equal(t, []int{53}, vs.Network.UDPPorts)
	assert.Equal(t, []string{"edge-1"}, vs.Network.FloatingIPs)
}

func TestBuild_NetworkDirectAttach(t *testing.T) {
	a := baseAnswers()
	a[KeyPublic] = true
	a[KeyExposure] = ExposureDirect

	vs := Build(a)
	assert.True(t, vs.Network.DirectAttach)
	assert.Empty(t, vs.Network.TCPPorts)
	assert.Empty(t, vs.Network.UDPPorts)
}

func TestBuild_PrivateNetwork(t *testing.T) {
	vs := Build(baseAnswers())
	assert.False(t, vs.Network.Public)
	assert.Empty(t, vs.Network.FloatingIPs)
}

func TestToUnstructured(t *testing.T) {
	vs := Build(baseAnswers())

	obj, err := vs.ToUnstructured()
	require.NoError(t, err)

	assert.Equal(t, APIVersion, obj.GetAPIVersion())
	assert.Equal(t, KindName, obj.GetKind())
	assert.Equal(t, "web-1", obj.GetName())
	assert.Equal(t, "tenant-a", obj.GetNamespace())

	spec, ok := obj.Object["spec"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ORD1", spec["region"])
	assert.NotContains(t, spec, "name", "identity belongs in metadata")
}
