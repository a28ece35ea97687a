package descriptor

// Answer keys shared between the wizard question definitions and the
// builder.
const (
	KeyName             = "name"
	KeyNamespace        = "namespace"
	KeyRegion           = "region"
	KeyOS               = "os"
	KeySystemType       = "systemType"
	KeyGPU              = "gpu"
	KeyGPUCount         = "gpuCount"
	KeyCPU              = "cpu"
	KeyCPUCount         = "cpuCount"
	KeyMemory           = "memory"
	KeyUseImage         = "useImage"
	KeyImage            = "image"
	KeyRootPVCName      = "rootPVCName"
	KeyRootPVCNamespace = "rootPVCNamespace"
	KeyRootSize         = "rootSize"
	KeyStorageClass     = "storageClass"
	KeyAddSwap          = "addSwap"
	KeySwapSize         = "swapSize"
	KeyUsers            = "users"
	KeyPublic           = "public"
	KeyExposure         = "exposure"
	KeyTCPPorts         = "tcpPorts"
	KeyUDPPorts         = "udpPorts"
	KeyFloatingIPs      = "floatingIPs"
)

// Values for the system type and exposure answers.
const (
	SystemGPU = "gpu"
	SystemCPU = "cpu"

	ExposureDirect = "direct"
	ExposurePorts  = "ports"
)

// DefaultDefinition is the instance definition revision submitted when the
// catalog does not override it.
const DefaultDefinition = "a"
