package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/vmctl/internal/descriptor"
)

func testCatalog() Catalog {
	return Catalog{
		{ID: "cpu-a", Type: TypeCPU, BillingRate: 0.01, Memory: MemoryRate{BillingRate: 0.005}},
		{ID: "cpu-epyc", Type: TypeCPU, BillingRate: 0.02, Memory: MemoryRate{BillingRate: 0.004}},
		{ID: "gpu-a40", Type: TypeGPU, BillingRate: 0.61, Memory: MemoryRate{BillingRate: 0.002}},
	}
}

func TestEstimate_CPUScenario(t *testing.T) {
	vs := descriptor.VirtualServer{
		Region: "ORD1",
		OS:     "linux",
		Compute: descriptor.Compute{
			CPUType:  "cpu-a",
			CPUCount: 2,
			Memory:   "2Gi",
		},
		Storage: descriptor.Storage{
			Root: descriptor.RootVolume{Size: "40Gi"},
		},
	}

	got, ok := Estimate(vs, testCatalog())
	require.True(t, ok)

	want := fmt.Sprintf("%.2f", 0.01*2+0.005*2+0.000097*40)
	assert.Equal(t, want, got)
}

func TestEstimate_GPUCountMultiplies(t *testing.T) {
	vs := descriptor.VirtualServer{
		Compute: descriptor.Compute{
			GPUType:  "gpu-a40",
			GPUCount: 4,
			CPUCount: 8,
			Memory:   "32Gi",
		},
		Storage: descriptor.Storage{Root: descriptor.RootVolume{Size: "100Gi"}},
	}

	got, ok := Estimate(vs, testCatalog())
	require.True(t, ok)

	// 4 GPUs at the GPU rate; host cores are not billed separately.
	// 4*0.61 + 0.002*GB(32Gi) + 0.000097*GB(100Gi) = 2.5191...
	assert.Equal(t, "2.52", got)
}

func TestEstimate_GPUCountDefaultsToOne(t *testing.T) {
	one := descriptor.VirtualServer{
		Compute: descriptor.Compute{GPUType: "gpu-a40", GPUCount: 1, Memory: "8Gi"},
		Storage: descriptor.Storage{Root: descriptor.RootVolume{Size: "40Gi"}},
	}
	unset := one
	unset.Compute.GPUCount = 0

	a, okA := Estimate(one, testCatalog())
	b, okB := Estimate(unset, testCatalog())
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestEstimate_SwapAddsStorageRate(t *testing.T) {
	base := descriptor.VirtualServer{
		Compute: descriptor.Compute{CPUType: "cpu-epyc", CPUCount: 1, Memory: "1Gi"},
		Storage: descriptor.Storage{Root: descriptor.RootVolume{Size: "500G"}},
	}
	withSwap := base
	withSwap.Storage.Swap = &descriptor.SwapVolume{Size: "500G"}

	a, okA := Estimate(base, testCatalog())
	b, okB := Estimate(withSwap, testCatalog())
	require.True(t, okA)
	require.True(t, okB)
	assert.NotEqual(t, a, b, "500G of swap should be visible at 2dp")
}

func TestEstimate_AbsentOnCatalogMiss(t *testing.T) {
	vs := descriptor.VirtualServer{
		Compute: descriptor.Compute{CPUType: "cpu-typed-by-hand", CPUCount: 2, Memory: "2Gi"},
		Storage: descriptor.Storage{Root: descriptor.RootVolume{Size: "40Gi"}},
	}

	_, ok := Estimate(vs, testCatalog())
	assert.False(t, ok, "unknown compute class means no estimate, not an error")
}

func TestEstimate_AbsentWithoutComputeSelection(t *testing.T) {
	vs := descriptor.VirtualServer{
		Compute: descriptor.Compute{Memory: "2Gi"},
	}

	_, ok := Estimate(vs, testCatalog())
	assert.False(t, ok)
}

func TestEstimate_AbsentOnMalformedQuantity(t *testing.T) {
	// Wizard input is gated at entry, but a hand-edited template can carry
	// a corrupt size. That must yield no estimate, never a zero-cost one.
	base := descriptor.VirtualServer{
		Compute: descriptor.Compute{CPUType: "cpu-a", CPUCount: 1, Memory: "2Gi"},
		Storage: descriptor.Storage{Root: descriptor.RootVolume{Size: "40Gi"}},
	}

	t.Run("memory", func(t *testing.T) {
		vs := base
		vs.Compute.Memory = "lots"
		_, ok := Estimate(vs, testCatalog())
		assert.False(t, ok)
	})

	t.Run("root size", func(t *testing.T) {
		vs := base
		vs.Storage.Root.Size = "40Gii"
		_, ok := Estimate(vs, testCatalog())
		assert.False(t, ok)
	})

	t.Run("swap size", func(t *testing.T) {
		vs := base
		vs.Storage.Swap = &descriptor.SwapVolume{Size: "-4Gi"}
		_, ok := Estimate(vs, testCatalog())
		assert.False(t, ok)
	})
}

func TestEstimate_Deterministic(t *testing.T) {
	vs := descriptor.VirtualServer{
		Compute: descriptor.Compute{GPUType: "gpu-a40", GPUCount: 2, Memory: "16Gi"},
		Storage: descriptor.Storage{Root: descriptor.RootVolume{Size: "80Gi"}},
	}

	first, ok := Estimate(vs, testCatalog())
	require.True(t, ok)
	for range 10 {
		again, ok := Estimate(vs, testCatalog())
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestCatalog_Find(t *testing.T) {
	c := testCatalog()

	e, ok := c.Find("gpu-a40")
	require.True(t, ok)
	assert.Equal(t, 0.61, e.BillingRate)

	_, ok = c.Find("nope")
	assert.False(t, ok)
}

func TestCatalog_ByType(t *testing.T) {
	c := testCatalog()
	assert.Len(t, c.ByType(TypeCPU), 2)
	assert.Len(t, c.ByType(TypeGPU), 1)
	assert.Empty(t, c.ByType("tpu"))
}
