package handlers

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/imamik/vmctl/internal/descriptor"
	"github.com/imamik/vmctl/internal/platform/orchestrator"
)

// Remote lookups are memoized briefly so re-running the wizard does not
// hammer the orchestration API.
const lookupTTL = 10 * time.Minute

const (
	imagesCacheKey      = "orchestrator/images"
	servicesCacheKey    = "orchestrator/networkservices"
	claimsCacheKey      = "orchestrator/persistentvolumeclaims"
	definitionsCacheKey = "orchestrator/instancetypes"
)

// imageChoice is the projection of an image object the wizard needs: the
// builder's volume coordinates plus the os field used to filter choices.
type imageChoice struct {
	descriptor.ImageRef
	OS string `json:"os"`
}

// images lists the available images, cached. Lookup failures degrade to an
// empty list; the wizard then collects storage details manually.
func (d *wizardDeps) images(ctx context.Context) []imageChoice {
	var out []imageChoice
	if d.cache.Get(imagesCacheKey, &out) {
		return out
	}

	items, err := d.orch.List(ctx, orchestrator.Images, "")
	if err != nil {
		fmt.Fprintln(d.out, dimStyle.Render("  Warning: could not list images: "+err.Error()))
		return nil
	}

	for _, it := range items {
		img := imageChoice{}
		img.Name = it.GetName()
		img.Namespace = it.GetNamespace()
		img.Size, _, _ = unstructured.NestedString(it.Object, "spec", "size")
		img.StorageClass, _, _ = unstructured.NestedString(it.Object, "spec", "storageClass")
		img.OS, _, _ = unstructured.NestedString(it.Object, "spec", "os")
		out = append(out, img)
	}

	_ = d.cache.Set(imagesCacheKey, out, lookupTTL)
	return out
}

// networkServices lists the names of load-balancer services that can carry a
// floating IP, cached. Lookup failures degrade to an empty list and the
// floating IP question is skipped.
func (d *wizardDeps) networkServices(ctx context.Context) []string {
	var out []string
	if d.cache.Get(servicesCacheKey, &out) {
		return out
	}

	items, err := d.orch.List(ctx, orchestrator.NetworkServices, "")
	if err != nil {
		fmt.Fprintln(d.out, dimStyle.Render("  Warning: could not list network services: "+err.Error()))
		return nil
	}

	for _, it := range items {
		var svc corev1.Service
		if err := runtime.DefaultUnstructuredConverter.FromUnstructured(it.Object, &svc); err != nil {
			continue
		}
		if svc.Spec.Type != corev1.ServiceTypeLoadBalancer {
			continue
		}
		out = append(out, svc.Name)
	}

	_ = d.cache.Set(servicesCacheKey, out, lookupTTL)
	return out
}

// claimRef identifies an existing persistent volume claim the root volume
// can be cloned from.
type claimRef struct {
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

// volumeClaims lists the existing volume claims, cached. When the lookup
// fails the wizard falls back to free-typed claim entry.
func (d *wizardDeps) volumeClaims(ctx context.Context) []claimRef {
	var out []claimRef
	if d.cache.Get(claimsCacheKey, &out) {
		return out
	}

	items, err := d.orch.List(ctx, orchestrator.VolumeClaims, "")
	if err != nil {
		fmt.Fprintln(d.out, dimStyle.Render("  Warning: could not list volume claims: "+err.Error()))
		return nil
	}

	for _, it := range items {
		var pvc corev1.PersistentVolumeClaim
		if err := runtime.DefaultUnstructuredConverter.FromUnstructured(it.Object, &pvc); err != nil {
			continue
		}
		out = append(out, claimRef{Name: pvc.Name, Namespace: pvc.Namespace})
	}

	_ = d.cache.Set(claimsCacheKey, out, lookupTTL)
	return out
}

// definitionFor resolves the instance definition revision for a compute
// class from the published instance types. An unknown class keeps the
// builder's default.
func (d *wizardDeps) definitionFor(ctx context.Context, class string) string {
	if class == "" {
		return ""
	}

	var defs map[string]string
	if !d.cache.Get(definitionsCacheKey, &defs) {
		items, err := d.orch.List(ctx, orchestrator.InstanceTypes, "")
		if err != nil {
			return ""
		}
		defs = map[string]string{}
		for _, it := range items {
			cls, _, _ := unstructured.NestedString(it.Object, "spec", "class")
			def, _, _ := unstructured.NestedString(it.Object, "spec", "definition")
			if cls != "" && def != "" {
				defs[cls] = def
			}
		}
		_ = d.cache.Set(definitionsCacheKey, defs, lookupTTL)
	}

	return defs[class]
}
