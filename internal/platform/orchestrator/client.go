// Package orchestrator is the client for the remote orchestration API. The
// API is Kubernetes-shaped: resources are listed and created through the
// dynamic client against well-known group/version/resource coordinates.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/tools/clientcmd"
)

// Kind names a resource collection on the orchestration API.
type Kind string

const (
	Images          Kind = "images"
	InstanceTypes   Kind = "instancetypes"
	NetworkServices Kind = "networkservices"
	VolumeClaims    Kind = "persistentvolumeclaims"
	VirtualServers  Kind = "virtualservers"
)

// Interface is the narrow client surface the wizard consumes.
type Interface interface {
	// List returns the resources of the given kind. An empty namespace
	// lists across all namespaces.
	List(ctx context.Context, kind Kind, namespace string) ([]unstructured.Unstructured, error)

	// Create submits a new resource and fails with the server's message on
	// any non-success response.
	Create(ctx context.Context, obj *unstructured.Unstructured) error
}

// Client implements Interface with a client-go dynamic client.
type Client struct {
	dynamic dynamic.Interface
	log     logr.Logger
}

var _ Interface = (*Client)(nil)

// NewClient builds a client from a kubeconfig file. An empty path falls back
// to the default loading rules.
func NewClient(kubeconfigPath string, log logr.Logger) (*Client, error) {
	config, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	return &Client{dynamic: dynamicClient, log: log}, nil
}

// List implements Interface.
func (c *Client) List(ctx context.Context, kind Kind, namespace string) ([]unstructured.Unstructured, error) {
	gvr, err := gvrFor(kind)
	if err != nil {
		return nil, err
	}

	var ri dynamic.ResourceInterface = c.dynamic.Resource(gvr)
	if namespace != "" {
		ri = c.dynamic.Resource(gvr).Namespace(namespace)
	}

	list, err := ri.List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}

	c.log.V(1).Info("listed resources", "kind", kind, "namespace", namespace, "count", len(list.Items))
	return list.Items, nil
}

// Create implements Interface.
func (c *Client) Create(ctx context.Context, obj *unstructured.Unstructured) error {
	gvk := obj.GroupVersionKind()
	gvr := schema.GroupVersionResource{
		Group:    gvk.Group,
		Version:  gvk.Version,
		Resource: resourceForKind(gvk.Kind),
	}

	namespace := obj.GetNamespace()
	if namespace == "" {
		namespace = "default"
	}

	created, err := c.dynamic.Resource(gvr).Namespace(namespace).Create(ctx, obj, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("failed to create %s/%s: %w", obj.GetKind(), obj.GetName(), err)
	}

	c.log.V(1).Info("created resource", "kind", created.GetKind(), "namespace", namespace, "name", created.GetName())
	return nil
}

// gvrFor maps a kind to its group/version/resource coordinates.
func gvrFor(kind Kind) (schema.GroupVersionResource, error) {
	switch kind {
	case Images, InstanceTypes, VirtualServers:
		return schema.GroupVersionResource{
			Group:    "compute.vmctl.dev",
			Version:  "v1alpha1",
			Resource: string(kind),
		}, nil
	case NetworkServices:
		return schema.GroupVersionResource{Version: "v1", Resource: "services"}, nil
	case VolumeClaims:
		return schema.GroupVersionResource{Version: "v1", Resource: "persistentvolumeclaims"}, nil
	default:
		return schema.GroupVersionResource{}, fmt.Errorf("unknown resource kind %q", kind)
	}
}

// resourceForKind maps an object kind to its resource name.
func resourceForKind(kind string) string {
	switch kind {
	case "VirtualServer":
		return string(VirtualServers)
	case "Service":
		return "services"
	case "PersistentVolumeClaim":
		return "persistentvolumeclaims"
	default:
		// lowercase kind + 's' covers the remaining API types.
		return lower(kind) + "s"
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
