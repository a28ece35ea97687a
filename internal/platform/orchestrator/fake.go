package orchestrator

import (
	"context"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Fake is an in-memory Interface for tests. List serves canned objects per
// kind; Create records submissions and can fail a fixed number of times to
// exercise retry behavior.
type Fake struct {
	Objects map[Kind][]unstructured.Unstructured

	// CreateErrs is consumed front-to-back: each Create pops one error
	// (nil means success). An exhausted queue always succeeds.
	CreateErrs []error

	Created []*unstructured.Unstructured
}

var _ Interface = (*Fake)(nil)

func (f *Fake) List(ctx context.Context, kind Kind, namespace string) ([]unstructured.Unstructured, error) {
	var out []unstructured.Unstructured
	for _, obj := range f.Objects[kind] {
		if namespace == "" || obj.GetNamespace() == namespace {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (f *Fake) Create(ctx context.Context, obj *unstructured.Unstructured) error {
	var err error
	if len(f.CreateErrs) > 0 {
		err = f.CreateErrs[0]
		f.CreateErrs = f.CreateErrs[1:]
	}
	if err != nil {
		return err
	}
	f.Created = append(f.Created, obj)
	return nil
}
