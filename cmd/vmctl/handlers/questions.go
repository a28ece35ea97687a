package handlers

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/imamik/vmctl/internal/descriptor"
	"github.com/imamik/vmctl/internal/pricing"
	"github.com/imamik/vmctl/internal/quantity"
	"github.com/imamik/vmctl/internal/wizard"
)

// defaultRegions is offered when no region list is configured.
var defaultRegions = []string{"ORD1", "LGA1", "LAS1"}

const maxGPUCount = 8

var labelRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// dnsLabel validates names that become resource identities on the
// orchestration API.
func dnsLabel(s string) error {
	name := strings.TrimSpace(s)
	if name == "" {
		return errors.New("must not be empty")
	}
	if len(name) > 63 {
		return errors.New("must be at most 63 characters")
	}
	if !labelRegex.MatchString(name) {
		return errors.New("use lowercase letters, digits and hyphens")
	}
	return nil
}

func labelValidator(_ wizard.Answers, s string) error {
	return dnsLabel(s)
}

func nonEmpty(_ wizard.Answers, s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func quantityValidator(_ wizard.Answers, s string) error {
	if !quantity.Validate(s) {
		return errors.New("enter a size like 512Mi, 2Gi or 10G")
	}
	return nil
}

func portListValidator(_ wizard.Answers, s string) error {
	_, err := descriptor.ParsePortList(s)
	return err
}

func formatPortList(s string) any {
	ports, _ := descriptor.ParsePortList(s)
	return ports
}

// configQuestions covers identity, compute and storage. The compute class
// questions offer the billing catalog's classes when available and fall back
// to free-typed entry when the catalog is empty; free-typed classes simply
// get no price estimate later. The root volume claim question likewise
// offers the claims that exist in the chosen namespace, falling back to
// free-typed entry.
func configQuestions(deps *wizardDeps, images []imageChoice, claims []claimRef) []wizard.Question {
	gpuClasses := classOptions(deps.catalog.ByType(pricing.TypeGPU))
	cpuClasses := classOptions(deps.catalog.ByType(pricing.TypeCPU))

	imageIndex := map[string]descriptor.ImageRef{}
	for _, img := range images {
		imageIndex[img.Namespace+"/"+img.Name] = img.ImageRef
	}

	claimsIn := func(namespace string) []wizard.Option {
		var opts []wizard.Option
		for _, c := range claims {
			if c.Namespace == namespace {
				opts = append(opts, wizard.Option{Label: c.Name, Value: c.Name})
			}
		}
		return opts
	}

	return []wizard.Question{
		{
			Key:      descriptor.KeyName,
			Kind:     wizard.Text,
			Title:    "Instance name",
			Validate: labelValidator,
		},
		{
			Key:      descriptor.KeyNamespace,
			Kind:     wizard.Text,
			Title:    "Namespace",
			Default:  func(wizard.Answers) any { return deps.cfg.Namespace },
			Validate: labelValidator,
		},
		{
			Key:     descriptor.KeyRegion,
			Kind:    wizard.Select,
			Title:   "Region",
			Choices: func(wizard.Answers) []wizard.Option { return stringOptions(defaultRegions) },
			Default: func(wizard.Answers) any { return deps.cfg.Region },
		},
		{
			Key:   descriptor.KeyOS,
			Kind:  wizard.Select,
			Title: "Operating system",
			Choices: func(wizard.Answers) []wizard.Option {
				return []wizard.Option{
					{Label: "Linux", Value: "linux"},
					{Label: "Windows", Value: "windows"},
				}
			},
		},
		{
			Key:   descriptor.KeySystemType,
			Kind:  wizard.Select,
			Title: "System type",
			Choices: func(wizard.Answers) []wizard.Option {
				return []wizard.Option{
					{Label: "GPU accelerated", Value: descriptor.SystemGPU},
					{Label: "CPU only", Value: descriptor.SystemCPU},
				}
			},
		},
		{
			Key:   descriptor.KeyGPU,
			Kind:  wizard.Select,
			Title: "GPU class",
			Active: func(a wizard.Answers) bool {
				return a.String(descriptor.KeySystemType) == descriptor.SystemGPU && len(gpuClasses) > 0
			},
			Choices: func(wizard.Answers) []wizard.Option { return gpuClasses },
		},
		{
			Key:   descriptor.KeyGPU,
			Kind:  wizard.Text,
			Title: "GPU class",
			Active: func(a wizard.Answers) bool {
				return a.String(descriptor.KeySystemType) == descriptor.SystemGPU && len(gpuClasses) == 0
			},
			Validate: nonEmpty,
		},
		{
			Key:   descriptor.KeyGPUCount,
			Kind:  wizard.Number,
			Title: "GPU count",
			Active: func(a wizard.Answers) bool {
				return a.String(descriptor.KeySystemType) == descriptor.SystemGPU
			},
			Default:  func(wizard.Answers) any { return "1" },
			Validate: countValidator("GPU count", 1, maxGPUCount),
		},
		{
			Key:   descriptor.KeyCPU,
			Kind:  wizard.Select,
			Title: "CPU class",
			Active: func(a wizard.Answers) bool {
				return a.String(descriptor.KeySystemType) == descriptor.SystemCPU && len(cpuClasses) > 0
			},
			Choices: func(wizard.Answers) []wizard.Option { return cpuClasses },
		},
		{
			Key:   descriptor.KeyCPU,
			Kind:  wizard.Text,
			Title: "CPU class",
			Active: func(a wizard.Answers) bool {
				return a.String(descriptor.KeySystemType) == descriptor.SystemCPU && len(cpuClasses) == 0
			},
			Validate: nonEmpty,
		},
		{
			Key:  descriptor.KeyCPUCount,
			Kind: wizard.Number,
			TitleFunc: func(a wizard.Answers) string {
				if a.String(descriptor.KeySystemType) == descriptor.SystemGPU {
					return "Host CPU cores"
				}
				return "CPU count"
			},
			Default:  func(wizard.Answers) any { return "1" },
			Validate: countValidator("count", 1, 0),
		},
		{
			Key:         descriptor.KeyMemory,
			Kind:        wizard.Text,
			Title:       "Memory",
			Placeholder: "2Gi",
			Validate:    quantityValidator,
		},
		{
			Key:    descriptor.KeyUseImage,
			Kind:   wizard.Toggle,
			Title:  "Start from an existing image?",
			Active: func(wizard.Answers) bool { return len(images) > 0 },
		},
		{
			Key:    descriptor.KeyImage,
			Kind:   wizard.Select,
			Title:  "Image",
			Active: func(a wizard.Answers) bool { return a.Bool(descriptor.KeyUseImage) },
			Choices: func(a wizard.Answers) []wizard.Option {
				return imageOptions(images, a.String(descriptor.KeyOS))
			},
			Format: func(s string) any { return imageIndex[s] },
		},
		{
			Key:      descriptor.KeyRootPVCNamespace,
			Kind:     wizard.Text,
			Title:    "Root volume claim namespace",
			Active:   func(a wizard.Answers) bool { return !a.Bool(descriptor.KeyUseImage) },
			Default:  func(a wizard.Answers) any { return a.String(descriptor.KeyNamespace) },
			Validate: labelValidator,
		},
		{
			Key:   descriptor.KeyRootPVCName,
			Kind:  wizard.Select,
			Title: "Root volume claim",
			Active: func(a wizard.Answers) bool {
				return !a.Bool(descriptor.KeyUseImage) &&
					len(claimsIn(a.String(descriptor.KeyRootPVCNamespace))) > 0
			},
			Choices: func(a wizard.Answers) []wizard.Option {
				return claimsIn(a.String(descriptor.KeyRootPVCNamespace))
			},
		},
		{
			Key:   descriptor.KeyRootPVCName,
			Kind:  wizard.Text,
			Title: "Root volume claim name",
			Active: func(a wizard.Answers) bool {
				return !a.Bool(descriptor.KeyUseImage) &&
					len(claimsIn(a.String(descriptor.KeyRootPVCNamespace))) == 0
			},
			Validate: labelValidator,
		},
		{
			Key:         descriptor.KeyRootSize,
			Kind:        wizard.Text,
			Title:       "Root volume size",
			Placeholder: "40Gi",
			Active:      func(a wizard.Answers) bool { return !a.Bool(descriptor.KeyUseImage) },
			Validate:    quantityValidator,
		},
		{
			Key:      descriptor.KeyStorageClass,
			Kind:     wizard.Text,
			Title:    "Storage class",
			Active:   func(a wizard.Answers) bool { return !a.Bool(descriptor.KeyUseImage) },
			Validate: nonEmpty,
		},
		{
			Key:   descriptor.KeyAddSwap,
			Kind:  wizard.Toggle,
			Title: "Add a swap volume?",
		},
		{
			Key:         descriptor.KeySwapSize,
			Kind:        wizard.Text,
			Title:       "Swap volume size",
			Placeholder: "4Gi",
			Active:      func(a wizard.Answers) bool { return a.Bool(descriptor.KeyAddSwap) },
			Validate:    quantityValidator,
		},
	}
}

// networkQuestions covers public exposure. It runs as a second flow stage so
// the user-add sub-loop sits between storage and network, sharing the same
// answer set.
func networkQuestions(services []string) []wizard.Question {
	portList := func(a wizard.Answers) bool {
		return a.Bool(descriptor.KeyPublic) && a.String(descriptor.KeyExposure) == descriptor.ExposurePorts
	}

	return []wizard.Question{
		{
			Key:   descriptor.KeyPublic,
			Kind:  wizard.Toggle,
			Title: "Expose this instance on a public address?",
		},
		{
			Key:    descriptor.KeyExposure,
			Kind:   wizard.Select,
			Title:  "Exposure mode",
			Active: func(a wizard.Answers) bool { return a.Bool(descriptor.KeyPublic) },
			Choices: func(wizard.Answers) []wizard.Option {
				return []wizard.Option{
					{Label: "Attach the load balancer IP directly", Value: descriptor.ExposureDirect},
					{Label: "Expose a list of ports", Value: descriptor.ExposurePorts},
				}
			},
		},
		{
			Key:         descriptor.KeyTCPPorts,
			Kind:        wizard.Text,
			Title:       "TCP ports",
			Placeholder: "80, 443",
			Active:      portList,
			Validate:    portListValidator,
			Format:      formatPortList,
		},
		{
			Key:         descriptor.KeyUDPPorts,
			Kind:        wizard.Text,
			Title:       "UDP ports",
			Placeholder: "53",
			Active:      portList,
			Validate:    portListValidator,
			Format:      formatPortList,
		},
		{
			Key:   descriptor.KeyFloatingIPs,
			Kind:  wizard.MultiSelect,
			Title: "Attach floating IPs",
			Active: func(a wizard.Answers) bool {
				return a.Bool(descriptor.KeyPublic) && len(services) > 0
			},
			Choices: func(wizard.Answers) []wizard.Option { return stringOptions(services) },
		},
	}
}

// countValidator bounds an integer answer. A max of 0 means unbounded above.
func countValidator(what string, min, max int) func(wizard.Answers, string) error {
	return func(_ wizard.Answers, s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < min {
			return fmt.Errorf("%s must be at least %d", what, min)
		}
		if max > 0 && n > max {
			return fmt.Errorf("%s must be at most %d", what, max)
		}
		return nil
	}
}

func classOptions(entries []pricing.CatalogEntry) []wizard.Option {
	opts := make([]wizard.Option, 0, len(entries))
	for _, e := range entries {
		opts = append(opts, wizard.Option{Label: e.ID, Value: e.ID})
	}
	return opts
}

func stringOptions(values []string) []wizard.Option {
	opts := make([]wizard.Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, wizard.Option{Label: v, Value: v})
	}
	return opts
}

// imageOptions filters the image list to the chosen operating system. An
// image without an os field is offered regardless.
func imageOptions(images []imageChoice, os string) []wizard.Option {
	var opts []wizard.Option
	for _, img := range images {
		if img.OS != "" && os != "" && img.OS != os {
			continue
		}
		opts = append(opts, wizard.Option{
			Label: fmt.Sprintf("%s (%s, %s)", img.Name, img.Namespace, img.Size),
			Value: img.Namespace + "/" + img.Name,
		})
	}
	return opts
}
