package wizard

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlow_DeclarationOrderAndLateBinding(t *testing.T) {
	flow := &Flow{Questions: []Question{
		{
			Key:   "systemType",
			Kind:  Select,
			Title: "System type",
			Choices: func(Answers) []Option {
				return []Option{{Label: "GPU", Value: "gpu"}, {Label: "CPU", Value: "cpu"}}
			},
		},
		{
			Key:    "gpu",
			Kind:   Select,
			Title:  "GPU class",
			Active: func(a Answers) bool { return a.String("systemType") == "gpu" },
			Choices: func(Answers) []Option {
				return []Option{{Label: "A40", Value: "gpu-a40"}}
			},
		},
		{
			Key:    "cpu",
			Kind:   Select,
			Title:  "CPU class",
			Active: func(a Answers) bool { return a.String("systemType") == "cpu" },
			Choices: func(Answers) []Option {
				return []Option{{Label: "EPYC", Value: "cpu-epyc"}}
			},
		},
		{
			Key:       "memory",
			Kind:      Text,
			TitleFunc: func(a Answers) string { return "Memory for " + a.String("systemType") + " system" },
		},
	}}

	p := &ScriptPrompter{Responses: []any{"gpu", "gpu-a40", "16Gi"}}
	answers, err := flow.Run(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, "gpu", answers.String("systemType"))
	assert.Equal(t, "gpu-a40", answers.String("gpu"))
	assert.Equal(t, "16Gi", answers.String("memory"))
	assert.False(t, answers.Has("cpu"), "inactive question must leave no entry")
}

func TestFlow_ValidatorRepromptsInPlace(t *testing.T) {
	flow := &Flow{Questions: []Question{
		{
			Key:   "name",
			Kind:  Text,
			Title: "Name",
			Validate: func(_ Answers, s string) error {
				if s == "" {
					return errors.New("name is required")
				}
				return nil
			},
		},
	}}

	p := &ScriptPrompter{Responses: []any{"", "", "web-1"}}
	answers, err := flow.Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "web-1", answers.String("name"))
}

func TestFlow_ValidatorReadsEarlierAnswers(t *testing.T) {
	flow := &Flow{Questions: []Question{
		{Key: "region", Kind: Text, Title: "Region"},
		{
			Key:   "zone",
			Kind:  Text,
			Title: "Zone",
			Validate: func(a Answers, s string) error {
				if !strings.HasPrefix(s, a.String("region")) {
					return errors.New("zone must belong to the chosen region")
				}
				return nil
			},
		},
	}}

	p := &ScriptPrompter{Responses: []any{"ord1", "las1-a", "ord1-a"}}
	answers, err := flow.Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "ord1-a", answers.String("zone"))
}

func TestFlow_NumberKind(t *testing.T) {
	flow := &Flow{Questions: []Question{
		{Key: "count", Kind: Number, Title: "Count", Default: func(Answers) any { return "1" }},
	}}

	p := &ScriptPrompter{Responses: []any{"three", "3"}}
	answers, err := flow.Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 3, answers.Int("count"))
}

func TestFlow_FormatAppliedBeforeStore(t *testing.T) {
	flow := &Flow{Questions: []Question{
		{
			Key:   "ports",
			Kind:  Text,
			Title: "Ports",
			Format: func(s string) any {
				var ports []int
				for _, part := range strings.Split(s, ",") {
					n, _ := strconv.Atoi(strings.TrimSpace(part))
					ports = append(ports, n)
				}
				return ports
			},
		},
	}}

	p := &ScriptPrompter{Responses: []any{"80, 443"}}
	answers, err := flow.Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []int{80, 443}, answers["ports"])
}

func TestFlow_CancellationReturnsNothing(t *testing.T) {
	flow := &Flow{Questions: []Question{
		{Key: "a", Kind: Text, Title: "A"},
		{Key: "b", Kind: Text, Title: "B"},
	}}

	p := &ScriptPrompter{Responses: []any{"answered", CancelResponse{}}}
	answers, err := flow.Run(context.Background(), p)
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Nil(t, answers, "cancellation returns no partial answer set")
}

func TestFlow_RunWithSharesAnswers(t *testing.T) {
	first := &Flow{Questions: []Question{
		{Key: "os", Kind: Text, Title: "OS"},
	}}
	second := &Flow{Questions: []Question{
		{
			Key:    "license",
			Kind:   Text,
			Title:  "License key",
			Active: func(a Answers) bool { return a.String("os") == "windows" },
		},
	}}

	answers, err := first.Run(context.Background(), &ScriptPrompter{Responses: []any{"windows"}})
	require.NoError(t, err)

	err = second.RunWith(context.Background(), &ScriptPrompter{Responses: []any{"ABC-123"}}, answers)
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", answers.String("license"))
}

func TestFlow_MultiSelect(t *testing.T) {
	flow := &Flow{Questions: []Question{
		{
			Key:   "ips",
			Kind:  MultiSelect,
			Title: "Floating IPs",
			Choices: func(Answers) []Option {
				return []Option{{Label: "edge-1", Value: "edge-1"}, {Label: "edge-2", Value: "edge-2"}}
			},
		},
	}}

	p := &ScriptPrompter{Responses: []any{[]string{"edge-2"}}}
	answers, err := flow.Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"edge-2"}, answers.Strings("ips"))
}
