package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xyhelper/cancelqueue"
)

type drainCmdConfig struct {
	*rootCmdConfig
	configInput string
	skip        []string
}

func drainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &drainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "drain [values...]",
		Short: "Enqueue values, remove the skipped ones and print the rest",
		Long: `Enqueue the given values in order, mark every value equal to a --skip value
as removed, then dequeue until the queue is empty printing each surviving value.
Without values or --config the sample sequence "zero one two test-skip test-skip three"
is used with --skip test-skip.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := config.Input(cmd, args)
			if err != nil {
				return err
			}
			config.Logf("Enqueueing %d values, skipping %q", len(in.Values), in.Skip)
			out, removed := drain(in)
			config.Logf("Marked %d entries removed", removed)
			for _, v := range out {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.configInput), "config", "c", "", "path to a YAML file with values and skip lists")
	cmd.Flags().StringArrayVarP(&(config.skip), "skip", "s", nil, "value to remove before draining (repeatable)")
	return cmd
}

// Input resolves what to enqueue and skip. Arguments and --skip override the
// corresponding lists from --config; with neither, the sample input is used.
func (dcc *drainCmdConfig) Input(cmd *cobra.Command, args []string) (*drainInput, error) {
	in := &drainInput{}
	if dcc.configInput != "" {
		dcc.Logf("Reading drain input from %s...", dcc.configInput)
		var err error
		in, err = readDrainInputFromFile(dcc.configInput)
		if err != nil {
			return nil, err
		}
	}
	if len(args) > 0 {
		in.Values = args
	}
	if cmd.Flags().Changed("skip") {
		in.Skip = dcc.skip
	}
	if dcc.configInput == "" && len(args) == 0 {
		in.Values = defaultDrainInput.Values
		if !cmd.Flags().Changed("skip") {
			in.Skip = defaultDrainInput.Skip
		}
	}
	return in, nil
}

func drain(in *drainInput) ([]string, int) {
	skip := make(map[string]struct{}, len(in.Skip))
	for _, s := range in.Skip {
		skip[s] = struct{}{}
	}
	q := cancelqueue.NewWithCapacity[string](len(in.Values))
	q.EnqueueMany(in.Values...)
	removed := q.RemoveMatching(func(v string) bool {
		_, ok := skip[v]
		return ok
	})
	out := make([]string, 0, q.Len())
	for {
		v, ok := q.TryDequeue()
		if !ok {
			return out, removed
		}
		out = append(out, v)
	}
}
