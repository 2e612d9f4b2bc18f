package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vk/langtour/internal/registry"
)

func (e *env) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [selector...]",
		Short: "Run lessons and report their output",
		Long: `Run every lesson of the plan, or of the whole tour when no plan is given.
Selectors ("topic" or "topic/lesson") narrow the run. With --verify, the
command exits 1 when a lesson prints something other than its documented
output.`,
		Example: "  langtour run loops functions/closures --verify -f pretty",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.newApp(cmd, args)
			if err != nil {
				return err
			}
			_, err = a.Run(cmd.Context())
			return failure(err)
		},
	}
}

func (e *env) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [selector...]",
		Short: "List topics and lessons in run order",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.newApp(cmd, args)
			if err != nil {
				return err
			}
			if err := a.List(); err != nil {
				return usageError(err)
			}
			return nil
		},
	}
}

func (e *env) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show topic/lesson",
		Short:   "Run one lesson and stream its output",
		Args:    cobra.ExactArgs(1),
		Example: "  langtour show operators/nullish_coalescing",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := registry.ParseSelector(args[0])
			if err != nil {
				return usageError(err)
			}
			a, err := e.newApp(cmd, nil)
			if err != nil {
				return err
			}
			if _, ok := a.Registry().Lookup(sel.Topic, sel.Lesson); !ok {
				return usageError(fmt.Errorf("unknown lesson '%s'", args[0]))
			}
			_, err = a.Show(cmd.Context(), args[0])
			return failure(err)
		},
	}
}

func (e *env) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog, lesson runs and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.newApp(cmd, nil)
			if err != nil {
				return err
			}
			return failure(a.Serve(cmd.Context()))
		},
	}
}

func (e *env) browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and run lessons interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.newApp(cmd, nil)
			if err != nil {
				return err
			}
			return failure(a.Browse(cmd.Context()))
		},
	}
}
