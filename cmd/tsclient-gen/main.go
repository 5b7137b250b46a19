package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	cli "github.com/blimu-dev/tsclient-gen/internal/cli"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "tsclient-gen",
		Short:         "Generate typed TypeScript clients from OpenAPI specs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGenerateCmd(&verbose))
	root.AddCommand(newValidateCmd())
	return root
}

func newGenerateCmd(verbose *bool) *cobra.Command {
	var params cli.RunGenerateParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a TypeScript client",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cli.NewLogger(cmd.ErrOrStderr(), *verbose)
			return cli.RunGenerate(cmd.Context(), logger, params)
		},
	}

	cmd.Flags().StringVarP(&params.ConfigPath, "config", "c", "", "Path to tsclient-gen.yaml config")
	cmd.Flags().StringVar(&params.SingleClient, "client", "", "Generate only the named client from config")
	cmd.Flags().BoolVar(&params.Validate, "validate", false, "Validate the OpenAPI document before generating")
	// Fallback single-client flags
	cmd.Flags().StringVarP(&params.Fallback.Spec, "spec", "s", "", "OpenAPI spec file or URL (yaml/json)")
	cmd.Flags().StringVarP(&params.Fallback.OutDir, "output", "o", "", "Output directory")
	cmd.Flags().BoolVar(&params.Fallback.Header, "header", true, "Prepend the generated file header")
	cmd.Flags().StringArrayVar(&params.Fallback.IncludeTags, "include-tags", nil, "Regex patterns for tags to include")
	cmd.Flags().StringArrayVar(&params.Fallback.ExcludeTags, "exclude-tags", nil, "Regex patterns for tags to exclude")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an OpenAPI spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(cmd.Context(), spec)
		},
	}
	cmd.Flags().StringVarP(&spec, "spec", "s", "", "OpenAPI spec file or URL (yaml/json)")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}
