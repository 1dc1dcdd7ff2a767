package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/merapar/dynstring"
	"github.com/spf13/cobra"
)

type settings struct {
	output io.Writer
	client dynstring.SSMClient
}

type CommandOptions func(*settings) error

func WithOutput(w io.Writer) CommandOptions {
	return func(s *settings) error {
		s.output = w
		return nil
	}
}

// WithClient replaces the SSM client built from the environment.
func WithClient(c dynstring.SSMClient) CommandOptions {
	return func(s *settings) error {
		s.client = c
		return nil
	}
}

func Main(args []string, opts ...CommandOptions) error {
	s := &settings{
		output: os.Stdout,
	}
	for _, opt := range opts {
		err := opt(s)
		if err != nil {
			return err
		}
	}
	var rootCmd = &cobra.Command{
		Use:   "dynstringctl",
		Short: "Inspect the dynamic string served by the dynstring lambda function.",
	}
	rootCmd.SetOut(s.output)
	rootCmd.SetErr(s.output)
	rootCmd.AddCommand(
		GetCommand(s),
		RenderCommand(s),
	)
	if len(args) == 0 {
		rootCmd.Print(rootCmd.UsageString())
		return fmt.Errorf("no command provided")
	}
	_, _, err := rootCmd.Find(args)
	if err != nil {
		rootCmd.Print(rootCmd.UsageString())
		return err
	}
	rootCmd.SetArgs(args)
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true, Run: func(cmd *cobra.Command, args []string) {}})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd.ExecuteContext(context.Background())
}

func GetCommand(s *settings) *cobra.Command {
	var getCmd = &cobra.Command{
		Use:          "get",
		Short:        "Print the string currently stored in the parameter store.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Example:      `dynstringctl get`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := s.resolve(cmd.Context())
			if err != nil {
				return err
			}
			value, err := dynstring.GetDynamicString(cmd.Context(), client)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
	return getCmd
}

func RenderCommand(s *settings) *cobra.Command {
	var renderCmd = &cobra.Command{
		Use:          "render",
		Short:        "Run the handler locally and print the page it would serve.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Example:      `dynstringctl render`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, err := s.resolve(cmd.Context())
			if err != nil {
				return err
			}
			cfg.LogFormat = dynstring.LogFormatText
			logger := dynstring.NewLogger(cfg, cmd.ErrOrStderr())
			h := dynstring.NewHandler(client, dynstring.WithLogger(logger))
			resp, err := h.Handle(cmd.Context(), json.RawMessage(`{}`))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Body)
			return err
		},
	}
	return renderCmd
}

func (s *settings) resolve(ctx context.Context) (dynstring.Config, dynstring.SSMClient, error) {
	cfg, err := dynstring.LoadConfig()
	if err != nil {
		return dynstring.Config{}, nil, err
	}
	if s.client != nil {
		return cfg, s.client, nil
	}
	client, err := dynstring.NewSSMClient(ctx, cfg)
	if err != nil {
		return dynstring.Config{}, nil, err
	}
	return cfg, client, nil
}
