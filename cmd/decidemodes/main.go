package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/pradeeppj/checkout-study/internal/agent"
	"github.com/pradeeppj/checkout-study/internal/flow"
	"github.com/pradeeppj/checkout-study/internal/observability"
	"github.com/pradeeppj/checkout-study/internal/planner"
	"github.com/pradeeppj/checkout-study/pkg/config"
)

// defaultModel is used when neither --model nor the provider config name one.
const defaultModel = "gpt-5.2"

var (
	cardTypeFlag  string
	modelFlag     string
	configFlag    string
	rationaleFlag bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "decidemodes",
	Short: "Assign an interaction modality to each checkout step",
	Long: `decidemodes builds the checkout step sequence for a card type and asks a
language model to assign each step one of three interaction modalities
(standard, voice, chat). One JSON record per step is printed to stdout in
flow order.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&cardTypeFlag, "card-type", string(flow.CardTypePhysical), "card type to plan for (Physical or Digital)")
	rootCmd.Flags().StringVar(&modelFlag, "model", "", fmt.Sprintf("model identifier (default %q)", defaultModel))
	rootCmd.Flags().StringVar(&configFlag, "config", "", "path to an optional JSON provider config")
	rootCmd.Flags().BoolVar(&rationaleFlag, "rationale", false, "include the per-step rationale in output records")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	logger := observability.NewLogger(verbose)

	cardType, err := flow.ParseCardType(cardTypeFlag)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if configFlag != "" {
		cfg, err = config.Load(configFlag)
		if err != nil {
			return err
		}
	}

	pName, pCfg := cfg.GetDefaultProvider()
	if pName == "" {
		return errors.New("no enabled provider found in config")
	}

	model := modelFlag
	if model == "" {
		model = pCfg.Model
	}
	if model == "" {
		model = defaultModel
	}

	var llm llms.Model
	switch pName {
	case "openai", "openrouter":
		opts := []openai.Option{openai.WithModel(model)}
		if pCfg.APIKey != "" {
			opts = append(opts, openai.WithToken(pCfg.APIKey))
		}
		if pCfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(pCfg.BaseURL))
		}
		llm, err = openai.New(opts...)
	default:
		return fmt.Errorf("provider %s is not supported", pName)
	}
	if err != nil {
		return err
	}

	steps := flow.BuildFlow(cardType)
	logger.Debug().
		Str("card_type", string(cardType)).
		Str("provider", pName).
		Str("model", model).
		Int("steps", len(steps)).
		Msg("flow built")

	p := &planner.Planner{
		Service:       agent.NewLLMPlanner(llm, logger),
		Logger:        logger,
		EmitRationale: rationaleFlag,
	}
	return p.Run(cmd.Context(), steps, os.Stdout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
