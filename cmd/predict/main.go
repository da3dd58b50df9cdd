package main

import (
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/app/contracts"
	"diagnosis-service/internal/app/services/core/predictions"
	"diagnosis-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	rootCmd := &cobra.Command{
		Use:           "predict",
		Short:         "Score symptom lists against the disease prediction model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "write service logs to stderr")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(symptomsCmd())
	rootCmd.AddCommand(diseasesCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <symptom> [symptom...]",
		Short: "Predict the most likely diseases for the given symptoms",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			internalConfig := config.NewInternalConfig()
			driverConfig := config.NewDriverConfig()
			applyModelFlags(cmd, &internalConfig.Prediction)

			log := newCLILogger(cmd)
			defer log.Sync()

			vocabulary := predictions.DefaultVocabulary()
			catalog := predictions.DefaultCatalog()

			model, runtimeClose, loadErr := predictions.LoadPredictionModelFromConfig(
				cmd.Context(),
				log,
				driverConfig,
				internalConfig.Prediction,
				vocabulary,
				catalog,
			)
			defer runtimeClose()
			defer model.Close()

			usecase := predictions.NewPredictionUsecase(log, vocabulary, catalog, model, loadErr)
			result, err := usecase.Predict(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().String("artifact-uri", "", "override MODEL_ARTIFACT_URI")
	cmd.Flags().String("format", "", "override MODEL_FORMAT (forest or onnx)")
	return cmd
}

func symptomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symptoms",
		Short: "List the recognized symptom names",
		RunE: func(cmd *cobra.Command, args []string) error {
			usecase := newCatalogUsecase(cmd)
			result, err := usecase.ListSymptoms(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func diseasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diseases",
		Short: "List the diseases the model can predict",
		RunE: func(cmd *cobra.Command, args []string) error {
			usecase := newCatalogUsecase(cmd)
			result, err := usecase.ListDiseases(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Tag: %s\n", Tag)
		},
	}
}

// newCatalogUsecase serves the vocabulary and catalog listings, which need no artifacts.
func newCatalogUsecase(cmd *cobra.Command) contracts.PredictionUsecase {
	return predictions.NewPredictionUsecase(
		newCLILogger(cmd),
		predictions.DefaultVocabulary(),
		predictions.DefaultCatalog(),
		nil,
		nil,
	)
}

func applyModelFlags(cmd *cobra.Command, prediction *config.Prediction) {
	if uri, _ := cmd.Flags().GetString("artifact-uri"); uri != "" {
		prediction.ArtifactURI = uri
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		prediction.Format = strings.ToLower(format)
	}
}

// newCLILogger keeps stdout for results; logs go to stderr and only with --verbose.
func newCLILogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func printJSON(w io.Writer, data interface{}) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

func printError(w io.Writer, err error) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		printJSON(w, exceptions.CustomError{
			ClientMessage: customErr.ClientMessage,
			ClientDetail:  customErr.ClientDetail,
			DevMessage:    customErr.DevMessage,
		})
		return
	}
	fmt.Fprintln(w, err)
}
