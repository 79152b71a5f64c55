// Gridbones CLI — инструмент командной строки для работы с таблицами
// grid-сервиса: листинг, чтение строк, добавление и обновление строк
// по ключевой колонке.
//
// Использование:
//
//	gridbones [--api-url URL] [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	sheet    Работа с таблицами
//	contact  Адресная книга
//	token    Управление access token
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/gridbones/internal/cli"
	"github.com/shaiso/gridbones/internal/credentials"
	"github.com/shaiso/gridbones/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger()

	apiURL := os.Getenv("GRIDBONES_API_URL")
	if apiURL == "" {
		apiURL = cli.DefaultBaseURL
	}
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "gridbones",
		Short:         "Gridbones CLI — grid service client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", apiURL, "Grid API base URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	storeFn := func() (*credentials.Store, error) {
		if dir := os.Getenv("GRIDBONES_CONFIG_DIR"); dir != "" {
			return credentials.NewStoreAt(dir), nil
		}
		return credentials.NewStore()
	}
	clientFn := func() (*cli.Client, error) {
		store, err := storeFn()
		if err != nil {
			return nil, err
		}
		token, err := store.Load()
		if errors.Is(err, credentials.ErrNoToken) {
			return nil, fmt.Errorf("%w (run 'gridbones token set' first)", err)
		}
		if err != nil {
			return nil, err
		}
		return cli.NewClient(apiURL, token), nil
	}
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewSheetCmd(clientFn, outputFn),
		cli.NewContactCmd(clientFn, outputFn),
		cli.NewTokenCmd(storeFn, outputFn),
	)

	ctx := telemetry.WithLogger(context.Background(), logger)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
