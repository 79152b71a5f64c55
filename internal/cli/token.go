package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shaiso/gridbones/internal/credentials"
)

// NewTokenCmd создаёт группу команд для управления access token.
func NewTokenCmd(storeFn func() (*credentials.Store, error), outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the access token",
	}

	cmd.AddCommand(
		newTokenSetCmd(storeFn, outputFn),
		newTokenPathCmd(storeFn, outputFn),
	)

	return cmd
}

func newTokenSetCmd(storeFn func() (*credentials.Store, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Prompt for the access token and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFn()
			if err != nil {
				return err
			}
			out := outputFn()

			token, err := promptToken()
			if err != nil {
				return err
			}

			if err := store.Save(token); err != nil {
				return err
			}
			out.Success("Access token saved.")
			return nil
		},
	}
}

func newTokenPathCmd(storeFn func() (*credentials.Store, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the token file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storeFn()
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, store.Path())
			return nil
		},
	}
}

// promptToken читает токен со скрытым вводом и подтверждением.
// Если stdin не терминал (pipe), читается одна строка как есть.
func promptToken() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readTokenLine(os.Stdin)
	}

	fmt.Fprint(os.Stderr, "Access token: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	fmt.Fprint(os.Stderr, "Repeat for confirmation: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("the two entered values do not match")
	}
	if len(first) == 0 {
		return "", errors.New("empty token")
	}
	return string(first), nil
}

func readTokenLine(r *os.File) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	token := strings.TrimSpace(line)
	if token == "" {
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return "", errors.New("empty token")
	}
	return token, nil
}
