package cli

import (
	"github.com/spf13/cobra"
)

// NewContactCmd создаёт группу команд для адресной книги.
func NewContactCmd(clientFn func() (*Client, error), outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage contacts",
	}

	cmd.AddCommand(newContactListCmd(clientFn, outputFn))

	return cmd
}

func newContactListCmd(clientFn func() (*Client, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()

			contacts, err := client.ListContacts()
			if err != nil {
				return err
			}

			headers := []string{"NAME", "EMAIL"}
			rows := make([][]string, len(contacts))
			for i, c := range contacts {
				rows[i] = []string{c.Name, c.Email}
			}

			out.Print(headers, rows, contacts)
			return nil
		},
	}
}
