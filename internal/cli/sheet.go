package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaiso/gridbones/internal/domain"
	"github.com/shaiso/gridbones/internal/grid"
	"github.com/shaiso/gridbones/internal/telemetry"
)

// NewSheetCmd создаёт группу команд для работы с таблицами.
func NewSheetCmd(clientFn func() (*Client, error), outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Manage sheets",
	}

	cmd.AddCommand(
		newSheetListCmd(clientFn, outputFn),
		newSheetRowsCmd(clientFn, outputFn),
		newSheetAddCmd(clientFn, outputFn),
		newSheetUpdateCmd(clientFn, outputFn),
	)

	return cmd
}

func newSheetListCmd(clientFn func() (*Client, error), outputFn func() *Output) *cobra.Command {
	var ids bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()

			refs, err := client.ListSheets()
			if err != nil {
				return err
			}
			table := grid.NewSheetTable(refs)

			if ids {
				headers := []string{"ID", "SLUG", "NAME"}
				rows := make([][]string, len(table.Slugs()))
				for i, s := range table.Slugs() {
					name := table.Name(s)
					id, _ := table.ID(name)
					rows[i] = []string{strconv.FormatInt(id, 10), s, name}
				}
				out.Print(headers, rows, refs)
				return nil
			}

			out.List(table.Slugs(), refs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&ids, "ids", false, "Include sheet IDs")

	return cmd
}

func newSheetRowsCmd(clientFn func() (*Client, error), outputFn func() *Output) *cobra.Command {
	var display, all, id, parent, rownum bool

	cmd := &cobra.Command{
		Use:   "rows SHEET",
		Short: "Print sheet rows as flat JSON objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()

			sheetID, err := resolveSheet(client, args[0])
			if err != nil {
				return err
			}
			log := telemetry.WithSheetID(telemetry.FromContext(cmd.Context()), sheetID)

			sheet, err := client.GetSheet(sheetID)
			if err != nil {
				return err
			}
			log.Debug("projecting rows", "rows", len(sheet.Rows), "columns", len(sheet.Columns))

			var extraKeys []string
			if all || id {
				extraKeys = append(extraKeys, domain.MetaID)
			}
			if all || parent {
				extraKeys = append(extraKeys, domain.MetaParentID)
			}
			if all || rownum {
				extraKeys = append(extraKeys, domain.MetaRowNumber)
			}

			idx := grid.IndexColumns(sheet.Columns)
			flat := grid.Project(sheet, idx.IDToTitle, display, extraKeys)
			out.JSON(flat)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&display, "display", "d", false, "Use display value instead of the raw value")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include the Row ID, Parent ID & Row Number")
	cmd.Flags().BoolVarP(&id, "id", "i", false, "Include the Row ID")
	cmd.Flags().BoolVarP(&parent, "parent", "p", false, "Include the Parent ID")
	cmd.Flags().BoolVarP(&rownum, "rownum", "r", false, "Include the Row Number")

	return cmd
}

func newSheetAddCmd(clientFn func() (*Client, error), outputFn func() *Output) *cobra.Command {
	var bottom, strict bool

	cmd := &cobra.Command{
		Use:   "add SHEET ROWS_FILE",
		Short: "Add rows from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()

			rows, err := readRowsFile(args[1])
			if err != nil {
				return err
			}

			sheetID, err := resolveSheet(client, args[0])
			if err != nil {
				return err
			}
			log := telemetry.WithSheetID(telemetry.FromContext(cmd.Context()), sheetID)

			columns, err := client.ListColumns(sheetID)
			if err != nil {
				return err
			}
			warnDuplicateTitles(log, columns)

			idx := grid.IndexColumns(columns)
			payload := grid.BuildAddPayload(idx.TitleToID, rows, !bottom, strict)
			log.Debug("adding rows", "rows", len(payload))

			resp, err := client.AddRows(sheetID, payload)
			if err != nil {
				return err
			}
			out.JSONRaw(resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&bottom, "bottom", false, "Append rows to the bottom instead of the top")
	cmd.Flags().BoolVar(&strict, "strict", false, "Ask the service to validate cell values strictly")

	return cmd
}

func newSheetUpdateCmd(clientFn func() (*Client, error), outputFn func() *Output) *cobra.Command {
	var key string
	var strict bool

	cmd := &cobra.Command{
		Use:   "update SHEET ROWS_FILE",
		Short: "Update rows matched by a key column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()

			updates, err := readRowsFile(args[1])
			if err != nil {
				return err
			}

			sheetID, err := resolveSheet(client, args[0])
			if err != nil {
				return err
			}
			log := telemetry.WithSheetID(telemetry.FromContext(cmd.Context()), sheetID)

			sheet, err := client.GetSheet(sheetID)
			if err != nil {
				return err
			}

			if _, ok := grid.FindColumnID(sheet, key); !ok {
				return fmt.Errorf("key column %q not found in sheet %q", key, sheet.Name)
			}
			warnDuplicateTitles(log, sheet.Columns)

			payload := grid.BuildUpdatePayload(sheet, updates, key, strict)
			log.Debug("updating rows", "matched", len(payload), "input", len(updates))
			if len(payload) == 0 {
				out.Success("No rows matched; nothing to update.")
				return nil
			}
			if len(payload) < len(updates) {
				out.Success(fmt.Sprintf("Matched %d of %d rows.", len(payload), len(updates)))
			}

			resp, err := client.UpdateRows(sheetID, payload)
			if err != nil {
				return err
			}
			out.JSONRaw(resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Key column title used to match existing rows")
	cmd.Flags().BoolVar(&strict, "strict", false, "Ask the service to validate cell values strictly")
	cmd.MarkFlagRequired("key")

	return cmd
}

// resolveSheet разрешает аргумент SHEET (имя, slug или номер)
// по свежему index-листингу.
func resolveSheet(client *Client, arg string) (int64, error) {
	refs, err := client.ListSheets()
	if err != nil {
		return 0, err
	}
	return grid.NewSheetTable(refs).Resolve(arg)
}

// readRowsFile читает JSON-массив плоских строк.
func readRowsFile(path string) ([]domain.FlatRow, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rows file: %w", err)
	}

	var rows []domain.FlatRow
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("parsing rows file %s: %w", path, err)
	}
	return rows, nil
}

// warnDuplicateTitles предупреждает о неоднозначных заголовках:
// при коллизии TitleToID разрешает заголовок в последнюю колонку.
func warnDuplicateTitles(log *slog.Logger, columns []domain.Column) {
	if dups := grid.DuplicateTitles(columns); len(dups) > 0 {
		log.Warn("duplicate column titles, last column wins", "titles", dups)
	}
}
