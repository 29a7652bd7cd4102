package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"typeahead/internal/combobox"
	"typeahead/internal/ui"
)

func newCheckCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a form definition and list its fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := openConfig(*configPath)
			if err != nil {
				return err
			}

			var data [][]string
			for _, f := range cfg.Fields {
				disabled := 0
				for _, o := range f.Options {
					if o.Disabled {
						disabled++
					}
				}
				options := strconv.Itoa(len(f.Options))
				if disabled > 0 {
					options = fmt.Sprintf("%d (%d disabled)", len(f.Options), disabled)
				}
				value, _ := f.LabelFor(f.Value)
				data = append(data, []string{f.Name, f.Label, strconv.FormatBool(f.Required), options, value})
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"FIELD", "LABEL", "REQUIRED", "OPTIONS", "DEFAULT"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			table.AppendBulk(data)
			table.Render()
			return nil
		},
	}
}

func newFilterCmd(configPath *string) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "filter [TERM]",
		Short: "Print the options a search term leaves visible",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := openConfig(*configPath)
			if err != nil {
				return err
			}
			spec, ok := cfg.Field(field)
			if !ok {
				return fmt.Errorf("no field named %q", field)
			}

			ctrl, err := combobox.New(spec.Name, combobox.Markup{
				Field:   combobox.NewHiddenField(spec.Name, spec.Value, nil),
				Options: ui.OptionElements(*spec),
			}, nil, nil)
			if err != nil {
				return err
			}
			ctrl.Open()
			ctrl.SetSearch(strings.Join(args, " "))
			visible := ctrl.VisibleOptions()
			if len(visible) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"#", "VALUE", "LABEL", "STATE"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			for vi, opt := range visible {
				state := ""
				if opt.Disabled {
					state = "disabled"
				}
				table.Append([]string{strconv.Itoa(vi), opt.Value, opt.Label, state})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&field, "field", "f", "", "field name")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}
