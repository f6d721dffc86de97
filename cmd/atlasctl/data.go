package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"companyatlas/internal/companydata/models"
)

var (
	dataCompanyName string
	dataCompanyID   string
	dataSource      string
	dataValueType   string
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Read and write typed company data",
}

var dataSetCmd = &cobra.Command{
	Use:   "set <country> <data_type> <value>",
	Short: "Create or update one fact",
	Long: `Create or update one fact.

The value is parsed as JSON when possible (150 is an integer, 1.5 a float,
{"k":"v"} a JSON object); anything else is stored as a string. Use
--value-type to force a type.`,
	Args: cobra.ExactArgs(3),
	RunE: runDataSet,
}

var dataGetCmd = &cobra.Command{
	Use:   "get <company_id>",
	Short: "List a company's facts",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataGet,
}

var dataLookupCmd = &cobra.Command{
	Use:   "lookup <country> <data_type> <value>",
	Short: "Find the company owning a fact",
	Args:  cobra.ExactArgs(3),
	RunE:  runDataLookup,
}

func init() {
	dataSetCmd.Flags().StringVar(&dataCompanyName, "company-name", "", "Company name to find or create")
	dataSetCmd.Flags().StringVar(&dataCompanyID, "company-id", "", "Existing company id")
	dataSetCmd.Flags().StringVar(&dataSource, "source", "", "Source backend of the fact")
	dataSetCmd.Flags().StringVar(&dataValueType, "value-type", "", "Force the value type (str, int, float, json)")
	dataCmd.AddCommand(dataSetCmd, dataGetCmd, dataLookupCmd)
	rootCmd.AddCommand(dataCmd)
}

// parseCLIValue keeps integers integral by decoding through json.Number.
func parseCLIValue(raw string) any {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return raw
	}
	return v
}

func runDataSet(cmd *cobra.Command, args []string) error {
	req := models.SetDataRequest{
		Country:     args[0],
		DataType:    args[1],
		Value:       parseCLIValue(args[2]),
		Source:      dataSource,
		CompanyName: dataCompanyName,
		Kind:        dataValueType,
	}
	if dataValueType != "" {
		req.Value = args[2]
	}
	if dataCompanyID != "" {
		id, err := uuid.Parse(dataCompanyID)
		if err != nil {
			return fmt.Errorf("invalid company id: %w", err)
		}
		req.CompanyID = &id
	}

	ctx := cmd.Context()
	a, err := openApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	company, data, err := a.CompanyData.SetData(ctx, req)
	if err != nil {
		return err
	}
	view := models.NewDataView(data)
	return render(cmd.OutOrStdout(), map[string]any{"company": company, "data": view}, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Company:\t%s (%s)\n", company.Name, company.ID)
		fmt.Fprintf(tw, "%s:\t%s [%s]\n", data.DataType, view.Raw, view.ValueType)
	})
}

func runDataGet(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid company id: %w", err)
	}
	ctx := cmd.Context()
	a, err := openApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	company, data, err := a.CompanyData.ListData(ctx, id)
	if err != nil {
		return err
	}
	views := make([]models.DataView, 0, len(data))
	for _, d := range data {
		views = append(views, models.NewDataView(d))
	}
	return render(cmd.OutOrStdout(), map[string]any{"company": company, "data": views}, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "Company:\t%s (%s)\n", company.Name, company.Country)
		fmt.Fprintln(tw, "COUNTRY\tTYPE\tVALUE\tVALUE_TYPE\tSOURCE")
		for _, v := range views {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.CountryCode, v.DataType, v.Raw, v.ValueType, v.Source)
		}
	})
}

func runDataLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	company, err := a.CompanyData.FindCompanyByData(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), company, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", company.ID, company.Name, company.Country)
	})
}
