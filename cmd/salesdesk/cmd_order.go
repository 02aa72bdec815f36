package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/salesdesk/app/repositories"
)

// salesdesk order:list
func orderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order:list",
		Short: "List every order with its line items",
		RunE: withDB(func(cmd *cobra.Command, _ []string, db *gorm.DB) error {
			orders, err := repositories.NewOrderRepository(db).All(cmd.Context())
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orders.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, o := range orders {
				customer := "-"
				if o.CustomerID != nil {
					customer = strconv.FormatUint(uint64(*o.CustomerID), 10)
				}
				fmt.Fprintf(w, "#%d\tcustomer %s\t%s\tdocument %t\n",
					o.ID, customer, o.CreatedAt.Format("2006-01-02 15:04:05"), o.DocumentGenerated)
				for _, l := range o.Lines {
					fmt.Fprintf(w, "\t%g %s\t%s (#%d)\t%.2f\n", l.Quantity, l.UnitKind, l.ProductName, l.ProductID, l.Price)
				}
			}
			return w.Flush()
		}),
	}
}

// salesdesk order:document <id> [--generated=false]
func orderDocumentCmd() *cobra.Command {
	var generated bool
	cmd := &cobra.Command{
		Use:   "order:document <id>",
		Short: "Mark whether an order's document has been generated",
		Args:  cobra.ExactArgs(1),
		RunE: withDB(func(cmd *cobra.Command, args []string, db *gorm.DB) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			status, err := repositories.NewOrderRepository(db).SetDocumentGenerated(cmd.Context(), uint(id), generated)
			if err != nil {
				return err
			}
			if status.RowsAffected == 0 {
				return fmt.Errorf("order %d not found", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %d document_generated=%t\n", status.ID, status.DocumentGenerated)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&generated, "generated", true, "new value of the document flag")
	return cmd
}
