package main

import (
	"context"
	"log"

	"roboadvisor/cmd"
	"roboadvisor/internal"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roboadvisor",
	Short: "robo-advisor operational scripts",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the http api",
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)
		port, err := c.Flags().GetInt("port")
		if err != nil {
			return err
		}
		return apiHandler.StartApi(port)
	},
}

var driftCheckCmd = &cobra.Command{
	Use:   "drift-check [investorId]",
	Short: "print rebalancing status for an investor",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		check, err := apiHandler.DriftService.CheckRebalancingStatus(context.Background(), args[0])
		if err != nil {
			return err
		}
		internal.Pprint(check)
		return nil
	},
}

var tlhScanCmd = &cobra.Command{
	Use:   "tlh-scan [investorId]",
	Short: "print tax loss harvesting opportunities for an investor",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		report, err := apiHandler.TlhService.GetOpportunities(context.Background(), args[0])
		if err != nil {
			return err
		}
		internal.Pprint(report)
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 3009, "port to listen on")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(driftCheckCmd)
	rootCmd.AddCommand(tlhScanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
