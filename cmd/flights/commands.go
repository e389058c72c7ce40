package main

import (
	"context"

	"flights/internal/interface/presenter"
	"flights/internal/usecase"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var destination, departureDate, aircraftType string

	cmd := &cobra.Command{
		Use:   "add <filename>",
		Short: "Add a new flight",
		Long: `Appends one flight to the list and writes the whole list back.

Example:
  flights add flights.json -d Paris -dd 2024-01-01 -at A320`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd.Context(), args[0], func(ctx context.Context, svc *usecase.FlightService) error {
				_, err := svc.Add(ctx, destination, departureDate, aircraftType)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "Destination of the flight")
	cmd.Flags().StringVar(&departureDate, "departure_date", "", "Departure date of the flight (alias -dd)")
	cmd.Flags().StringVar(&aircraftType, "aircraft_type", "", "Aircraft type of the flight (alias -at)")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("departure_date")
	_ = cmd.MarkFlagRequired("aircraft_type")
	return cmd
}

func newDisplayCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "display <filename>",
		Short: "Display all flights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := presenter.ParseFormat(output)
			if err != nil {
				return err
			}
			return a.withService(cmd.Context(), args[0], func(ctx context.Context, svc *usecase.FlightService) error {
				flights, err := svc.List(ctx)
				if err != nil {
					return err
				}
				return presenter.Write(cmd.OutOrStdout(), flights, format)
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func newSelectCmd(a *app) *cobra.Command {
	var date, output string

	cmd := &cobra.Command{
		Use:   "select <filename>",
		Short: "Select flights by departure date",
		Long: `Shows the flights whose departure date equals --date exactly.
Dates are compared as text, so "2024-1-1" does not match "2024-01-01".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := presenter.ParseFormat(output)
			if err != nil {
				return err
			}
			return a.withService(cmd.Context(), args[0], func(ctx context.Context, svc *usecase.FlightService) error {
				flights, err := svc.Select(ctx, date)
				if err != nil {
					return err
				}
				return presenter.Write(cmd.OutOrStdout(), flights, format)
			})
		},
	}

	cmd.Flags().StringVarP(&date, "date", "D", "", "Departure date to select flights")
	_ = cmd.MarkFlagRequired("date")
	addOutputFlag(cmd, &output)
	return cmd
}
