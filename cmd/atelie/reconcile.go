package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type reconciler interface {
	ReconcileAll(ctx context.Context) (int, error)
	ReconcileOrder(ctx context.Context, orderID string) (bool, error)
}

func newReconcileCmd() *cobra.Command {
	var (
		orderID string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Promote orders whose stages are all concluded",
		Long:  "Recomputes order status from the production stage rows. Safe to run repeatedly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			container, err := buildContainer(ctx)
			if err != nil {
				return err
			}
			return runReconcile(ctx, cmd, container.Tracking, orderID)
		},
	}

	cmd.Flags().StringVar(&orderID, "order", "", "reconcile a single order id")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall timeout")
	return cmd
}

func runReconcile(ctx context.Context, cmd *cobra.Command, r reconciler, orderID string) error {
	out := cmd.OutOrStdout()
	if orderID != "" {
		completed, err := r.ReconcileOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("reconcile order %s: %w", orderID, err)
		}
		fmt.Fprintf(out, "order %s completed=%t\n", orderID, completed)
		return nil
	}

	promoted, err := r.ReconcileAll(ctx)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	fmt.Fprintf(out, "%d orders promoted to concluido\n", promoted)
	return nil
}
