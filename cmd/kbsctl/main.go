// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package main provides the kbsctl command-line entry point for driving the
// PIN-gated key backup client: enrollment, restore, deletion, local PIN
// verification, and status inspection.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "kbsctl",
		Usage: "PIN-gated key backup client",
		Commands: []*cli.Command{
			{
				Name:  "enroll",
				Usage: "Generate (or keep) the master key and back it up under the PIN",
				Flags: []cli.Flag{pinFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runEnroll(ctx, cmd.String("pin"))
				},
			},
			{
				Name:  "restore",
				Usage: "Recover the master key from the key backup service with the PIN",
				Flags: []cli.Flag{pinFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runRestore(ctx, cmd.String("pin"))
				},
			},
			{
				Name:  "delete",
				Usage: "Destroy the backup record and clear all local key material",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runDelete(ctx)
				},
			},
			{
				Name:  "verify-pin",
				Usage: "Check a PIN against the locally stored verification string",
				Flags: []cli.Flag{pinFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runVerifyPin(ctx, cmd.String("pin"))
				},
			},
			{
				Name:  "status",
				Usage: "Report local key state, pin type, and remaining enclave tries",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runStatus(ctx)
				},
			},
			{
				Name:  "reglock-token",
				Usage: "Print the registration-lock token derived from the master key",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runRegLockToken(ctx)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func pinFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "pin",
		Aliases:  []string{"p"},
		Usage:    "User PIN",
		Required: true,
	}
}
