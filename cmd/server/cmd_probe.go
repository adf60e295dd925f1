package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/lunch-web/pkg/apiurl"
)

const probeConcurrency = 4

func newProbeCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <path>...",
		Short: "GET resolved API URLs and print the responses",
		Long: `Issue a GET against the API backend for each path, resolved the same way the
rendered pages resolve it, and print the status line followed by the body.
Paths are probed concurrently; output keeps argument order.

Exits non-zero on transport errors and on 4xx/5xx responses.

Examples:
  lunch-web probe /api/groups
  lunch-web probe --timeout 2s --max-body 4KB /api/groups/42 /api/restaurants`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(cmd, stdout, stderr, args)
		},
	}
	cmd.Flags().Duration("timeout", 10*time.Second, "Per-request timeout")
	cmd.Flags().String("max-body", "64KB", "Maximum body bytes to print per response")
	return cmd
}

type probeResult struct {
	url    string
	status string
	failed bool
	body   bytes.Buffer
}

func runProbe(cmd *cobra.Command, stdout, stderr io.Writer, paths []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	maxBodyFlag, _ := cmd.Flags().GetString("max-body")
	maxBody, err := units.FromHumanSize(maxBodyFlag)
	if err != nil {
		return fmt.Errorf("invalid --max-body: %w", err)
	}

	client := apiurl.NewClient(cfg.Frontend.Resolver(), &http.Client{Timeout: timeout})
	results := make([]*probeResult, len(paths))

	g, ctx := errgroup.WithContext(contextOf(cmd))
	g.SetLimit(probeConcurrency)
	for i, path := range paths {
		g.Go(func() error {
			res, err := probe(ctx, client, path, timeout, maxBody)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := false
	for _, res := range results {
		fmt.Fprintln(stdout, res.status)
		res.body.WriteTo(stdout)
		fmt.Fprintln(stdout)

		if res.failed {
			failed = true
			fmt.Fprintf(stderr, "lunch-web: %s returned %s\n", res.url, res.status)
		}
	}

	if failed {
		return errExit
	}
	return nil
}

func probe(ctx context.Context, client *apiurl.Client, path string, timeout time.Duration, maxBody int64) (*probeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := client.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	res := &probeResult{
		url:    resp.Request.URL.String(),
		status: resp.Proto + " " + resp.Status,
		failed: resp.StatusCode >= http.StatusBadRequest,
	}
	if _, err := io.Copy(&res.body, io.LimitReader(resp.Body, maxBody)); err != nil {
		return nil, fmt.Errorf("reading %s: %w", res.url, err)
	}
	return res, nil
}
