// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var topologyCmd = &cobra.Command{
	Use:   "topology",
	Short: "Inspect the network topology",
}

var exportTopologyCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the laid out topology as JSON, YAML or SVG",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		focus, _ := cmd.Flags().GetString("focus")
		output, _ := cmd.Flags().GetString("output")

		query := organizationFilter(cmd)
		if query == nil {
			query = url.Values{}
		}
		if focus != "" {
			query.Set("focus", focus)
		}

		var (
			doc []byte
			err error
		)

		switch format {
		case "svg":
			query.Set("format", "svg")
			doc, err = getClient().raw(cmd.Context(), "/api/v0/topology", query)
		case "json", "yaml":
			doc, err = exportDocument(cmd, query, format)
		default:
			return fmt.Errorf("unsupported format %q, expected json, yaml or svg", format)
		}
		if err != nil {
			return fmt.Errorf("failed to export topology: %w", err)
		}

		var w io.Writer = cmd.OutOrStdout()
		if output != "" && output != "-" {
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		_, err = w.Write(doc)
		return err
	},
}

func exportDocument(cmd *cobra.Command, query url.Values, format string) ([]byte, error) {
	var export map[string]any
	if err := getClient().get(cmd.Context(), "/api/v0/topology", query, &export); err != nil {
		return nil, err
	}

	if format == "yaml" {
		return yaml.Marshal(export)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func init() {
	rootCmd.AddCommand(topologyCmd)
	topologyCmd.AddCommand(exportTopologyCmd)

	exportTopologyCmd.Flags().String("organization-id", "", "Only the topology of this organization")
	exportTopologyCmd.Flags().StringP("format", "f", "json", "Output format (json, yaml or svg)")
	exportTopologyCmd.Flags().String("focus", "", "Device or connection id to center the drawing on")
	exportTopologyCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
}
