package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	serverAddr  string
	timeout     time.Duration
	requestJSON string
)

var clientCmd = &cobra.Command{
	Use:   "client <method>",
	Short: "Call a CharacterService method",
	Long: `Send one request to a running server and print the JSON response.

The request body is a JSON object in the shape of the method input, for example:

  rpg-sheet client GetSheet --json '{"character_id": "char_..."}'
  rpg-sheet client SubmitHitPoints --json '{"character_id": "char_...", "method": "average"}'

Use "-" to read the body from stdin.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: v1alpha1.MethodNames(),
	RunE:      runClient,
}

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List CharacterService methods",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, name := range v1alpha1.MethodNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	clientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	clientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	clientCmd.Flags().StringVar(&requestJSON, "json", "{}", "request body")

	clientCmd.AddCommand(methodsCmd)
}

func runClient(cmd *cobra.Command, args []string) error {
	body := requestJSON
	if body == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read request: %w", err)
		}
		body = string(raw)
	}

	req := &structpb.Struct{}
	if err := protojson.Unmarshal([]byte(strings.TrimSpace(body)), req); err != nil {
		return fmt.Errorf("request must be a JSON object: %w", err)
	}

	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := v1alpha1.NewClient(conn).CallRaw(ctx, args[0], req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", args[0], err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
